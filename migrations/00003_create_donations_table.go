package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateDonationsTable, downCreateDonationsTable)
}

func upCreateDonationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE donations (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  description TEXT NOT NULL,
	  organization_name TEXT NOT NULL,
	  contact_person TEXT NOT NULL DEFAULT '',
	  phone TEXT NOT NULL DEFAULT '',
	  email TEXT NOT NULL DEFAULT '',
	  website TEXT NOT NULL DEFAULT '',
	  start_date DATE,
	  end_date DATE,
	  is_active BOOLEAN NOT NULL DEFAULT true,
	  created_by UUID NOT NULL REFERENCES users(id),
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_donations_created_by ON donations(created_by);
	CREATE INDEX idx_donations_start_date ON donations(start_date);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateDonationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS donations;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
