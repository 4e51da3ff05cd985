package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersTable, downCreateUsersTable)
}

func upCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE users (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  username TEXT NOT NULL DEFAULT '',
	  firstname TEXT NOT NULL DEFAULT '',
	  lastname TEXT NOT NULL DEFAULT '',
	  email TEXT UNIQUE NOT NULL,
	  password_hash TEXT NOT NULL,
	  description TEXT NOT NULL DEFAULT '',
	  phone TEXT NOT NULL DEFAULT '',
	  address TEXT NOT NULL DEFAULT '',
	  city TEXT NOT NULL DEFAULT '',
	  state TEXT NOT NULL DEFAULT '',
	  pdp_url TEXT NOT NULL DEFAULT '',
	  is_admin BOOLEAN NOT NULL DEFAULT false,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS users;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
