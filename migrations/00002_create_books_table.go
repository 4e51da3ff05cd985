package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBooksTable, downCreateBooksTable)
}

func upCreateBooksTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE books (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  author TEXT NOT NULL DEFAULT '',
	  description TEXT NOT NULL DEFAULT '',
	  type TEXT NOT NULL,
	  category TEXT NOT NULL DEFAULT '',
	  price INTEGER NOT NULL DEFAULT 0,
	  condition TEXT NOT NULL,
	  user_id UUID NOT NULL REFERENCES users(id),
	  is_available BOOLEAN NOT NULL DEFAULT true,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_books_user_id ON books(user_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateBooksTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS books;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
