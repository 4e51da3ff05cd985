package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Idriss-Abidi/booktook/internal/model"
)

// BookFilter narrows a book search; empty fields impose no constraint.
type BookFilter struct {
	Title    string
	Author   string
	Category string
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Book, error)
	Search(ctx context.Context, filter BookFilter) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresBookRepository struct {
	db *sqlx.DB
}

func NewPostgresBookRepository(db *sqlx.DB) BookRepository {
	return &postgresBookRepository{db: db}
}

const bookColumns = `id, title, author, description, type, category, price, condition, user_id, is_available, created_at, updated_at`

func (r *postgresBookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `INSERT INTO books (title, author, description, type, category, price, condition, user_id, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		book.Title, book.Author, book.Description, book.Type, book.Category,
		book.Price, book.Condition, book.UserID, book.IsAvailable,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return book, nil
}

func (r *postgresBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	if err := r.db.GetContext(ctx, &book, query, id); err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *postgresBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &books, query); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *postgresBookRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &books, query, userID); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *postgresBookRepository) Search(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	var clauses []string
	var args []interface{}
	argID := 1

	if filter.Title != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", argID))
		args = append(args, "%"+filter.Title+"%")
		argID++
	}
	if filter.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argID))
		args = append(args, "%"+filter.Author+"%")
		argID++
	}
	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category ILIKE $%d", argID))
		args = append(args, "%"+filter.Category+"%")
		argID++
	}

	query := `SELECT ` + bookColumns + ` FROM books`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at"

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *postgresBookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `UPDATE books SET title = $1, author = $2, description = $3, type = $4, category = $5,
		price = $6, condition = $7, user_id = $8, is_available = $9, updated_at = now() WHERE id = $10`
	_, err := r.db.ExecContext(ctx, query,
		book.Title, book.Author, book.Description, book.Type, book.Category,
		book.Price, book.Condition, book.UserID, book.IsAvailable, book.ID,
	)

	return err
}

func (r *postgresBookRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
