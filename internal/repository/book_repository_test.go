package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Idriss-Abidi/booktook/internal/model"
	repo "github.com/Idriss-Abidi/booktook/internal/repository"
)

func TestPostgresBookRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookRepository(sqlxDB)

	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO books`)).
		WithArgs("Dune", "Frank Herbert", "", model.BookTypeExchange, "fiction", 0, model.ConditionGood, ownerID, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	created, err := r.Create(context.Background(), &model.Book{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Type:        model.BookTypeExchange,
		Category:    "fiction",
		Condition:   model.ConditionGood,
		UserID:      ownerID,
		IsAvailable: true,
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookRepository_Search_AllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "title", "author", "category"}).
		AddRow(uuid.New(), "Dune", "Frank Herbert", "fiction")
	mock.ExpectQuery(regexp.QuoteMeta(`title ILIKE $1 AND author ILIKE $2 AND category ILIKE $3`)).
		WithArgs("%dune%", "%herbert%", "%fiction%").
		WillReturnRows(rows)

	books, err := r.Search(context.Background(), repo.BookFilter{Title: "dune", Author: "herbert", Category: "fiction"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Dune", books[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookRepository_Search_NoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookRepository(sqlxDB)

	// no WHERE clause when every parameter is empty
	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow(uuid.New(), "Dune").
		AddRow(uuid.New(), "Hyperion")
	mock.ExpectQuery(`SELECT .* FROM books ORDER BY created_at`).WillReturnRows(rows)

	books, err := r.Search(context.Background(), repo.BookFilter{})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookRepository_FindByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookRepository(sqlxDB)

	ownerID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "title", "user_id"}).AddRow(uuid.New(), "Dune", ownerID)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM books WHERE user_id = $1`)).
		WithArgs(ownerID).WillReturnRows(rows)

	books, err := r.FindByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, ownerID, books[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := r.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	require.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
