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

func TestPostgresDonationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDonationRepository(sqlxDB)

	id := uuid.New()
	createdBy := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO donations`)).
		WithArgs("Winter drive", "Books for shelters", "BookAid", "", "", "", "", nil, nil, true, createdBy).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	created, err := r.Create(context.Background(), &model.Donation{
		Title:            "Winter drive",
		Description:      "Books for shelters",
		OrganizationName: "BookAid",
		IsActive:         true,
		CreatedBy:        createdBy,
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDonationRepository_FindActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDonationRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "title", "is_active"}).
		AddRow(uuid.New(), "Winter drive", true)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM donations WHERE is_active = true`)).WillReturnRows(rows)

	donations, err := r.FindActive(context.Background())
	require.NoError(t, err)
	require.Len(t, donations, 1)
	require.True(t, donations[0].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDonationRepository_FindUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDonationRepository(sqlxDB)

	now := time.Now()
	start := now.AddDate(0, 0, 1)
	rows := sqlmock.NewRows([]string{"id", "title", "start_date"}).
		AddRow(uuid.New(), "Spring drive", start)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM donations WHERE start_date > $1`)).
		WithArgs(sqlmock.AnyArg()).WillReturnRows(rows)

	donations, err := r.FindUpcoming(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDonationRepository_Delete_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDonationRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM donations WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := r.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	require.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
