package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Idriss-Abidi/booktook/internal/model"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) (*model.Donation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	FindActive(ctx context.Context) ([]model.Donation, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]model.Donation, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.Donation, error)
	Update(ctx context.Context, donation *model.Donation) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresDonationRepository struct {
	db *sqlx.DB
}

func NewPostgresDonationRepository(db *sqlx.DB) DonationRepository {
	return &postgresDonationRepository{db: db}
}

const donationColumns = `id, title, description, organization_name, contact_person, phone, email, website, start_date, end_date, is_active, created_by, created_at, updated_at`

func (r *postgresDonationRepository) Create(ctx context.Context, donation *model.Donation) (*model.Donation, error) {
	query := `INSERT INTO donations (title, description, organization_name, contact_person, phone, email, website, start_date, end_date, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		donation.Title, donation.Description, donation.OrganizationName,
		donation.ContactPerson, donation.Phone, donation.Email, donation.Website,
		donation.StartDate, donation.EndDate, donation.IsActive, donation.CreatedBy,
	).Scan(&donation.ID, &donation.CreatedAt, &donation.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return donation, nil
}

func (r *postgresDonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var donation model.Donation
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	if err := r.db.GetContext(ctx, &donation, query, id); err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *postgresDonationRepository) FindActive(ctx context.Context) ([]model.Donation, error) {
	var donations []model.Donation
	query := `SELECT ` + donationColumns + ` FROM donations WHERE is_active = true ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &donations, query); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *postgresDonationRepository) FindUpcoming(ctx context.Context, after time.Time) ([]model.Donation, error) {
	var donations []model.Donation
	query := `SELECT ` + donationColumns + ` FROM donations WHERE start_date > $1 ORDER BY start_date`
	if err := r.db.SelectContext(ctx, &donations, query, after); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *postgresDonationRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.Donation, error) {
	var donations []model.Donation
	query := `SELECT ` + donationColumns + ` FROM donations WHERE created_by = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &donations, query, userID); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *postgresDonationRepository) Update(ctx context.Context, donation *model.Donation) error {
	query := `UPDATE donations SET title = $1, description = $2, organization_name = $3, contact_person = $4,
		phone = $5, email = $6, website = $7, start_date = $8, end_date = $9, is_active = $10,
		updated_at = now() WHERE id = $11`
	_, err := r.db.ExecContext(ctx, query,
		donation.Title, donation.Description, donation.OrganizationName,
		donation.ContactPerson, donation.Phone, donation.Email, donation.Website,
		donation.StartDate, donation.EndDate, donation.IsActive, donation.ID,
	)

	return err
}

func (r *postgresDonationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
