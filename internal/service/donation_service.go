package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/events"
	"github.com/Idriss-Abidi/booktook/internal/model"
	"github.com/Idriss-Abidi/booktook/internal/repository"
)

var ErrDonationNotFound = errors.New("donation not found")

type DonationInput struct {
	Title            string
	Description      string
	OrganizationName string
	ContactPerson    string
	Phone            string
	Email            string
	Website          string
	StartDate        *time.Time
	EndDate          *time.Time
	IsActive         bool
}

type DonationService interface {
	CreateDonation(ctx context.Context, input DonationInput, createdBy uuid.UUID) (*DonationView, error)
	GetDonationByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	GetActiveDonations(ctx context.Context) ([]DonationView, error)
	GetUpcomingDonations(ctx context.Context) ([]DonationView, error)
	GetDonationsByUser(ctx context.Context, userID uuid.UUID) ([]DonationView, error)
	UpdateDonation(ctx context.Context, id uuid.UUID, input DonationInput) (*DonationView, error)
	ToggleDonationStatus(ctx context.Context, id uuid.UUID) (*DonationView, error)
	DeleteDonation(ctx context.Context, id uuid.UUID) error
}

type donationService struct {
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
	publisher    events.EventPublisher
}

func NewDonationService(donationRepo repository.DonationRepository, userRepo repository.UserRepository, publisher events.EventPublisher) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, input DonationInput, createdBy uuid.UUID) (*DonationView, error) {
	exists, err := s.userRepo.ExistsByID(ctx, createdBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	donation := &model.Donation{
		Title:            input.Title,
		Description:      input.Description,
		OrganizationName: input.OrganizationName,
		ContactPerson:    input.ContactPerson,
		Phone:            input.Phone,
		Email:            input.Email,
		Website:          input.Website,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		IsActive:         input.IsActive,
		CreatedBy:        createdBy,
	}

	created, err := s.donationRepo.Create(ctx, donation)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishDonationCreated(created)

	return newDonationView(created), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id uuid.UUID) (*DonationView, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	return newDonationView(donation), nil
}

func (s *donationService) GetActiveDonations(ctx context.Context) ([]DonationView, error) {
	donations, err := s.donationRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return donationViews(donations), nil
}

// GetUpcomingDonations returns campaigns whose start date is strictly after
// the current date, evaluated at call time.
func (s *donationService) GetUpcomingDonations(ctx context.Context) ([]DonationView, error) {
	donations, err := s.donationRepo.FindUpcoming(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return donationViews(donations), nil
}

func (s *donationService) GetDonationsByUser(ctx context.Context, userID uuid.UUID) ([]DonationView, error) {
	donations, err := s.donationRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	return donationViews(donations), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id uuid.UUID, input DonationInput) (*DonationView, error) {
	existing, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.OrganizationName = input.OrganizationName
	existing.ContactPerson = input.ContactPerson
	existing.Phone = input.Phone
	existing.Email = input.Email
	existing.Website = input.Website
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.IsActive = input.IsActive

	if err := s.donationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newDonationView(updated), nil
}

func (s *donationService) ToggleDonationStatus(ctx context.Context, id uuid.UUID) (*DonationView, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	donation.IsActive = !donation.IsActive

	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return newDonationView(donation), nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.donationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDonationNotFound
	}

	return nil
}

func donationViews(donations []model.Donation) []DonationView {
	views := make([]DonationView, 0, len(donations))
	for i := range donations {
		views = append(views, *newDonationView(&donations[i]))
	}

	return views
}
