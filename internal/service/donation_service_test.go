package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Idriss-Abidi/booktook/internal/service"
)

func winterDrive(start *time.Time) service.DonationInput {
	return service.DonationInput{
		Title:            "Winter drive",
		Description:      "Books for shelters",
		OrganizationName: "BookAid",
		StartDate:        start,
		IsActive:         true,
	}
}

func TestDonationService_CreateDonation_CreatorMustExist(t *testing.T) {
	svc := service.NewDonationService(newFakeDonationRepo(), newFakeUserRepo(), noopPublisher{})

	_, err := svc.CreateDonation(context.Background(), winterDrive(nil), uuid.New())
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDonationService_GetUpcomingDonations(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := service.NewDonationService(newFakeDonationRepo(), userRepo, noopPublisher{})
	ctx := context.Background()

	creatorID := registerUser(t, userRepo, "a@x.com")

	today := time.Now().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	for _, start := range []time.Time{yesterday, today, tomorrow} {
		start := start
		input := winterDrive(&start)
		_, err := svc.CreateDonation(ctx, input, creatorID)
		require.NoError(t, err)
	}

	upcoming, err := svc.GetUpcomingDonations(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.True(t, upcoming[0].StartDate.Equal(tomorrow))
}

func TestDonationService_ToggleStatus_Twice(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := service.NewDonationService(newFakeDonationRepo(), userRepo, noopPublisher{})
	ctx := context.Background()

	creatorID := registerUser(t, userRepo, "a@x.com")
	created, err := svc.CreateDonation(ctx, winterDrive(nil), creatorID)
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := svc.ToggleDonationStatus(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsActive)

	restored, err := svc.ToggleDonationStatus(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, restored.IsActive)
}

func TestDonationService_ActiveFilter(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := service.NewDonationService(newFakeDonationRepo(), userRepo, noopPublisher{})
	ctx := context.Background()

	creatorID := registerUser(t, userRepo, "a@x.com")

	created, err := svc.CreateDonation(ctx, winterDrive(nil), creatorID)
	require.NoError(t, err)

	inactive := winterDrive(nil)
	inactive.Title = "Paused drive"
	inactive.IsActive = false
	_, err = svc.CreateDonation(ctx, inactive, creatorID)
	require.NoError(t, err)

	active, err := svc.GetActiveDonations(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, created.ID, active[0].ID)
}

func TestDonationService_UpdateDonation(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := service.NewDonationService(newFakeDonationRepo(), userRepo, noopPublisher{})
	ctx := context.Background()

	creatorID := registerUser(t, userRepo, "a@x.com")
	created, err := svc.CreateDonation(ctx, winterDrive(nil), creatorID)
	require.NoError(t, err)

	input := winterDrive(nil)
	input.Title = "Spring drive"
	input.OrganizationName = "ReadMore"
	updated, err := svc.UpdateDonation(ctx, created.ID, input)
	require.NoError(t, err)
	require.Equal(t, "Spring drive", updated.Title)
	require.Equal(t, "ReadMore", updated.OrganizationName)
	require.Equal(t, creatorID, updated.CreatedByID)

	_, err = svc.UpdateDonation(ctx, uuid.New(), input)
	require.ErrorIs(t, err, service.ErrDonationNotFound)
}

func TestDonationService_DeleteAndListByCreator(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := service.NewDonationService(newFakeDonationRepo(), userRepo, noopPublisher{})
	ctx := context.Background()

	creatorID := registerUser(t, userRepo, "a@x.com")
	otherID := registerUser(t, userRepo, "b@x.com")

	created, err := svc.CreateDonation(ctx, winterDrive(nil), creatorID)
	require.NoError(t, err)

	mine, err := svc.GetDonationsByUser(ctx, creatorID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := svc.GetDonationsByUser(ctx, otherID)
	require.NoError(t, err)
	require.Empty(t, theirs)

	require.NoError(t, svc.DeleteDonation(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteDonation(ctx, created.ID), service.ErrDonationNotFound)
}
