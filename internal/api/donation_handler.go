package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/service"
)

type DonationHandler struct {
	donationService service.DonationService
	validate        *validator.Validate
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		validate:        validator.New(),
	}
}

type DonationRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	OrganizationName string `json:"organizationName" validate:"required"`
	ContactPerson    string `json:"contactPerson"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	Website          string `json:"website"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	IsActive         *bool  `json:"isActive"`
}

func (r *DonationRequest) toInput() (service.DonationInput, error) {
	input := service.DonationInput{
		Title:            r.Title,
		Description:      r.Description,
		OrganizationName: r.OrganizationName,
		ContactPerson:    r.ContactPerson,
		Phone:            r.Phone,
		Email:            r.Email,
		Website:          r.Website,
		IsActive:         true,
	}

	if r.IsActive != nil {
		input.IsActive = *r.IsActive
	}

	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return input, err
		}
		input.StartDate = &start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return input, err
		}
		input.EndDate = &end
	}

	return input, nil
}

func (h *DonationHandler) CreateDonation(c *fiber.Ctx) error {
	principal, err := PrincipalFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request DonationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	input, err := request.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	donation, err := h.donationService.CreateDonation(c.Context(), input, principal.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating donation"})
	}

	return c.Status(fiber.StatusOK).JSON(donation)
}

func (h *DonationHandler) GetDonationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation id"})
	}

	donation, err := h.donationService.GetDonationByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Donation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching donation"})
	}

	return c.Status(fiber.StatusOK).JSON(donation)
}

func (h *DonationHandler) GetActiveDonations(c *fiber.Ctx) error {
	donations, err := h.donationService.GetActiveDonations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching donations"})
	}

	return c.Status(fiber.StatusOK).JSON(donations)
}

func (h *DonationHandler) GetUpcomingDonations(c *fiber.Ctx) error {
	donations, err := h.donationService.GetUpcomingDonations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching donations"})
	}

	return c.Status(fiber.StatusOK).JSON(donations)
}

func (h *DonationHandler) GetDonationsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	donations, err := h.donationService.GetDonationsByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching donations"})
	}

	return c.Status(fiber.StatusOK).JSON(donations)
}

func (h *DonationHandler) UpdateDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation id"})
	}

	var request DonationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	input, err := request.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	donation, err := h.donationService.UpdateDonation(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Donation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating donation"})
	}

	return c.Status(fiber.StatusOK).JSON(donation)
}

func (h *DonationHandler) ToggleDonationStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation id"})
	}

	donation, err := h.donationService.ToggleDonationStatus(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Donation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error toggling donation status"})
	}

	return c.Status(fiber.StatusOK).JSON(donation)
}

func (h *DonationHandler) DeleteDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation id"})
	}

	if err := h.donationService.DeleteDonation(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Donation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting donation"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
