package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/service"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// GetUserInfo returns the profile of the authenticated caller.
func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	principal, err := PrincipalFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.userService.GetUserByID(c.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching user info"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching users"})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

type UpdateUserRequest struct {
	Username          string `json:"username" validate:"required"`
	Firstname         string `json:"firstname"`
	Lastname          string `json:"lastname"`
	Email             string `json:"email" validate:"required,email"`
	Description       string `json:"description"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Password          string `json:"password" validate:"omitempty,min=6"`
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var request UpdateUserRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, err := h.userService.UpdateUser(c.Context(), id, service.UpdateUserInput{
		Username:          request.Username,
		Firstname:         request.Firstname,
		Lastname:          request.Lastname,
		Email:             request.Email,
		Description:       request.Description,
		Phone:             request.Phone,
		Address:           request.Address,
		City:              request.City,
		State:             request.State,
		ProfilePictureURL: request.ProfilePictureURL,
		Password:          request.Password,
	})

	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, service.ErrDuplicateField):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email or phone number already in use"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating user"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// MakeAdmin promotes a user. Only an existing admin may call it; the guard
// lives here at the boundary, not in the service.
func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	principal, err := PrincipalFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	caller, err := h.userService.GetUserByID(c.Context(), principal.ID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown caller"})
	}

	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can perform this action"})
	}

	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.userService.MakeAdmin(c.Context(), targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, service.ErrAlreadyAdmin):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User is already an admin"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error promoting user"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User successfully promoted to admin"})
}
