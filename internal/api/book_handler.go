package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/model"
	"github.com/Idriss-Abidi/booktook/internal/repository"
	"github.com/Idriss-Abidi/booktook/internal/service"
)

type BookHandler struct {
	bookService service.BookService
	validate    *validator.Validate
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		validate:    validator.New(),
	}
}

type BookRequest struct {
	Title       string    `json:"title" validate:"required"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"required,oneof=sell exchange both"`
	Category    string    `json:"category"`
	Price       int       `json:"price" validate:"gte=0"`
	Condition   string    `json:"condition" validate:"required,oneof=new like-new very-good good acceptable"`
	UserID      uuid.UUID `json:"userId"`
	IsAvailable *bool     `json:"isAvailable"`
}

func (r *BookRequest) toInput() service.BookInput {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return service.BookInput{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Type:        model.BookType(r.Type),
		Category:    r.Category,
		Price:       r.Price,
		Condition:   model.BookCondition(r.Condition),
		OwnerID:     r.UserID,
		IsAvailable: available,
	}
}

func (h *BookHandler) CreateBook(c *fiber.Ctx) error {
	principal, err := PrincipalFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request BookRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	book, err := h.bookService.CreateBook(c.Context(), request.toInput(), principal.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating book"})
	}

	return c.Status(fiber.StatusOK).JSON(book)
}

func (h *BookHandler) GetBookByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid book id"})
	}

	book, err := h.bookService.GetBookByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching book"})
	}

	return c.Status(fiber.StatusOK).JSON(book)
}

func (h *BookHandler) GetAllBooks(c *fiber.Ctx) error {
	books, err := h.bookService.GetAllBooks(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching books"})
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) GetBooksByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	books, err := h.bookService.GetBooksByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching books"})
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) SearchBooks(c *fiber.Ctx) error {
	filter := repository.BookFilter{
		Title:    c.Query("title"),
		Author:   c.Query("author"),
		Category: c.Query("category"),
	}

	books, err := h.bookService.SearchBooks(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error searching books"})
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) UpdateBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid book id"})
	}

	var request BookRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	book, err := h.bookService.UpdateBook(c.Context(), id, request.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating book"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(book)
}

func (h *BookHandler) DeleteBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid book id"})
	}

	if err := h.bookService.DeleteBook(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting book"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
