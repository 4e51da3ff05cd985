package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/events"
	"github.com/Idriss-Abidi/booktook/internal/model"
	"github.com/Idriss-Abidi/booktook/internal/repository"
)

var ErrBookNotFound = errors.New("book not found")

type BookInput struct {
	Title       string
	Author      string
	Description string
	Type        model.BookType
	Category    string
	Price       int
	Condition   model.BookCondition
	OwnerID     uuid.UUID
	IsAvailable bool
}

type BookService interface {
	CreateBook(ctx context.Context, input BookInput, ownerID uuid.UUID) (*BookView, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	GetAllBooks(ctx context.Context) ([]BookView, error)
	GetBooksByUser(ctx context.Context, userID uuid.UUID) ([]BookView, error)
	SearchBooks(ctx context.Context, filter repository.BookFilter) ([]BookView, error)
	UpdateBook(ctx context.Context, id uuid.UUID, input BookInput) (*BookView, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type bookService struct {
	bookRepo  repository.BookRepository
	userRepo  repository.UserRepository
	publisher events.EventPublisher
}

func NewBookService(bookRepo repository.BookRepository, userRepo repository.UserRepository, publisher events.EventPublisher) BookService {
	return &bookService{
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *bookService) CreateBook(ctx context.Context, input BookInput, ownerID uuid.UUID) (*BookView, error) {
	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	book := &model.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Type:        input.Type,
		Category:    input.Category,
		Price:       input.Price,
		Condition:   input.Condition,
		UserID:      ownerID,
		IsAvailable: input.IsAvailable,
	}

	created, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishBookCreated(created)

	return newBookView(created), nil
}

func (s *bookService) GetBookByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	return newBookView(book), nil
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]BookView, error) {
	books, err := s.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return bookViews(books), nil
}

func (s *bookService) GetBooksByUser(ctx context.Context, userID uuid.UUID) ([]BookView, error) {
	books, err := s.bookRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return bookViews(books), nil
}

func (s *bookService) SearchBooks(ctx context.Context, filter repository.BookFilter) ([]BookView, error) {
	books, err := s.bookRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return bookViews(books), nil
}

// UpdateBook overwrites every mutable field. A differing OwnerID reassigns
// ownership; the new owner must exist or the whole update is aborted.
func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, input BookInput) (*BookView, error) {
	existing, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if input.OwnerID != existing.UserID {
		exists, err := s.userRepo.ExistsByID(ctx, input.OwnerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrUserNotFound
		}
		existing.UserID = input.OwnerID
	}

	existing.Title = input.Title
	existing.Author = input.Author
	existing.Description = input.Description
	existing.Type = input.Type
	existing.Category = input.Category
	existing.Price = input.Price
	existing.Condition = input.Condition
	existing.IsAvailable = input.IsAvailable

	if err := s.bookRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newBookView(updated), nil
}

func (s *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	return nil
}

func bookViews(books []model.Book) []BookView {
	views := make([]BookView, 0, len(books))
	for i := range books {
		views = append(views, *newBookView(&books[i]))
	}

	return views
}
