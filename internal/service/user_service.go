package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Idriss-Abidi/booktook/internal/events"
	"github.com/Idriss-Abidi/booktook/internal/model"
	"github.com/Idriss-Abidi/booktook/internal/repository"
	"github.com/Idriss-Abidi/booktook/internal/token"
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyAdmin       = errors.New("user is already an admin")
	ErrDuplicateField     = errors.New("field value is already in use")
)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Description string
}

type UpdateUserInput struct {
	Username          string
	Firstname         string
	Lastname          string
	Email             string
	Description       string
	Phone             string
	Address           string
	City              string
	State             string
	ProfilePictureURL string
	Password          string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetAllUsers(ctx context.Context) ([]UserView, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserView, error)
	MakeAdmin(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo  repository.UserRepository
	tokens    *token.Provider
	publisher events.EventPublisher
}

func NewUserService(userRepo repository.UserRepository, tokens *token.Provider, publisher events.EventPublisher) UserService {
	return &userService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) error {
	taken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Description:  input.Description,
		IsAdmin:      false,
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return err
	}

	go s.publisher.PublishUserRegistered(newID, user.Email)

	return nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID, user.Email)
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return newUserView(user), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]UserView, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, *newUserView(&users[i]))
	}

	return views, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserView, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Uniqueness is re-checked only for fields that actually change.
	if input.Email != existing.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateField
		}
	}
	if input.Phone != existing.Phone && input.Phone != "" {
		taken, err := s.userRepo.ExistsByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateField
		}
	}

	existing.Username = input.Username
	existing.Firstname = input.Firstname
	existing.Lastname = input.Lastname
	existing.Email = input.Email
	existing.Description = input.Description
	existing.Phone = input.Phone
	existing.Address = input.Address
	existing.City = input.City
	existing.State = input.State
	existing.ProfilePictureURL = input.ProfilePictureURL

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newUserView(updated), nil
}

func (s *userService) MakeAdmin(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if user.IsAdmin {
		return ErrAlreadyAdmin
	}

	user.IsAdmin = true

	return s.userRepo.Update(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	return nil
}
