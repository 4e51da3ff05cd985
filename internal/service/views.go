package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/model"
)

// UserView is the outward projection of a user. The password hash never
// leaves the service layer.
type UserView struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Firstname         string    `json:"firstname"`
	Lastname          string    `json:"lastname"`
	Email             string    `json:"email"`
	Description       string    `json:"description"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	ProfilePictureURL string    `json:"profilePictureUrl"`
	IsAdmin           bool      `json:"isAdmin"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookView struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	Description string              `json:"description"`
	Type        model.BookType      `json:"type"`
	Category    string              `json:"category"`
	Price       int                 `json:"price"`
	Condition   model.BookCondition `json:"condition"`
	UserID      uuid.UUID           `json:"userId"`
	IsAvailable bool                `json:"isAvailable"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type DonationView struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	OrganizationName string     `json:"organizationName"`
	ContactPerson    string     `json:"contactPerson"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Website          string     `json:"website"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	IsActive         bool       `json:"isActive"`
	CreatedByID      uuid.UUID  `json:"createdById"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func newUserView(u *model.User) *UserView {
	return &UserView{
		ID:                u.ID,
		Username:          u.Username,
		Firstname:         u.Firstname,
		Lastname:          u.Lastname,
		Email:             u.Email,
		Description:       u.Description,
		Phone:             u.Phone,
		Address:           u.Address,
		City:              u.City,
		State:             u.State,
		ProfilePictureURL: u.ProfilePictureURL,
		IsAdmin:           u.IsAdmin,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func newBookView(b *model.Book) *BookView {
	return &BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Type:        b.Type,
		Category:    b.Category,
		Price:       b.Price,
		Condition:   b.Condition,
		UserID:      b.UserID,
		IsAvailable: b.IsAvailable,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func newDonationView(d *model.Donation) *DonationView {
	return &DonationView{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		OrganizationName: d.OrganizationName,
		ContactPerson:    d.ContactPerson,
		Phone:            d.Phone,
		Email:            d.Email,
		Website:          d.Website,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		IsActive:         d.IsActive,
		CreatedByID:      d.CreatedBy,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
