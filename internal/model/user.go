package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `db:"id"`
	Username          string    `db:"username"`
	Firstname         string    `db:"firstname"`
	Lastname          string    `db:"lastname"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	Description       string    `db:"description"`
	Phone             string    `db:"phone"`
	Address           string    `db:"address"`
	City              string    `db:"city"`
	State             string    `db:"state"`
	ProfilePictureURL string    `db:"pdp_url"`
	IsAdmin           bool      `db:"is_admin"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
