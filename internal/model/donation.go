package model

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID               uuid.UUID  `db:"id"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	OrganizationName string     `db:"organization_name"`
	ContactPerson    string     `db:"contact_person"`
	Phone            string     `db:"phone"`
	Email            string     `db:"email"`
	Website          string     `db:"website"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	IsActive         bool       `db:"is_active"`
	CreatedBy        uuid.UUID  `db:"created_by"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}
