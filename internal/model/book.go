package model

import (
	"time"

	"github.com/google/uuid"
)

// BookType is the listing mode a book is offered under.
type BookType string

const (
	BookTypeSell     BookType = "sell"
	BookTypeExchange BookType = "exchange"
	BookTypeBoth     BookType = "both"
)

// BookCondition grades the physical state of a listed book.
type BookCondition string

const (
	ConditionNew        BookCondition = "new"
	ConditionLikeNew    BookCondition = "like-new"
	ConditionVeryGood   BookCondition = "very-good"
	ConditionGood       BookCondition = "good"
	ConditionAcceptable BookCondition = "acceptable"
)

type Book struct {
	ID          uuid.UUID     `db:"id"`
	Title       string        `db:"title"`
	Author      string        `db:"author"`
	Description string        `db:"description"`
	Type        BookType      `db:"type"`
	Category    string        `db:"category"`
	Price       int           `db:"price"`
	Condition   BookCondition `db:"condition"`
	UserID      uuid.UUID     `db:"user_id"`
	IsAvailable bool          `db:"is_available"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}
