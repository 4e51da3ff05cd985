package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Idriss-Abidi/booktook/internal/model"
)

type EventPublisher interface {
	PublishUserRegistered(userID uuid.UUID, email string) error
	PublishBookCreated(book *model.Book) error
	PublishDonationCreated(donation *model.Donation) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

type BookCreatedEvent struct {
	EventType string         `json:"event_type"`
	BookID    uuid.UUID      `json:"book_id"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	Title     string         `json:"title"`
	Type      model.BookType `json:"type"`
}

type DonationCreatedEvent struct {
	EventType        string     `json:"event_type"`
	DonationID       uuid.UUID  `json:"donation_id"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	Title            string     `json:"title"`
	OrganizationName string     `json:"organization_name"`
	StartDate        *time.Time `json:"start_date,omitempty"`
}

func (p *NatsPublisher) PublishUserRegistered(userID uuid.UUID, email string) error {
	event := UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       userID,
		Email:        email,
		RegisteredAt: time.Now(),
	}

	return p.publish("user.registered", event)
}

func (p *NatsPublisher) PublishBookCreated(book *model.Book) error {
	event := BookCreatedEvent{
		EventType: "book.created",
		BookID:    book.ID,
		OwnerID:   book.UserID,
		Title:     book.Title,
		Type:      book.Type,
	}

	return p.publish("book.created", event)
}

func (p *NatsPublisher) PublishDonationCreated(donation *model.Donation) error {
	event := DonationCreatedEvent{
		EventType:        "donation.created",
		DonationID:       donation.ID,
		CreatedBy:        donation.CreatedBy,
		Title:            donation.Title,
		OrganizationName: donation.OrganizationName,
		StartDate:        donation.StartDate,
	}

	return p.publish("donation.created", event)
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		slog.Error("Error marshalling event JSON", "subject", subject, "error", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("Error publishing to NATS", "subject", subject, "error", err)
		return err
	}

	slog.Info("Published event to NATS", "subject", subject)

	return nil
}
