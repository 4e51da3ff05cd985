package service_test

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Idriss-Abidi/booktook/internal/model"
	"github.com/Idriss-Abidi/booktook/internal/repository"
)

// In-memory repository fakes; entities are stored by value so callers
// cannot mutate them behind the repository's back.

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (uuid.UUID, error) {
	u := *user
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return sql.ErrNoRows
	}
	u := *user
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookRepo struct {
	books map[uuid.UUID]model.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]model.Book)}
}

func (r *fakeBookRepo) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	b := *book
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.books[b.ID] = b
	return &b, nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &b, nil
}

func (r *fakeBookRepo) FindAll(_ context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *fakeBookRepo) FindByOwner(_ context.Context, userID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	for _, b := range r.books {
		if b.UserID == userID {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *fakeBookRepo) Search(_ context.Context, filter repository.BookFilter) ([]model.Book, error) {
	contains := func(haystack, needle string) bool {
		return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var books []model.Book
	for _, b := range r.books {
		if contains(b.Title, filter.Title) && contains(b.Author, filter.Author) && contains(b.Category, filter.Category) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *model.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return sql.ErrNoRows
	}
	b := *book
	b.UpdatedAt = time.Now()
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

type fakeDonationRepo struct {
	donations map[uuid.UUID]model.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: make(map[uuid.UUID]model.Donation)}
}

func (r *fakeDonationRepo) Create(_ context.Context, donation *model.Donation) (*model.Donation, error) {
	d := *donation
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.donations[d.ID] = d
	return &d, nil
}

func (r *fakeDonationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (r *fakeDonationRepo) FindActive(_ context.Context) ([]model.Donation, error) {
	var donations []model.Donation
	for _, d := range r.donations {
		if d.IsActive {
			donations = append(donations, d)
		}
	}
	return donations, nil
}

func (r *fakeDonationRepo) FindUpcoming(_ context.Context, after time.Time) ([]model.Donation, error) {
	var donations []model.Donation
	for _, d := range r.donations {
		if d.StartDate != nil && d.StartDate.After(after) {
			donations = append(donations, d)
		}
	}
	return donations, nil
}

func (r *fakeDonationRepo) FindByCreator(_ context.Context, userID uuid.UUID) ([]model.Donation, error) {
	var donations []model.Donation
	for _, d := range r.donations {
		if d.CreatedBy == userID {
			donations = append(donations, d)
		}
	}
	return donations, nil
}

func (r *fakeDonationRepo) Update(_ context.Context, donation *model.Donation) error {
	if _, ok := r.donations[donation.ID]; !ok {
		return sql.ErrNoRows
	}
	d := *donation
	d.UpdatedAt = time.Now()
	r.donations[d.ID] = d
	return nil
}

func (r *fakeDonationRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.donations[id]; !ok {
		return false, nil
	}
	delete(r.donations, id)
	return true, nil
}

// noopPublisher drops events; publishes happen on background goroutines so
// the fake holds no state for tests to race on.
type noopPublisher struct{}

func (noopPublisher) PublishUserRegistered(uuid.UUID, string) error { return nil }
func (noopPublisher) PublishBookCreated(*model.Book) error          { return nil }
func (noopPublisher) PublishDonationCreated(*model.Donation) error  { return nil }
