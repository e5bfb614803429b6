package services

import (
	"context"

	"github.com/textex/textex/internal/app/models"
)

// The store interfaces name exactly what the services need from the
// persistence layer. The pgx-backed repositories satisfy them; tests swap in
// in-memory fakes.

// BookStore is the persistence surface for the catalog.
type BookStore interface {
	Create(ctx context.Context, book *models.Book) (int64, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Book, error)
	Search(ctx context.Context, filter models.BookSearchFilter) ([]*models.Book, error)
	DeleteByISBN(ctx context.Context, isbn string) error
}

// StudentStore is the persistence surface for student accounts.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	DeleteByStudentID(ctx context.Context, studentID string) error
}

// OfferStore is the persistence surface for sell offers.
type OfferStore interface {
	Create(ctx context.Context, offer *models.Offer) (int64, error)
	GetByOfferID(ctx context.Context, offerID string) (*models.Offer, error)
	ExistsByOfferID(ctx context.Context, offerID string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Offer, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Offer, error)
	DeleteByOfferID(ctx context.Context, offerID string) error
}

// RequestStore is the persistence surface for buy requests.
type RequestStore interface {
	Create(ctx context.Context, request *models.Request) (int64, error)
	GetByRequestID(ctx context.Context, requestID string) (*models.Request, error)
	ExistsByRequestID(ctx context.Context, requestID string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Request, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
}
