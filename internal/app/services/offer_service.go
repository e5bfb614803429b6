package services

import (
	"context"
	"errors"
	"strings"

	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/logger"
	"github.com/textex/textex/internal/pkg/validation"
)

// OfferService defines the interface for sell offer operations
type OfferService interface {
	CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*models.Offer, error)
	GetOfferByOfferID(ctx context.Context, offerID string) (*models.Offer, error)
	GetAllOffers(ctx context.Context) ([]*models.Offer, error)
	GetOffersByStudent(ctx context.Context, studentID int64) ([]*models.Offer, error)
	DeleteOffer(ctx context.Context, offerID string) error
}

type offerService struct {
	offerStore   OfferStore
	studentStore StudentStore
	bookStore    BookStore
}

// NewOfferService creates a new OfferService instance
func NewOfferService(offerStore OfferStore, studentStore StudentStore, bookStore BookStore) OfferService {
	return &offerService{
		offerStore:   offerStore,
		studentStore: studentStore,
		bookStore:    bookStore,
	}
}

// CreateOffer validates and stores a new sell offer. The referenced student
// and book must already exist; unknown references are reported as field
// errors, not as 404s.
func (s *offerService) CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*models.Offer, error) {
	ve := apperrors.NewValidationError()

	offerID := strings.TrimSpace(req.OfferID)
	if validation.RequiredString(ve, "offerId", offerID) {
		exists, err := s.offerStore.ExistsByOfferID(ctx, offerID)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("offerId", apperrors.KindAlreadyExists, "An offer with this ID already exists.")
		}
	}

	var student *models.Student
	studentID := strings.TrimSpace(req.StudentID)
	if validation.RequiredString(ve, "studentId", studentID) {
		var err error
		student, err = s.studentStore.GetByStudentID(ctx, studentID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, err
			}
			ve.Add("studentId", apperrors.KindUnknownReference, "No student with this ID exists.")
		}
	}

	var book *models.Book
	isbn := strings.TrimSpace(req.ISBN)
	if validation.RequiredString(ve, "isbn", isbn) {
		var err error
		book, err = s.bookStore.GetByISBN(ctx, isbn)
		if err != nil {
			if !errors.Is(err, apperrors.ErrBookNotFound) {
				return nil, err
			}
			ve.Add("isbn", apperrors.KindUnknownReference, "No book with this ISBN exists.")
		}
	}

	var condition models.Condition
	if validation.RequiredString(ve, "condition", req.Condition) {
		var err error
		condition, err = models.ParseCondition(req.Condition)
		if err != nil {
			ve.Add("condition", apperrors.KindInvalid, "Must be one of NEW, SLIGHTLY_USED or HEAVILY_USED.")
		}
	}

	price, priceOK := validation.RequiredFloat(ve, "price", req.Price)
	if priceOK {
		validation.MinFloat(ve, "price", price, 0)
	}

	quantity, quantityOK := validation.RequiredInt(ve, "quantity", req.Quantity)
	if quantityOK {
		validation.MinInt(ve, "quantity", quantity, 1)
	}

	if ve.HasErrors() {
		return nil, ve
	}

	offer := &models.Offer{
		OfferID:   offerID,
		Condition: condition,
		Price:     price,
		Quantity:  quantity,
		Student:   student,
		Book:      book,
	}

	id, err := s.offerStore.Create(ctx, offer)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			ve.Add("offerId", apperrors.KindAlreadyExists, "An offer with this ID already exists.")
			return nil, ve
		}
		return nil, err
	}
	offer.ID = id

	logger.Info().Str("offerId", offer.OfferID).Str("isbn", book.ISBN).Msg("Offer created")
	return offer, nil
}

// GetOfferByOfferID retrieves a single offer with its owner and book.
func (s *offerService) GetOfferByOfferID(ctx context.Context, offerID string) (*models.Offer, error) {
	return s.offerStore.GetByOfferID(ctx, offerID)
}

// GetAllOffers retrieves all offers sorted by offer ID.
func (s *offerService) GetAllOffers(ctx context.Context) ([]*models.Offer, error) {
	return s.offerStore.GetAll(ctx)
}

// GetOffersByStudent retrieves the offers owned by a student row id.
func (s *offerService) GetOffersByStudent(ctx context.Context, studentID int64) ([]*models.Offer, error) {
	return s.offerStore.GetByStudent(ctx, studentID)
}

// DeleteOffer removes an offer. Deleting an unknown ID succeeds without
// effect.
func (s *offerService) DeleteOffer(ctx context.Context, offerID string) error {
	if err := s.offerStore.DeleteByOfferID(ctx, offerID); err != nil {
		return err
	}
	logger.Info().Str("offerId", offerID).Msg("Offer deleted")
	return nil
}
