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

// RequestService defines the interface for buy request operations
type RequestService interface {
	CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (*models.Request, error)
	GetRequestByRequestID(ctx context.Context, requestID string) (*models.Request, error)
	GetAllRequests(ctx context.Context) ([]*models.Request, error)
	GetRequestsByStudent(ctx context.Context, studentID int64) ([]*models.Request, error)
	DeleteRequest(ctx context.Context, requestID string) error
}

type requestService struct {
	requestStore RequestStore
	studentStore StudentStore
	bookStore    BookStore
}

// NewRequestService creates a new RequestService instance
func NewRequestService(requestStore RequestStore, studentStore StudentStore, bookStore BookStore) RequestService {
	return &requestService{
		requestStore: requestStore,
		studentStore: studentStore,
		bookStore:    bookStore,
	}
}

// CreateRequest validates and stores a new buy request. Condition is
// optional: a blank value records that any condition is acceptable. A zero
// quantity is allowed and means the requester wants to be notified rather
// than commit to copies.
func (s *requestService) CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (*models.Request, error) {
	ve := apperrors.NewValidationError()

	requestID := strings.TrimSpace(req.RequestID)
	if validation.RequiredString(ve, "requestId", requestID) {
		exists, err := s.requestStore.ExistsByRequestID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("requestId", apperrors.KindAlreadyExists, "A request with this ID already exists.")
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

	var condition *models.Condition
	if strings.TrimSpace(req.Condition) != "" {
		parsed, err := models.ParseCondition(req.Condition)
		if err != nil {
			ve.Add("condition", apperrors.KindInvalid, "Must be one of NEW, SLIGHTLY_USED or HEAVILY_USED.")
		} else {
			condition = &parsed
		}
	}

	price, priceOK := validation.RequiredFloat(ve, "price", req.Price)
	if priceOK {
		validation.MinFloat(ve, "price", price, 0)
	}

	quantity, quantityOK := validation.RequiredInt(ve, "quantity", req.Quantity)
	if quantityOK {
		validation.MinInt(ve, "quantity", quantity, 0)
	}

	if ve.HasErrors() {
		return nil, ve
	}

	request := &models.Request{
		RequestID: requestID,
		Condition: condition,
		Price:     price,
		Quantity:  quantity,
		Student:   student,
		Book:      book,
	}

	id, err := s.requestStore.Create(ctx, request)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			ve.Add("requestId", apperrors.KindAlreadyExists, "A request with this ID already exists.")
			return nil, ve
		}
		return nil, err
	}
	request.ID = id

	logger.Info().Str("requestId", request.RequestID).Str("isbn", book.ISBN).Msg("Request created")
	return request, nil
}

// GetRequestByRequestID retrieves a single request with its owner and book.
func (s *requestService) GetRequestByRequestID(ctx context.Context, requestID string) (*models.Request, error) {
	return s.requestStore.GetByRequestID(ctx, requestID)
}

// GetAllRequests retrieves all requests sorted by request ID.
func (s *requestService) GetAllRequests(ctx context.Context) ([]*models.Request, error) {
	return s.requestStore.GetAll(ctx)
}

// GetRequestsByStudent retrieves the requests owned by a student row id.
func (s *requestService) GetRequestsByStudent(ctx context.Context, studentID int64) ([]*models.Request, error) {
	return s.requestStore.GetByStudent(ctx, studentID)
}

// DeleteRequest removes a request. Deleting an unknown ID succeeds without
// effect.
func (s *requestService) DeleteRequest(ctx context.Context, requestID string) error {
	if err := s.requestStore.DeleteByRequestID(ctx, requestID); err != nil {
		return err
	}
	logger.Info().Str("requestId", requestID).Msg("Request deleted")
	return nil
}
