package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/logger"
	"github.com/textex/textex/internal/pkg/validation"
)

// BookService defines the interface for catalog operations
type BookService interface {
	CreateBook(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error)
	GetAllBooks(ctx context.Context) ([]*models.Book, error)
	SearchBooks(ctx context.Context, query dto.BookSearchQuery) ([]*models.Book, error)
	DeleteBook(ctx context.Context, isbn string) error
}

type bookService struct {
	bookStore BookStore
}

// NewBookService creates a new BookService instance
func NewBookService(bookStore BookStore) BookService {
	return &bookService{bookStore: bookStore}
}

// CreateBook validates and stores a new catalog entry. A rejected submission
// returns every field problem at once and stores nothing.
func (s *bookService) CreateBook(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error) {
	ve := apperrors.NewValidationError()

	isbn := strings.TrimSpace(req.ISBN)
	if validation.RequiredString(ve, "isbn", isbn) {
		exists, err := s.bookStore.ExistsByISBN(ctx, isbn)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("isbn", apperrors.KindAlreadyExists, "A book with this ISBN already exists.")
		}
	}

	validation.RequiredString(ve, "name", req.Name)
	validation.RequiredString(ve, "authors", req.Authors)
	validation.RequiredString(ve, "publisher", req.Publisher)

	price, priceOK := validation.RequiredFloat(ve, "price", req.Price)
	if priceOK {
		validation.MinFloat(ve, "price", price, 0)
	}

	// Edition defaults to 1 when the form field is left blank.
	edition := 1
	if strings.TrimSpace(req.Edition) != "" {
		if parsed, ok := validation.RequiredInt(ve, "edition", req.Edition); ok {
			edition = parsed
			validation.MinInt(ve, "edition", edition, 1)
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}

	book := &models.Book{
		ISBN:      isbn,
		Name:      strings.TrimSpace(req.Name),
		Authors:   strings.TrimSpace(req.Authors),
		Publisher: strings.TrimSpace(req.Publisher),
		Price:     price,
		Edition:   edition,
	}

	id, err := s.bookStore.Create(ctx, book)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			ve.Add("isbn", apperrors.KindAlreadyExists, "A book with this ISBN already exists.")
			return nil, ve
		}
		return nil, err
	}
	book.ID = id

	logger.Info().Str("isbn", book.ISBN).Msg("Book created")
	return book, nil
}

// GetBookByISBN retrieves a single catalog entry.
func (s *bookService) GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return s.bookStore.GetByISBN(ctx, isbn)
}

// GetAllBooks retrieves the full catalog sorted by ISBN.
func (s *bookService) GetAllBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookStore.GetAll(ctx)
}

// SearchBooks runs a filtered catalog query. Numeric criteria that fail to
// parse are skipped rather than rejected, matching the permissive search
// form semantics.
func (s *bookService) SearchBooks(ctx context.Context, query dto.BookSearchQuery) ([]*models.Book, error) {
	filter := models.BookSearchFilter{
		ISBN:      strings.TrimSpace(query.ISBN),
		Name:      strings.TrimSpace(query.Name),
		Authors:   strings.TrimSpace(query.Authors),
		Publisher: strings.TrimSpace(query.Publisher),
	}

	if v := strings.TrimSpace(query.Edition); v != "" {
		edition, err := strconv.Atoi(v)
		if err != nil {
			logger.Debug().Str("edition", v).Msg("Skipping unparseable edition filter")
		} else {
			filter.EditionAtLeast = &edition
		}
	}

	if v := strings.TrimSpace(query.Price); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logger.Debug().Str("price", v).Msg("Skipping unparseable price filter")
		} else {
			filter.PriceAtMost = &price
		}
	}

	return s.bookStore.Search(ctx, filter)
}

// DeleteBook removes a catalog entry along with its offers and requests.
// Deleting an unknown ISBN succeeds without effect.
func (s *bookService) DeleteBook(ctx context.Context, isbn string) error {
	if err := s.bookStore.DeleteByISBN(ctx, isbn); err != nil {
		return err
	}
	logger.Info().Str("isbn", isbn).Msg("Book deleted")
	return nil
}
