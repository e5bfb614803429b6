package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/logger"
)

var bookColumns = []string{"id", "isbn", "name", "authors", "publisher", "price", "edition"}

// BookRepository handles catalog database operations
type BookRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db DBTX) *BookRepository {
	return &BookRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanBook(row pgx.Row) (*models.Book, error) {
	book := &models.Book{}
	err := row.Scan(&book.ID, &book.ISBN, &book.Name, &book.Authors, &book.Publisher, &book.Price, &book.Edition)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Create inserts a new book and returns its row id.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) (int64, error) {
	sql, args, err := r.sb.Insert("books").
		Columns("isbn", "name", "authors", "publisher", "price", "edition").
		Values(book.ISBN, book.Name, book.Authors, book.Publisher, book.Price, book.Edition).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create book query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyExists
		}
		logger.Error().Err(err).Str("isbn", book.ISBN).Msg("Error executing create book query")
		return 0, fmt.Errorf("error creating book: %w", err)
	}

	return id, nil
}

// GetByISBN retrieves a book by its ISBN.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	book, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		logger.Error().Err(err).Str("isbn", isbn).Msg("Error scanning book row")
		return nil, fmt.Errorf("error getting book by ISBN: %w", err)
	}

	return book, nil
}

// ExistsByISBN reports whether a book with the given ISBN exists.
func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("books").
		Where(squirrel.Eq{"isbn": isbn}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build book existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking book existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all books sorted by ISBN.
func (r *BookRepository) GetAll(ctx context.Context) ([]*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns...).
		From("books").
		OrderBy("isbn ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all books query: %w", err)
	}

	return r.queryBooks(ctx, sql, args)
}

// Search executes a filtered catalog query. Absent criteria add no
// predicate; results are always sorted by ISBN ascending.
func (r *BookRepository) Search(ctx context.Context, filter models.BookSearchFilter) ([]*models.Book, error) {
	sql, args, err := r.buildSearchQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build book search query: %w", err)
	}

	return r.queryBooks(ctx, sql, args)
}

// buildSearchQuery composes the dynamic predicate set for a catalog search.
// String criteria match as case-insensitive substrings; edition is a lower
// bound and price an upper bound.
func (r *BookRepository) buildSearchQuery(filter models.BookSearchFilter) squirrel.SelectBuilder {
	qb := r.sb.Select(bookColumns...).From("books")

	if filter.ISBN != "" {
		qb = qb.Where(squirrel.ILike{"isbn": "%" + filter.ISBN + "%"})
	}
	if filter.Name != "" {
		qb = qb.Where(squirrel.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.Authors != "" {
		qb = qb.Where(squirrel.ILike{"authors": "%" + filter.Authors + "%"})
	}
	if filter.Publisher != "" {
		qb = qb.Where(squirrel.ILike{"publisher": "%" + filter.Publisher + "%"})
	}
	if filter.EditionAtLeast != nil {
		qb = qb.Where(squirrel.GtOrEq{"edition": *filter.EditionAtLeast})
	}
	if filter.PriceAtMost != nil {
		qb = qb.Where(squirrel.LtOrEq{"price": *filter.PriceAtMost})
	}

	return qb.OrderBy("isbn ASC")
}

func (r *BookRepository) queryBooks(ctx context.Context, sql string, args []interface{}) ([]*models.Book, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing books query")
		return nil, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

// DeleteByISBN deletes a book by ISBN. Deleting an absent ISBN is a no-op;
// the schema cascades the delete to the book's offers and requests.
func (r *BookRepository) DeleteByISBN(ctx context.Context, isbn string) error {
	sql, args, err := r.sb.Delete("books").
		Where(squirrel.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete book query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("isbn", isbn).Msg("Error executing delete book query")
		return fmt.Errorf("error deleting book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug().Str("isbn", isbn).Msg("Delete of absent book treated as success")
	}

	return nil
}
