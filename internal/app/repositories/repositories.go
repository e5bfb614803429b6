package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the querying surface the repositories need. A pgxpool.Pool and a
// pgx.Tx both satisfy it, so the same repositories serve direct pool access
// and multi-entity work run through db.WithTransaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (pgx.Tx)(nil)
)

// Repositories bundles all entity repositories for dependency injection.
type Repositories struct {
	BookRepository    *BookRepository
	StudentRepository *StudentRepository
	OfferRepository   *OfferRepository
	RequestRepository *RequestRepository
}

// NewRepositories creates all repositories sharing one querying handle.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		BookRepository:    NewBookRepository(db),
		StudentRepository: NewStudentRepository(db),
		OfferRepository:   NewOfferRepository(db),
		RequestRepository: NewRequestRepository(db),
	}
}

// statementBuilder returns a squirrel builder using Postgres placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
// The unique indexes on the natural keys are the authority on uniqueness;
// a violation here means the submission lost a create race and gets the same
// AlreadyExists treatment as one caught by the pre-insert check.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
