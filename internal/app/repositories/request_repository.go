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

var requestJoinColumns = []string{
	"r.id", "r.request_id", "r.condition", "r.price", "r.quantity",
	"s.id", "s.student_id", "s.first_name", "s.last_name", "s.email",
	"b.id", "b.isbn", "b.name", "b.authors", "b.publisher", "b.price", "b.edition",
}

// RequestRepository handles request database operations
type RequestRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db DBTX) *RequestRepository {
	return &RequestRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanRequest(row pgx.Row) (*models.Request, error) {
	request := &models.Request{}
	var conditionCode *string
	var studentID *int64
	var studentNo, firstName, lastName, email *string
	book := &models.Book{}

	err := row.Scan(
		&request.ID, &request.RequestID, &conditionCode, &request.Price, &request.Quantity,
		&studentID, &studentNo, &firstName, &lastName, &email,
		&book.ID, &book.ISBN, &book.Name, &book.Authors, &book.Publisher, &book.Price, &book.Edition,
	)
	if err != nil {
		return nil, err
	}

	// A NULL condition means the requester accepts any condition.
	if conditionCode != nil {
		condition, err := models.ConditionFromCode(*conditionCode)
		if err != nil {
			return nil, err
		}
		request.Condition = &condition
	}
	request.Book = book

	if studentID != nil {
		request.Student = &models.Student{
			ID:        *studentID,
			StudentID: *studentNo,
			FirstName: *firstName,
			LastName:  *lastName,
			Email:     *email,
		}
	}

	return request, nil
}

func (r *RequestRepository) selectRequests() squirrel.SelectBuilder {
	return r.sb.Select(requestJoinColumns...).
		From("requests r").
		LeftJoin("students s ON s.id = r.student_id").
		Join("books b ON b.id = r.book_id")
}

// Create inserts a new request and returns its row id. The request's Student
// and Book references must already be resolved to stored rows.
func (r *RequestRepository) Create(ctx context.Context, request *models.Request) (int64, error) {
	var conditionCode *string
	if request.Condition != nil {
		code := request.Condition.Code()
		conditionCode = &code
	}

	sql, args, err := r.sb.Insert("requests").
		Columns("request_id", "student_id", "book_id", "condition", "price", "quantity").
		Values(request.RequestID, request.Student.ID, request.Book.ID, conditionCode, request.Price, request.Quantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create request query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyExists
		}
		logger.Error().Err(err).Str("requestId", request.RequestID).Msg("Error executing create request query")
		return 0, fmt.Errorf("error creating request: %w", err)
	}

	return id, nil
}

// GetByRequestID retrieves a request with its owner and book by natural key.
func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*models.Request, error) {
	sql, args, err := r.selectRequests().
		Where(squirrel.Eq{"r.request_id": requestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get request query: %w", err)
	}

	request, err := scanRequest(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		logger.Error().Err(err).Str("requestId", requestID).Msg("Error scanning request row")
		return nil, fmt.Errorf("error getting request by ID: %w", err)
	}

	return request, nil
}

// ExistsByRequestID reports whether a request with the given ID exists.
func (r *RequestRepository) ExistsByRequestID(ctx context.Context, requestID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("requests").
		Where(squirrel.Eq{"request_id": requestID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build request existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking request existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all requests sorted by request ID.
func (r *RequestRepository) GetAll(ctx context.Context) ([]*models.Request, error) {
	sql, args, err := r.selectRequests().
		OrderBy("r.request_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all requests query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

// GetByStudent retrieves the requests owned by the given student row id.
func (r *RequestRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error) {
	sql, args, err := r.selectRequests().
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.request_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get requests by student query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

func (r *RequestRepository) queryRequests(ctx context.Context, sql string, args []interface{}) ([]*models.Request, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing requests query")
		return nil, fmt.Errorf("error querying requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.Request{}
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}

	return requests, nil
}

// DeleteByRequestID deletes a request by natural key. Deleting an absent ID
// is a no-op.
func (r *RequestRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	sql, args, err := r.sb.Delete("requests").
		Where(squirrel.Eq{"request_id": requestID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete request query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("requestId", requestID).Msg("Error executing delete request query")
		return fmt.Errorf("error deleting request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug().Str("requestId", requestID).Msg("Delete of absent request treated as success")
	}

	return nil
}
