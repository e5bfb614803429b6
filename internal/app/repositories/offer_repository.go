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

// offerJoinColumns selects an offer row together with its (possibly absent)
// owner and its book.
var offerJoinColumns = []string{
	"o.id", "o.offer_id", "o.condition", "o.price", "o.quantity",
	"s.id", "s.student_id", "s.first_name", "s.last_name", "s.email",
	"b.id", "b.isbn", "b.name", "b.authors", "b.publisher", "b.price", "b.edition",
}

// OfferRepository handles offer database operations
type OfferRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db DBTX) *OfferRepository {
	return &OfferRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanOffer(row pgx.Row) (*models.Offer, error) {
	offer := &models.Offer{}
	var conditionCode string
	var studentID *int64
	var studentNo, firstName, lastName, email *string
	book := &models.Book{}

	err := row.Scan(
		&offer.ID, &offer.OfferID, &conditionCode, &offer.Price, &offer.Quantity,
		&studentID, &studentNo, &firstName, &lastName, &email,
		&book.ID, &book.ISBN, &book.Name, &book.Authors, &book.Publisher, &book.Price, &book.Edition,
	)
	if err != nil {
		return nil, err
	}

	condition, err := models.ConditionFromCode(conditionCode)
	if err != nil {
		return nil, err
	}
	offer.Condition = condition
	offer.Book = book

	// The owner is nil when the student account was deleted.
	if studentID != nil {
		offer.Student = &models.Student{
			ID:        *studentID,
			StudentID: *studentNo,
			FirstName: *firstName,
			LastName:  *lastName,
			Email:     *email,
		}
	}

	return offer, nil
}

func (r *OfferRepository) selectOffers() squirrel.SelectBuilder {
	return r.sb.Select(offerJoinColumns...).
		From("offers o").
		LeftJoin("students s ON s.id = o.student_id").
		Join("books b ON b.id = o.book_id")
}

// Create inserts a new offer and returns its row id. The offer's Student and
// Book references must already be resolved to stored rows.
func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) (int64, error) {
	sql, args, err := r.sb.Insert("offers").
		Columns("offer_id", "student_id", "book_id", "condition", "price", "quantity").
		Values(offer.OfferID, offer.Student.ID, offer.Book.ID, offer.Condition.Code(), offer.Price, offer.Quantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create offer query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyExists
		}
		logger.Error().Err(err).Str("offerId", offer.OfferID).Msg("Error executing create offer query")
		return 0, fmt.Errorf("error creating offer: %w", err)
	}

	return id, nil
}

// GetByOfferID retrieves an offer with its owner and book by natural key.
func (r *OfferRepository) GetByOfferID(ctx context.Context, offerID string) (*models.Offer, error) {
	sql, args, err := r.selectOffers().
		Where(squirrel.Eq{"o.offer_id": offerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offer query: %w", err)
	}

	offer, err := scanOffer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferNotFound
		}
		logger.Error().Err(err).Str("offerId", offerID).Msg("Error scanning offer row")
		return nil, fmt.Errorf("error getting offer by ID: %w", err)
	}

	return offer, nil
}

// ExistsByOfferID reports whether an offer with the given ID exists.
func (r *OfferRepository) ExistsByOfferID(ctx context.Context, offerID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("offers").
		Where(squirrel.Eq{"offer_id": offerID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build offer existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking offer existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all offers sorted by offer ID.
func (r *OfferRepository) GetAll(ctx context.Context) ([]*models.Offer, error) {
	sql, args, err := r.selectOffers().
		OrderBy("o.offer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all offers query: %w", err)
	}

	return r.queryOffers(ctx, sql, args)
}

// GetByStudent retrieves the offers owned by the given student row id.
func (r *OfferRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Offer, error) {
	sql, args, err := r.selectOffers().
		Where(squirrel.Eq{"o.student_id": studentID}).
		OrderBy("o.offer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offers by student query: %w", err)
	}

	return r.queryOffers(ctx, sql, args)
}

func (r *OfferRepository) queryOffers(ctx context.Context, sql string, args []interface{}) ([]*models.Offer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing offers query")
		return nil, fmt.Errorf("error querying offers: %w", err)
	}
	defer rows.Close()

	offers := []*models.Offer{}
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning offer row: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offer rows: %w", err)
	}

	return offers, nil
}

// DeleteByOfferID deletes an offer by natural key. Deleting an absent ID is
// a no-op.
func (r *OfferRepository) DeleteByOfferID(ctx context.Context, offerID string) error {
	sql, args, err := r.sb.Delete("offers").
		Where(squirrel.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete offer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("offerId", offerID).Msg("Error executing delete offer query")
		return fmt.Errorf("error deleting offer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug().Str("offerId", offerID).Msg("Delete of absent offer treated as success")
	}

	return nil
}
