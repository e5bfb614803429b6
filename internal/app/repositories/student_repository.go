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

var studentColumns = []string{"id", "student_id", "first_name", "last_name", "email", "password_hash"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.StudentID, &student.FirstName, &student.LastName, &student.Email, &student.PasswordHash)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student and returns its row id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "first_name", "last_name", "email", "password_hash").
		Values(student.StudentID, student.FirstName, student.LastName, student.Email, student.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyExists
		}
		logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByStudentID retrieves a student by their campus-issued ID.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return r.getByField(ctx, "student_id", studentID)
}

// GetByEmail retrieves a student by email address.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getByField(ctx, "email", email)
}

// GetByID retrieves a student by surrogate row id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) getByField(ctx context.Context, column, value string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str(column, value).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// ExistsByStudentID reports whether a student with the given ID exists.
func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	return r.existsByField(ctx, "student_id", studentID)
}

// ExistsByEmail reports whether a student with the given email exists.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsByField(ctx, "email", email)
}

func (r *StudentRepository) existsByField(ctx context.Context, column, value string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{column: value}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all students sorted by student ID.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// DeleteByStudentID deletes a student by their campus-issued ID. Deleting an
// absent ID is a no-op. The student's offers and requests survive with their
// owner reference cleared; only book deletion cascades.
func (r *StudentRepository) DeleteByStudentID(ctx context.Context, studentID string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug().Str("studentId", studentID).Msg("Delete of absent student treated as success")
	}

	return nil
}
