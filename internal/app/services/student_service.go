package services

import (
	"context"
	"errors"
	"strings"

	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/auth"
	"github.com/textex/textex/internal/pkg/logger"
	"github.com/textex/textex/internal/pkg/validation"
)

// StudentService defines the interface for student account operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	DeleteStudent(ctx context.Context, studentID string) error
}

type studentService struct {
	studentStore StudentStore
}

// NewStudentService creates a new StudentService instance
func NewStudentService(studentStore StudentStore) StudentService {
	return &studentService{studentStore: studentStore}
}

// CreateStudent validates and registers a new student account. The password
// is stored only as a bcrypt hash.
func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	ve := apperrors.NewValidationError()

	studentID := strings.TrimSpace(req.StudentID)
	if validation.RequiredString(ve, "studentId", studentID) {
		exists, err := s.studentStore.ExistsByStudentID(ctx, studentID)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("studentId", apperrors.KindAlreadyExists, "A student with this ID already exists.")
		}
	}

	validation.RequiredString(ve, "firstName", req.FirstName)
	validation.RequiredString(ve, "lastName", req.LastName)

	email := strings.TrimSpace(req.Email)
	if validation.RequiredString(ve, "email", email) {
		validation.Email(ve, "email", email)
		exists, err := s.studentStore.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("email", apperrors.KindAlreadyExists, "A student with this email already exists.")
		}
	}

	if validation.RequiredString(ve, "password", req.Password) {
		validation.MinLength(ve, "password", req.Password, validation.PasswordMinLength)
	}

	if ve.HasErrors() {
		return nil, ve
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:    studentID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hash,
	}

	id, err := s.studentStore.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			ve.Add("studentId", apperrors.KindAlreadyExists, "A student with this ID already exists.")
			return nil, ve
		}
		return nil, err
	}
	student.ID = id

	logger.Info().Str("studentId", student.StudentID).Msg("Student registered")
	return student, nil
}

// GetStudentByStudentID retrieves a single student account.
func (s *studentService) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentStore.GetByStudentID(ctx, studentID)
}

// GetAllStudents retrieves all student accounts sorted by student ID.
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentStore.GetAll(ctx)
}

// DeleteStudent removes a student account. The student's offers and requests
// remain listed with their owner cleared. Deleting an unknown ID succeeds
// without effect.
func (s *studentService) DeleteStudent(ctx context.Context, studentID string) error {
	if err := s.studentStore.DeleteByStudentID(ctx, studentID); err != nil {
		return err
	}
	logger.Info().Str("studentId", studentID).Msg("Student deleted")
	return nil
}
