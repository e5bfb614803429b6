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
)

// AuthService defines the interface for login and session operations
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	GetSessionStudent(ctx context.Context, studentID int64) (*models.Student, error)
}

type authService struct {
	studentStore   StudentStore
	sessionService *auth.SessionService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(studentStore StudentStore, sessionService *auth.SessionService) AuthService {
	return &authService{
		studentStore:   studentStore,
		sessionService: sessionService,
	}
}

// Login authenticates a student by email or student ID and issues a session
// token. Every failure reports the same invalid-credentials error so a caller
// cannot discover which identifiers are registered.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.sessionService.GenerateToken(student.ID, student.StudentID, student.Email)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("studentId", student.StudentID).Msg("Student logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Student: student,
	}, nil
}

// findByIdentifier tries the identifier first as an email, then as a student
// ID. Both lookups always run: registration places no shape constraints on
// student IDs, so an identifier that looks like an email can still be one.
func (s *authService) findByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	student, err := s.studentStore.GetByEmail(ctx, identifier)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}
	return s.studentStore.GetByStudentID(ctx, identifier)
}

// GetSessionStudent resolves the session claims back to the stored student.
func (s *authService) GetSessionStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentStore.GetByID(ctx, studentID)
}
