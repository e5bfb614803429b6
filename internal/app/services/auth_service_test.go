package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeStudentStore) {
	t.Helper()
	students := newFakeStudentStore()

	hash, err := auth.HashPassword("a-long-password")
	require.NoError(t, err)

	_, err = students.Create(context.Background(), &models.Student{
		StudentID:    "s1000001",
		FirstName:    "Ada",
		LastName:     "Hoffmann",
		Email:        "ada@example.edu",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	sessionService := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "textex.test",
	})

	return NewAuthService(students, sessionService), students
}

func TestLoginWithEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ada@example.edu",
		Password:   "a-long-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "s1000001", resp.Student.StudentID)
}

func TestLoginWithStudentID(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Identifier: "s1000001",
		Password:   "a-long-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.edu", resp.Student.Email)
}

func TestLoginWithStudentIDContainingAtSign(t *testing.T) {
	svc, students := newAuthFixture(t)

	// Student IDs carry no shape constraint, so one that looks like an
	// email must still resolve through the student ID lookup.
	hash, err := auth.HashPassword("a-long-password")
	require.NoError(t, err)
	_, err = students.Create(context.Background(), &models.Student{
		StudentID:    "cohort@2026",
		FirstName:    "Grace",
		LastName:     "Okafor",
		Email:        "grace.okafor@example.edu",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Identifier: "cohort@2026",
		Password:   "a-long-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "cohort@2026", resp.Student.StudentID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)

	cases := []dto.LoginRequest{
		{Identifier: "ada@example.edu", Password: "a-wrong-password"},
		{Identifier: "unknown@example.edu", Password: "a-long-password"},
		{Identifier: "s9999999", Password: "a-long-password"},
		{Identifier: "", Password: "a-long-password"},
		{Identifier: "ada@example.edu", Password: ""},
	}

	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "identifier %q", req.Identifier)
	}
}

func TestGetSessionStudent(t *testing.T) {
	svc, students := newAuthFixture(t)

	stored, err := students.GetByStudentID(context.Background(), "s1000001")
	require.NoError(t, err)

	student, err := svc.GetSessionStudent(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "s1000001", student.StudentID)

	_, err = svc.GetSessionStudent(context.Background(), stored.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
