package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/pkg/auth"
)

func sessionTestRouter(svc *auth.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", SessionAuth(svc), func(c *gin.Context) {
		id, _ := SessionStudentID(c)
		c.JSON(http.StatusOK, gin.H{"studentId": id})
	})
	return router
}

func newTestSessionService() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "textex.test",
	})
}

func TestSessionAuthAcceptsBearerToken(t *testing.T) {
	svc := newTestSessionService()
	router := sessionTestRouter(svc)

	token, _, err := svc.GenerateToken(42, "s1000001", "ada@example.edu")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestSessionAuthAcceptsCookie(t *testing.T) {
	svc := newTestSessionService()
	router := sessionTestRouter(svc)

	token, _, err := svc.GenerateToken(42, "s1000001", "ada@example.edu")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	router := sessionTestRouter(newTestSessionService())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsForgedToken(t *testing.T) {
	other := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "other-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "textex.test",
	})
	router := sessionTestRouter(newTestSessionService())

	token, _, err := other.GenerateToken(42, "s1000001", "ada@example.edu")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
