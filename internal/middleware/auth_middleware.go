package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/auth"
)

// Context keys set by the session middleware
const (
	ContextStudentID = "studentID"
	ContextStudentNo = "studentNo"
	ContextEmail     = "email"
)

// SessionCookieName is the cookie the browser flow stores its token in.
// API clients may send the same token as a bearer header instead.
const SessionCookieName = "textex_session"

// SessionAuth validates the session token on protected routes and exposes
// the student identity through the gin context.
func SessionAuth(sessionService *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Login required")))
			c.Abort()
			return
		}

		claims, err := sessionService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextStudentID, claims.StudentID)
		c.Set(ContextStudentNo, claims.StudentNo)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// sessionToken reads the token from the session cookie, falling back to the
// Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return ""
	}
	return token
}

// SessionStudentID returns the authenticated student's row id from the
// context.
func SessionStudentID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextStudentID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
