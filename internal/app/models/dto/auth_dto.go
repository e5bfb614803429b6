package dto

import "github.com/textex/textex/internal/app/models"

// LoginRequest represents login credentials. Identifier matches either the
// student's email address or their student ID.
type LoginRequest struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful login response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Student *models.Student `json:"student"`
}
