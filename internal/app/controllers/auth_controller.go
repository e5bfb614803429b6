package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// AuthController handles login, logout and the session's own-profile
// endpoints
type AuthController struct {
	authService    services.AuthService
	offerService   services.OfferService
	requestService services.RequestService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, offerService services.OfferService, requestService services.RequestService) *AuthController {
	return &AuthController{
		authService:    authService,
		offerService:   offerService,
		requestService: requestService,
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticates by email or student ID and issues a session token, also set as a cookie
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	authResponse, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.SessionCookieName, authResponse.Token.AccessToken,
		authResponse.Token.ExpiresIn, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse))
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie; the bearer token simply expires
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out", nil))
}

// Me godoc
// @Summary Get the logged-in student
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	studentID, ok := middleware.SessionStudentID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.authService.GetSessionStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// MyOffers godoc
// @Summary List the logged-in student's offers
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me/offers [get]
func (c *AuthController) MyOffers(ctx *gin.Context) {
	studentID, ok := middleware.SessionStudentID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	offers, err := c.offerService.GetOffersByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(offers) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No offers", offers))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offers))
}

// MyRequests godoc
// @Summary List the logged-in student's requests
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me/requests [get]
func (c *AuthController) MyRequests(ctx *gin.Context) {
	studentID, ok := middleware.SessionStudentID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	requests, err := c.requestService.GetRequestsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(requests) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No requests", requests))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}
