package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// RequestController handles buy request endpoints
type RequestController struct {
	requestService services.RequestService
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService) *RequestController {
	return &RequestController{requestService: requestService}
}

// CreateRequest godoc
// @Summary Post a buy request
// @Description Creates a request referencing an existing student and book; condition is optional
// @Tags requests
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateRequestRequest true "Request details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /requests [post]
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateRequestRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ve := apperrors.NewValidationError()
		ve.Add("body", apperrors.KindInvalid, "Malformed request body.")
		middleware.HandleAPIError(ctx, ve)
		return
	}

	request, err := c.requestService.CreateRequest(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// GetAllRequests godoc
// @Summary List buy requests
// @Tags requests
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /requests [get]
func (c *RequestController) GetAllRequests(ctx *gin.Context) {
	requests, err := c.requestService.GetAllRequests(ctx)
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

// GetRequest godoc
// @Summary Get a request by request ID
// @Tags requests
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /requests/{requestId} [get]
func (c *RequestController) GetRequest(ctx *gin.Context) {
	request, err := c.requestService.GetRequestByRequestID(ctx, ctx.Param("requestId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// DeleteRequest godoc
// @Summary Delete a request
// @Tags requests
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Router /requests/{requestId} [delete]
func (c *RequestController) DeleteRequest(ctx *gin.Context) {
	if err := c.requestService.DeleteRequest(ctx, ctx.Param("requestId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Request deleted", nil))
}
