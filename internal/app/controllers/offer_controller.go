package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// OfferController handles sell offer endpoints
type OfferController struct {
	offerService services.OfferService
}

// NewOfferController creates a new OfferController
func NewOfferController(offerService services.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

// CreateOffer godoc
// @Summary Post a sell offer
// @Description Creates an offer referencing an existing student and book
// @Tags offers
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param offer body dto.CreateOfferRequest true "Offer details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /offers [post]
func (c *OfferController) CreateOffer(ctx *gin.Context) {
	var req dto.CreateOfferRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ve := apperrors.NewValidationError()
		ve.Add("body", apperrors.KindInvalid, "Malformed request body.")
		middleware.HandleAPIError(ctx, ve)
		return
	}

	offer, err := c.offerService.CreateOffer(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offer))
}

// GetAllOffers godoc
// @Summary List sell offers
// @Tags offers
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /offers [get]
func (c *OfferController) GetAllOffers(ctx *gin.Context) {
	offers, err := c.offerService.GetAllOffers(ctx)
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

// GetOffer godoc
// @Summary Get an offer by offer ID
// @Tags offers
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /offers/{offerId} [get]
func (c *OfferController) GetOffer(ctx *gin.Context) {
	offer, err := c.offerService.GetOfferByOfferID(ctx, ctx.Param("offerId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offer))
}

// DeleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {object} dto.APIResponse
// @Router /offers/{offerId} [delete]
func (c *OfferController) DeleteOffer(ctx *gin.Context) {
	if err := c.offerService.DeleteOffer(ctx, ctx.Param("offerId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Offer deleted", nil))
}
