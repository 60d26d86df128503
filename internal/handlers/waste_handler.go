package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
	"github.com/ecogaon/waste-ledger-service/internal/validator"
)

type WasteHandler struct {
	BaseHandler
	wasteService services.WasteService
	validator    *validator.Validator
}

func NewWasteHandler(
	wasteService services.WasteService,
	validator *validator.Validator,
	logger utils.Logger,
) *WasteHandler {
	return &WasteHandler{
		BaseHandler:  NewBaseHandler(logger),
		wasteService: wasteService,
		validator:    validator,
	}
}

// RecordWaste records a verified waste drop-off
// @Summary Record waste
// @Description Consumes the operator's verification code and appends a waste record
// @Tags waste
// @Accept json
// @Produce json
// @Param request body services.WasteSubmitRequest true "Waste submission"
// @Success 200 {object} models.WasteResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /waste [post]
func (h *WasteHandler) RecordWaste(c *gin.Context) {
	h.LogRequest(c, "Recording waste drop-off")

	var req services.WasteSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
		return
	}

	if verrs := h.validator.Validate(&req); verrs != nil {
		h.handleServiceError(c, services.ErrMissingFields)
		return
	}

	record, err := h.wasteService.Record(c.Request.Context(), &req)
	if err != nil {
		// The waste endpoint words the authorization failure differently from
		// /verify-code: it points the submitter back to the operator.
		if errors.Is(err, services.ErrCodeInvalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid verification code or operator phone. Please get a valid code from the dumping point operator.",
			})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WasteResponse{Success: true, Record: record})
}
