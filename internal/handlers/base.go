package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
)

const internalErrorMessage = "Internal server error. Please try again."

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

func (h BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.FromContext(c.Request.Context(), h.logger).Error(msg, append(args, "error", err)...)
}

// handleServiceError maps service sentinels onto the wire contract: every
// error is {"error": message}, statuses limited to 400, 404 and 500.
func (h BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidName):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Please enter a valid name (at least 2 characters)"})
	case errors.Is(err, services.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Please enter a valid phone number (at least 10 digits)"})
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid role selected"})
	case errors.Is(err, services.ErrDuplicatePhone):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "User with this phone number already exists"})
	case errors.Is(err, services.ErrOperatorPhoneRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Operator phone number required and must be a string"})
	case errors.Is(err, services.ErrCodeAndPhoneRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Code and operator phone required"})
	case errors.Is(err, services.ErrCodeInvalid):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid or already used verification code"})
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields including verification code and operator phone"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
	}
}
