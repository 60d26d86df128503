package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
	"github.com/ecogaon/waste-ledger-service/internal/validator"
)

type CodeHandler struct {
	BaseHandler
	verificationService services.VerificationService
	validator           *validator.Validator
}

func NewCodeHandler(
	verificationService services.VerificationService,
	validator *validator.Validator,
	logger utils.Logger,
) *CodeHandler {
	return &CodeHandler{
		BaseHandler:         NewBaseHandler(logger),
		verificationService: verificationService,
		validator:           validator,
	}
}

// GenerateCode issues a one-time code for a dumping point operator
// @Summary Generate verification code
// @Tags verification
// @Accept json
// @Produce json
// @Param request body services.GenerateCodeRequest true "Operator phone"
// @Success 200 {object} models.GenerateCodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate-code [post]
func (h *CodeHandler) GenerateCode(c *gin.Context) {
	h.LogRequest(c, "Generating verification code")

	var req services.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Internal server error: %s", err)})
		return
	}

	if verrs := h.validator.Validate(&req); verrs != nil {
		h.handleServiceError(c, services.ErrOperatorPhoneRequired)
		return
	}

	code, err := h.verificationService.GenerateCode(c.Request.Context(), req.OperatorPhone)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateCodeResponse{Success: true, Code: code})
}

// VerifyCode consumes a one-time code
// @Summary Verify code
// @Description Marks a matching unused code as used; a code verifies at most once
// @Tags verification
// @Accept json
// @Produce json
// @Param request body services.VerifyCodeRequest true "Code and operator phone"
// @Success 200 {object} models.VerifyCodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /verify-code [post]
func (h *CodeHandler) VerifyCode(c *gin.Context) {
	h.LogRequest(c, "Verifying code")

	var req services.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
		return
	}

	if verrs := h.validator.Validate(&req); verrs != nil {
		h.handleServiceError(c, services.ErrCodeAndPhoneRequired)
		return
	}

	if err := h.verificationService.VerifyCode(c.Request.Context(), req.Code, req.OperatorPhone); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.VerifyCodeResponse{Success: true, Valid: true})
}
