package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	registrationService services.RegistrationService
	queryService        services.QueryService
}

func NewUserHandler(
	registrationService services.RegistrationService,
	queryService services.QueryService,
	logger utils.Logger,
) *UserHandler {
	return &UserHandler{
		BaseHandler:         NewBaseHandler(logger),
		registrationService: registrationService,
		queryService:        queryService,
	}
}

// Register admits a new user
// @Summary Register user
// @Description Registers a program participant with name, phone and optional role
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.RegisterRequest true "Registration data"
// @Success 200 {object} models.RegisterResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	h.LogRequest(c, "Registering user")

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
		return
	}

	user, err := h.registrationService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RegisterResponse{Success: true, User: user})
}

// GetUserProfile returns a user with rank and waste history
// @Summary Get user profile
// @Description Looks a user up by phone and returns rank plus waste history
// @Tags users
// @Produce json
// @Param phone path string true "User phone"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /user/{phone} [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	phone := c.Param("phone")
	h.LogRequest(c, "Getting user profile", "phone", phone)

	profile, err := h.queryService.UserProfile(c.Request.Context(), phone)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListUsers returns the raw user collection
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.queryService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserStats returns user totals, role breakdown and recent registrations
// @Summary User statistics
// @Tags users
// @Produce json
// @Success 200 {object} models.UserStats
// @Router /user-stats [get]
func (h *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := h.queryService.UserStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
