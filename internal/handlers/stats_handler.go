package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
)

type StatsHandler struct {
	BaseHandler
	queryService services.QueryService
}

func NewStatsHandler(queryService services.QueryService, logger utils.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		queryService: queryService,
	}
}

// Status is the liveness endpoint
// @Summary Service status
// @Tags stats
// @Produce json
// @Success 200 {object} models.ServiceStatus
// @Router /test [get]
func (h *StatsHandler) Status(c *gin.Context) {
	status, err := h.queryService.Status(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// VillageStats returns program-wide totals and top contributors
// @Summary Village statistics
// @Tags stats
// @Produce json
// @Success 200 {object} models.VillageStats
// @Router /stats [get]
func (h *StatsHandler) VillageStats(c *gin.Context) {
	stats, err := h.queryService.VillageStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Leaderboard returns users ranked by total waste
// @Summary Leaderboard
// @Tags stats
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Router /leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.queryService.Leaderboard(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
