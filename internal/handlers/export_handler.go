package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportLeaderboard downloads the leaderboard and waste register as XLSX
// @Summary Export leaderboard
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} models.ErrorResponse
// @Router /export/leaderboard [get]
func (h *ExportHandler) ExportLeaderboard(c *gin.Context) {
	h.LogRequest(c, "Exporting leaderboard workbook")

	data, err := h.exportService.ExportLeaderboard(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
