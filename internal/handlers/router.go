package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecogaon/waste-ledger-service/internal/services"
	"github.com/ecogaon/waste-ledger-service/internal/utils"
	"github.com/ecogaon/waste-ledger-service/internal/validator"
)

type HandlerManager struct {
	userHandler   *UserHandler
	codeHandler   *CodeHandler
	wasteHandler  *WasteHandler
	statsHandler  *StatsHandler
	exportHandler *ExportHandler

	staticDir string
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	staticDir string,
) *HandlerManager {
	return &HandlerManager{
		userHandler:   NewUserHandler(serviceManager.Registration(), serviceManager.Query(), logger),
		codeHandler:   NewCodeHandler(serviceManager.Verification(), validator, logger),
		wasteHandler:  NewWasteHandler(serviceManager.Waste(), validator, logger),
		statsHandler:  NewStatsHandler(serviceManager.Query(), logger),
		exportHandler: NewExportHandler(serviceManager.Export(), logger),
		staticDir:     staticDir,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Queries
		api.GET("/test", hm.statsHandler.Status)
		api.GET("/stats", hm.statsHandler.VillageStats)
		api.GET("/leaderboard", hm.statsHandler.Leaderboard)
		api.GET("/user/:phone", hm.userHandler.GetUserProfile)
		api.GET("/users", hm.userHandler.ListUsers)
		api.GET("/user-stats", hm.userHandler.GetUserStats)
		api.GET("/export/leaderboard", hm.exportHandler.ExportLeaderboard)

		// Mutations
		api.POST("/register", hm.userHandler.Register)
		api.POST("/generate-code", hm.codeHandler.GenerateCode)
		api.POST("/verify-code", hm.codeHandler.VerifyCode)
		api.POST("/waste", hm.wasteHandler.RecordWaste)
	}

	// Static frontend assets; everything else is the original's 404 page.
	router.NoRoute(hm.serveStatic)
}

func (hm *HandlerManager) serveStatic(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		urlPath := c.Request.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		if strings.HasSuffix(urlPath, ".html") || strings.HasSuffix(urlPath, ".css") || strings.HasSuffix(urlPath, ".js") {
			file := filepath.Join(hm.staticDir, filepath.Clean("/"+urlPath))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 - File Not Found</h1>"))
			return
		}
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 - Page Not Found</h1>"))
}
