package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles maintenance operations.
type SettingsHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(is portssvc.IngestionSvcFacade) *SettingsHandler {
	return &SettingsHandler{ingestionService: is}
}

func registerSettingsRoutes(rg *gin.Engine, ingestionService portssvc.IngestionSvcFacade) {
	h := NewSettingsHandler(ingestionService)

	settings := rg.Group("/settings")
	{
		settings.DELETE("/clear-data", h.ClearData)
	}
}

// ClearData godoc
// @Summary Clear financial data
// @Description Removes every stored financial record. User accounts are untouched.
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /settings/clear-data [delete]
func (h *SettingsHandler) ClearData(c *gin.Context) {
	if err := h.ingestionService.ClearFinancialRecords(c.Request.Context()); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to clear financial data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear financial data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All financial data cleared successfully."})
}
