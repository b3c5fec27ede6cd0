package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the analytics endpoints backing the dashboard.
type DashboardHandler struct {
	reportingService portssvc.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(rs portssvc.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingService: rs}
}

func registerDashboardRoutes(rg *gin.Engine, jwtSecret string, reportingService portssvc.ReportingService) {
	h := NewDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard", middleware.AuthMiddleware(jwtSecret))
	{
		dashboard.GET("/summary", h.GetSummary)
		dashboard.GET("/trends", h.GetTrends)
		dashboard.GET("/records", h.ListRecords)
	}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Returns store-wide revenue, expense, profit and balance totals plus a risk label.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrends godoc
// @Summary Monthly trends
// @Description Returns per-month revenue and expense sums over all records, ordered by month ascending.
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.TrendPoint
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/trends [get]
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	trends, err := h.reportingService.Trends(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build monthly trends", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build monthly trends"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// ListRecords godoc
// @Summary List financial records
// @Description Returns one pagination window of raw financial records plus the overall total.
// @Tags dashboard
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(50)
// @Success 200 {object} dto.RecordsPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/records [get]
func (h *DashboardHandler) ListRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	page, err := h.reportingService.Records(c.Request.Context(), params.Skip, params.Limit)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list financial records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list financial records"})
		return
	}

	c.JSON(http.StatusOK, page)
}
