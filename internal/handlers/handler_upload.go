package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles financial CSV ingestion requests.
type UploadHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(is portssvc.IngestionSvcFacade) *UploadHandler {
	return &UploadHandler{ingestionService: is}
}

func registerUploadRoutes(rg *gin.Engine, jwtSecret string, ingestionService portssvc.IngestionSvcFacade) {
	h := NewUploadHandler(ingestionService)

	upload := rg.Group("/upload", middleware.AuthMiddleware(jwtSecret))
	{
		upload.POST("/financial-data", h.UploadCSV)
	}
}

// UploadCSV godoc
// @Summary Upload financial CSV
// @Description Parses a CSV of financial records, persists the rows and the derived per-account monthly aggregates in one transaction. Validation and persistence failures are reported in the response body with status 200.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file of financial records"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse "Missing file part"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload/financial-data [post]
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	result, err := h.ingestionService.IngestFinancialCSV(c.Request.Context(), content)
	if err != nil {
		// Validation and persistence problems travel in the payload so the
		// dashboard can surface them inline.
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrPersistence) {
			c.JSON(http.StatusOK, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to ingest CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process upload"})
		return
	}

	logger.Info("CSV ingested",
		slog.Int64("records_inserted", result.RecordsInserted),
		slog.Int64("aggregates_generated", result.AggregatesGenerated),
	)

	c.JSON(http.StatusOK, dto.UploadResponse{
		Message:             "Upload successful. Records and Aggregates generated.",
		RecordsInserted:     result.RecordsInserted,
		AggregatesGenerated: result.AggregatesGenerated,
	})
}
