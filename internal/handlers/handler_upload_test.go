package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/handlers"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/Ommishra2/Dataintellect/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock IngestionService ---
type MockIngestionService struct {
	mock.Mock
}

func (m *MockIngestionService) IngestFinancialCSV(ctx context.Context, content []byte) (*dto.UploadResult, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResult), args.Error(1)
}

func (m *MockIngestionService) ClearFinancialRecords(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.IngestionSvcFacade = (*MockIngestionService)(nil)

// --- Test Suite ---
type UploadHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockIngestionService *MockIngestionService
	jwtSecret            string
}

func (suite *UploadHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "dataintellect-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockIngestionService = new(MockIngestionService)

	h := handlers.NewUploadHandler(suite.mockIngestionService)
	upload := suite.router.Group("/upload", middleware.AuthMiddleware(suite.jwtSecret))
	upload.POST("/financial-data", h.UploadCSV)

	s := handlers.NewSettingsHandler(suite.mockIngestionService)
	suite.router.DELETE("/settings/clear-data", s.ClearData)
}

func multipartCSVBody(suite *UploadHandlerTestSuite, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "records.csv")
	suite.Require().NoError(err)
	_, err = part.Write([]byte(content))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

// --- Test Cases ---

func (suite *UploadHandlerTestSuite) TestUploadCSV_NoToken() {
	body, contentType := multipartCSVBody(suite, "a,b\n1,2\n")
	req, _ := http.NewRequest(http.MethodPost, "/upload/financial-data", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockIngestionService.AssertNotCalled(suite.T(), "IngestFinancialCSV", mock.Anything, mock.Anything)
}

func (suite *UploadHandlerTestSuite) TestUploadCSV_Success() {
	csv := "account_id,date,revenue,expense,balance,transaction_count,overdue_amount,payment_delay_days\nACC-1,2024-01-05,1000,300,5000,10,0,0\n"
	suite.mockIngestionService.On("IngestFinancialCSV", mock.Anything, []byte(csv)).
		Return(&dto.UploadResult{RecordsInserted: 1, AggregatesGenerated: 1}, nil).Once()

	body, contentType := multipartCSVBody(suite, csv)
	req, _ := http.NewRequest(http.MethodPost, "/upload/financial-data", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UploadResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Upload successful. Records and Aggregates generated.", resp.Message)
	suite.Equal(int64(1), resp.RecordsInserted)
	suite.Equal(int64(1), resp.AggregatesGenerated)
	suite.mockIngestionService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestUploadCSV_ValidationErrorReportedInPayload() {
	vErr := &apperrors.ValidationError{MissingColumns: []string{"balance", "revenue"}}
	suite.mockIngestionService.On("IngestFinancialCSV", mock.Anything, mock.Anything).
		Return(nil, vErr).Once()

	body, contentType := multipartCSVBody(suite, "account_id,date\nACC-1,2024-01-05\n")
	req, _ := http.NewRequest(http.MethodPost, "/upload/financial-data", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// Business failures still answer 200; the error travels in the body
	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("CSV structure invalid. Missing: balance, revenue", resp["error"])
	suite.mockIngestionService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestUploadCSV_PersistenceErrorReportedInPayload() {
	repoErr := fmt.Errorf("failed to persist upload batch: %w", apperrors.ErrPersistence)
	suite.mockIngestionService.On("IngestFinancialCSV", mock.Anything, mock.Anything).
		Return(nil, repoErr).Once()

	body, contentType := multipartCSVBody(suite, "whatever")
	req, _ := http.NewRequest(http.MethodPost, "/upload/financial-data", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "persistence failure")
	suite.mockIngestionService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestUploadCSV_MissingFilePart() {
	req, _ := http.NewRequest(http.MethodPost, "/upload/financial-data", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockIngestionService.AssertNotCalled(suite.T(), "IngestFinancialCSV", mock.Anything, mock.Anything)
}

func (suite *UploadHandlerTestSuite) TestClearData_Success() {
	suite.mockIngestionService.On("ClearFinancialRecords", mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/settings/clear-data", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("All financial data cleared successfully.", resp["message"])
	suite.mockIngestionService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestClearData_Error() {
	suite.mockIngestionService.On("ClearFinancialRecords", mock.Anything).
		Return(fmt.Errorf("truncate failed: %w", apperrors.ErrPersistence)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/settings/clear-data", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockIngestionService.AssertExpectations(suite.T())
}

func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
