package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/handlers"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/Ommishra2/Dataintellect/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

func (m *MockReportingService) Trends(ctx context.Context) ([]dto.TrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TrendPoint), args.Error(1)
}

func (m *MockReportingService) Records(ctx context.Context, skip, limit int) (*dto.RecordsPageResponse, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordsPageResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *DashboardHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "dataintellect-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockReportingService = new(MockReportingService)

	h := handlers.NewDashboardHandler(suite.mockReportingService)
	dashboard := suite.router.Group("/dashboard", middleware.AuthMiddleware(suite.jwtSecret))
	dashboard.GET("/summary", h.GetSummary)
	dashboard.GET("/trends", h.GetTrends)
	dashboard.GET("/records", h.ListRecords)
}

func (suite *DashboardHandlerTestSuite) authedGet(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DashboardHandlerTestSuite) TestGetSummary_Success() {
	expected := &dto.SummaryResponse{
		TotalRevenue:   3500,
		TotalExpense:   1200,
		NetProfit:      2300,
		CurrentBalance: 12500,
		RiskExposure:   "Low (Stable)",
	}
	suite.mockReportingService.On("Summary", mock.Anything).Return(expected, nil).Once()

	w := suite.authedGet("/dashboard/summary")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(*expected, resp)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetSummary_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "Summary", mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestGetTrends_Success() {
	trends := []dto.TrendPoint{
		{Month: "2024-01", Revenue: 3000, Expense: 1000},
		{Month: "2024-02", Revenue: 500, Expense: 200},
	}
	suite.mockReportingService.On("Trends", mock.Anything).Return(trends, nil).Once()

	w := suite.authedGet("/dashboard/trends")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TrendPoint
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(trends, resp)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestListRecords_DefaultsApplied() {
	page := &dto.RecordsPageResponse{Total: 0, Skip: 0, Limit: 50, Data: []dto.FinancialRecordResponse{}}
	suite.mockReportingService.On("Records", mock.Anything, 0, 50).Return(page, nil).Once()

	w := suite.authedGet("/dashboard/records")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestListRecords_ExplicitWindow() {
	page := &dto.RecordsPageResponse{
		Total: 120,
		Skip:  10,
		Limit: 5,
		Data: []dto.FinancialRecordResponse{
			{ID: 11, AccountID: "ACC-1", Date: "2024-01-05", Revenue: 1000},
		},
	}
	suite.mockReportingService.On("Records", mock.Anything, 10, 5).Return(page, nil).Once()

	w := suite.authedGet("/dashboard/records?skip=10&limit=5")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RecordsPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(120), resp.Total)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("ACC-1", resp.Data[0].AccountID)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
