package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	"github.com/Ommishra2/Dataintellect/internal/core/domain"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/handlers"
	"github.com/Ommishra2/Dataintellect/internal/middleware"
	"github.com/Ommishra2/Dataintellect/internal/platform/config"
	"github.com/Ommishra2/Dataintellect/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	jwtSecret       string
}

func (suite *AuthHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "dataintellect-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "dataintellect-test",
	}
	h := handlers.NewAuthHandler(suite.mockUserService, cfg)

	auth := suite.router.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	admin := auth.Group("/users", middleware.AuthMiddleware(suite.jwtSecret), middleware.RequireAdmin())
	admin.GET("", h.ListUsers)
	admin.DELETE("/:id", h.DeleteUser)
}

func jsonRequest(method, path string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Register Tests ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Email: "new@example.com", Password: "password123"}
	created := &domain.User{UserID: uuid.NewString(), Email: req.Email, Role: domain.RoleUser}

	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(created, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", req))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("bearer", resp.TokenType)
	suite.Equal("user", resp.Role)

	// Issued token carries the new principal's identity
	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, suite.jwtSecret)
	suite.Require().NoError(err)
	suite.Equal(created.UserID, claims.Subject)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_CapacityReached() {
	req := dto.RegisterRequest{Email: "user51@example.com", Password: "password123"}
	capErr := fmt.Errorf("user limit reached (max 50 users): %w", apperrors.ErrCapacity)

	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(nil, capErr).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", req))

	suite.Equal(http.StatusForbidden, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("User limit reached (Max 50 Users). Contact administrator.", resp["error"])
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "taken@example.com", Password: "password123"}
	dupErr := fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)

	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(nil, dupErr).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", req))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidBody() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", map[string]string{"email": "not-an-email"}))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

// --- Login Tests ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "admin@example.com", Password: "password123"}
	stored := &domain.User{UserID: uuid.NewString(), Email: req.Email, Role: domain.RoleAdmin}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, req.Email, req.Password).Return(stored, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", req))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bearer", resp.TokenType)
	suite.Equal("admin", resp.Role)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	req := dto.LoginRequest{Email: "user@example.com", Password: "wrong"}
	authErr := fmt.Errorf("password mismatch: %w", apperrors.ErrAuthentication)

	suite.mockUserService.On("AuthenticateUser", mock.Anything, req.Email, req.Password).Return(nil, authErr).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", req))

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Incorrect email or password", resp["error"])
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Admin User Management Tests ---

func (suite *AuthHandlerTestSuite) TestListUsers_AdminSuccess() {
	users := []domain.User{
		{UserID: uuid.NewString(), Email: "a@example.com", Role: domain.RoleAdmin},
		{UserID: uuid.NewString(), Email: "b@example.com", Role: domain.RoleUser},
	}
	suite.mockUserService.On("ListUsers", mock.Anything).Return(users, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/auth/users", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin-1", "admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("a@example.com", resp[0].Email)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestListUsers_NonAdminForbidden() {
	req, _ := http.NewRequest(http.MethodGet, "/auth/users", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Admin privileges required", resp["error"])
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestListUsers_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/auth/users", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestDeleteUser_Success() {
	targetID := uuid.NewString()
	suite.mockUserService.On("DeleteUser", mock.Anything, targetID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/auth/users/"+targetID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin-1", "admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestDeleteUser_NotFound() {
	targetID := uuid.NewString()
	suite.mockUserService.On("DeleteUser", mock.Anything, targetID).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/auth/users/"+targetID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin-1", "admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
