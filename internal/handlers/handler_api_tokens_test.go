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

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/handlers"
	"github.com/velstra/spendboard/internal/handlers/dto"
	"github.com/velstra/spendboard/internal/middleware"
)

// --- Mock APITokenService ---
type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, userID, name, expiresIn)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}
func (m *MockAPITokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}
func (m *MockAPITokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}
func (m *MockAPITokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)

// --- Test Suite ---
type APITokenHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockTokenSvc *MockAPITokenService
	jwtSecret    string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *APITokenHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "spendboard-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *APITokenHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTokenSvc = new(MockAPITokenService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAPITokenRoutes(v1, suite.mockTokenSvc)
}

// --- Test Cases ---

func (suite *APITokenHandlerTestSuite) TestCreateToken_Success() {
	userID := uuid.NewString()
	now := time.Now()
	createdToken := &domain.APIToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      "nightly export",
		CreatedAt: now,
		UpdatedAt: now,
	}

	suite.mockTokenSvc.On("CreateToken",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		"nightly export",
		(*time.Duration)(nil),
	).Return("spb_plaintextvalue", createdToken, nil).Once()

	body, _ := json.Marshal(dto.CreateAPITokenRequest{Name: "nightly export"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tokens", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.CreateAPITokenResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("spb_plaintextvalue", responseBody.TokenString)
	suite.Equal(createdToken.ID, responseBody.Details.ID)
	suite.Equal("nightly export", responseBody.Details.Name)

	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestCreateToken_InvalidBody() {
	userID := uuid.NewString()

	// Name below the minimum length fails binding before the service is hit.
	body := []byte(`{"name": "ab"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tokens", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "CreateToken")
}

func (suite *APITokenHandlerTestSuite) TestListTokens_Success() {
	userID := uuid.NewString()
	now := time.Now()
	expectedTokens := []domain.APIToken{
		{ID: uuid.NewString(), UserID: userID, Name: "ci pipeline", CreatedAt: now},
		{ID: uuid.NewString(), UserID: userID, Name: "bi export", CreatedAt: now.Add(-time.Hour)},
	}

	suite.mockTokenSvc.On("ListTokens",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
	).Return(expectedTokens, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tokens", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListAPITokensResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody, len(expectedTokens))
	if len(responseBody) == len(expectedTokens) {
		suite.Equal(expectedTokens[0].ID, responseBody[0].ID)
		suite.Equal(expectedTokens[1].ID, responseBody[1].ID)
	}

	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_Success() {
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenSvc.On("RevokeToken",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		tokenID,
	).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/tokens/%s", tokenID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_NotFound() {
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenSvc.On("RevokeToken",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		tokenID,
	).Return(apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/tokens/%s", tokenID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_Forbidden() {
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenSvc.On("RevokeToken",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		tokenID,
	).Return(apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/tokens/%s", tokenID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)

	var responseBody handlers.APIErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("Token belongs to another user", responseBody.Message)
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_InvalidID() {
	userID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/tokens/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "RevokeToken")
}

func (suite *APITokenHandlerTestSuite) TestListTokens_MissingAuthHeader() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tokens", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "ListTokens")
}

// --- Run Test Suite ---
func TestAPITokenHandler(t *testing.T) {
	suite.Run(t, new(APITokenHandlerTestSuite))
}
