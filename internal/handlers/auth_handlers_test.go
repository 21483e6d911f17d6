package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, mobileNumber, password string) (*services.AuthResponse, error) {
	args := m.Called(ctx, name, email, mobileNumber, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResponse), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*models.User, error) {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateAccount(ctx context.Context, userID uuid.UUID, patch *services.AccountPatch) (*models.User, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AuthHandlersTestSuite struct {
	suite.Suite
	mockSvc  *MockAuthService
	handlers *AuthHandlers
	echo     *echo.Echo
	userID   uuid.UUID
}

func (suite *AuthHandlersTestSuite) SetupTest() {
	suite.mockSvc = &MockAuthService{}
	suite.handlers = NewAuthHandlers(suite.mockSvc)
	suite.echo = echo.New()
	suite.userID = uuid.New()

	suite.mockSvc.Test(suite.T())
}

func (suite *AuthHandlersTestSuite) TearDownTest() {
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestAuthHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlersTestSuite))
}

func (suite *AuthHandlersTestSuite) jsonContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return suite.echo.NewContext(req, rec), rec
}

func (suite *AuthHandlersTestSuite) authenticatedContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := suite.jsonContext(method, path, body)
	ctx := context.WithValue(c.Request().Context(), common.UserIDKey, suite.userID)
	c.SetRequest(c.Request().WithContext(ctx))
	return c, rec
}

func (suite *AuthHandlersTestSuite) TestRegister_Success() {
	resp := &services.AuthResponse{
		Token: "signed-token",
		User:  &models.User{ID: uuid.New(), Email: "alice@example.com"},
	}
	suite.mockSvc.On("Register", mock.Anything, "Alice", "alice@example.com", "+919876543210", "secret1").Return(resp, nil)

	body := `{"full_name":"Alice","email":"alice@example.com","mobile_number":"+919876543210","password":"secret1"}`
	c, rec := suite.jsonContext(http.MethodPost, "/api/v1/auth/register", body)

	err := suite.handlers.Register(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var envelope common.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(suite.T(), envelope.Success)
	assert.Equal(suite.T(), "User registered successfully", envelope.Message)
	assert.NotEmpty(suite.T(), envelope.Timestamp)
}

func (suite *AuthHandlersTestSuite) TestRegister_InvalidMobileNumber() {
	body := `{"full_name":"Alice","email":"alice@example.com","mobile_number":"12345","password":"secret1"}`
	c, _ := suite.jsonContext(http.MethodPost, "/api/v1/auth/register", body)

	err := suite.handlers.Register(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
}

func (suite *AuthHandlersTestSuite) TestRegister_ShortPassword() {
	body := `{"full_name":"Alice","email":"alice@example.com","mobile_number":"+919876543210","password":"abc"}`
	c, _ := suite.jsonContext(http.MethodPost, "/api/v1/auth/register", body)

	err := suite.handlers.Register(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
}

func (suite *AuthHandlersTestSuite) TestLogin_ServiceErrorPassesThrough() {
	suite.mockSvc.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, apperrors.Unauthorized("Invalid credentials"))

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, _ := suite.jsonContext(http.MethodPost, "/api/v1/auth/login", body)

	err := suite.handlers.Login(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindUnauthorized, appErr.Kind)
}

func (suite *AuthHandlersTestSuite) TestMe_WithoutIdentity() {
	c, _ := suite.jsonContext(http.MethodGet, "/api/v1/auth/me", "")

	err := suite.handlers.Me(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindUnauthorized, appErr.Kind)
}

func (suite *AuthHandlersTestSuite) TestMe_Success() {
	user := &models.User{ID: suite.userID, Email: "alice@example.com"}
	suite.mockSvc.On("CurrentUser", mock.Anything, suite.userID).Return(user, nil)

	c, rec := suite.authenticatedContext(http.MethodGet, "/api/v1/auth/me", "")

	err := suite.handlers.Me(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var envelope common.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(suite.T(), envelope.Success)
}

func (suite *AuthHandlersTestSuite) TestChangePassword_ConfirmMismatch() {
	body := `{"current_password":"oldpass","new_password":"newpass","confirm_password":"different"}`
	c, _ := suite.authenticatedContext(http.MethodPost, "/api/v1/auth/change-password", body)

	err := suite.handlers.ChangePassword(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
	assert.Equal(suite.T(), "New password and confirm password do not match", appErr.Message)
}

func (suite *AuthHandlersTestSuite) TestUpdateAccount_InvalidEmail() {
	body := `{"email":"not-an-email"}`
	c, _ := suite.authenticatedContext(http.MethodPut, "/api/v1/auth/account", body)

	err := suite.handlers.UpdateAccount(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
}
