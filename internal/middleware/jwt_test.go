package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	args := m.Called(ctx, mobileNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailAndMobileNumber(ctx context.Context, email, mobileNumber string) (bool, error) {
	args := m.Called(ctx, email, mobileNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrMobileNumber(ctx context.Context, email, mobileNumber string) (*models.User, error) {
	args := m.Called(ctx, email, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type ResolveIdentityTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	echo     *echo.Echo
}

func (suite *ResolveIdentityTestSuite) SetupTest() {
	suite.mockRepo = &MockUserRepository{}
	suite.echo = echo.New()

	suite.mockRepo.Test(suite.T())
}

func (suite *ResolveIdentityTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestResolveIdentityTestSuite(t *testing.T) {
	suite.Run(t, new(ResolveIdentityTestSuite))
}

func (suite *ResolveIdentityTestSuite) contextWithClaims(email string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	if email != "" {
		c.Set(claimsContextKey, &services.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		})
	}
	return c
}

func (suite *ResolveIdentityTestSuite) TestResolveIdentity_ThreadsUserThroughContext() {
	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	suite.mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	c := suite.contextWithClaims("alice@example.com")
	var seenID uuid.UUID
	var seenEmail string
	next := func(c echo.Context) error {
		seenID, _ = common.GetUserIDFromContext(c.Request().Context())
		seenEmail, _ = common.GetUserEmailFromContext(c.Request().Context())
		return nil
	}

	err := ResolveIdentity(suite.mockRepo)(next)(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, seenID)
	assert.Equal(suite.T(), "alice@example.com", seenEmail)
}

func (suite *ResolveIdentityTestSuite) TestResolveIdentity_DeletedAccountIsForbidden() {
	suite.mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	c := suite.contextWithClaims("ghost@example.com")
	next := func(c echo.Context) error {
		suite.T().Fatal("next should not run for a deleted account")
		return nil
	}

	err := ResolveIdentity(suite.mockRepo)(next)(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindForbidden, appErr.Kind)
	assert.Equal(suite.T(), "User account no longer exists", appErr.Message)
}

func (suite *ResolveIdentityTestSuite) TestResolveIdentity_MissingClaimsIsUnauthorized() {
	c := suite.contextWithClaims("")
	next := func(c echo.Context) error { return nil }

	err := ResolveIdentity(suite.mockRepo)(next)(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindUnauthorized, appErr.Kind)
}
