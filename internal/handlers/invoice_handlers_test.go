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

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, userID uuid.UUID, invoice *models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, userID, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Page), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, userID, id uuid.UUID, patch *services.InvoicePatch) (*models.Invoice, error) {
	args := m.Called(ctx, userID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type InvoiceHandlersTestSuite struct {
	suite.Suite
	mockSvc  *MockInvoiceService
	handlers *InvoiceHandlers
	echo     *echo.Echo
	userID   uuid.UUID
}

func (suite *InvoiceHandlersTestSuite) SetupTest() {
	suite.mockSvc = &MockInvoiceService{}
	suite.handlers = NewInvoiceHandlers(suite.mockSvc)
	suite.echo = echo.New()
	suite.userID = uuid.New()

	suite.mockSvc.Test(suite.T())
}

func (suite *InvoiceHandlersTestSuite) TearDownTest() {
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestInvoiceHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlersTestSuite))
}

func (suite *InvoiceHandlersTestSuite) request(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	ctx := context.WithValue(c.Request().Context(), common.UserIDKey, suite.userID)
	c.SetRequest(c.Request().WithContext(ctx))
	return c, rec
}

func (suite *InvoiceHandlersTestSuite) TestCreateInvoice_Success() {
	body := `{"client_name":"Acme Corp","amount":"1500.50","date_issued":"2026-08-01","due_date":"2026-09-01"}`
	c, rec := suite.request(http.MethodPost, "/api/v1/invoices", body)

	suite.mockSvc.On("Create", mock.Anything, suite.userID, mock.AnythingOfType("*models.Invoice")).
		Return(&models.Invoice{ID: uuid.New(), UserID: suite.userID, Status: "PENDING"}, nil)

	err := suite.handlers.CreateInvoice(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var envelope common.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(suite.T(), envelope.Success)
	assert.Equal(suite.T(), "Invoice created successfully", envelope.Message)
}

func (suite *InvoiceHandlersTestSuite) TestCreateInvoice_MissingDueDate() {
	body := `{"client_name":"Acme Corp","amount":"100","date_issued":"2026-08-01"}`
	c, _ := suite.request(http.MethodPost, "/api/v1/invoices", body)

	err := suite.handlers.CreateInvoice(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
}

func (suite *InvoiceHandlersTestSuite) TestCreateInvoice_UnknownStatus() {
	body := `{"client_name":"Acme Corp","amount":"100","date_issued":"2026-08-01","due_date":"2026-09-01","status":"BOGUS"}`
	c, _ := suite.request(http.MethodPost, "/api/v1/invoices", body)

	err := suite.handlers.CreateInvoice(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
}

func (suite *InvoiceHandlersTestSuite) TestGetInvoice_MalformedID() {
	c, _ := suite.request(http.MethodGet, "/api/v1/invoices/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := suite.handlers.GetInvoice(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindBadRequest, appErr.Kind)
	assert.Equal(suite.T(), "Invalid id format", appErr.Message)
}

func (suite *InvoiceHandlersTestSuite) TestGetInvoice_NotFoundPassesThrough() {
	id := uuid.New()
	c, _ := suite.request(http.MethodGet, "/api/v1/invoices/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.mockSvc.On("GetByID", mock.Anything, suite.userID, id).
		Return(nil, apperrors.NotFound("Invoice not found"))

	err := suite.handlers.GetInvoice(c)
	appErr, ok := apperrors.As(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KindNotFound, appErr.Kind)
}

func (suite *InvoiceHandlersTestSuite) TestListInvoices_ParsesPagination() {
	c, rec := suite.request(http.MethodGet, "/api/v1/invoices?page=2&size=5&sort=due_date,asc", "")

	expected := common.Pagination{Page: 2, Size: 5, SortField: "due_date", SortOrder: "ASC"}
	page := common.NewPage([]*models.Invoice{}, expected, 0)
	suite.mockSvc.On("List", mock.Anything, suite.userID, expected).Return(&page, nil)

	err := suite.handlers.ListInvoices(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *InvoiceHandlersTestSuite) TestUpdateInvoice_PatchForwarded() {
	id := uuid.New()
	body := `{"status":"PAID"}`
	c, rec := suite.request(http.MethodPut, "/api/v1/invoices/"+id.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.mockSvc.On("Update", mock.Anything, suite.userID, id, mock.AnythingOfType("*services.InvoicePatch")).
		Return(&models.Invoice{ID: id, UserID: suite.userID, Status: "PAID"}, nil).
		Run(func(args mock.Arguments) {
			patch := args.Get(3).(*services.InvoicePatch)
			assert.NotNil(suite.T(), patch.Status)
			assert.Equal(suite.T(), "PAID", *patch.Status)
			assert.Nil(suite.T(), patch.ClientName)
		})

	err := suite.handlers.UpdateInvoice(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *InvoiceHandlersTestSuite) TestDeleteInvoice_Success() {
	id := uuid.New()
	c, rec := suite.request(http.MethodDelete, "/api/v1/invoices/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.mockSvc.On("Delete", mock.Anything, suite.userID, id).Return(nil)

	err := suite.handlers.DeleteInvoice(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var envelope common.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(suite.T(), "Invoice deleted successfully", envelope.Message)
}
