package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, common.APIResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zap.NewNop())(err, c)

	var envelope common.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestErrorHandler_NotFound(t *testing.T) {
	rec, envelope := runErrorHandler(t, apperrors.NotFound("Invoice not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invoice not found", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestErrorHandler_Conflict(t *testing.T) {
	rec, envelope := runErrorHandler(t, apperrors.Conflict("E-way bill number already exists"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "E-way bill number already exists", envelope.Message)
}

func TestErrorHandler_InternalHidesDetail(t *testing.T) {
	rec, envelope := runErrorHandler(t, apperrors.Internal("failed to create invoice", errors.New("pq: disk full")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", envelope.Message)
	assert.NotContains(t, envelope.Message, "disk full")
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, envelope := runErrorHandler(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", envelope.Message)
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	rec, envelope := runErrorHandler(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", envelope.Message)
}
