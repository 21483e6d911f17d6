package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
)

// InvoiceHandlers handles invoice HTTP requests.
type InvoiceHandlers struct {
	invoiceService services.InvoiceService
}

func NewInvoiceHandlers(invoiceService services.InvoiceService) *InvoiceHandlers {
	return &InvoiceHandlers{invoiceService: invoiceService}
}

var invoiceSortFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"date_issued": true,
	"due_date":    true,
	"amount":      true,
	"status":      true,
	"client_name": true,
}

// CreateInvoiceRequest represents the invoice creation payload.
type CreateInvoiceRequest struct {
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	DateIssued models.Date     `json:"date_issued"`
	DueDate    models.Date     `json:"due_date"`
	Status     string          `json:"status"`
}

func (r *CreateInvoiceRequest) validate() error {
	if err := common.ValidateRequiredString(r.ClientName, "client name"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.ClientName, "client name", 255); err != nil {
		return err
	}
	if err := common.ValidateAmount(r.Amount, "amount"); err != nil {
		return err
	}
	if r.DateIssued.IsZero() {
		return apperrors.BadRequest("date issued is required")
	}
	if r.DueDate.IsZero() {
		return apperrors.BadRequest("due date is required")
	}
	if r.Status != "" {
		return common.ValidateEnum(r.Status, "status", models.InvoiceStatuses)
	}
	return nil
}

// CreateInvoice creates an invoice owned by the caller.
func (h *InvoiceHandlers) CreateInvoice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	invoice := &models.Invoice{
		ClientName: req.ClientName,
		Amount:     req.Amount,
		DateIssued: req.DateIssued,
		DueDate:    req.DueDate,
		Status:     req.Status,
	}

	created, err := h.invoiceService.Create(c.Request().Context(), userID, invoice)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusCreated, created, "Invoice created successfully")
}

// ListInvoices returns the caller's invoices, paged.
func (h *InvoiceHandlers) ListInvoices(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	p := common.ParsePagination(c, invoiceSortFields)
	page, err := h.invoiceService.List(c.Request().Context(), userID, p)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, page, "Invoices retrieved successfully")
}

// GetInvoice returns one invoice if owned by the caller.
func (h *InvoiceHandlers) GetInvoice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceService.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, invoice, "Invoice retrieved successfully")
}

// UpdateInvoice applies a merge-patch to an owned invoice.
func (h *InvoiceHandlers) UpdateInvoice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch services.InvoicePatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := common.ValidateOptionalString(patch.ClientName, "client name", 255); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if patch.Amount != nil {
		if err := common.ValidateAmount(*patch.Amount, "amount"); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if patch.Status != nil {
		if err := common.ValidateEnum(*patch.Status, "status", models.InvoiceStatuses); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}

	invoice, err := h.invoiceService.Update(c.Request().Context(), userID, id, &patch)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, invoice, "Invoice updated successfully")
}

// DeleteInvoice permanently removes an owned invoice.
func (h *InvoiceHandlers) DeleteInvoice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.invoiceService.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, nil, "Invoice deleted successfully")
}
