package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
)

// PaymentHandlers handles payment HTTP requests.
type PaymentHandlers struct {
	paymentService services.PaymentService
}

func NewPaymentHandlers(paymentService services.PaymentService) *PaymentHandlers {
	return &PaymentHandlers{paymentService: paymentService}
}

var paymentSortFields = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"payment_date":   true,
	"amount":         true,
	"payment_method": true,
	"payer_name":     true,
}

// CreatePaymentRequest represents the payment creation payload. The invoice
// reference is optional and recorded as supplied.
type CreatePaymentRequest struct {
	InvoiceID            *uuid.UUID      `json:"invoice_id"`
	PayerName            string          `json:"payer_name"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentDate          models.Date     `json:"payment_date"`
	PaymentMethod        string          `json:"payment_method"`
	TransactionReference *string         `json:"transaction_reference"`
	Notes                *string         `json:"notes"`
}

func (r *CreatePaymentRequest) validate() error {
	if err := common.ValidateRequiredString(r.PayerName, "payer name"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.PayerName, "payer name", 255); err != nil {
		return err
	}
	if err := common.ValidateAmount(r.Amount, "amount"); err != nil {
		return err
	}
	if r.PaymentDate.IsZero() {
		return apperrors.BadRequest("payment date is required")
	}
	if err := common.ValidateEnum(r.PaymentMethod, "payment method", models.PaymentMethods); err != nil {
		return err
	}
	return common.ValidateOptionalString(r.TransactionReference, "transaction reference", 255)
}

// CreatePayment creates a payment owned by the caller.
func (h *PaymentHandlers) CreatePayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	payment := &models.Payment{
		InvoiceID:            req.InvoiceID,
		PayerName:            req.PayerName,
		Amount:               req.Amount,
		PaymentDate:          req.PaymentDate,
		PaymentMethod:        req.PaymentMethod,
		TransactionReference: req.TransactionReference,
		Notes:                req.Notes,
	}

	created, err := h.paymentService.Create(c.Request().Context(), userID, payment)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusCreated, created, "Payment created successfully")
}

// ListPayments returns the caller's payments, paged.
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	p := common.ParsePagination(c, paymentSortFields)
	page, err := h.paymentService.List(c.Request().Context(), userID, p)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, page, "Payments retrieved successfully")
}

// GetPayment returns one payment if owned by the caller.
func (h *PaymentHandlers) GetPayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payment, err := h.paymentService.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, payment, "Payment retrieved successfully")
}

// UpdatePayment applies a merge-patch to an owned payment.
func (h *PaymentHandlers) UpdatePayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch services.PaymentPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := common.ValidateOptionalString(patch.PayerName, "payer name", 255); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if patch.Amount != nil {
		if err := common.ValidateAmount(*patch.Amount, "amount"); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if patch.PaymentMethod != nil {
		if err := common.ValidateEnum(*patch.PaymentMethod, "payment method", models.PaymentMethods); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if err := common.ValidateOptionalString(patch.TransactionReference, "transaction reference", 255); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	payment, err := h.paymentService.Update(c.Request().Context(), userID, id, &patch)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, payment, "Payment updated successfully")
}

// DeletePayment permanently removes an owned payment.
func (h *PaymentHandlers) DeletePayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.paymentService.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, nil, "Payment deleted successfully")
}
