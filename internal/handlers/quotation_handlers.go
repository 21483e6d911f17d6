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

// QuotationHandlers handles quotation HTTP requests.
type QuotationHandlers struct {
	quotationService services.QuotationService
}

func NewQuotationHandlers(quotationService services.QuotationService) *QuotationHandlers {
	return &QuotationHandlers{quotationService: quotationService}
}

var quotationSortFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"valid_until": true,
	"amount":      true,
	"status":      true,
	"client_name": true,
}

// CreateQuotationRequest represents the quotation creation payload.
type CreateQuotationRequest struct {
	ClientName  string          `json:"client_name"`
	Amount      decimal.Decimal `json:"amount"`
	ValidUntil  models.Date     `json:"valid_until"`
	Status      string          `json:"status"`
	Description *string         `json:"description"`
}

func (r *CreateQuotationRequest) validate() error {
	if err := common.ValidateRequiredString(r.ClientName, "client name"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.ClientName, "client name", 255); err != nil {
		return err
	}
	if err := common.ValidateAmount(r.Amount, "amount"); err != nil {
		return err
	}
	if r.ValidUntil.IsZero() {
		return apperrors.BadRequest("valid until date is required")
	}
	if r.Status != "" {
		return common.ValidateEnum(r.Status, "status", models.QuotationStatuses)
	}
	return nil
}

// CreateQuotation creates a quotation owned by the caller.
func (h *QuotationHandlers) CreateQuotation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateQuotationRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	quotation := &models.Quotation{
		ClientName:  req.ClientName,
		Amount:      req.Amount,
		ValidUntil:  req.ValidUntil,
		Status:      req.Status,
		Description: req.Description,
	}

	created, err := h.quotationService.Create(c.Request().Context(), userID, quotation)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusCreated, created, "Quotation created successfully")
}

// ListQuotations returns the caller's quotations, paged.
func (h *QuotationHandlers) ListQuotations(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	p := common.ParsePagination(c, quotationSortFields)
	page, err := h.quotationService.List(c.Request().Context(), userID, p)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, page, "Quotations retrieved successfully")
}

// GetQuotation returns one quotation if owned by the caller.
func (h *QuotationHandlers) GetQuotation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	quotation, err := h.quotationService.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, quotation, "Quotation retrieved successfully")
}

// UpdateQuotation applies a merge-patch to an owned quotation.
func (h *QuotationHandlers) UpdateQuotation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch services.QuotationPatch
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
		if err := common.ValidateEnum(*patch.Status, "status", models.QuotationStatuses); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}

	quotation, err := h.quotationService.Update(c.Request().Context(), userID, id, &patch)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, quotation, "Quotation updated successfully")
}

// DeleteQuotation permanently removes an owned quotation.
func (h *QuotationHandlers) DeleteQuotation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.quotationService.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, nil, "Quotation deleted successfully")
}
