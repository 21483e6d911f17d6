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

// EwayBillHandlers handles e-way bill HTTP requests.
type EwayBillHandlers struct {
	ewayBillService services.EwayBillService
}

func NewEwayBillHandlers(ewayBillService services.EwayBillService) *EwayBillHandlers {
	return &EwayBillHandlers{ewayBillService: ewayBillService}
}

var ewayBillSortFields = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"valid_from":     true,
	"valid_until":    true,
	"goods_value":    true,
	"status":         true,
	"bill_number":    true,
	"consignor_name": true,
	"consignee_name": true,
}

// CreateEwayBillRequest represents the e-way bill creation payload.
type CreateEwayBillRequest struct {
	BillNumber    string          `json:"bill_number"`
	ConsignorName string          `json:"consignor_name"`
	ConsigneeName string          `json:"consignee_name"`
	GoodsValue    decimal.Decimal `json:"goods_value"`
	TransportMode string          `json:"transport_mode"`
	VehicleNumber *string         `json:"vehicle_number"`
	DistanceKm    int             `json:"distance_km"`
	ValidFrom     models.Date     `json:"valid_from"`
	ValidUntil    models.Date     `json:"valid_until"`
	Status        string          `json:"status"`
}

func (r *CreateEwayBillRequest) validate() error {
	if err := common.ValidateRequiredString(r.BillNumber, "bill number"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.BillNumber, "bill number", 100); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(r.ConsignorName, "consignor name"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.ConsignorName, "consignor name", 255); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(r.ConsigneeName, "consignee name"); err != nil {
		return err
	}
	if err := common.ValidateStringLength(r.ConsigneeName, "consignee name", 255); err != nil {
		return err
	}
	if err := common.ValidateAmount(r.GoodsValue, "goods value"); err != nil {
		return err
	}
	if err := common.ValidateEnum(r.TransportMode, "transport mode", models.TransportModes); err != nil {
		return err
	}
	if err := common.ValidateOptionalString(r.VehicleNumber, "vehicle number", 50); err != nil {
		return err
	}
	if r.DistanceKm < 1 {
		return apperrors.BadRequest("distance must be at least 1 km")
	}
	if r.ValidFrom.IsZero() {
		return apperrors.BadRequest("valid from date is required")
	}
	if r.ValidUntil.IsZero() {
		return apperrors.BadRequest("valid until date is required")
	}
	if r.Status != "" {
		return common.ValidateEnum(r.Status, "status", models.EwayBillStatuses)
	}
	return nil
}

// CreateEwayBill creates an e-way bill owned by the caller. The bill number
// must be unique across all users.
func (h *EwayBillHandlers) CreateEwayBill(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateEwayBillRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	bill := &models.EwayBill{
		BillNumber:    req.BillNumber,
		ConsignorName: req.ConsignorName,
		ConsigneeName: req.ConsigneeName,
		GoodsValue:    req.GoodsValue,
		TransportMode: req.TransportMode,
		VehicleNumber: req.VehicleNumber,
		DistanceKm:    req.DistanceKm,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		Status:        req.Status,
	}

	created, err := h.ewayBillService.Create(c.Request().Context(), userID, bill)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusCreated, created, "E-way bill created successfully")
}

// ListEwayBills returns the caller's e-way bills, paged.
func (h *EwayBillHandlers) ListEwayBills(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	p := common.ParsePagination(c, ewayBillSortFields)
	page, err := h.ewayBillService.List(c.Request().Context(), userID, p)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, page, "E-way bills retrieved successfully")
}

// GetEwayBill returns one e-way bill if owned by the caller.
func (h *EwayBillHandlers) GetEwayBill(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	bill, err := h.ewayBillService.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, bill, "E-way bill retrieved successfully")
}

// UpdateEwayBill applies a merge-patch to an owned e-way bill.
func (h *EwayBillHandlers) UpdateEwayBill(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch services.EwayBillPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := common.ValidateOptionalString(patch.ConsignorName, "consignor name", 255); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if err := common.ValidateOptionalString(patch.ConsigneeName, "consignee name", 255); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if patch.GoodsValue != nil {
		if err := common.ValidateAmount(*patch.GoodsValue, "goods value"); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if patch.TransportMode != nil {
		if err := common.ValidateEnum(*patch.TransportMode, "transport mode", models.TransportModes); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if err := common.ValidateOptionalString(patch.VehicleNumber, "vehicle number", 50); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if patch.DistanceKm != nil && *patch.DistanceKm < 1 {
		return apperrors.BadRequest("distance must be at least 1 km")
	}
	if patch.Status != nil {
		if err := common.ValidateEnum(*patch.Status, "status", models.EwayBillStatuses); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}

	bill, err := h.ewayBillService.Update(c.Request().Context(), userID, id, &patch)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, bill, "E-way bill updated successfully")
}

// DeleteEwayBill permanently removes an owned e-way bill.
func (h *EwayBillHandlers) DeleteEwayBill(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.ewayBillService.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, nil, "E-way bill deleted successfully")
}
