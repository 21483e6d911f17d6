package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/repositories"
)

// EwayBillPatch is a merge-patch: only present fields overwrite stored values.
// The bill number is assigned at creation and never patched.
type EwayBillPatch struct {
	ConsignorName *string          `json:"consignor_name"`
	ConsigneeName *string          `json:"consignee_name"`
	GoodsValue    *decimal.Decimal `json:"goods_value"`
	TransportMode *string          `json:"transport_mode"`
	VehicleNumber *string          `json:"vehicle_number"`
	DistanceKm    *int             `json:"distance_km"`
	ValidFrom     *models.Date     `json:"valid_from"`
	ValidUntil    *models.Date     `json:"valid_until"`
	Status        *string          `json:"status"`
}

type EwayBillService interface {
	Create(ctx context.Context, userID uuid.UUID, bill *models.EwayBill) (*models.EwayBill, error)
	List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.EwayBill, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *EwayBillPatch) (*models.EwayBill, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ewayBillService struct {
	ewayBillRepo repositories.EwayBillRepository
}

func NewEwayBillService(ewayBillRepo repositories.EwayBillRepository) EwayBillService {
	return &ewayBillService{ewayBillRepo: ewayBillRepo}
}

// Create persists a new e-way bill. Bill numbers are unique across all users;
// the pre-check gives a friendly message and the unique index catches races.
func (s *ewayBillService) Create(ctx context.Context, userID uuid.UUID, bill *models.EwayBill) (*models.EwayBill, error) {
	taken, err := s.ewayBillRepo.ExistsByBillNumber(ctx, bill.BillNumber)
	if err != nil {
		return nil, apperrors.Internal("failed to check bill number uniqueness", err)
	}
	if taken {
		return nil, apperrors.Conflict("E-way bill number already exists")
	}

	now := time.Now()
	bill.ID = uuid.New()
	bill.UserID = userID
	if bill.Status == "" {
		bill.Status = models.DefaultEwayBillStatus
	}
	bill.CreatedAt = now
	bill.UpdatedAt = now

	if err := s.ewayBillRepo.Create(ctx, bill); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("E-way bill number already exists")
		}
		return nil, apperrors.Internal("failed to create e-way bill", err)
	}
	return bill, nil
}

func (s *ewayBillService) List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error) {
	bills, err := s.ewayBillRepo.ListByUserID(ctx, userID, p)
	if err != nil {
		return nil, apperrors.Internal("failed to list e-way bills", err)
	}
	total, err := s.ewayBillRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to count e-way bills", err)
	}
	page := common.NewPage(bills, p, total)
	return &page, nil
}

func (s *ewayBillService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.EwayBill, error) {
	bill, err := s.ewayBillRepo.GetByUserIDAndID(ctx, userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get e-way bill", err)
	}
	if bill == nil {
		return nil, apperrors.NotFound("E-way bill not found")
	}
	return bill, nil
}

func (s *ewayBillService) Update(ctx context.Context, userID, id uuid.UUID, patch *EwayBillPatch) (*models.EwayBill, error) {
	bill, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.ConsignorName != nil {
		bill.ConsignorName = *patch.ConsignorName
	}
	if patch.ConsigneeName != nil {
		bill.ConsigneeName = *patch.ConsigneeName
	}
	if patch.GoodsValue != nil {
		bill.GoodsValue = *patch.GoodsValue
	}
	if patch.TransportMode != nil {
		bill.TransportMode = *patch.TransportMode
	}
	if patch.VehicleNumber != nil {
		bill.VehicleNumber = patch.VehicleNumber
	}
	if patch.DistanceKm != nil {
		bill.DistanceKm = *patch.DistanceKm
	}
	if patch.ValidFrom != nil {
		bill.ValidFrom = *patch.ValidFrom
	}
	if patch.ValidUntil != nil {
		bill.ValidUntil = *patch.ValidUntil
	}
	if patch.Status != nil {
		bill.Status = *patch.Status
	}
	bill.UpdatedAt = time.Now()

	if err := s.ewayBillRepo.Update(ctx, bill); err != nil {
		return nil, apperrors.Internal("failed to update e-way bill", err)
	}
	return bill, nil
}

func (s *ewayBillService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.ewayBillRepo.Delete(ctx, userID, id); err != nil {
		return apperrors.Internal("failed to delete e-way bill", err)
	}
	return nil
}
