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

// PaymentPatch is a merge-patch: only present fields overwrite stored values.
// The optional invoice reference is not patchable, matching create-only
// semantics for the link.
type PaymentPatch struct {
	PayerName            *string          `json:"payer_name"`
	Amount               *decimal.Decimal `json:"amount"`
	PaymentDate          *models.Date     `json:"payment_date"`
	PaymentMethod        *string          `json:"payment_method"`
	TransactionReference *string          `json:"transaction_reference"`
	Notes                *string          `json:"notes"`
}

type PaymentService interface {
	Create(ctx context.Context, userID uuid.UUID, payment *models.Payment) (*models.Payment, error)
	List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *PaymentPatch) (*models.Payment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) Create(ctx context.Context, userID uuid.UUID, payment *models.Payment) (*models.Payment, error) {
	now := time.Now()
	payment.ID = uuid.New()
	payment.UserID = userID
	payment.CreatedAt = now
	payment.UpdatedAt = now

	// payment.InvoiceID is stored as supplied; there is no existence check
	// against the invoices table.
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, apperrors.Internal("failed to create payment", err)
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error) {
	payments, err := s.paymentRepo.ListByUserID(ctx, userID, p)
	if err != nil {
		return nil, apperrors.Internal("failed to list payments", err)
	}
	total, err := s.paymentRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to count payments", err)
	}
	page := common.NewPage(payments, p, total)
	return &page, nil
}

func (s *paymentService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByUserIDAndID(ctx, userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get payment", err)
	}
	if payment == nil {
		return nil, apperrors.NotFound("Payment not found")
	}
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, userID, id uuid.UUID, patch *PaymentPatch) (*models.Payment, error) {
	payment, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.PayerName != nil {
		payment.PayerName = *patch.PayerName
	}
	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.PaymentDate != nil {
		payment.PaymentDate = *patch.PaymentDate
	}
	if patch.PaymentMethod != nil {
		payment.PaymentMethod = *patch.PaymentMethod
	}
	if patch.TransactionReference != nil {
		payment.TransactionReference = patch.TransactionReference
	}
	if patch.Notes != nil {
		payment.Notes = patch.Notes
	}
	payment.UpdatedAt = time.Now()

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, apperrors.Internal("failed to update payment", err)
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, userID, id); err != nil {
		return apperrors.Internal("failed to delete payment", err)
	}
	return nil
}
