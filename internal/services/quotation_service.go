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

// QuotationPatch is a merge-patch: only present fields overwrite stored values.
type QuotationPatch struct {
	ClientName  *string          `json:"client_name"`
	Amount      *decimal.Decimal `json:"amount"`
	ValidUntil  *models.Date     `json:"valid_until"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
}

type QuotationService interface {
	Create(ctx context.Context, userID uuid.UUID, quotation *models.Quotation) (*models.Quotation, error)
	List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *QuotationPatch) (*models.Quotation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type quotationService struct {
	quotationRepo repositories.QuotationRepository
}

func NewQuotationService(quotationRepo repositories.QuotationRepository) QuotationService {
	return &quotationService{quotationRepo: quotationRepo}
}

func (s *quotationService) Create(ctx context.Context, userID uuid.UUID, quotation *models.Quotation) (*models.Quotation, error) {
	now := time.Now()
	quotation.ID = uuid.New()
	quotation.UserID = userID
	if quotation.Status == "" {
		quotation.Status = models.DefaultQuotationStatus
	}
	quotation.CreatedAt = now
	quotation.UpdatedAt = now

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, apperrors.Internal("failed to create quotation", err)
	}
	return quotation, nil
}

func (s *quotationService) List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error) {
	quotations, err := s.quotationRepo.ListByUserID(ctx, userID, p)
	if err != nil {
		return nil, apperrors.Internal("failed to list quotations", err)
	}
	total, err := s.quotationRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to count quotations", err)
	}
	page := common.NewPage(quotations, p, total)
	return &page, nil
}

func (s *quotationService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetByUserIDAndID(ctx, userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get quotation", err)
	}
	if quotation == nil {
		return nil, apperrors.NotFound("Quotation not found")
	}
	return quotation, nil
}

func (s *quotationService) Update(ctx context.Context, userID, id uuid.UUID, patch *QuotationPatch) (*models.Quotation, error) {
	quotation, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientName != nil {
		quotation.ClientName = *patch.ClientName
	}
	if patch.Amount != nil {
		quotation.Amount = *patch.Amount
	}
	if patch.ValidUntil != nil {
		quotation.ValidUntil = *patch.ValidUntil
	}
	if patch.Status != nil {
		quotation.Status = *patch.Status
	}
	if patch.Description != nil {
		quotation.Description = patch.Description
	}
	quotation.UpdatedAt = time.Now()

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, apperrors.Internal("failed to update quotation", err)
	}
	return quotation, nil
}

func (s *quotationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.quotationRepo.Delete(ctx, userID, id); err != nil {
		return apperrors.Internal("failed to delete quotation", err)
	}
	return nil
}
