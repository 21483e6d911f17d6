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

// InvoicePatch is a merge-patch: only present fields overwrite stored values.
type InvoicePatch struct {
	ClientName *string          `json:"client_name"`
	Amount     *decimal.Decimal `json:"amount"`
	DateIssued *models.Date     `json:"date_issued"`
	DueDate    *models.Date     `json:"due_date"`
	Status     *string          `json:"status"`
}

type InvoiceService interface {
	Create(ctx context.Context, userID uuid.UUID, invoice *models.Invoice) (*models.Invoice, error)
	List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *InvoicePatch) (*models.Invoice, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

func (s *invoiceService) Create(ctx context.Context, userID uuid.UUID, invoice *models.Invoice) (*models.Invoice, error) {
	now := time.Now()
	invoice.ID = uuid.New()
	invoice.UserID = userID
	if invoice.Status == "" {
		invoice.Status = models.DefaultInvoiceStatus
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, apperrors.Internal("failed to create invoice", err)
	}
	return invoice, nil
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID, p common.Pagination) (*common.Page, error) {
	invoices, err := s.invoiceRepo.ListByUserID(ctx, userID, p)
	if err != nil {
		return nil, apperrors.Internal("failed to list invoices", err)
	}
	total, err := s.invoiceRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to count invoices", err)
	}
	page := common.NewPage(invoices, p, total)
	return &page, nil
}

func (s *invoiceService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByUserIDAndID(ctx, userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get invoice", err)
	}
	if invoice == nil {
		return nil, apperrors.NotFound("Invoice not found")
	}
	return invoice, nil
}

func (s *invoiceService) Update(ctx context.Context, userID, id uuid.UUID, patch *InvoicePatch) (*models.Invoice, error) {
	invoice, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientName != nil {
		invoice.ClientName = *patch.ClientName
	}
	if patch.Amount != nil {
		invoice.Amount = *patch.Amount
	}
	if patch.DateIssued != nil {
		invoice.DateIssued = *patch.DateIssued
	}
	if patch.DueDate != nil {
		invoice.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		invoice.Status = *patch.Status
	}
	invoice.UpdatedAt = time.Now()

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, apperrors.Internal("failed to update invoice", err)
	}
	return invoice, nil
}

func (s *invoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.Delete(ctx, userID, id); err != nil {
		return apperrors.Internal("failed to delete invoice", err)
	}
	return nil
}
