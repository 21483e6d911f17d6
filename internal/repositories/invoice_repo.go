package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	// GetByUserIDAndID filters by id and owner in one query so a record owned
	// by someone else is indistinguishable from a missing one.
	GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Invoice, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type invoiceRepo struct {
	db Database
}

func NewInvoiceRepo(db Database) InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceColumns = `id, user_id, client_name, amount, date_issued, due_date, status, created_at, updated_at`

func (r *invoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, user_id, client_name, amount, date_issued, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.UserID, invoice.ClientName, invoice.Amount,
		invoice.DateIssued, invoice.DueDate, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt)
	return err
}

func (r *invoiceRepo) GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 AND id = $2`
	invoice := &models.Invoice{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&invoice.ID, &invoice.UserID, &invoice.ClientName, &invoice.Amount,
		&invoice.DateIssued, &invoice.DueDate, &invoice.Status, &invoice.CreatedAt, &invoice.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	query := `
		UPDATE invoices
		SET client_name = $1, amount = $2, date_issued = $3, due_date = $4, status = $5, updated_at = $6
		WHERE user_id = $7 AND id = $8
	`
	_, err := r.db.Exec(ctx, query, invoice.ClientName, invoice.Amount, invoice.DateIssued,
		invoice.DueDate, invoice.Status, invoice.UpdatedAt, invoice.UserID, invoice.ID)
	return err
}

func (r *invoiceRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}

func (r *invoiceRepo) ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Invoice, error) {
	// Sort field and order are whitelisted in ParsePagination.
	query := fmt.Sprintf(`SELECT `+invoiceColumns+` FROM invoices WHERE user_id = $1 ORDER BY %s LIMIT $2 OFFSET $3`, p.OrderBy())
	rows, err := r.db.Query(ctx, query, userID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		if err := rows.Scan(&invoice.ID, &invoice.UserID, &invoice.ClientName, &invoice.Amount,
			&invoice.DateIssued, &invoice.DueDate, &invoice.Status, &invoice.CreatedAt, &invoice.UpdatedAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
