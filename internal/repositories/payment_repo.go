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

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Payment, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type paymentRepo struct {
	db Database
}

func NewPaymentRepo(db Database) PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentColumns = `id, user_id, invoice_id, payer_name, amount, payment_date, payment_method, transaction_reference, notes, created_at, updated_at`

func (r *paymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, invoice_id, payer_name, amount, payment_date, payment_method, transaction_reference, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query, payment.ID, payment.UserID, payment.InvoiceID, payment.PayerName,
		payment.Amount, payment.PaymentDate, payment.PaymentMethod, payment.TransactionReference,
		payment.Notes, payment.CreatedAt, payment.UpdatedAt)
	return err
}

func (r *paymentRepo) GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 AND id = $2`
	payment := &models.Payment{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&payment.ID, &payment.UserID, &payment.InvoiceID, &payment.PayerName, &payment.Amount,
		&payment.PaymentDate, &payment.PaymentMethod, &payment.TransactionReference, &payment.Notes,
		&payment.CreatedAt, &payment.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	query := `
		UPDATE payments
		SET payer_name = $1, amount = $2, payment_date = $3, payment_method = $4, transaction_reference = $5, notes = $6, updated_at = $7
		WHERE user_id = $8 AND id = $9
	`
	_, err := r.db.Exec(ctx, query, payment.PayerName, payment.Amount, payment.PaymentDate,
		payment.PaymentMethod, payment.TransactionReference, payment.Notes, payment.UpdatedAt,
		payment.UserID, payment.ID)
	return err
}

func (r *paymentRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}

func (r *paymentRepo) ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Payment, error) {
	query := fmt.Sprintf(`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY %s LIMIT $2 OFFSET $3`, p.OrderBy())
	rows, err := r.db.Query(ctx, query, userID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.UserID, &payment.InvoiceID, &payment.PayerName,
			&payment.Amount, &payment.PaymentDate, &payment.PaymentMethod, &payment.TransactionReference,
			&payment.Notes, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
