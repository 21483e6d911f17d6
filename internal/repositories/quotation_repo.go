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

type QuotationRepository interface {
	Create(ctx context.Context, quotation *models.Quotation) error
	GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error)
	Update(ctx context.Context, quotation *models.Quotation) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Quotation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type quotationRepo struct {
	db Database
}

func NewQuotationRepo(db Database) QuotationRepository {
	return &quotationRepo{db: db}
}

const quotationColumns = `id, user_id, client_name, amount, valid_until, status, description, created_at, updated_at`

func (r *quotationRepo) Create(ctx context.Context, quotation *models.Quotation) error {
	query := `
		INSERT INTO quotations (id, user_id, client_name, amount, valid_until, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query, quotation.ID, quotation.UserID, quotation.ClientName, quotation.Amount,
		quotation.ValidUntil, quotation.Status, quotation.Description, quotation.CreatedAt, quotation.UpdatedAt)
	return err
}

func (r *quotationRepo) GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE user_id = $1 AND id = $2`
	quotation := &models.Quotation{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&quotation.ID, &quotation.UserID, &quotation.ClientName, &quotation.Amount,
		&quotation.ValidUntil, &quotation.Status, &quotation.Description,
		&quotation.CreatedAt, &quotation.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

func (r *quotationRepo) Update(ctx context.Context, quotation *models.Quotation) error {
	query := `
		UPDATE quotations
		SET client_name = $1, amount = $2, valid_until = $3, status = $4, description = $5, updated_at = $6
		WHERE user_id = $7 AND id = $8
	`
	_, err := r.db.Exec(ctx, query, quotation.ClientName, quotation.Amount, quotation.ValidUntil,
		quotation.Status, quotation.Description, quotation.UpdatedAt, quotation.UserID, quotation.ID)
	return err
}

func (r *quotationRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM quotations WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}

func (r *quotationRepo) ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.Quotation, error) {
	query := fmt.Sprintf(`SELECT `+quotationColumns+` FROM quotations WHERE user_id = $1 ORDER BY %s LIMIT $2 OFFSET $3`, p.OrderBy())
	rows, err := r.db.Query(ctx, query, userID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		quotation := &models.Quotation{}
		if err := rows.Scan(&quotation.ID, &quotation.UserID, &quotation.ClientName, &quotation.Amount,
			&quotation.ValidUntil, &quotation.Status, &quotation.Description,
			&quotation.CreatedAt, &quotation.UpdatedAt); err != nil {
			return nil, err
		}
		quotations = append(quotations, quotation)
	}
	return quotations, rows.Err()
}

func (r *quotationRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quotations WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
