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

type EwayBillRepository interface {
	Create(ctx context.Context, bill *models.EwayBill) error
	GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.EwayBill, error)
	Update(ctx context.Context, bill *models.EwayBill) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.EwayBill, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	// ExistsByBillNumber checks across all users; bill numbers are globally unique.
	ExistsByBillNumber(ctx context.Context, billNumber string) (bool, error)
}

type ewayBillRepo struct {
	db Database
}

func NewEwayBillRepo(db Database) EwayBillRepository {
	return &ewayBillRepo{db: db}
}

const ewayBillColumns = `id, user_id, bill_number, consignor_name, consignee_name, goods_value, transport_mode, vehicle_number, distance_km, valid_from, valid_until, status, created_at, updated_at`

func (r *ewayBillRepo) Create(ctx context.Context, bill *models.EwayBill) error {
	query := `
		INSERT INTO eway_bills (id, user_id, bill_number, consignor_name, consignee_name, goods_value, transport_mode, vehicle_number, distance_km, valid_from, valid_until, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query, bill.ID, bill.UserID, bill.BillNumber, bill.ConsignorName,
		bill.ConsigneeName, bill.GoodsValue, bill.TransportMode, bill.VehicleNumber, bill.DistanceKm,
		bill.ValidFrom, bill.ValidUntil, bill.Status, bill.CreatedAt, bill.UpdatedAt)
	return err
}

func (r *ewayBillRepo) GetByUserIDAndID(ctx context.Context, userID, id uuid.UUID) (*models.EwayBill, error) {
	query := `SELECT ` + ewayBillColumns + ` FROM eway_bills WHERE user_id = $1 AND id = $2`
	bill := &models.EwayBill{}
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&bill.ID, &bill.UserID, &bill.BillNumber, &bill.ConsignorName, &bill.ConsigneeName,
		&bill.GoodsValue, &bill.TransportMode, &bill.VehicleNumber, &bill.DistanceKm,
		&bill.ValidFrom, &bill.ValidUntil, &bill.Status, &bill.CreatedAt, &bill.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *ewayBillRepo) Update(ctx context.Context, bill *models.EwayBill) error {
	query := `
		UPDATE eway_bills
		SET consignor_name = $1, consignee_name = $2, goods_value = $3, transport_mode = $4, vehicle_number = $5, distance_km = $6, valid_from = $7, valid_until = $8, status = $9, updated_at = $10
		WHERE user_id = $11 AND id = $12
	`
	_, err := r.db.Exec(ctx, query, bill.ConsignorName, bill.ConsigneeName, bill.GoodsValue,
		bill.TransportMode, bill.VehicleNumber, bill.DistanceKm, bill.ValidFrom, bill.ValidUntil,
		bill.Status, bill.UpdatedAt, bill.UserID, bill.ID)
	return err
}

func (r *ewayBillRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM eway_bills WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}

func (r *ewayBillRepo) ListByUserID(ctx context.Context, userID uuid.UUID, p common.Pagination) ([]*models.EwayBill, error) {
	query := fmt.Sprintf(`SELECT `+ewayBillColumns+` FROM eway_bills WHERE user_id = $1 ORDER BY %s LIMIT $2 OFFSET $3`, p.OrderBy())
	rows, err := r.db.Query(ctx, query, userID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.EwayBill
	for rows.Next() {
		bill := &models.EwayBill{}
		if err := rows.Scan(&bill.ID, &bill.UserID, &bill.BillNumber, &bill.ConsignorName,
			&bill.ConsigneeName, &bill.GoodsValue, &bill.TransportMode, &bill.VehicleNumber,
			&bill.DistanceKm, &bill.ValidFrom, &bill.ValidUntil, &bill.Status,
			&bill.CreatedAt, &bill.UpdatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

func (r *ewayBillRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM eway_bills WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *ewayBillRepo) ExistsByBillNumber(ctx context.Context, billNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM eway_bills WHERE bill_number = $1)`
	err := r.db.QueryRow(ctx, query, billNumber).Scan(&exists)
	return exists, err
}
