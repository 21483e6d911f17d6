package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultEwayBillStatus = "ACTIVE"

// EwayBillStatuses and TransportModes are the fixed sets for e-way bills.
var (
	EwayBillStatuses = []string{"ACTIVE", "EXPIRED", "CANCELLED"}
	TransportModes   = []string{"ROAD", "RAIL", "AIR", "SHIP"}
)

type EwayBill struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	BillNumber    string          `json:"bill_number" db:"bill_number"`
	ConsignorName string          `json:"consignor_name" db:"consignor_name"`
	ConsigneeName string          `json:"consignee_name" db:"consignee_name"`
	GoodsValue    decimal.Decimal `json:"goods_value" db:"goods_value"`
	TransportMode string          `json:"transport_mode" db:"transport_mode"`
	VehicleNumber *string         `json:"vehicle_number" db:"vehicle_number"`
	DistanceKm    int             `json:"distance_km" db:"distance_km"`
	ValidFrom     Date            `json:"valid_from" db:"valid_from"`
	ValidUntil    Date            `json:"valid_until" db:"valid_until"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
