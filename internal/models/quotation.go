package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultQuotationStatus = "DRAFT"

// QuotationStatuses is the fixed set of allowed quotation statuses.
var QuotationStatuses = []string{"DRAFT", "SENT", "ACCEPTED", "REJECTED", "EXPIRED"}

type Quotation struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	ClientName  string          `json:"client_name" db:"client_name"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	ValidUntil  Date            `json:"valid_until" db:"valid_until"`
	Status      string          `json:"status" db:"status"`
	Description *string         `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
