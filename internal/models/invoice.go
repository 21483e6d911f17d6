package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultInvoiceStatus = "PENDING"

// InvoiceStatuses is the fixed set of allowed invoice statuses.
var InvoiceStatuses = []string{"PENDING", "PAID", "OVERDUE", "CANCELLED"}

type Invoice struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	ClientName string          `json:"client_name" db:"client_name"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	DateIssued Date            `json:"date_issued" db:"date_issued"`
	DueDate    Date            `json:"due_date" db:"due_date"`
	Status     string          `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
