package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethods is the fixed set of allowed payment methods.
var PaymentMethods = []string{"CASH", "CREDIT_CARD", "DEBIT_CARD", "BANK_TRANSFER", "UPI", "CHEQUE", "OTHER"}

type Payment struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	UserID               uuid.UUID       `json:"user_id" db:"user_id"`
	InvoiceID            *uuid.UUID      `json:"invoice_id" db:"invoice_id"`
	PayerName            string          `json:"payer_name" db:"payer_name"`
	Amount               decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate          Date            `json:"payment_date" db:"payment_date"`
	PaymentMethod        string          `json:"payment_method" db:"payment_method"`
	TransactionReference *string         `json:"transaction_reference" db:"transaction_reference"`
	Notes                *string         `json:"notes" db:"notes"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}
