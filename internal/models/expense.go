package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID            int             `db:"id" json:"id"`
	TenantID      string          `db:"tenant_id" json:"tenant_id"`
	Category      string          `db:"category" json:"category"`
	Description   string          `db:"description" json:"description"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	ExpenseDate   string          `db:"expense_date" json:"expense_date"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Currency      string          `db:"currency" json:"currency"`
	TaxRate       decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Notes         *string         `db:"notes" json:"notes"`
	ProjectID     *string         `db:"project_id" json:"project_id"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}
