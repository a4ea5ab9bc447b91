package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a cash, bank or credit card account of a tenant.
type Account struct {
	ID             int             `db:"id" json:"id"`
	TenantID       string          `db:"tenant_id" json:"tenant_id"`
	Name           string          `db:"name" json:"name"`
	Type           string          `db:"type" json:"type"` // cash, bank, credit_card
	Currency       string          `db:"currency" json:"currency"`
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"current_balance"`
	AccountNumber  *string         `db:"account_number" json:"account_number"`
	BankName       *string         `db:"bank_name" json:"bank_name"`
	CardLastFour   *string         `db:"card_last_four" json:"card_last_four"`
	CardHolderName *string         `db:"card_holder_name" json:"card_holder_name"`
	Notes          *string         `db:"notes" json:"notes"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}
