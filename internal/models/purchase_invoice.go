package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice is an incoming (supplier) invoice.
type PurchaseInvoice struct {
	ID            int             `db:"id" json:"id"`
	TenantID      string          `db:"tenant_id" json:"tenant_id"`
	SupplierID    string          `db:"supplier_id" json:"supplier_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string          `db:"invoice_date" json:"invoice_date"`
	DueDate       string          `db:"due_date" json:"due_date"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount     decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status        string          `db:"status" json:"status"` // pending, accepted, rejected
	InvoiceType   string          `db:"invoice_type" json:"invoice_type"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}
