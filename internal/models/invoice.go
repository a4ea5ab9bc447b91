package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a sales invoice. Imported invoices always carry exactly one
// line item.
type Invoice struct {
	ID            int             `db:"id" json:"id"`
	TenantID      string          `db:"tenant_id" json:"tenant_id"`
	CustomerID    string          `db:"customer_id" json:"customer_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	TotalVAT      decimal.Decimal `db:"total_vat" json:"total_vat"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Status        string          `db:"status" json:"status"` // draft, sent, paid, overdue, cancelled
	InvoiceType   string          `db:"invoice_type" json:"invoice_type"`
	Currency      string          `db:"currency" json:"currency"`
	IssueDate     string          `db:"issue_date" json:"issue_date"`
	DueDate       string          `db:"due_date" json:"due_date"`
	Notes         *string         `db:"notes" json:"notes"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

type InvoiceLineItem struct {
	ID           int             `db:"id" json:"id"`
	TenantID     string          `db:"tenant_id" json:"tenant_id"`
	InvoiceID    int             `db:"invoice_id" json:"invoice_id"`
	ProductName  string          `db:"product_name" json:"product_name"`
	Description  *string         `db:"description" json:"description"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	VATRate      decimal.Decimal `db:"vat_rate" json:"vat_rate"`
	LineTotal    decimal.Decimal `db:"line_total" json:"line_total"`
	VATAmount    decimal.Decimal `db:"vat_amount" json:"vat_amount"`
	TotalWithVAT decimal.Decimal `db:"total_with_vat" json:"total_with_vat"`
}

// InvoiceWithLine pairs an invoice with its single imported line so the
// persistence sink can write both in one transaction.
type InvoiceWithLine struct {
	Invoice Invoice
	Line    InvoiceLineItem
}
