package importer

import (
	"github.com/shopspring/decimal"

	"fatura-web/internal/models"
)

var purchaseInvoicesSchema = Schema{
	Kind: "purchase_invoices",
	Fields: []FieldSpec{
		{Key: "supplier", Kind: FieldEntity, Required: true, Entity: "supplier"},
		{Key: "invoice_number", Kind: FieldString, Required: true},
		{Key: "invoice_date", Kind: FieldDate, Required: true},
		{Key: "due_date", Kind: FieldDate},
		{Key: "total_amount", Kind: FieldAmount, Required: true, Positive: true},
		{Key: "invoice_type", Kind: FieldEnum, Default: "purchase",
			Allowed: []string{"purchase", "purchase_return", "devir", "devir_return"}},
		{Key: "status", Kind: FieldEnum, Default: "pending",
			Allowed: []string{"pending", "accepted", "rejected"}},
	},
}

// NewPurchaseInvoicesFlow imports incoming supplier invoices. Files carry a
// single total, so the subtotal mirrors it and the tax amount stays zero.
func NewPurchaseInvoicesFlow(tenantID string, suppliers *EntityIndex, sink Sink) *Flow {
	return &Flow{
		Kind:    "purchase_invoices",
		Schema:  purchaseInvoicesSchema,
		Indexes: map[string]*EntityIndex{"supplier": suppliers},
		Sink:    sink,
		Finalize: func(row *TypedRow) (interface{}, string, decimal.Decimal, error) {
			total := row.Amount("total_amount")
			due := row.String("due_date")
			if due == "" {
				due = row.String("invoice_date")
			}
			inv := models.PurchaseInvoice{
				TenantID:      tenantID,
				SupplierID:    row.Entity("supplier"),
				InvoiceNumber: row.String("invoice_number"),
				InvoiceDate:   row.String("invoice_date"),
				DueDate:       due,
				Subtotal:      total,
				TaxAmount:     decimal.Zero,
				TotalAmount:   total,
				Status:        row.String("status"),
				InvoiceType:   row.String("invoice_type"),
			}
			return inv, inv.InvoiceNumber, total, nil
		},
	}
}
