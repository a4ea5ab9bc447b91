package importer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fatura-web/internal/models"
)

var salesInvoicesSchema = Schema{
	Kind: "invoices",
	Fields: []FieldSpec{
		{Key: "customer", Kind: FieldEntity, Required: true, Entity: "customer"},
		{Key: "sub_branch", Kind: FieldEntity, Entity: "sub_branch", ScopedBy: "customer"},
		{Key: "issue_date", Kind: FieldDate, Required: true},
		{Key: "due_date", Kind: FieldDate, Required: true},
		{Key: "description", Kind: FieldString},
		{Key: "amount", Kind: FieldAmount},
		{Key: "quantity", Kind: FieldAmount},
		{Key: "unit_price", Kind: FieldAmount},
		{Key: "tax_rate", Kind: FieldAmount, Default: "20"},
		{Key: "status", Kind: FieldEnum, Default: "draft",
			Allowed: []string{"draft", "sent", "paid", "overdue", "cancelled"}},
		{Key: "invoice_type", Kind: FieldEnum, Default: "sale",
			Allowed: []string{"sale", "sale_return", "devir", "devir_return"}},
		{Key: "currency", Kind: FieldString},
		{Key: "notes", Kind: FieldString},
	},
}

// NewSalesInvoicesFlow imports outgoing invoices, each persisted together
// with a single line item. codeSuffix seeds the generated invoice numbers
// so repeated imports never collide.
//
// Two exclusive computation paths per row: quantity and unit price when both
// are given, otherwise a flat amount synthesized into one line with
// quantity 1 and tax 0.
func NewSalesInvoicesFlow(tenantID, codeSuffix string, customers *EntityIndex, branches *ScopedEntityIndex, sink Sink) *Flow {
	return &Flow{
		Kind:    "invoices",
		Schema:  salesInvoicesSchema,
		Indexes: map[string]*EntityIndex{"customer": customers},
		Scoped:  map[string]*ScopedEntityIndex{"sub_branch": branches},
		Sink:    sink,
		Finalize: func(row *TypedRow) (interface{}, string, decimal.Decimal, error) {
			var qty, unit, vatRate, subtotal, tax, total decimal.Decimal

			hasLine := row.Present("quantity") && row.Present("unit_price")
			if hasLine {
				qty = row.Amount("quantity")
				unit = row.Amount("unit_price")
				if qty.Sign() <= 0 {
					return nil, "", decimal.Zero, fmt.Errorf("invalid quantity: %s", row.String("quantity"))
				}
				if unit.Sign() <= 0 {
					return nil, "", decimal.Zero, fmt.Errorf("invalid unit_price: %s", row.String("unit_price"))
				}
				vatRate = row.Amount("tax_rate")
				subtotal = qty.Mul(unit).Round(2)
				tax = subtotal.Mul(vatRate).Div(decimal.NewFromInt(100)).Round(2)
				total = subtotal.Add(tax)
			} else {
				if !row.Present("amount") {
					return nil, "", decimal.Zero, fmt.Errorf("missing amount or quantity/unit price")
				}
				amount := row.Amount("amount")
				if amount.Sign() <= 0 {
					return nil, "", decimal.Zero, fmt.Errorf("invalid amount: %s", row.String("amount"))
				}
				qty = decimal.NewFromInt(1)
				unit = amount
				vatRate = decimal.Zero
				subtotal = amount
				tax = decimal.Zero
				total = amount
			}

			customerID := row.Entity("customer")
			if id := row.Entity("sub_branch"); id != "" {
				customerID = id
			}

			product := row.String("description")
			if product == "" {
				product = "Genel"
			}

			rec := models.InvoiceWithLine{
				Invoice: models.Invoice{
					TenantID:      tenantID,
					CustomerID:    customerID,
					InvoiceNumber: fmt.Sprintf("INV-%s-%d", codeSuffix, row.Number),
					Subtotal:      subtotal,
					TotalVAT:      tax,
					Amount:        total,
					Status:        row.String("status"),
					InvoiceType:   row.String("invoice_type"),
					Currency:      normalizeCurrency(row.String("currency")),
					IssueDate:     row.String("issue_date"),
					DueDate:       row.String("due_date"),
					Notes:         optString(row, "notes"),
				},
				Line: models.InvoiceLineItem{
					TenantID:     tenantID,
					ProductName:  product,
					Description:  optString(row, "description"),
					Quantity:     qty,
					UnitPrice:    unit,
					VATRate:      vatRate,
					LineTotal:    subtotal,
					VATAmount:    tax,
					TotalWithVAT: total,
				},
			}
			return rec, rec.Invoice.InvoiceNumber, total, nil
		},
	}
}
