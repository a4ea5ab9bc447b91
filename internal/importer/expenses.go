package importer

import (
	"github.com/shopspring/decimal"

	"fatura-web/internal/models"
)

var expensesSchema = Schema{
	Kind: "expenses",
	Fields: []FieldSpec{
		{Key: "description", Kind: FieldString, Required: true},
		{Key: "amount", Kind: FieldAmount, Required: true, Positive: true},
		{Key: "expense_date", Kind: FieldDate, Required: true},
		{Key: "category", Kind: FieldEnum, Default: "general",
			Allowed: []string{"general", "marketing", "personnel", "office", "tax", "utilities", "rent", "other"}},
		{Key: "payment_method", Kind: FieldEnum, Default: "cash",
			Allowed: []string{"cash", "bank_transfer", "credit_card", "other"}},
		{Key: "currency", Kind: FieldString},
		{Key: "tax_rate", Kind: FieldAmount, Default: "20"},
		{Key: "project_code", Kind: FieldEntity, Entity: "project"},
		{Key: "notes", Kind: FieldString},
	},
}

// NewExpensesFlow imports expenses. A project reference is optional but
// when present it must resolve, otherwise the row fails.
func NewExpensesFlow(tenantID string, projects *EntityIndex, sink Sink) *Flow {
	return &Flow{
		Kind:    "expenses",
		Schema:  expensesSchema,
		Indexes: map[string]*EntityIndex{"project": projects},
		Sink:    sink,
		Finalize: func(row *TypedRow) (interface{}, string, decimal.Decimal, error) {
			amount := row.Amount("amount")
			exp := models.Expense{
				TenantID:      tenantID,
				Category:      row.String("category"),
				Description:   row.String("description"),
				Amount:        amount,
				ExpenseDate:   row.String("expense_date"),
				PaymentMethod: row.String("payment_method"),
				Currency:      normalizeCurrency(row.String("currency")),
				TaxRate:       row.Amount("tax_rate"),
				Notes:         optString(row, "notes"),
			}
			if id := row.Entity("project_code"); id != "" {
				exp.ProjectID = &id
			}
			return exp, exp.Description, amount, nil
		},
	}
}
