package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"fatura-web/internal/models"
)

// accountTypeSynonyms folds the Turkish spellings users actually type onto
// the stored account types.
var accountTypeSynonyms = map[string]string{
	"cash":        "cash",
	"kasa":        "cash",
	"nakit":       "cash",
	"bank":        "bank",
	"banka":       "bank",
	"credit_card": "credit_card",
	"kredi karti": "credit_card",
	"kredi kartı": "credit_card",
	"kart":        "credit_card",
}

func normalizeAccountType(raw string) string {
	if t, ok := accountTypeSynonyms[NormalizeLabel(raw)]; ok {
		return t
	}
	return "bank"
}

// normalizeCurrency upcases a 3-letter code and falls back to TRY for
// anything else, including empty cells.
func normalizeCurrency(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 3 {
		return "TRY"
	}
	return s
}

func optString(t *TypedRow, key string) *string {
	v := strings.TrimSpace(t.String(key))
	if v == "" {
		return nil
	}
	return &v
}

var accountsSchema = Schema{
	Kind: "accounts",
	Fields: []FieldSpec{
		{Key: "name", Kind: FieldString, Required: true},
		{Key: "type", Kind: FieldString},
		{Key: "currency", Kind: FieldString},
		{Key: "opening_balance", Kind: FieldAmount, Default: "0"},
		{Key: "account_number", Kind: FieldString},
		{Key: "bank_name", Kind: FieldString},
		{Key: "card_last_four", Kind: FieldString},
		{Key: "card_holder_name", Kind: FieldString},
		{Key: "notes", Kind: FieldString},
	},
}

// NewAccountsFlow imports finance accounts. The opening balance is copied
// into the current balance because imported accounts carry no transactions
// yet.
func NewAccountsFlow(tenantID string, sink Sink) *Flow {
	return &Flow{
		Kind:   "accounts",
		Schema: accountsSchema,
		Sink:   sink,
		Finalize: func(row *TypedRow) (interface{}, string, decimal.Decimal, error) {
			opening := row.Amount("opening_balance")
			acc := models.Account{
				TenantID:       tenantID,
				Name:           row.String("name"),
				Type:           normalizeAccountType(row.String("type")),
				Currency:       normalizeCurrency(row.String("currency")),
				OpeningBalance: opening,
				CurrentBalance: opening,
				Notes:          optString(row, "notes"),
				IsActive:       true,
			}
			// type-specific columns stay null on the other types
			switch acc.Type {
			case "bank":
				acc.AccountNumber = optString(row, "account_number")
				acc.BankName = optString(row, "bank_name")
			case "credit_card":
				acc.BankName = optString(row, "bank_name")
				acc.CardLastFour = optString(row, "card_last_four")
				acc.CardHolderName = optString(row, "card_holder_name")
			}
			return acc, acc.Name, opening, nil
		},
	}
}
