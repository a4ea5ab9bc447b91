package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fatura-web/internal/models"
)

var customerAccountTypeSynonyms = map[string]string{
	"vendor":    "vendor",
	"tedarikci": "vendor",
	"tedarikçi": "vendor",
	"both":      "both",
	"her ikisi": "both",
}

func normalizeCustomerAccountType(raw string) string {
	if t, ok := customerAccountTypeSynonyms[NormalizeLabel(raw)]; ok {
		return t
	}
	return "customer"
}

func normalizeCustomerStatus(raw string) string {
	switch NormalizeLabel(raw) {
	case "inactive", "pasif":
		return "inactive"
	}
	return "active"
}

func parseBoolCell(raw string) bool {
	switch NormalizeLabel(raw) {
	case "true", "1", "evet", "yes":
		return true
	}
	return false
}

var customersSchema = Schema{
	Kind: "customers",
	Fields: []FieldSpec{
		{Key: "company_title", Kind: FieldString},
		{Key: "name", Kind: FieldString},
		{Key: "account_type", Kind: FieldString},
		{Key: "tax_office", Kind: FieldString},
		{Key: "tax_number", Kind: FieldString},
		{Key: "email", Kind: FieldString},
		{Key: "phone", Kind: FieldString},
		{Key: "address", Kind: FieldString},
		{Key: "city", Kind: FieldString},
		{Key: "district", Kind: FieldString},
		{Key: "postal_code", Kind: FieldString},
		{Key: "country", Kind: FieldString},
		{Key: "payment_terms", Kind: FieldString},
		{Key: "payment_terms_type", Kind: FieldString},
		{Key: "bank_name", Kind: FieldString},
		{Key: "bank_account_holder", Kind: FieldString},
		{Key: "bank_account_number", Kind: FieldString},
		{Key: "bank_iban", Kind: FieldString},
		{Key: "bank_branch", Kind: FieldString},
		{Key: "bank_swift", Kind: FieldString},
		{Key: "website", Kind: FieldString},
		{Key: "industry", Kind: FieldString},
		{Key: "notes", Kind: FieldString},
		{Key: "e_invoice_enabled", Kind: FieldString},
		{Key: "status", Kind: FieldString},
	},
}

// NewCustomersFlow imports counterparties. A row needs a company title or a
// contact name; whichever is missing is filled from the other. Tax numbers
// and IBANs are optional but, when present, must pass the Turkish check-digit
// and format rules.
func NewCustomersFlow(tenantID string, sink Sink) *Flow {
	return &Flow{
		Kind:   "customers",
		Schema: customersSchema,
		Sink:   sink,
		Finalize: func(row *TypedRow) (interface{}, string, decimal.Decimal, error) {
			company := row.String("company_title")
			contact := row.String("name")
			if company == "" && contact == "" {
				return nil, "", decimal.Zero, fmt.Errorf("missing company title or contact name")
			}
			if company == "" {
				company = contact
			}
			if contact == "" {
				contact = company
			}

			var taxNumber, taxIDType *string
			if raw := row.String("tax_number"); raw != "" {
				digits := digitsOnly(raw)
				var idType string
				switch len(digits) {
				case 10:
					idType = "vkn"
					if !ValidVKN(digits) {
						return nil, "", decimal.Zero, fmt.Errorf("invalid tax_number: %s", raw)
					}
				case 11:
					idType = "tckn"
					if !ValidTCKN(digits) {
						return nil, "", decimal.Zero, fmt.Errorf("invalid tax_number: %s", raw)
					}
				default:
					return nil, "", decimal.Zero, fmt.Errorf("invalid tax_number: %s", raw)
				}
				taxNumber = &digits
				taxIDType = &idType
			}

			var iban *string
			if raw := row.String("bank_iban"); raw != "" {
				normalized := NormalizeIBAN(raw)
				if !ValidTurkishIBAN(normalized) {
					return nil, "", decimal.Zero, fmt.Errorf("invalid bank_iban: %s", raw)
				}
				iban = &normalized
			}

			terms := 0
			if n, err := strconv.Atoi(strings.TrimSpace(row.String("payment_terms"))); err == nil && n > 0 {
				terms = n
			}
			termsType := "net"
			if NormalizeLabel(row.String("payment_terms_type")) == "eom" {
				termsType = "eom"
			}
			country := row.String("country")
			if country == "" {
				country = "Türkiye"
			}

			cust := models.Customer{
				ID:                uuid.New().String(),
				TenantID:          tenantID,
				CompanyTitle:      company,
				Name:              contact,
				Email:             optString(row, "email"),
				AccountType:       normalizeCustomerAccountType(row.String("account_type")),
				Status:            normalizeCustomerStatus(row.String("status")),
				TaxOffice:         optString(row, "tax_office"),
				TaxNumber:         taxNumber,
				TaxIDType:         taxIDType,
				Phone:             optString(row, "phone"),
				Address:           optString(row, "address"),
				City:              optString(row, "city"),
				District:          optString(row, "district"),
				PostalCode:        optString(row, "postal_code"),
				Country:           country,
				PaymentTerms:      terms,
				PaymentTermsType:  termsType,
				BankName:          optString(row, "bank_name"),
				BankAccountHolder: optString(row, "bank_account_holder"),
				BankAccountNumber: optString(row, "bank_account_number"),
				BankIBAN:          iban,
				BankBranch:        optString(row, "bank_branch"),
				BankSWIFT:         optString(row, "bank_swift"),
				Website:           optString(row, "website"),
				Industry:          optString(row, "industry"),
				Notes:             optString(row, "notes"),
				EInvoiceEnabled:   parseBoolCell(row.String("e_invoice_enabled")),
				Balance:           decimal.Zero,
			}
			return cust, cust.CompanyTitle, decimal.Zero, nil
		},
	}
}
