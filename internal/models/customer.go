package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a counterparty record; vendors and sub-branches live in the
// same table. Sub-branches carry a ParentCustomerID and a non-main
// BranchType.
type Customer struct {
	ID                string          `db:"id" json:"id"`
	TenantID          string          `db:"tenant_id" json:"tenant_id"`
	CompanyTitle      string          `db:"company_title" json:"company_title"`
	Name              string          `db:"name" json:"name"`
	Email             *string         `db:"email" json:"email"`
	AccountType       string          `db:"account_type" json:"account_type"` // customer, vendor, both
	Status            string          `db:"status" json:"status"`
	TaxOffice         *string         `db:"tax_office" json:"tax_office"`
	TaxNumber         *string         `db:"tax_number" json:"tax_number"`
	TaxIDType         *string         `db:"tax_id_type" json:"tax_id_type"` // vkn, tckn
	Phone             *string         `db:"phone" json:"phone"`
	Address           *string         `db:"address" json:"address"`
	City              *string         `db:"city" json:"city"`
	District          *string         `db:"district" json:"district"`
	PostalCode        *string         `db:"postal_code" json:"postal_code"`
	Country           string          `db:"country" json:"country"`
	PaymentTerms      int             `db:"payment_terms" json:"payment_terms"`
	PaymentTermsType  string          `db:"payment_terms_type" json:"payment_terms_type"` // net, eom
	BankName          *string         `db:"bank_name" json:"bank_name"`
	BankAccountHolder *string         `db:"bank_account_holder" json:"bank_account_holder"`
	BankAccountNumber *string         `db:"bank_account_number" json:"bank_account_number"`
	BankIBAN          *string         `db:"bank_iban" json:"bank_iban"`
	BankBranch        *string         `db:"bank_branch" json:"bank_branch"`
	BankSWIFT         *string         `db:"bank_swift" json:"bank_swift"`
	Website           *string         `db:"website" json:"website"`
	Industry          *string         `db:"industry" json:"industry"`
	Notes             *string         `db:"notes" json:"notes"`
	EInvoiceEnabled   bool            `db:"e_invoice_enabled" json:"e_invoice_enabled"`
	BranchType        *string         `db:"branch_type" json:"branch_type"` // main, branch, warehouse, department, center
	BranchCode        *string         `db:"branch_code" json:"branch_code"`
	ParentCustomerID  *string         `db:"parent_customer_id" json:"parent_customer_id"`
	Balance           decimal.Decimal `db:"balance" json:"balance"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// IsSubBranch reports whether the record belongs under a parent account.
func (c Customer) IsSubBranch() bool {
	return c.ParentCustomerID != nil && *c.ParentCustomerID != "" &&
		c.BranchType != nil && *c.BranchType != "" && *c.BranchType != "main"
}
