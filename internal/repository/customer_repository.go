package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetActiveByTenant returns every active counterparty of the tenant,
// sub-branches included. The import service builds its lookup indexes from
// this snapshot.
func (r *CustomerRepository) GetActiveByTenant(tenantID string) ([]models.Customer, error) {
	var customers []models.Customer
	query := `SELECT * FROM customers
	          WHERE tenant_id = ? AND status = 'active'
	          ORDER BY company_title`
	err := r.db.Select(&customers, query, tenantID)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetVendorsByTenant returns vendor-typed counterparties. Tenants that never
// classified their records get the full active list back, so supplier
// matching still works.
func (r *CustomerRepository) GetVendorsByTenant(tenantID string) ([]models.Customer, error) {
	var vendors []models.Customer
	query := `SELECT * FROM customers
	          WHERE tenant_id = ? AND status = 'active'
	            AND account_type IN ('vendor', 'both')
	          ORDER BY company_title`
	err := r.db.Select(&vendors, query, tenantID)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return r.GetActiveByTenant(tenantID)
	}
	return vendors, nil
}

// BulkInsert writes one chunk of imported counterparties in a single
// multi-row statement.
func (r *CustomerRepository) BulkInsert(ctx context.Context, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	query := `INSERT INTO customers
	          (id, tenant_id, company_title, name, email, account_type, status,
	           tax_office, tax_number, tax_id_type, phone, address, city, district,
	           postal_code, country, payment_terms, payment_terms_type,
	           bank_name, bank_account_holder, bank_account_number, bank_iban,
	           bank_branch, bank_swift, website, industry, notes,
	           e_invoice_enabled, balance)
	          VALUES (:id, :tenant_id, :company_title, :name, :email, :account_type, :status,
	           :tax_office, :tax_number, :tax_id_type, :phone, :address, :city, :district,
	           :postal_code, :country, :payment_terms, :payment_terms_type,
	           :bank_name, :bank_account_holder, :bank_account_number, :bank_iban,
	           :bank_branch, :bank_swift, :website, :industry, :notes,
	           :e_invoice_enabled, :balance)`
	_, err := r.db.NamedExecContext(ctx, query, customers)
	return err
}
