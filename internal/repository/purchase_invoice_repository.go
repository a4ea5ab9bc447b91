package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type PurchaseInvoiceRepository struct {
	db *sqlx.DB
}

func NewPurchaseInvoiceRepository(db *sqlx.DB) *PurchaseInvoiceRepository {
	return &PurchaseInvoiceRepository{db: db}
}

func (r *PurchaseInvoiceRepository) BulkInsert(ctx context.Context, invoices []models.PurchaseInvoice) error {
	if len(invoices) == 0 {
		return nil
	}
	query := `INSERT INTO purchase_invoices (tenant_id, supplier_id, invoice_number,
	          invoice_date, due_date, subtotal, tax_amount, total_amount, status, invoice_type)
	          VALUES (:tenant_id, :supplier_id, :invoice_number, :invoice_date, :due_date,
	          :subtotal, :tax_amount, :total_amount, :status, :invoice_type)`
	_, err := r.db.NamedExecContext(ctx, query, invoices)
	return err
}
