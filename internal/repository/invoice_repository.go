package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type InvoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InsertWithLine writes the invoice and its line item in one transaction so
// a failed line insert never leaves a lineless invoice behind.
func (r *InvoiceRepository) InsertWithLine(ctx context.Context, rec *models.InvoiceWithLine) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (tenant_id, customer_id, invoice_number, subtotal,
	          total_vat, amount, status, invoice_type, currency, issue_date, due_date, notes)
	          VALUES (:tenant_id, :customer_id, :invoice_number, :subtotal,
	          :total_vat, :amount, :status, :invoice_type, :currency, :issue_date, :due_date, :notes)`
	result, err := tx.NamedExecContext(ctx, query, rec.Invoice)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.Invoice.ID = int(id)
	rec.Line.InvoiceID = int(id)

	lineQuery := `INSERT INTO invoice_line_items (tenant_id, invoice_id, product_name,
	          description, quantity, unit_price, vat_rate, line_total, vat_amount, total_with_vat)
	          VALUES (:tenant_id, :invoice_id, :product_name, :description, :quantity,
	          :unit_price, :vat_rate, :line_total, :vat_amount, :total_with_vat)`
	if _, err := tx.NamedExecContext(ctx, lineQuery, rec.Line); err != nil {
		return err
	}

	return tx.Commit()
}
