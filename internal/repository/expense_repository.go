package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type ExpenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) BulkInsert(ctx context.Context, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	query := `INSERT INTO expenses (tenant_id, category, description, amount, expense_date,
	          payment_method, currency, tax_rate, notes, project_id)
	          VALUES (:tenant_id, :category, :description, :amount, :expense_date,
	          :payment_method, :currency, :tax_rate, :notes, :project_id)`
	_, err := r.db.NamedExecContext(ctx, query, expenses)
	return err
}
