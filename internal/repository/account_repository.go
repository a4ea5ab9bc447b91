package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByTenant(tenantID string) ([]models.Account, error) {
	var accounts []models.Account
	query := "SELECT * FROM accounts WHERE tenant_id = ? AND is_active = 1 ORDER BY name"
	err := r.db.Select(&accounts, query, tenantID)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// BulkInsert writes one chunk of imported accounts in a single multi-row
// statement, so the chunk lands atomically.
func (r *AccountRepository) BulkInsert(ctx context.Context, accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	query := `INSERT INTO accounts (tenant_id, name, type, currency, opening_balance,
	          current_balance, account_number, bank_name, card_last_four,
	          card_holder_name, notes, is_active)
	          VALUES (:tenant_id, :name, :type, :currency, :opening_balance,
	          :current_balance, :account_number, :bank_name, :card_last_four,
	          :card_holder_name, :notes, :is_active)`
	_, err := r.db.NamedExecContext(ctx, query, accounts)
	return err
}
