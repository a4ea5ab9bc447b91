package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-web/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestAccountRepositoryBulkInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	accounts := []models.Account{
		{TenantID: "t1", Name: "Kasa", Type: "cash", Currency: "TRY",
			OpeningBalance: decimal.NewFromInt(100), CurrentBalance: decimal.NewFromInt(100), IsActive: true},
		{TenantID: "t1", Name: "Banka", Type: "bank", Currency: "TRY", IsActive: true},
	}

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.BulkInsert(context.Background(), accounts)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepositoryBulkInsertEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	err := repo.BulkInsert(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepositoryGetByTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "type", "currency", "opening_balance", "current_balance", "is_active"}).
		AddRow(1, "t1", "Kasa", "cash", "TRY", "1250.50", "1250.50", true)
	mock.ExpectQuery("SELECT \\* FROM accounts WHERE tenant_id").
		WithArgs("t1").
		WillReturnRows(rows)

	accounts, err := repo.GetByTenant("t1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "1250.5", accounts[0].OpeningBalance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
