package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-web/internal/models"
)

func TestImportSessionRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImportSessionRepository(db)

	mock.ExpectExec("INSERT INTO import_sessions").
		WillReturnResult(sqlmock.NewResult(42, 1))

	session := &models.ImportSession{
		SessionCode: "IMP-abc123",
		TenantID:    "t1",
		UserID:      1,
		Kind:        "expenses",
		Language:    "tr",
		Filename:    "giderler.csv",
		FilePath:    "/tmp/giderler.csv",
		TotalRows:   10,
		Status:      models.ImportStatusUploaded,
	}
	err := repo.Create(session)
	require.NoError(t, err)
	assert.Equal(t, 42, session.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportSessionRepositoryGetByCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImportSessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "session_code", "tenant_id", "kind", "status"}).
		AddRow(1, "IMP-abc123", "t1", "invoices", "completed")
	mock.ExpectQuery("SELECT \\* FROM import_sessions WHERE tenant_id").
		WithArgs("t1", "IMP-abc123").
		WillReturnRows(rows)

	session, err := repo.GetByCode("t1", "IMP-abc123")
	require.NoError(t, err)
	assert.Equal(t, "invoices", session.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportSessionRepositoryUpdateStatusMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImportSessionRepository(db)

	mock.ExpectExec("UPDATE import_sessions SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(99, models.ImportStatusFailed, "boom")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportSessionRepositorySaveReport(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImportSessionRepository(db)

	mock.ExpectExec("UPDATE import_sessions SET report_json").
		WithArgs(`{"kind":"expenses"}`, 8, 2, 10, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveReport(1, `{"kind":"expenses"}`, 8, 2, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
