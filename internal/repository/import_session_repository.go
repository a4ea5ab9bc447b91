package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type ImportSessionRepository struct {
	db *sqlx.DB
}

func NewImportSessionRepository(db *sqlx.DB) *ImportSessionRepository {
	return &ImportSessionRepository{db: db}
}

func (r *ImportSessionRepository) Create(session *models.ImportSession) error {
	query := `INSERT INTO import_sessions (session_code, tenant_id, user_id, kind, language,
	          filename, file_path, total_rows, status)
	          VALUES (:session_code, :tenant_id, :user_id, :kind, :language,
	          :filename, :file_path, :total_rows, :status)`
	result, err := r.db.NamedExec(query, session)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	session.ID = int(id)
	return nil
}

func (r *ImportSessionRepository) GetByID(id int) (*models.ImportSession, error) {
	var session models.ImportSession
	query := "SELECT * FROM import_sessions WHERE id = ? LIMIT 1"
	err := r.db.Get(&session, query, id)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ImportSessionRepository) GetByCode(tenantID, code string) (*models.ImportSession, error) {
	var session models.ImportSession
	query := "SELECT * FROM import_sessions WHERE tenant_id = ? AND session_code = ? LIMIT 1"
	err := r.db.Get(&session, query, tenantID, code)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ImportSessionRepository) GetSessions(tenantID string, limit, offset int) ([]models.ImportSession, int, error) {
	var sessions []models.ImportSession
	var total int

	err := r.db.Get(&total, "SELECT COUNT(*) FROM import_sessions WHERE tenant_id = ?", tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM import_sessions WHERE tenant_id = ?
	          ORDER BY created_at DESC LIMIT ? OFFSET ?`
	err = r.db.Select(&sessions, query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *ImportSessionRepository) UpdateStatus(id int, status, errorMessage string) error {
	query := "UPDATE import_sessions SET status = ?, error_message = ? WHERE id = ?"
	result, err := r.db.Exec(query, status, errorMessage, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("import session %d not found", id)
	}
	return nil
}

func (r *ImportSessionRepository) UpdateProgress(id, processedRows, totalRows int) error {
	query := "UPDATE import_sessions SET processed_rows = ?, total_rows = ? WHERE id = ?"
	_, err := r.db.Exec(query, processedRows, totalRows, id)
	return err
}

// SaveReport stores the serialized report and the final counters in one
// statement when a run finishes.
func (r *ImportSessionRepository) SaveReport(id int, reportJSON string, processed, failed, total int) error {
	query := `UPDATE import_sessions SET report_json = ?, processed_rows = ?,
	          failed_rows = ?, total_rows = ? WHERE id = ?`
	_, err := r.db.Exec(query, reportJSON, processed, failed, total, id)
	return err
}
