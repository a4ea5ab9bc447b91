package models

import "time"

// Import session statuses.
const (
	ImportStatusUploaded   = "uploaded"
	ImportStatusProcessing = "processing"
	ImportStatusCompleted  = "completed"
	ImportStatusFailed     = "failed"
	ImportStatusCanceled   = "canceled"
)

// ImportSession tracks one uploaded file through the import pipeline.
type ImportSession struct {
	ID            int       `db:"id" json:"id"`
	SessionCode   string    `db:"session_code" json:"session_code"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	UserID        int       `db:"user_id" json:"user_id"`
	Kind          string    `db:"kind" json:"kind"` // accounts, expenses, purchase_invoices, invoices
	Language      string    `db:"language" json:"language"`
	Filename      string    `db:"filename" json:"filename"`
	FilePath      string    `db:"file_path" json:"file_path"`
	TotalRows     int       `db:"total_rows" json:"total_rows"`
	ProcessedRows int       `db:"processed_rows" json:"processed_rows"`
	FailedRows    int       `db:"failed_rows" json:"failed_rows"`
	Status        string    `db:"status" json:"status"`
	ErrorMessage  string    `db:"error_message" json:"error_message"`
	ReportJSON    string    `db:"report_json" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
