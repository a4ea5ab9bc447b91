package repository

import (
	"github.com/jmoiron/sqlx"

	"fatura-web/internal/models"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetOpenByTenant returns projects expenses may still be booked against.
func (r *ProjectRepository) GetOpenByTenant(tenantID string) ([]models.Project, error) {
	var projects []models.Project
	query := `SELECT * FROM projects
	          WHERE tenant_id = ? AND status IN ('planning', 'active')
	          ORDER BY code`
	err := r.db.Select(&projects, query, tenantID)
	if err != nil {
		return nil, err
	}
	return projects, nil
}
