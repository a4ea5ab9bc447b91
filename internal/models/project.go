package models

import "time"

type Project struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Status    string    `db:"status" json:"status"` // planning, active, done, canceled
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
