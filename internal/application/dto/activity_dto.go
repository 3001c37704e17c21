package dto

import "time"

// ActivityEntryResponse salida de una entrada de la bitácora de auditoría.
type ActivityEntryResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Type       string    `json:"type"`
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id"`
	Summary    string    `json:"summary"`
	UserID     string    `json:"user_id,omitempty"`
	UserName   string    `json:"user_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityListResponse lista paginada de la bitácora (más recientes primero).
type ActivityListResponse struct {
	Items []ActivityEntryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
