package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequestRequest entrada para crear una solicitud de material.
type CreateMaterialRequestRequest struct {
	ProjectID string          `json:"project_id" validate:"required"`
	ItemID    string          `json:"item_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"` // > 0
	Reason    string          `json:"reason"`
}

// DecideMaterialRequestRequest entrada para aprobar o rechazar.
type DecideMaterialRequestRequest struct {
	Reason string `json:"reason"`
}

// MaterialRequestResponse salida de una solicitud.
type MaterialRequestResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ProjectID   string          `json:"project_id"`
	ItemID      string          `json:"item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	RequestedBy string          `json:"requested_by"`
	Status      string          `json:"status"`
	Reason      string          `json:"reason,omitempty"`
	DecidedBy   string          `json:"decided_by,omitempty"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MaterialRequestListResponse lista paginada de solicitudes.
type MaterialRequestListResponse struct {
	Items []MaterialRequestResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
