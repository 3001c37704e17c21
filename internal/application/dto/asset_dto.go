package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest entrada para crear un activo.
type CreateAssetRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	AssetCode     string          `json:"asset_code" validate:"required"`
	Category      string          `json:"category"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
}

// UpdateAssetRequest entrada para actualizar un activo (parcial).
type UpdateAssetRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	PurchaseValue *decimal.Decimal `json:"purchase_value"`
	Status        *string          `json:"status"`
}

// AssignAssetRequest entrada para asignar un activo a un proyecto.
// ProjectID vacío lo desasigna.
type AssignAssetRequest struct {
	ProjectID string `json:"project_id"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	Name              string          `json:"name"`
	AssetCode         string          `json:"asset_code"`
	Category          string          `json:"category"`
	PurchaseDate      *time.Time      `json:"purchase_date,omitempty"`
	PurchaseValue     decimal.Decimal `json:"purchase_value"`
	Status            string          `json:"status"`
	AssignedProjectID string          `json:"assigned_project_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateMaintenanceLogRequest entrada para registrar un mantenimiento.
type CreateMaintenanceLogRequest struct {
	Date        *time.Time      `json:"date"`
	Description string          `json:"description" validate:"required"`
	Cost        decimal.Decimal `json:"cost"`
}

// MaintenanceLogResponse salida de un mantenimiento.
type MaintenanceLogResponse struct {
	ID          string          `json:"id"`
	AssetID     string          `json:"asset_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"created_at"`
}
