package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un activo.
const (
	AssetStatusOperational   = "Operational"
	AssetStatusInMaintenance = "In Maintenance"
	AssetStatusRetired       = "Retired"
)

// Asset activo fijo de la constructora: maquinaria, equipo, vehículo.
type Asset struct {
	ID                string
	CompanyID         string
	Name              string
	AssetCode         string // código interno, único por empresa
	Category          string // maquinaria amarilla, equipo menor, vehículo…
	PurchaseDate      *time.Time
	PurchaseValue     decimal.Decimal
	Status            string
	AssignedProjectID string // opcional
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MaintenanceLog registro de mantenimiento de un activo.
type MaintenanceLog struct {
	ID          string
	AssetID     string
	Date        time.Time
	Description string
	Cost        decimal.Decimal
	CreatedAt   time.Time
}
