package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de material. Approved y Rejected son terminales.
const (
	MaterialRequestPending  = "Pending"
	MaterialRequestApproved = "Approved"
	MaterialRequestRejected = "Rejected"
)

// MaterialRequest solicitud interna de consumo de inventario para un proyecto.
// Aprobarla descuenta Quantity del item de forma transaccional y nunca puede
// dejar el stock en negativo.
type MaterialRequest struct {
	ID          string
	CompanyID   string
	ProjectID   string
	ItemID      string
	Quantity    decimal.Decimal // > 0
	RequestedBy string          // user ID
	Status      string
	Reason      string // motivo de rechazo o nota de aprobación
	DecidedBy   string // user ID, vacío mientras está Pending
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
