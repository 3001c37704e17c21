package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un empleado.
const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
)

// Employee empleado de la constructora. DailyRate es el jornal diario;
// la nómina se calcula como DailyRate × días trabajados.
type Employee struct {
	ID                string
	CompanyID         string
	Name              string
	DocumentID        string // cédula, única por empresa
	Trade             string // oficio: maestro, oficial, ayudante, ingeniero…
	DailyRate         decimal.Decimal
	Phone             string
	Email             string
	Status            string
	AssignedProjectID string // opcional
	HireDate          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
