package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	DocumentID        string          `json:"document_id" validate:"required"`
	Trade             string          `json:"trade"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	AssignedProjectID string          `json:"assigned_project_id"`
	HireDate          *time.Time      `json:"hire_date"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (parcial).
type UpdateEmployeeRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Trade             *string          `json:"trade"`
	DailyRate         *decimal.Decimal `json:"daily_rate"`
	Phone             *string          `json:"phone"`
	Email             *string          `json:"email"`
	Status            *string          `json:"status"`
	AssignedProjectID *string          `json:"assigned_project_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	Name              string          `json:"name"`
	DocumentID        string          `json:"document_id"`
	Trade             string          `json:"trade"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Status            string          `json:"status"`
	AssignedProjectID string          `json:"assigned_project_id,omitempty"`
	HireDate          *time.Time      `json:"hire_date,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PayrollLineDTO nómina estimada de un empleado para el período.
type PayrollLineDTO struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Trade      string          `json:"trade"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Days       int             `json:"days"`
	Amount     decimal.Decimal `json:"amount"`
}

// PayrollSummaryDTO resumen de nómina: una línea por empleado activo más el total.
type PayrollSummaryDTO struct {
	Days  int              `json:"days"`
	Lines []PayrollLineDTO `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}
