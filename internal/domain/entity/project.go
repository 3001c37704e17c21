package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto de obra. Completed es terminal.
const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusOnHold     = "On Hold"
	ProjectStatusCompleted  = "Completed"
)

// Project representa una obra o proyecto de construcción.
// Budget es el presupuesto aprobado; Spent se actualiza desde transacciones de gasto.
type Project struct {
	ID          string
	CompanyID   string
	Name        string
	ClientID    string
	Location    string
	Status      string
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de una tarea de proyecto.
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

// Task tarea dentro de un proyecto, asignable a un empleado.
type Task struct {
	ID         string
	ProjectID  string
	Name       string
	AssigneeID string // employee ID, opcional
	Status     string
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DailyLog bitácora diaria de obra (clima, avance, novedades).
type DailyLog struct {
	ID        string
	ProjectID string
	Date      time.Time
	Author    string // user ID
	Weather   string
	Notes     string
	CreatedAt time.Time
}
