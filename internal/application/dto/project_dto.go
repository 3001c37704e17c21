package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. El estado inicial es Planning.
type CreateProjectRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	ClientID    string          `json:"client_id"`
	Location    string          `json:"location"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Description string          `json:"description"`
}

// UpdateProjectRequest entrada para actualizar un proyecto (parcial, sin Status ni Spent).
type UpdateProjectRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ClientID    *string          `json:"client_id"`
	Location    *string          `json:"location"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Description *string          `json:"description"`
}

// ChangeProjectStatusRequest entrada para la transición de estado.
type ChangeProjectStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	ClientID    string          `json:"client_id,omitempty"`
	Location    string          `json:"location"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProjectListResponse lista paginada de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Name       string     `json:"name" validate:"required,min=1,max=200"`
	AssigneeID string     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
}

// UpdateTaskRequest entrada para actualizar una tarea (parcial).
type UpdateTaskRequest struct {
	Name       *string    `json:"name" validate:"omitempty,min=1,max=200"`
	AssigneeID *string    `json:"assignee_id"`
	Status     *string    `json:"status"`
	DueDate    *time.Time `json:"due_date"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Name       string     `json:"name"`
	AssigneeID string     `json:"assignee_id,omitempty"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateDailyLogRequest entrada para la bitácora diaria.
type CreateDailyLogRequest struct {
	Date    *time.Time `json:"date"`
	Weather string     `json:"weather"`
	Notes   string     `json:"notes" validate:"required"`
}

// DailyLogResponse salida de una entrada de bitácora.
type DailyLogResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Date      time.Time `json:"date"`
	Author    string    `json:"author"`
	Weather   string    `json:"weather"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
