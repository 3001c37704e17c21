package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project y sus subcolecciones.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Project, error)
	Delete(id string) error

	// Tareas del proyecto
	CreateTask(task *entity.Task) error
	GetTaskByID(id string) (*entity.Task, error)
	UpdateTask(task *entity.Task) error
	ListTasks(projectID string) ([]*entity.Task, error)
	DeleteTask(id string) error

	// Bitácora diaria (append-only)
	CreateDailyLog(log *entity.DailyLog) error
	ListDailyLogs(projectID string, limit, offset int) ([]*entity.DailyLog, error)
}
