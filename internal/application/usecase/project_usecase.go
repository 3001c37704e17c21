package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// projectTransitions transiciones de estado válidas. Completed es terminal.
var projectTransitions = map[string][]string{
	entity.ProjectStatusPlanning:   {entity.ProjectStatusInProgress, entity.ProjectStatusOnHold},
	entity.ProjectStatusInProgress: {entity.ProjectStatusOnHold, entity.ProjectStatusCompleted},
	entity.ProjectStatusOnHold:     {entity.ProjectStatusInProgress, entity.ProjectStatusCompleted},
	entity.ProjectStatusCompleted:  {},
}

// ProjectUseCase casos de uso para proyectos de obra, sus tareas y bitácora diaria.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	activity *ActivityUseCase
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, activity *ActivityUseCase) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, activity: activity}
}

// Create crea un proyecto en estado Planning con Spent en 0.
func (uc *ProjectUseCase) Create(companyID, userID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Budget.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		ClientID:    in.ClientID,
		Location:    in.Location,
		Status:      entity.ProjectStatusPlanning,
		Budget:      in.Budget,
		Spent:       decimal.Zero,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityProjectCreated, "project", project.ID,
		fmt.Sprintf("Proyecto %q creado", project.Name))
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto de la empresa por ID.
func (uc *ProjectUseCase) GetByID(companyID, id string) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil || project == nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Update actualiza un proyecto. No permite modificar Status (ver ChangeStatus) ni Spent.
func (uc *ProjectUseCase) Update(companyID, id, userID string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil || project == nil {
		return nil, err
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.ClientID != nil {
		project.ClientID = *in.ClientID
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Budget != nil {
		if in.Budget.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		project.Budget = *in.Budget
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	uc.activity.Record(project.CompanyID, userID, entity.ActivityProjectUpdated, "project", project.ID,
		fmt.Sprintf("Proyecto %q actualizado", project.Name))
	return toProjectResponse(project), nil
}

// ChangeStatus aplica una transición de estado. Transición inválida -> ErrConflict.
func (uc *ProjectUseCase) ChangeStatus(companyID, id, userID, newStatus string) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil || project == nil {
		return nil, err
	}
	allowed, ok := projectTransitions[project.Status]
	if !ok {
		return nil, domain.ErrConflict
	}
	valid := false
	for _, s := range allowed {
		if s == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.ErrConflict
	}
	previous := project.Status
	project.Status = newStatus
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	uc.activity.Record(project.CompanyID, userID, entity.ActivityProjectStatusChanged, "project", project.ID,
		fmt.Sprintf("Proyecto %q: %s -> %s", project.Name, previous, newStatus))
	return toProjectResponse(project), nil
}

// List lista proyectos por empresa con filtro opcional por estado.
func (uc *ProjectUseCase) List(companyID, status string, limit, offset int) (*dto.ProjectListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proyecto. Los proyectos en curso no se eliminan.
func (uc *ProjectUseCase) Delete(companyID, id, userID string) error {
	project, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if project.Status == entity.ProjectStatusInProgress {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.activity.Record(project.CompanyID, userID, entity.ActivityProjectDeleted, "project", id,
		fmt.Sprintf("Proyecto %q eliminado", project.Name))
	return nil
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// CreateTask crea una tarea en estado Pending dentro de un proyecto.
func (uc *ProjectUseCase) CreateTask(companyID, projectID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	project, err := uc.getOwned(companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Name:       in.Name,
		AssigneeID: in.AssigneeID,
		Status:     entity.TaskStatusPending,
		DueDate:    in.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.CreateTask(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateTask actualiza una tarea (nombre, asignado, estado, fecha).
func (uc *ProjectUseCase) UpdateTask(companyID, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.getOwnedTask(companyID, taskID)
	if err != nil || task == nil {
		return nil, err
	}
	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.AssigneeID != nil {
		task.AssigneeID = *in.AssigneeID
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.TaskStatusPending, entity.TaskStatusInProgress, entity.TaskStatusDone:
			task.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.UpdateTask(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// ListTasks lista las tareas de un proyecto de la empresa.
func (uc *ProjectUseCase) ListTasks(companyID, projectID string) ([]dto.TaskResponse, error) {
	project, err := uc.getOwned(companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	tasks, err := uc.repo.ListTasks(projectID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *toTaskResponse(t))
	}
	return items, nil
}

// DeleteTask elimina una tarea.
func (uc *ProjectUseCase) DeleteTask(companyID, taskID string) error {
	task, err := uc.getOwnedTask(companyID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteTask(taskID)
}

// ── Bitácora diaria ───────────────────────────────────────────────────────────

// CreateDailyLog registra una entrada de bitácora de obra. La fecha por defecto es hoy.
func (uc *ProjectUseCase) CreateDailyLog(companyID, projectID, userID string, in dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error) {
	project, err := uc.getOwned(companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	dl := &entity.DailyLog{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Date:      date,
		Author:    userID,
		Weather:   in.Weather,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateDailyLog(dl); err != nil {
		return nil, err
	}
	return toDailyLogResponse(dl), nil
}

// ListDailyLogs lista la bitácora de un proyecto, más recientes primero.
func (uc *ProjectUseCase) ListDailyLogs(companyID, projectID string, limit, offset int) ([]dto.DailyLogResponse, error) {
	project, err := uc.getOwned(companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	logs, err := uc.repo.ListDailyLogs(projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, *toDailyLogResponse(l))
	}
	return items, nil
}

// getOwned carga un proyecto y verifica que pertenezca a la empresa.
// Un proyecto ajeno es indistinguible de uno inexistente.
func (uc *ProjectUseCase) getOwned(companyID, id string) (*entity.Project, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, nil
	}
	return project, nil
}

// getOwnedTask carga una tarea y verifica la pertenencia vía su proyecto.
func (uc *ProjectUseCase) getOwnedTask(companyID, taskID string) (*entity.Task, error) {
	task, err := uc.repo.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	project, err := uc.getOwned(companyID, task.ProjectID)
	if err != nil || project == nil {
		return nil, err
	}
	return task, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		Location:    p.Location,
		Status:      p.Status,
		Budget:      p.Budget,
		Spent:       p.Spent,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		Name:       t.Name,
		AssigneeID: t.AssigneeID,
		Status:     t.Status,
		DueDate:    t.DueDate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toDailyLogResponse(l *entity.DailyLog) *dto.DailyLogResponse {
	if l == nil {
		return nil
	}
	return &dto.DailyLogResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Date:      l.Date,
		Author:    l.Author,
		Weather:   l.Weather,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}
