package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, company_id, name, client_id, location, status, budget, spent, start_date, end_date, description, created_at, updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un proyecto nuevo.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.CompanyID, project.Name, nullIfEmpty(project.ClientID), project.Location,
		project.Status, project.Budget, project.Spent, project.StartDate, project.EndDate,
		project.Description, project.CreatedAt, project.UpdatedAt, normalizeForSearch(project.Name),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.q.QueryRow(context.Background(), query, id), "get project")
}

// Update actualiza un proyecto, incluido spent (acumulado desde gastos).
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, client_id = $3, location = $4, status = $5, budget = $6, spent = $7,
		    start_date = $8, end_date = $9, description = $10, name_normalized = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, nullIfEmpty(project.ClientID), project.Location, project.Status,
		project.Budget, project.Spent, project.StartDate, project.EndDate, project.Description,
		normalizeForSearch(project.Name), project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista proyectos con filtro opcional por estado.
func (r *ProjectRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// Delete elimina un proyecto.
func (r *ProjectRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateTask persiste una tarea del proyecto.
func (r *ProjectRepo) CreateTask(task *entity.Task) error {
	query := `
		INSERT INTO project_tasks (id, project_id, name, assignee_id, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.ProjectID, task.Name, nullIfEmpty(task.AssigneeID),
		task.Status, task.DueDate, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetTaskByID obtiene una tarea por ID.
func (r *ProjectRepo) GetTaskByID(id string) (*entity.Task, error) {
	query := `SELECT id, project_id, name, assignee_id, status, due_date, created_at, updated_at FROM project_tasks WHERE id = $1`
	var t entity.Task
	var assignee *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProjectID, &t.Name, &assignee, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if assignee != nil {
		t.AssigneeID = *assignee
	}
	return &t, nil
}

// UpdateTask actualiza una tarea.
func (r *ProjectRepo) UpdateTask(task *entity.Task) error {
	query := `
		UPDATE project_tasks SET name = $2, assignee_id = $3, status = $4, due_date = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		task.ID, task.Name, nullIfEmpty(task.AssigneeID), task.Status, task.DueDate, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListTasks lista las tareas de un proyecto.
func (r *ProjectRepo) ListTasks(projectID string) ([]*entity.Task, error) {
	query := `SELECT id, project_id, name, assignee_id, status, due_date, created_at, updated_at FROM project_tasks WHERE project_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []*entity.Task
	for rows.Next() {
		var t entity.Task
		var assignee *string
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &assignee, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignee != nil {
			t.AssigneeID = *assignee
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// DeleteTask elimina una tarea.
func (r *ProjectRepo) DeleteTask(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM project_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateDailyLog persiste una entrada de bitácora diaria (append-only).
func (r *ProjectRepo) CreateDailyLog(log *entity.DailyLog) error {
	query := `
		INSERT INTO project_daily_logs (id, project_id, date, author, weather, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProjectID, log.Date, log.Author, log.Weather, log.Notes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert daily log: %w", err)
	}
	return nil
}

// ListDailyLogs lista la bitácora de un proyecto, más reciente primero.
func (r *ProjectRepo) ListDailyLogs(projectID string, limit, offset int) ([]*entity.DailyLog, error) {
	query := `SELECT id, project_id, date, author, weather, notes, created_at FROM project_daily_logs WHERE project_id = $1 ORDER BY date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.DailyLog
	for rows.Next() {
		var l entity.DailyLog
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Date, &l.Author, &l.Weather, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func scanProject(row pgx.Row, op string) (*entity.Project, error) {
	var p entity.Project
	var clientID *string
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &clientID, &p.Location, &p.Status,
		&p.Budget, &p.Spent, &p.StartDate, &p.EndDate, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if clientID != nil {
		p.ClientID = *clientID
	}
	return &p, nil
}

func scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var out []*entity.Project
	for rows.Next() {
		var p entity.Project
		var clientID *string
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &clientID, &p.Location, &p.Status,
			&p.Budget, &p.Spent, &p.StartDate, &p.EndDate, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if clientID != nil {
			p.ClientID = *clientID
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
