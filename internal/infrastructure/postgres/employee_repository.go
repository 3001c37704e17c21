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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, company_id, name, document_id, trade, daily_rate, phone, email, status, assigned_project_id, hire_date, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo. Cédula única por empresa.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.CompanyID, employee.Name, employee.DocumentID, employee.Trade,
		employee.DailyRate, employee.Phone, employee.Email, employee.Status,
		nullIfEmpty(employee.AssignedProjectID), employee.HireDate,
		employee.CreatedAt, employee.UpdatedAt, normalizeForSearch(employee.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.q.QueryRow(context.Background(), query, id), "get employee")
}

// GetByCompanyAndDocument obtiene un empleado por empresa y cédula.
func (r *EmployeeRepo) GetByCompanyAndDocument(companyID, documentID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND document_id = $2`
	return scanEmployee(r.q.QueryRow(context.Background(), query, companyID, documentID), "get employee by document")
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, trade = $3, daily_rate = $4, phone = $5, email = $6, status = $7,
		    assigned_project_id = $8, hire_date = $9, name_normalized = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Trade, employee.DailyRate, employee.Phone,
		employee.Email, employee.Status, nullIfEmpty(employee.AssignedProjectID),
		employee.HireDate, normalizeForSearch(employee.Name), employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista empleados con filtro opcional por estado. limit <= 0 significa sin límite.
func (r *EmployeeRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY name`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	var assigned *string
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.DocumentID, &e.Trade, &e.DailyRate,
		&e.Phone, &e.Email, &e.Status, &assigned, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if assigned != nil {
		e.AssignedProjectID = *assigned
	}
	return &e, nil
}

func scanEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var assigned *string
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Name, &e.DocumentID, &e.Trade, &e.DailyRate,
			&e.Phone, &e.Email, &e.Status, &assigned, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if assigned != nil {
			e.AssignedProjectID = *assigned
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
