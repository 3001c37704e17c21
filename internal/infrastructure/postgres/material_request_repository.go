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

var _ repository.MaterialRequestRepository = (*MaterialRequestRepo)(nil)

const requestColumns = `id, company_id, project_id, item_id, quantity, requested_by, status, reason, decided_by, decided_at, created_at, updated_at`

// MaterialRequestRepo implementación del puerto MaterialRequestRepository sobre PostgreSQL.
type MaterialRequestRepo struct {
	q Querier
}

// NewMaterialRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRequestRepository(q Querier) *MaterialRequestRepo {
	return &MaterialRequestRepo{q: q}
}

// Create persiste una solicitud nueva.
func (r *MaterialRequestRepo) Create(request *entity.MaterialRequest) error {
	query := `
		INSERT INTO material_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.CompanyID, request.ProjectID, request.ItemID, request.Quantity,
		request.RequestedBy, request.Status, request.Reason,
		nullIfEmpty(request.DecidedBy), request.DecidedAt, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *MaterialRequestRepo) GetByID(id string) (*entity.MaterialRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM material_requests WHERE id = $1`
	var m entity.MaterialRequest
	var decidedBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.ProjectID, &m.ItemID, &m.Quantity,
		&m.RequestedBy, &m.Status, &m.Reason, &decidedBy, &m.DecidedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material request: %w", err)
	}
	if decidedBy != nil {
		m.DecidedBy = *decidedBy
	}
	return &m, nil
}

// Update actualiza estado, motivo y datos de decisión.
func (r *MaterialRequestRepo) Update(request *entity.MaterialRequest) error {
	query := `
		UPDATE material_requests
		SET status = $2, reason = $3, decided_by = $4, decided_at = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		request.ID, request.Status, request.Reason,
		nullIfEmpty(request.DecidedBy), request.DecidedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista solicitudes con filtros opcionales por estado y proyecto.
// limit <= 0 significa sin límite.
func (r *MaterialRequestRepo) ListByCompany(companyID, status, projectID string, limit, offset int) ([]*entity.MaterialRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM material_requests WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if projectID != "" {
		args = append(args, projectID)
		query += fmt.Sprintf(` AND project_id = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list material requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.MaterialRequest
	for rows.Next() {
		var m entity.MaterialRequest
		var decidedBy *string
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.ProjectID, &m.ItemID, &m.Quantity,
			&m.RequestedBy, &m.Status, &m.Reason, &decidedBy, &m.DecidedAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material request: %w", err)
		}
		if decidedBy != nil {
			m.DecidedBy = *decidedBy
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// CountPendingByItem cuenta solicitudes pendientes que referencian un ítem.
func (r *MaterialRequestRepo) CountPendingByItem(itemID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM material_requests WHERE item_id = $1 AND status = $2`
	if err := r.q.QueryRow(context.Background(), query, itemID, entity.MaterialRequestPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return count, nil
}
