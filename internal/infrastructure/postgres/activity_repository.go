package postgres

import (
	"context"
	"fmt"

	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// La tabla es append-only: no hay UPDATE ni DELETE.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create registra una entrada en la bitácora.
func (r *ActivityRepo) Create(entry *entity.ActivityEntry) error {
	query := `
		INSERT INTO activity_entries (id, company_id, type, entity_kind, entity_id, summary, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.Type, entry.EntityKind, entry.EntityID,
		entry.Summary, entry.UserID, entry.UserName, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

// ListByCompany lista la bitácora, más reciente primero, con filtro opcional por tipo.
// limit <= 0 significa sin límite.
func (r *ActivityRepo) ListByCompany(companyID, activityType string, limit, offset int) ([]*entity.ActivityEntry, error) {
	query := `SELECT id, company_id, type, entity_kind, entity_id, summary, user_id, user_name, created_at FROM activity_entries WHERE company_id = $1`
	args := []any{companyID}
	if activityType != "" {
		args = append(args, activityType)
		query += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.ActivityEntry
	for rows.Next() {
		var e entity.ActivityEntry
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Type, &e.EntityKind, &e.EntityID,
			&e.Summary, &e.UserID, &e.UserName, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
