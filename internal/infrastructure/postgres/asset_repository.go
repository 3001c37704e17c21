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

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, company_id, name, asset_code, category, purchase_date, purchase_value, status, assigned_project_id, created_at, updated_at`

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL.
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un activo nuevo. Código único por empresa.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.CompanyID, asset.Name, asset.AssetCode, asset.Category,
		asset.PurchaseDate, asset.PurchaseValue, asset.Status,
		nullIfEmpty(asset.AssignedProjectID), asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return scanAsset(r.q.QueryRow(context.Background(), query, id), "get asset")
}

// GetByCompanyAndCode obtiene un activo por empresa y código interno.
func (r *AssetRepo) GetByCompanyAndCode(companyID, assetCode string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE company_id = $1 AND asset_code = $2`
	return scanAsset(r.q.QueryRow(context.Background(), query, companyID, assetCode), "get asset by code")
}

// Update actualiza un activo.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET name = $2, category = $3, purchase_date = $4, purchase_value = $5,
		    status = $6, assigned_project_id = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.Category, asset.PurchaseDate, asset.PurchaseValue,
		asset.Status, nullIfEmpty(asset.AssignedProjectID), asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista activos con filtro opcional por estado. limit <= 0 significa sin límite.
func (r *AssetRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE company_id = $1`
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
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var out []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		var assigned *string
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.Name, &a.AssetCode, &a.Category,
			&a.PurchaseDate, &a.PurchaseValue, &a.Status, &assigned, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if assigned != nil {
			a.AssignedProjectID = *assigned
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina un activo.
func (r *AssetRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateMaintenanceLog registra un mantenimiento (append-only).
func (r *AssetRepo) CreateMaintenanceLog(log *entity.MaintenanceLog) error {
	query := `
		INSERT INTO asset_maintenance_logs (id, asset_id, date, description, cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.AssetID, log.Date, log.Description, log.Cost, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance log: %w", err)
	}
	return nil
}

// ListMaintenanceLogs lista los mantenimientos de un activo, más reciente primero.
func (r *AssetRepo) ListMaintenanceLogs(assetID string) ([]*entity.MaintenanceLog, error) {
	query := `SELECT id, asset_id, date, description, cost, created_at FROM asset_maintenance_logs WHERE asset_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, assetID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.MaintenanceLog
	for rows.Next() {
		var l entity.MaintenanceLog
		if err := rows.Scan(&l.ID, &l.AssetID, &l.Date, &l.Description, &l.Cost, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func scanAsset(row pgx.Row, op string) (*entity.Asset, error) {
	var a entity.Asset
	var assigned *string
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.AssetCode, &a.Category,
		&a.PurchaseDate, &a.PurchaseValue, &a.Status, &assigned, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if assigned != nil {
		a.AssignedProjectID = *assigned
	}
	return &a, nil
}
