package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/inventory"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, company_id, sku, name, category, unit, quantity, unit_cost, location, status, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un item nuevo. name_normalized alimenta la búsqueda global.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.SKU, item.Name, item.Category, item.Unit,
		item.Quantity, item.UnitCost, item.Location, item.Status, item.CreatedAt, item.UpdatedAt,
		normalizeForSearch(item.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetByCompanyAndSKU obtiene un item por empresa y SKU.
func (r *InventoryItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, sku), "get inventory item by sku")
}

// GetForUpdate obtiene un item bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa decrementos concurrentes.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item for update")
}

// Update actualiza un item, incluido quantity y status (derivado por el caller).
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, unit = $4, quantity = $5, unit_cost = $6,
		    location = $7, status = $8, name_normalized = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.Quantity, item.UnitCost,
		item.Location, item.Status, normalizeForSearch(item.Name), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista items de una empresa, con filtro opcional por categoría.
// limit <= 0 significa sin límite.
func (r *InventoryItemRepo) ListByCompany(companyID, category string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1`
	args := []any{companyID}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY name`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListLowStock lista items en Low Stock u Out of Stock.
func (r *InventoryItemRepo) ListLowStock(companyID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + ` FROM inventory_items
		WHERE company_id = $1 AND status IN ($2, $3)
		ORDER BY quantity`
	rows, err := r.q.Query(context.Background(), query, companyID, inventory.StatusLowStock, inventory.StatusOutOfStock)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Delete elimina un item.
func (r *InventoryItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.Category, &it.Unit,
		&it.Quantity, &it.UnitCost, &it.Location, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *InventoryItemRepo) scanMany(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.Category, &it.Unit,
			&it.Quantity, &it.UnitCost, &it.Location, &it.Status, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
