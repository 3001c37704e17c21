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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, company_id, order_number, supplier_id, status, notes, created_by, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CompanyID, order.OrderNumber, order.SupplierID, order.Status,
		order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	lineQuery := `
		INSERT INTO purchase_order_lines (id, order_id, item_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	for _, line := range order.Lines {
		if _, err := r.q.Exec(ctx, lineQuery, line.ID, order.ID, line.ItemID, line.Quantity, line.UnitCost); err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CompanyID, &o.OrderNumber, &o.SupplierID, &o.Status,
		&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// UpdateStatus actualiza estado y notas de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status, notes string) error {
	query := `UPDATE purchase_orders SET status = $2, notes = $3, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status, notes)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista órdenes (con líneas) con filtro opcional por estado.
func (r *PurchaseOrderRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.OrderNumber, &o.SupplierID, &o.Status,
			&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range out {
		lines, err := r.loadLines(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return out, nil
}

// NextOrderNumber devuelve el siguiente consecutivo de orden para la empresa.
func (r *PurchaseOrderRepo) NextOrderNumber(companyID string) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(order_number FROM 4) AS INTEGER)), 0) + 1 FROM purchase_orders WHERE company_id = $1`
	var next int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&next); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return next, nil
}

func (r *PurchaseOrderRepo) loadLines(ctx context.Context, orderID string) ([]entity.PurchaseOrderLine, error) {
	query := `SELECT id, order_id, item_id, quantity, unit_cost FROM purchase_order_lines WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Quantity, &l.UnitCost); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
