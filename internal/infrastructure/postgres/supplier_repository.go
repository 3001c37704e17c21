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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, company_id, name, nit, category, contact_person, email, phone, rating, status, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo. NIT único por empresa.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.NIT, supplier.Category,
		supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Rating,
		supplier.Status, supplier.CreatedAt, supplier.UpdatedAt, normalizeForSearch(supplier.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return scanSupplier(r.q.QueryRow(context.Background(), query, id), "get supplier")
}

// GetByCompanyAndNIT obtiene un proveedor por empresa y NIT.
func (r *SupplierRepo) GetByCompanyAndNIT(companyID, nit string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE company_id = $1 AND nit = $2`
	return scanSupplier(r.q.QueryRow(context.Background(), query, companyID, nit), "get supplier by nit")
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, category = $3, contact_person = $4, email = $5, phone = $6,
		    rating = $7, status = $8, name_normalized = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Category, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Rating, supplier.Status, normalizeForSearch(supplier.Name), supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista proveedores de una empresa. limit <= 0 significa sin límite.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE company_id = $1 ORDER BY name`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSupplier(row pgx.Row, op string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.NIT, &s.Category, &s.ContactPerson,
		&s.Email, &s.Phone, &s.Rating, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func scanSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Name, &s.NIT, &s.Category, &s.ContactPerson,
			&s.Email, &s.Phone, &s.Rating, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
