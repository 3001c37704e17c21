package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.SearchRepository = (*SearchRepo)(nil)

// SearchRepo búsqueda por prefijo sobre las columnas name_normalized.
// El término llega ya normalizado (minúsculas, sin tildes) desde el caso de uso.
type SearchRepo struct {
	q Querier
}

// NewSearchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSearchRepository(q Querier) *SearchRepo {
	return &SearchRepo{q: q}
}

// SearchProjects busca proyectos por prefijo de nombre.
func (r *SearchRepo) SearchProjects(companyID, term string, limit int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + ` FROM projects
		WHERE company_id = $1 AND name_normalized LIKE $2
		ORDER BY name LIMIT $3`
	rows, err := r.query(query, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// SearchEmployees busca empleados por prefijo de nombre.
func (r *SearchRepo) SearchEmployees(companyID, term string, limit int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		WHERE company_id = $1 AND name_normalized LIKE $2
		ORDER BY name LIMIT $3`
	rows, err := r.query(query, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// SearchClients busca clientes por prefijo de nombre.
func (r *SearchRepo) SearchClients(companyID, term string, limit int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE company_id = $1 AND name_normalized LIKE $2
		ORDER BY name LIMIT $3`
	rows, err := r.query(query, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.ContactPerson, &c.Email,
			&c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// SearchSuppliers busca proveedores por prefijo de nombre.
func (r *SearchRepo) SearchSuppliers(companyID, term string, limit int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + ` FROM suppliers
		WHERE company_id = $1 AND name_normalized LIKE $2
		ORDER BY name LIMIT $3`
	rows, err := r.query(query, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

// SearchInventoryItems busca items de inventario por prefijo de nombre.
func (r *SearchRepo) SearchInventoryItems(companyID, term string, limit int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + ` FROM inventory_items
		WHERE company_id = $1 AND name_normalized LIKE $2
		ORDER BY name LIMIT $3`
	rows, err := r.query(query, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search inventory items: %w", err)
	}
	defer rows.Close()
	return (&InventoryItemRepo{q: r.q}).scanMany(rows)
}

func (r *SearchRepo) query(query, companyID, term string, limit int) (pgx.Rows, error) {
	return r.q.Query(context.Background(), query, companyID, escapeLike(term)+"%", limit)
}

// escapeLike escapa los metacaracteres de LIKE para que el término se compare
// literal: "20%" busca "20%", no cualquier cosa que empiece por "20".
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
