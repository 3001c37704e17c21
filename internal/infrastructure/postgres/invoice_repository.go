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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, company_id, number, client_id, project_id, issue_date, due_date, subtotal, tax, total, status, created_at, updated_at`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura y sus líneas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, invoice.Number, invoice.ClientID, nullIfEmpty(invoice.ProjectID),
		invoice.IssueDate, invoice.DueDate, invoice.Subtotal, invoice.Tax, invoice.Total,
		invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	lineQuery := `
		INSERT INTO invoice_lines (id, invoice_id, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, line := range invoice.Lines {
		if _, err := r.q.Exec(ctx, lineQuery,
			line.ID, invoice.ID, line.Description, line.Quantity, line.UnitPrice, line.LineTotal,
		); err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura con sus líneas.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var projectID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.Number, &inv.ClientID, &projectID,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.Tax, &inv.Total,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if projectID != nil {
		inv.ProjectID = *projectID
	}
	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return &inv, nil
}

// UpdateStatus actualiza el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	query := `UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista facturas (con líneas) con filtro opcional por estado.
// limit <= 0 significa sin límite.
func (r *InvoiceRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY issue_date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var projectID *string
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.Number, &inv.ClientID, &projectID,
			&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.Tax, &inv.Total,
			&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if projectID != nil {
			inv.ProjectID = *projectID
		}
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range out {
		lines, err := r.loadLines(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Lines = lines
	}
	return out, nil
}

// NextNumber devuelve el siguiente consecutivo de factura para la empresa.
func (r *InvoiceRepo) NextNumber(companyID string) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(number FROM 5) AS INTEGER)), 0) + 1 FROM invoices WHERE company_id = $1`
	var next int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&next); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return next, nil
}

func (r *InvoiceRepo) loadLines(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error) {
	query := `SELECT id, invoice_id, description, quantity, unit_price, line_total FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
