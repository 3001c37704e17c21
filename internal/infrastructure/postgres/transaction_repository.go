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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, company_id, project_id, type, category, amount, date, description, invoice_id, created_by, created_at, updated_at`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción nueva.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CompanyID, nullIfEmpty(tx.ProjectID), tx.Type, tx.Category, tx.Amount,
		tx.Date, tx.Description, nullIfEmpty(tx.InvoiceID), tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	var projectID, invoiceID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &projectID, &t.Type, &t.Category, &t.Amount,
		&t.Date, &t.Description, &invoiceID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if projectID != nil {
		t.ProjectID = *projectID
	}
	if invoiceID != nil {
		t.InvoiceID = *invoiceID
	}
	return &t, nil
}

// Update actualiza campos editables (categoría, fecha, descripción, proyecto).
// Type y Amount son inmutables; el caso de uso lo garantiza.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET project_id = $2, category = $3, date = $4, description = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		tx.ID, nullIfEmpty(tx.ProjectID), tx.Category, tx.Date, tx.Description, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista transacciones con filtros opcionales por proyecto y tipo.
// limit <= 0 significa sin límite.
func (r *TransactionRepo) ListByCompany(companyID, projectID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE company_id = $1`
	args := []any{companyID}
	if projectID != "" {
		args = append(args, projectID)
		query += fmt.Sprintf(` AND project_id = $%d`, len(args))
	}
	if txType != "" {
		args = append(args, txType)
		query += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	query += ` ORDER BY date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var pID, invID *string
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &pID, &t.Type, &t.Category, &t.Amount,
			&t.Date, &t.Description, &invID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if pID != nil {
			t.ProjectID = *pID
		}
		if invID != nil {
			t.InvoiceID = *invID
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Delete elimina una transacción.
func (r *TransactionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Summary calcula ingresos y gastos totales en SQL, con filtro opcional por proyecto.
func (r *TransactionRepo) Summary(companyID, projectID string) (*repository.FinancialSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'Income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'Expense'), 0)
		FROM transactions WHERE company_id = $1`
	args := []any{companyID}
	if projectID != "" {
		args = append(args, projectID)
		query += ` AND project_id = $2`
	}
	var s repository.FinancialSummary
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&s.Income, &s.Expense); err != nil {
		return nil, fmt.Errorf("financial summary: %w", err)
	}
	return &s, nil
}
