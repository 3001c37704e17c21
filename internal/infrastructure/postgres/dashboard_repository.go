package postgres

import (
	"context"
	"fmt"

	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el tablero, una sola ronda a la DB.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetCounts calcula los agregados del tablero en SQL.
func (r *DashboardRepo) GetCounts(companyID string) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE company_id = $1 AND status = 'In Progress'),
			(SELECT COUNT(*) FROM employees WHERE company_id = $1 AND status = 'Active'),
			(SELECT COUNT(*) FROM material_requests WHERE company_id = $1 AND status = 'Pending'),
			(SELECT COUNT(*) FROM inventory_items WHERE company_id = $1 AND status IN ('Low Stock', 'Out of Stock')),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE company_id = $1 AND type = 'Income'),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE company_id = $1 AND type = 'Expense'),
			(SELECT COUNT(*) FROM invoices WHERE company_id = $1 AND status IN ('Sent', 'Overdue')),
			(SELECT COALESCE(SUM(total), 0) FROM invoices WHERE company_id = $1 AND status IN ('Sent', 'Overdue'))`
	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&c.ActiveProjects, &c.ActiveEmployees, &c.PendingRequests, &c.LowStockItems,
		&c.TotalIncome, &c.TotalExpense, &c.UnpaidInvoices, &c.UnpaidTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
