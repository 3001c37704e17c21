package dto

import "github.com/shopspring/decimal"

// DashboardDTO agregados del tablero principal.
type DashboardDTO struct {
	ActiveProjects  int             `json:"active_projects"`
	ActiveEmployees int             `json:"active_employees"`
	PendingRequests int             `json:"pending_requests"`
	LowStockItems   int             `json:"low_stock_items"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	Net             decimal.Decimal `json:"net"`
	UnpaidInvoices  int             `json:"unpaid_invoices"`
	UnpaidTotal     decimal.Decimal `json:"unpaid_total"`
}
