package repository

import "github.com/shopspring/decimal"

// DashboardCounts agregados del tablero (una fila por empresa, calculada en SQL).
type DashboardCounts struct {
	ActiveProjects   int
	ActiveEmployees  int
	PendingRequests  int
	LowStockItems    int
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	UnpaidInvoices   int
	UnpaidTotal      decimal.Decimal
}

// DashboardRepository consultas agregadas para el tablero.
type DashboardRepository interface {
	GetCounts(companyID string) (*DashboardCounts, error)
}
