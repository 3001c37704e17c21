package repository

import (
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/domain/entity"
)

// FinancialSummary totales agregados de transacciones (cálculo en SQL).
type FinancialSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	ListByCompany(companyID, projectID, txType string, limit, offset int) ([]*entity.Transaction, error)
	Delete(id string) error
	Summary(companyID, projectID string) (*FinancialSummary, error)
}
