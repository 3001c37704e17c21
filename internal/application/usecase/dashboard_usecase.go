package usecase

import (
	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// DashboardUseCase agrega los indicadores del tablero principal.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Get devuelve los agregados de la empresa (una sola pasada de consultas SQL).
func (uc *DashboardUseCase) Get(companyID string) (*dto.DashboardDTO, error) {
	counts, err := uc.repo.GetCounts(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		ActiveProjects:  counts.ActiveProjects,
		ActiveEmployees: counts.ActiveEmployees,
		PendingRequests: counts.PendingRequests,
		LowStockItems:   counts.LowStockItems,
		TotalIncome:     counts.TotalIncome,
		TotalExpense:    counts.TotalExpense,
		Net:             counts.TotalIncome.Sub(counts.TotalExpense),
		UnpaidInvoices:  counts.UnpaidInvoices,
		UnpaidTotal:     counts.UnpaidTotal,
	}, nil
}
