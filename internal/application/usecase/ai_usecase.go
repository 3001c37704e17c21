package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/ports"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// llmTimeout las llamadas a LLMs pueden demorar varios segundos; el timeout
// evita que las latencias externas bloqueen los goroutines del servidor.
const llmTimeout = 10 * time.Second

// AIUseCase orquesta las consultas al servicio de IA: sugerencias de
// cumplimiento y análisis de riesgo de proyecto. El modelo es una caja negra
// detrás del puerto LLMService.
type AIUseCase struct {
	llm         ports.LLMService
	projectRepo repository.ProjectRepository
	requestRepo repository.MaterialRequestRepository
	invoiceRepo repository.InvoiceRepository
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(
	llm ports.LLMService,
	projectRepo repository.ProjectRepository,
	requestRepo repository.MaterialRequestRepository,
	invoiceRepo repository.InvoiceRepository,
) *AIUseCase {
	return &AIUseCase{llm: llm, projectRepo: projectRepo, requestRepo: requestRepo, invoiceRepo: invoiceRepo}
}

// SuggestCompliance valida la entrada y delega al LLM con timeout.
func (uc *AIUseCase) SuggestCompliance(ctx context.Context, in dto.ComplianceRequest) (*dto.ComplianceSuggestionsDTO, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	result, err := uc.llm.SuggestCompliance(ctx, in.Description)
	if err != nil {
		return nil, fmt.Errorf("sugerencias de cumplimiento: %w", err)
	}
	return result, nil
}

// AnalyzeProjectRisk arma el snapshot del proyecto (presupuesto vs gasto,
// solicitudes abiertas, facturas vencidas) y delega al LLM con timeout.
func (uc *AIUseCase) AnalyzeProjectRisk(ctx context.Context, companyID, projectID string) (*dto.ProjectRiskDTO, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	openRequests, err := uc.requestRepo.ListByCompany(companyID, entity.MaterialRequestPending, projectID, 0, 0)
	if err != nil {
		return nil, err
	}
	overdue, err := uc.invoiceRepo.ListByCompany(companyID, entity.InvoiceStatusOverdue, 0, 0)
	if err != nil {
		return nil, err
	}
	overdueForProject := 0
	for _, inv := range overdue {
		if inv.ProjectID == projectID {
			overdueForProject++
		}
	}

	input := dto.ProjectRiskInputDTO{
		Name:            project.Name,
		Status:          project.Status,
		Budget:          project.Budget.String(),
		Spent:           project.Spent.String(),
		OpenRequests:    len(openRequests),
		OverdueInvoices: overdueForProject,
		Description:     project.Description,
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	result, err := uc.llm.AnalyzeProjectRisk(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("análisis de riesgo: %w", err)
	}
	return result, nil
}
