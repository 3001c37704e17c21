package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// TransactionUseCase casos de uso financieros: transacciones y totales.
// Un gasto asociado a proyecto incrementa el acumulado Spent del proyecto.
type TransactionUseCase struct {
	repo        repository.TransactionRepository
	projectRepo repository.ProjectRepository
	activity    *ActivityUseCase
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, projectRepo repository.ProjectRepository, activity *ActivityUseCase) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, projectRepo: projectRepo, activity: activity}
}

// Create registra una transacción. Type debe ser Income o Expense y Amount > 0.
// El proyecto, si se indica, debe existir y pertenecer a la empresa.
func (uc *TransactionUseCase) Create(companyID, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	now := time.Now()
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   in.ProjectID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ProjectID != "" {
		project, err := uc.projectRepo.GetByID(in.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil || project.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	// Un gasto de proyecto alimenta el acumulado Spent
	if tx.Type == entity.TransactionExpense && tx.ProjectID != "" {
		if err := uc.accumulateSpent(tx.ProjectID, tx.Amount, now); err != nil {
			log.Error().Err(err).Str("project_id", tx.ProjectID).Str("transaction_id", tx.ID).
				Msg("acumular gasto del proyecto")
		}
	}
	uc.activity.Record(companyID, userID, entity.ActivityTransactionCreated, "transaction", tx.ID,
		fmt.Sprintf("%s por %s registrado (%s)", tx.Type, tx.Amount, tx.Category))
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción de la empresa por ID.
func (uc *TransactionUseCase) GetByID(companyID, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.getOwned(companyID, id)
	if err != nil || tx == nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Update actualiza campos descriptivos. Type y Amount son inmutables:
// la contabilidad se corrige con una transacción inversa.
func (uc *TransactionUseCase) Update(companyID, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.getOwned(companyID, id)
	if err != nil || tx == nil {
		return nil, err
	}
	if in.Category != nil {
		tx.Category = *in.Category
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	tx.UpdatedAt = time.Now()
	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones con filtros opcionales por proyecto y tipo.
func (uc *TransactionUseCase) List(companyID, projectID, txType string, limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, projectID, txType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una transacción. Los movimientos ligados a una factura no se eliminan.
func (uc *TransactionUseCase) Delete(companyID, id string) error {
	tx, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if tx.InvoiceID != "" {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// accumulateSpent suma un gasto al acumulado del proyecto. Es best-effort tras
// persistir la transacción: el error se reporta al caller para loguearlo.
func (uc *TransactionUseCase) accumulateSpent(projectID string, amount decimal.Decimal, now time.Time) error {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	project.Spent = project.Spent.Add(amount)
	project.UpdatedAt = now
	return uc.projectRepo.Update(project)
}

// getOwned carga una transacción y verifica que pertenezca a la empresa.
func (uc *TransactionUseCase) getOwned(companyID, id string) (*entity.Transaction, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.CompanyID != companyID {
		return nil, nil
	}
	return tx, nil
}

// Summary totales de ingresos/gastos, global o por proyecto. Net = Income - Expense.
func (uc *TransactionUseCase) Summary(companyID, projectID string) (*dto.FinancialSummaryDTO, error) {
	summary, err := uc.repo.Summary(companyID, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.FinancialSummaryDTO{
		ProjectID: projectID,
		Income:    summary.Income,
		Expense:   summary.Expense,
		Net:       summary.Income.Sub(summary.Expense),
	}, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		ProjectID:   t.ProjectID,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		InvoiceID:   t.InvoiceID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
