package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	domaininv "github.com/construtek/obras-api/internal/domain/inventory"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// MaterialRequestUseCase flujo de solicitudes de material. La aprobación es
// transaccional con bloqueo de fila (SELECT FOR UPDATE): descuenta stock,
// recalcula el estado derivado y decide la solicitud en una sola transacción.
// El stock nunca queda negativo.
type MaterialRequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.MaterialRequestRepository
	itemRepo    repository.InventoryItemRepository
	projectRepo repository.ProjectRepository
}

// NewMaterialRequestUseCase construye el caso de uso.
func NewMaterialRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.MaterialRequestRepository,
	itemRepo repository.InventoryItemRepository,
	projectRepo repository.ProjectRepository,
) *MaterialRequestUseCase {
	return &MaterialRequestUseCase{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		projectRepo: projectRepo,
	}
}

// Create crea una solicitud en estado Pending. Valida que item y proyecto
// existan y pertenezcan a la empresa, y que la cantidad sea > 0.
func (uc *MaterialRequestUseCase) Create(companyID, userID string, in dto.CreateMaterialRequestRequest) (*dto.MaterialRequestResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil || project == nil {
		return nil, domain.ErrNotFound
	}
	if project.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	request := &entity.MaterialRequest{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   in.ProjectID,
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		RequestedBy: userID,
		Status:      entity.MaterialRequestPending,
		Reason:      in.Reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

// GetByID obtiene una solicitud de la empresa por ID. Una solicitud ajena es
// indistinguible de una inexistente.
func (uc *MaterialRequestUseCase) GetByID(companyID, id string) (*dto.MaterialRequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil || request.CompanyID != companyID {
		return nil, nil
	}
	return toRequestResponse(request), nil
}

// List lista solicitudes con filtros opcionales por estado y proyecto.
func (uc *MaterialRequestUseCase) List(companyID, status, projectID string, limit, offset int) (*dto.MaterialRequestListResponse, error) {
	list, err := uc.requestRepo.ListByCompany(companyID, status, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequestResponse(r))
	}
	return &dto.MaterialRequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Approve aprueba una solicitud Pending dentro de una transacción:
// bloquea la fila del item, verifica stock suficiente, descuenta la cantidad,
// recalcula el estado derivado y marca la solicitud como Approved.
// Stock insuficiente -> ErrInsufficientStock y la solicitud queda Pending.
func (uc *MaterialRequestUseCase) Approve(ctx context.Context, companyID, userID, requestID string) (*dto.MaterialRequestResponse, error) {
	var approved *entity.MaterialRequest

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		requestRepo repository.MaterialRequestRepository,
		_ repository.PurchaseOrderRepository,
		activityRepo repository.ActivityRepository,
	) error {
		request, err := requestRepo.GetByID(requestID)
		if err != nil {
			return err
		}
		if request == nil || request.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if request.Status != entity.MaterialRequestPending {
			return domain.ErrAlreadyDecided
		}

		// Bloquea la fila del item para evitar lost updates entre aprobaciones concurrentes
		item, err := itemRepo.GetForUpdate(request.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if !domaininv.CanConsume(item.Quantity, request.Quantity) {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		item.Quantity = item.Quantity.Sub(request.Quantity)
		item.Status = domaininv.DeriveStatus(item.Quantity)
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		request.Status = entity.MaterialRequestApproved
		request.DecidedBy = userID
		request.DecidedAt = &now
		request.UpdatedAt = now
		if err := requestRepo.Update(request); err != nil {
			return err
		}

		entry := &entity.ActivityEntry{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			Type:       entity.ActivityMaterialRequestApproved,
			EntityKind: "material_request",
			EntityID:   request.ID,
			Summary:    fmt.Sprintf("Solicitud aprobada: %s x %s (stock restante %s)", request.Quantity, item.Name, item.Quantity),
			UserID:     userID,
			CreatedAt:  now,
		}
		if err := activityRepo.Create(entry); err != nil {
			return err
		}

		approved = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(approved), nil
}

// Reject rechaza una solicitud Pending. No toca el stock.
func (uc *MaterialRequestUseCase) Reject(ctx context.Context, companyID, userID, requestID, reason string) (*dto.MaterialRequestResponse, error) {
	var rejected *entity.MaterialRequest

	err := uc.txRunner.Run(ctx, func(
		_ repository.InventoryItemRepository,
		requestRepo repository.MaterialRequestRepository,
		_ repository.PurchaseOrderRepository,
		activityRepo repository.ActivityRepository,
	) error {
		request, err := requestRepo.GetByID(requestID)
		if err != nil {
			return err
		}
		if request == nil || request.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if request.Status != entity.MaterialRequestPending {
			return domain.ErrAlreadyDecided
		}

		now := time.Now()
		request.Status = entity.MaterialRequestRejected
		request.Reason = reason
		request.DecidedBy = userID
		request.DecidedAt = &now
		request.UpdatedAt = now
		if err := requestRepo.Update(request); err != nil {
			return err
		}

		entry := &entity.ActivityEntry{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			Type:       entity.ActivityMaterialRequestRejected,
			EntityKind: "material_request",
			EntityID:   request.ID,
			Summary:    fmt.Sprintf("Solicitud rechazada: %s", reason),
			UserID:     userID,
			CreatedAt:  now,
		}
		if err := activityRepo.Create(entry); err != nil {
			return err
		}

		rejected = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(rejected), nil
}

func toRequestResponse(r *entity.MaterialRequest) *dto.MaterialRequestResponse {
	if r == nil {
		return nil
	}
	return &dto.MaterialRequestResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		ProjectID:   r.ProjectID,
		ItemID:      r.ItemID,
		Quantity:    r.Quantity,
		RequestedBy: r.RequestedBy,
		Status:      r.Status,
		Reason:      r.Reason,
		DecidedBy:   r.DecidedBy,
		DecidedAt:   r.DecidedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
