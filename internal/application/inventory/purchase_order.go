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

// PurchaseOrderUseCase órdenes de compra. La recepción (Approved -> Received)
// incrementa el stock de cada línea dentro de la misma transacción que el
// cambio de estado de la orden.
type PurchaseOrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	itemRepo     repository.InventoryItemRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.InventoryItemRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
	}
}

// Create crea una orden en estado Pending con consecutivo OC-<n> por empresa.
// Valida proveedor, items y cantidades de cada línea.
func (uc *PurchaseOrderUseCase) Create(companyID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	orderID := uuid.New().String()
	lines := make([]entity.PurchaseOrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) || l.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil || item == nil {
			return nil, domain.ErrNotFound
		}
		if item.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		lines = append(lines, entity.PurchaseOrderLine{
			ID:       uuid.New().String(),
			OrderID:  orderID,
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		})
	}

	seq, err := uc.orderRepo.NextOrderNumber(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:          orderID,
		CompanyID:   companyID,
		OrderNumber: fmt.Sprintf("OC-%05d", seq),
		SupplierID:  in.SupplierID,
		Status:      entity.PurchaseOrderPending,
		Notes:       in.Notes,
		CreatedBy:   userID,
		Lines:       lines,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden de la empresa con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(companyID, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con filtro opcional por estado.
func (uc *PurchaseOrderUseCase) List(companyID, status string, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.orderRepo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Approve pasa una orden de Pending a Approved.
func (uc *PurchaseOrderUseCase) Approve(companyID, id string) (*dto.PurchaseOrderResponse, error) {
	return uc.transition(companyID, id, entity.PurchaseOrderPending, entity.PurchaseOrderApproved, "")
}

// Cancel cancela una orden Pending o Approved. Las órdenes recibidas no se
// pueden cancelar.
func (uc *PurchaseOrderUseCase) Cancel(companyID, id, notes string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.PurchaseOrderPending && order.Status != entity.PurchaseOrderApproved {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, entity.PurchaseOrderCancelled, notes); err != nil {
		return nil, err
	}
	order.Status = entity.PurchaseOrderCancelled
	if notes != "" {
		order.Notes = notes
	}
	return toOrderResponse(order), nil
}

func (uc *PurchaseOrderUseCase) transition(companyID, id, from, to, notes string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != from {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, to, notes); err != nil {
		return nil, err
	}
	order.Status = to
	return toOrderResponse(order), nil
}

// Receive pasa una orden de Approved a Received e incrementa el stock de cada
// línea dentro de la misma transacción, con bloqueo de fila por item. El
// costo unitario del item se actualiza al de la compra.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, companyID, userID, orderID string) (*dto.PurchaseOrderResponse, error) {
	var received *entity.PurchaseOrder

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		_ repository.MaterialRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		activityRepo repository.ActivityRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil || order.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderApproved {
			return domain.ErrConflict
		}

		now := time.Now()
		for _, line := range order.Lines {
			item, err := itemRepo.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			item.Quantity = item.Quantity.Add(line.Quantity)
			item.Status = domaininv.DeriveStatus(item.Quantity)
			item.UnitCost = line.UnitCost
			item.UpdatedAt = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(order.ID, entity.PurchaseOrderReceived, order.Notes); err != nil {
			return err
		}
		order.Status = entity.PurchaseOrderReceived
		order.UpdatedAt = now

		entry := &entity.ActivityEntry{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			Type:       entity.ActivityPurchaseOrderReceived,
			EntityKind: "purchase_order",
			EntityID:   order.ID,
			Summary:    fmt.Sprintf("Orden %s recibida (%d líneas)", order.OrderNumber, len(order.Lines)),
			UserID:     userID,
			CreatedAt:  now,
		}
		if err := activityRepo.Create(entry); err != nil {
			return err
		}

		received = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(received), nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.PurchaseOrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.PurchaseOrderLineResponse{
			ID:       l.ID,
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:          o.ID,
		CompanyID:   o.CompanyID,
		OrderNumber: o.OrderNumber,
		SupplierID:  o.SupplierID,
		Status:      o.Status,
		Notes:       o.Notes,
		CreatedBy:   o.CreatedBy,
		Lines:       lines,
		Total:       o.Total(),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
