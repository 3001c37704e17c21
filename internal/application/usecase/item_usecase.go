package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/inventory"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// InventoryItemUseCase CRUD de items de bodega. La cantidad solo cambia vía
// solicitudes de material y órdenes de compra (ver application/inventory);
// el estado es siempre derivado de la cantidad.
type InventoryItemUseCase struct {
	repo     repository.InventoryItemRepository
	requests repository.MaterialRequestRepository
	activity *ActivityUseCase
}

// NewInventoryItemUseCase construye el caso de uso.
func NewInventoryItemUseCase(repo repository.InventoryItemRepository, requests repository.MaterialRequestRepository, activity *ActivityUseCase) *InventoryItemUseCase {
	return &InventoryItemUseCase{repo: repo, requests: requests, activity: activity}
}

// Create crea un item con cantidad inicial >= 0 y estado derivado. SKU duplicado -> ErrDuplicate.
func (uc *InventoryItemUseCase) Create(companyID, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Quantity.LessThan(decimal.Zero) || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Unit:      in.Unit,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Location:  in.Location,
		Status:    inventory.DeriveStatus(in.Quantity),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityItemCreated, "inventory_item", item.ID,
		fmt.Sprintf("Item %q (%s) creado con %s %s", item.Name, item.SKU, item.Quantity, item.Unit))
	return toItemResponse(item), nil
}

// GetByID obtiene un item de la empresa por ID.
func (uc *InventoryItemUseCase) GetByID(companyID, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.getOwned(companyID, id)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza metadatos del item. No toca Quantity ni Status.
func (uc *InventoryItemUseCase) Update(companyID, id, userID string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.getOwned(companyID, id)
	if err != nil || item == nil {
		return nil, err
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCost = *in.UnitCost
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.activity.Record(item.CompanyID, userID, entity.ActivityItemUpdated, "inventory_item", item.ID,
		fmt.Sprintf("Item %q actualizado", item.Name))
	return toItemResponse(item), nil
}

// List lista items por empresa con filtro opcional por categoría.
func (uc *InventoryItemUseCase) List(companyID, category string, limit, offset int) (*dto.InventoryItemListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.InventoryItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista items en Low Stock u Out of Stock.
func (uc *InventoryItemUseCase) ListLowStock(companyID string) ([]dto.InventoryItemResponse, error) {
	list, err := uc.repo.ListLowStock(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// Delete elimina un item. Un ítem con solicitudes pendientes no se elimina.
func (uc *InventoryItemUseCase) Delete(companyID, id string) error {
	item, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	pending, err := uc.requests.CountPendingByItem(id)
	if err != nil {
		return err
	}
	if pending > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// getOwned carga un item y verifica que pertenezca a la empresa.
func (uc *InventoryItemUseCase) getOwned(companyID, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, nil
	}
	return item, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		SKU:       it.SKU,
		Name:      it.Name,
		Category:  it.Category,
		Unit:      it.Unit,
		Quantity:  it.Quantity,
		UnitCost:  it.UnitCost,
		Location:  it.Location,
		Status:    it.Status,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
