package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para InventoryItem.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro
// de una transacción (ver inventory.TxRunner).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	ListByCompany(companyID, category string, limit, offset int) ([]*entity.InventoryItem, error)
	ListLowStock(companyID string) ([]*entity.InventoryItem, error)
	Delete(id string) error
}
