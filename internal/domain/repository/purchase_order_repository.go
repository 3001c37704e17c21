package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
// Create persiste la orden con sus líneas; GetByID las carga.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	UpdateStatus(id, status, notes string) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	NextOrderNumber(companyID string) (int, error)
}
