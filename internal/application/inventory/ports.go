package inventory

import (
	"context"

	"github.com/construtek/obras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de DB, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las mutaciones de
// stock: aprobación de solicitudes y recepción de órdenes de compra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		requestRepo repository.MaterialRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}
