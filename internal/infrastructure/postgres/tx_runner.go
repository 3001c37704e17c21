package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construtek/obras-api/internal/application/inventory"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	requestRepo repository.MaterialRequestRepository,
	orderRepo repository.PurchaseOrderRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewInventoryItemRepository(tx)
	requestRepo := NewMaterialRequestRepository(tx)
	orderRepo := NewPurchaseOrderRepository(tx)
	activityRepo := NewActivityRepository(tx)

	if err := fn(itemRepo, requestRepo, orderRepo, activityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
