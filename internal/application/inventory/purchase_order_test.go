package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	domaininv "github.com/construtek/obras-api/internal/domain/inventory"
)

func (f *fixture) seedSupplier(id string) {
	f.suppliers.suppliers[id] = &entity.Supplier{ID: id, CompanyID: testCompanyID, Name: "Ferretería El Tornillo"}
}

func TestPurchaseOrderCreate(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 3)

	resp, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(1500)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderPending, resp.Status)
	assert.Equal(t, "OC-00001", resp.OrderNumber)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(30000)))
}

func TestPurchaseOrderGetByIDOtherCompanyNotVisible(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 3)

	created, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(1500)},
		},
	})
	require.NoError(t, err)

	resp, err := f.orderUC.GetByID("company-ajena", created.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestPurchaseOrderCreateWithoutLines(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")

	_, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderCreateInvalidLineQuantity(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 3)

	_, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.Zero, UnitCost: decimal.NewFromInt(1500)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderReceiveIncrementsStock(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 2) // Low Stock
	f.seedItem("item-2", 0) // Out of Stock

	created, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(30), UnitCost: decimal.NewFromInt(1200)},
			{ItemID: "item-2", Quantity: decimal.NewFromInt(4), UnitCost: decimal.NewFromInt(800)},
		},
	})
	require.NoError(t, err)

	_, err = f.orderUC.Approve(testCompanyID, created.ID)
	require.NoError(t, err)

	resp, err := f.orderUC.Receive(context.Background(), testCompanyID, testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderReceived, resp.Status)

	item1, _ := f.items.GetByID("item-1")
	assert.True(t, item1.Quantity.Equal(decimal.NewFromInt(32)))
	assert.Equal(t, domaininv.StatusInStock, item1.Status)
	assert.True(t, item1.UnitCost.Equal(decimal.NewFromInt(1200)))

	item2, _ := f.items.GetByID("item-2")
	assert.True(t, item2.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, domaininv.StatusLowStock, item2.Status)

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, entity.ActivityPurchaseOrderReceived, f.activity.entries[0].Type)
}

func TestPurchaseOrderReceiveRequiresApproved(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 2)

	created, err := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	_, err = f.orderUC.Receive(context.Background(), testCompanyID, testUserID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// el stock no se tocó
	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(2)))
}

func TestPurchaseOrderReceiveTwice(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 0)

	created, _ := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
		},
	})
	_, _ = f.orderUC.Approve(testCompanyID, created.ID)
	_, err := f.orderUC.Receive(context.Background(), testCompanyID, testUserID, created.ID)
	require.NoError(t, err)

	_, err = f.orderUC.Receive(context.Background(), testCompanyID, testUserID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(10)), "único incremento")
}

func TestPurchaseOrderCancel(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 0)

	created, _ := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
		},
	})

	resp, err := f.orderUC.Cancel(testCompanyID, created.ID, "proveedor sin disponibilidad")
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderCancelled, resp.Status)

	_, err = f.orderUC.Approve(testCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPurchaseOrderCancelReceived(t *testing.T) {
	f := newFixture()
	f.seedSupplier("sup-1")
	f.seedItem("item-1", 0)

	created, _ := f.orderUC.Create(testCompanyID, testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ItemID: "item-1", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
		},
	})
	_, _ = f.orderUC.Approve(testCompanyID, created.ID)
	_, _ = f.orderUC.Receive(context.Background(), testCompanyID, testUserID, created.ID)

	_, err := f.orderUC.Cancel(testCompanyID, created.ID, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
