package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	domaininv "github.com/construtek/obras-api/internal/domain/inventory"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// --- fakes en memoria ---

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.InventoryItem, error) {
	for _, item := range r.items {
		if item.CompanyID == companyID && item.SKU == sku {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) ListByCompany(companyID, category string, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.CompanyID == companyID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListLowStock(companyID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.CompanyID == companyID && item.Status != domaininv.StatusInStock {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.MaterialRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*entity.MaterialRequest{}}
}

func (r *fakeRequestRepo) Create(req *entity.MaterialRequest) error {
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*entity.MaterialRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) Update(req *entity.MaterialRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) ListByCompany(companyID, status, projectID string, limit, offset int) ([]*entity.MaterialRequest, error) {
	var out []*entity.MaterialRequest
	for _, req := range r.requests {
		if req.CompanyID != companyID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		if projectID != "" && req.ProjectID != projectID {
			continue
		}
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRequestRepo) CountPendingByItem(itemID string) (int, error) {
	count := 0
	for _, req := range r.requests {
		if req.ItemID == itemID && req.Status == entity.MaterialRequestPending {
			count++
		}
	}
	return count, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
}

func (r *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status, notes string) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	if notes != "" {
		order.Notes = notes
	}
	return nil
}

func (r *fakeOrderRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, order := range r.orders {
		if order.CompanyID != companyID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		cp := *order
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) NextOrderNumber(companyID string) (int, error) {
	r.seq++
	return r.seq, nil
}

type fakeActivityRepo struct {
	entries []*entity.ActivityEntry
}

func (r *fakeActivityRepo) Create(entry *entity.ActivityEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeActivityRepo) ListByCompany(companyID, activityType string, limit, offset int) ([]*entity.ActivityEntry, error) {
	return r.entries, nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *fakeProjectRepo) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProjectRepo) Update(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectRepo) Delete(id string) error { delete(r.projects, id); return nil }
func (r *fakeProjectRepo) CreateTask(t *entity.Task) error { return nil }
func (r *fakeProjectRepo) GetTaskByID(id string) (*entity.Task, error) { return nil, nil }
func (r *fakeProjectRepo) UpdateTask(t *entity.Task) error { return nil }
func (r *fakeProjectRepo) ListTasks(projectID string) ([]*entity.Task, error) { return nil, nil }
func (r *fakeProjectRepo) DeleteTask(id string) error { return nil }
func (r *fakeProjectRepo) CreateDailyLog(l *entity.DailyLog) error { return nil }
func (r *fakeProjectRepo) ListDailyLogs(projectID string, limit, offset int) ([]*entity.DailyLog, error) {
	return nil, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeSupplierRepo) GetByCompanyAndNIT(companyID, nit string) (*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) Delete(id string) error { delete(r.suppliers, id); return nil }

// fakeTxRunner ejecuta la función con los repos en memoria, sin transacción real.
type fakeTxRunner struct {
	itemRepo     *fakeItemRepo
	requestRepo  *fakeRequestRepo
	orderRepo    *fakeOrderRepo
	activityRepo *fakeActivityRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	requestRepo repository.MaterialRequestRepository,
	orderRepo repository.PurchaseOrderRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	return fn(t.itemRepo, t.requestRepo, t.orderRepo, t.activityRepo)
}

// --- helpers ---

type fixture struct {
	items     *fakeItemRepo
	requests  *fakeRequestRepo
	orders    *fakeOrderRepo
	activity  *fakeActivityRepo
	projects  *fakeProjectRepo
	suppliers *fakeSupplierRepo
	requestUC *MaterialRequestUseCase
	orderUC   *PurchaseOrderUseCase
}

func newFixture() *fixture {
	items := newFakeItemRepo()
	requests := newFakeRequestRepo()
	orders := newFakeOrderRepo()
	activity := &fakeActivityRepo{}
	projects := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
	tx := &fakeTxRunner{itemRepo: items, requestRepo: requests, orderRepo: orders, activityRepo: activity}
	return &fixture{
		items:     items,
		requests:  requests,
		orders:    orders,
		activity:  activity,
		projects:  projects,
		suppliers: suppliers,
		requestUC: NewMaterialRequestUseCase(tx, requests, items, projects),
		orderUC:   NewPurchaseOrderUseCase(tx, orders, items, suppliers),
	}
}

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

func (f *fixture) seedItem(id string, quantity int64) *entity.InventoryItem {
	qty := decimal.NewFromInt(quantity)
	item := &entity.InventoryItem{
		ID:        id,
		CompanyID: testCompanyID,
		SKU:       "SKU-" + id,
		Name:      "Cemento gris 50kg",
		Unit:      "un",
		Quantity:  qty,
		Status:    domaininv.DeriveStatus(qty),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = f.items.Create(item)
	return item
}

func (f *fixture) seedProject(id string) {
	f.projects.projects[id] = &entity.Project{ID: id, CompanyID: testCompanyID, Status: entity.ProjectStatusInProgress}
}

func (f *fixture) seedRequest(id, itemID string, quantity int64) *entity.MaterialRequest {
	req := &entity.MaterialRequest{
		ID:        id,
		CompanyID: testCompanyID,
		ProjectID: "project-1",
		ItemID:    itemID,
		Quantity:  decimal.NewFromInt(quantity),
		Status:    entity.MaterialRequestPending,
	}
	_ = f.requests.Create(req)
	return req
}

// --- tests ---

func TestMaterialRequestCreate(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedProject("project-1")

	resp, err := f.requestUC.Create(testCompanyID, testUserID, dto.CreateMaterialRequestRequest{
		ProjectID: "project-1",
		ItemID:    "item-1",
		Quantity:  decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialRequestPending, resp.Status)
	assert.Equal(t, testUserID, resp.RequestedBy)
}

func TestMaterialRequestCreateInvalidQuantity(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedProject("project-1")

	_, err := f.requestUC.Create(testCompanyID, testUserID, dto.CreateMaterialRequestRequest{
		ProjectID: "project-1",
		ItemID:    "item-1",
		Quantity:  decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApproveDecrementsStockAndDerivesStatus(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 15)
	f.seedRequest("req-1", "item-1", 8)

	resp, err := f.requestUC.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialRequestApproved, resp.Status)
	assert.Equal(t, testUserID, resp.DecidedBy)
	require.NotNil(t, resp.DecidedAt)

	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(7)), "quantity = %s", item.Quantity)
	assert.Equal(t, domaininv.StatusLowStock, item.Status)

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, entity.ActivityMaterialRequestApproved, f.activity.entries[0].Type)
}

func TestApproveInsufficientStockLeavesEverythingIntact(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 5)
	f.seedRequest("req-1", "item-1", 8)

	_, err := f.requestUC.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(5)))

	req, _ := f.requests.GetByID("req-1")
	assert.Equal(t, entity.MaterialRequestPending, req.Status)
	assert.Empty(t, f.activity.entries)
}

func TestApproveExactStockGoesToZeroOutOfStock(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 8)
	f.seedRequest("req-1", "item-1", 8)

	_, err := f.requestUC.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	require.NoError(t, err)

	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.IsZero())
	assert.Equal(t, domaininv.StatusOutOfStock, item.Status)
}

func TestApproveAlreadyDecided(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedRequest("req-1", "item-1", 5)

	_, err := f.requestUC.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	require.NoError(t, err)

	_, err = f.requestUC.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided)

	// el stock solo se descontó una vez
	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(45)))
}

func TestRejectDoesNotTouchStock(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedRequest("req-1", "item-1", 5)

	resp, err := f.requestUC.Reject(context.Background(), testCompanyID, testUserID, "req-1", "no corresponde al presupuesto")
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialRequestRejected, resp.Status)
	assert.Equal(t, "no corresponde al presupuesto", resp.Reason)

	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(50)))
}

func TestRequestGetByIDOtherCompanyNotVisible(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedRequest("req-1", "item-1", 5)

	resp, err := f.requestUC.GetByID("company-ajena", "req-1")
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = f.requestUC.GetByID(testCompanyID, "req-1")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "req-1", resp.ID)
}

func TestApproveRequestFromOtherCompany(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedRequest("req-1", "item-1", 5)

	_, err := f.requestUC.Approve(context.Background(), "company-ajena", testUserID, "req-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Propiedad: ante cualquier secuencia de aprobaciones sobre el mismo item,
// el stock nunca queda negativo y el estado derivado siempre corresponde a
// los umbrales fijos.
func TestApproveSequenceNeverGoesNegative(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 20)

	quantities := []int64{7, 7, 7, 7, 7} // solo dos caben en 20
	var approvedTotal int64
	for i, q := range quantities {
		id := fmt.Sprintf("req-%d", i)
		f.seedRequest(id, "item-1", q)
		_, err := f.requestUC.Approve(context.Background(), testCompanyID, testUserID, id)
		if err == nil {
			approvedTotal += q
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}

		item, _ := f.items.GetByID("item-1")
		assert.False(t, item.Quantity.IsNegative(), "stock negativo tras req-%d: %s", i, item.Quantity)
		assert.Equal(t, domaininv.DeriveStatus(item.Quantity), item.Status)
	}

	assert.Equal(t, int64(14), approvedTotal)
	item, _ := f.items.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, domaininv.StatusLowStock, item.Status)
}

func TestApproveActivityFailureAbortsDecision(t *testing.T) {
	f := newFixture()
	f.seedItem("item-1", 50)
	f.seedRequest("req-1", "item-1", 5)

	boom := errors.New("activity down")
	tx := &failingActivityTxRunner{inner: &fakeTxRunner{
		itemRepo: f.items, requestRepo: f.requests, orderRepo: f.orders, activityRepo: f.activity,
	}, err: boom}
	uc := NewMaterialRequestUseCase(tx, f.requests, f.items, f.projects)

	_, err := uc.Approve(context.Background(), testCompanyID, testUserID, "req-1")
	assert.ErrorIs(t, err, boom)
}

type failingActivityRepo struct{ err error }

func (r *failingActivityRepo) Create(*entity.ActivityEntry) error { return r.err }
func (r *failingActivityRepo) ListByCompany(string, string, int, int) ([]*entity.ActivityEntry, error) {
	return nil, nil
}

type failingActivityTxRunner struct {
	inner *fakeTxRunner
	err   error
}

func (t *failingActivityTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	requestRepo repository.MaterialRequestRepository,
	orderRepo repository.PurchaseOrderRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	return fn(t.inner.itemRepo, t.inner.requestRepo, t.inner.orderRepo, &failingActivityRepo{err: t.err})
}
