package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// --- fakes en memoria ---

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID != companyID {
			continue
		}
		if status != "" && inv.Status != status {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) NextNumber(companyID string) (int, error) {
	r.seq++
	return r.seq, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Delete(id string) error                            { delete(r.clients, id); return nil }
func (r *fakeClientRepo) CreateInteraction(i *entity.Interaction) error     { return nil }
func (r *fakeClientRepo) ListInteractions(clientID string, limit, offset int) ([]*entity.Interaction, error) {
	return nil, nil
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
func (r *fakeProjectRepo) Delete(id string) error                      { return nil }
func (r *fakeProjectRepo) CreateTask(t *entity.Task) error             { return nil }
func (r *fakeProjectRepo) GetTaskByID(id string) (*entity.Task, error) { return nil, nil }
func (r *fakeProjectRepo) UpdateTask(t *entity.Task) error             { return nil }
func (r *fakeProjectRepo) ListTasks(projectID string) ([]*entity.Task, error) {
	return nil, nil
}
func (r *fakeProjectRepo) DeleteTask(id string) error              { return nil }
func (r *fakeProjectRepo) CreateDailyLog(l *entity.DailyLog) error { return nil }
func (r *fakeProjectRepo) ListDailyLogs(projectID string, limit, offset int) ([]*entity.DailyLog, error) {
	return nil, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}
func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) { return nil, nil }
func (r *fakeTransactionRepo) Update(tx *entity.Transaction) error            { return nil }
func (r *fakeTransactionRepo) ListByCompany(companyID, projectID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	return r.transactions, nil
}
func (r *fakeTransactionRepo) Delete(id string) error { return nil }
func (r *fakeTransactionRepo) Summary(companyID, projectID string) (*repository.FinancialSummary, error) {
	return nil, nil
}

// --- helpers ---

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

type fixture struct {
	invoices     *fakeInvoiceRepo
	clients      *fakeClientRepo
	projects     *fakeProjectRepo
	transactions *fakeTransactionRepo
	uc           *InvoiceUseCase
}

func newFixture() *fixture {
	invoices := newFakeInvoiceRepo()
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"client-1": {ID: "client-1", CompanyID: testCompanyID, Name: "Inversiones La Loma"},
	}}
	projects := &fakeProjectRepo{projects: map[string]*entity.Project{
		"project-1": {ID: "project-1", CompanyID: testCompanyID},
	}}
	transactions := &fakeTransactionRepo{}
	return &fixture{
		invoices:     invoices,
		clients:      clients,
		projects:     projects,
		transactions: transactions,
		uc:           NewInvoiceUseCase(invoices, clients, projects, transactions),
	}
}

func twoLines() []dto.InvoiceLineRequest {
	return []dto.InvoiceLineRequest{
		{Description: "Mampostería piso 3", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(45000)},
		{Description: "Alquiler formaleta", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(250000)},
	}
}

// --- tests ---

func TestCreateInvoiceComputesTotalsServerSide(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		Lines:     twoLines(),
	})
	require.NoError(t, err)

	// subtotal = 100*45000 + 2*250000 = 5_000_000
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(5000000)), "subtotal = %s", resp.Subtotal)
	// IVA 19% = 950_000
	assert.True(t, resp.Tax.Equal(decimal.NewFromInt(950000)), "tax = %s", resp.Tax)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(5950000)), "total = %s", resp.Total)
	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	assert.Equal(t, "FAC-00001", resp.Number)
	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].LineTotal.Equal(decimal.NewFromInt(4500000)))
}

func TestCreateInvoiceRejectsInvalidLines(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name  string
		lines []dto.InvoiceLineRequest
	}{
		{"sin líneas", nil},
		{"cantidad cero", []dto.InvoiceLineRequest{{Description: "x", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)}}},
		{"precio negativo", []dto.InvoiceLineRequest{{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-5)}}},
		{"sin descripción", []dto.InvoiceLineRequest{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{ClientID: "client-1", Lines: tc.lines})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateInvoiceDueBeforeIssue(t *testing.T) {
	f := newFixture()
	issue := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, -1)

	_, err := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{
		ClientID:  "client-1",
		IssueDate: &issue,
		DueDate:   &due,
		Lines:     twoLines(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoiceUnknownClient(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{ClientID: "nope", Lines: twoLines()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceLifecycle(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		Lines:     twoLines(),
	})
	require.NoError(t, err)

	// Draft no se puede pagar directamente
	_, err = f.uc.MarkPaid(testCompanyID, testUserID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	sent, err := f.uc.Send(testCompanyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, sent.Status)

	// Send es idempotente solo desde Draft
	_, err = f.uc.Send(testCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	paid, err := f.uc.MarkPaid(testCompanyID, testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)

	// el pago registró un ingreso enlazado
	require.Len(t, f.transactions.transactions, 1)
	income := f.transactions.transactions[0]
	assert.Equal(t, entity.TransactionIncome, income.Type)
	assert.True(t, income.Amount.Equal(paid.Total))
	assert.Equal(t, created.ID, income.InvoiceID)
	assert.Equal(t, "project-1", income.ProjectID)

	// Paid es terminal
	_, err = f.uc.MarkOverdue(testCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestInvoiceOverdueThenPaid(t *testing.T) {
	f := newFixture()
	created, _ := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{ClientID: "client-1", Lines: twoLines()})
	_, _ = f.uc.Send(testCompanyID, created.ID)

	overdue, err := f.uc.MarkOverdue(testCompanyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusOverdue, overdue.Status)

	paid, err := f.uc.MarkPaid(testCompanyID, testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
}

func TestInvoiceOtherCompany(t *testing.T) {
	f := newFixture()
	created, _ := f.uc.Create(testCompanyID, dto.CreateInvoiceRequest{ClientID: "client-1", Lines: twoLines()})

	_, err := f.uc.GetByID("company-ajena", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
