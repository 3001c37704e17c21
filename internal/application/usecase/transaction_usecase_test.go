package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

type fakeTransactionRepo struct {
	transactions map[string]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[string]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	r.transactions[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) Update(tx *entity.Transaction) error {
	if _, ok := r.transactions[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *tx
	r.transactions[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) ListByCompany(companyID, projectID, txType string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.CompanyID == companyID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(id string) error {
	if _, ok := r.transactions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) Summary(companyID, projectID string) (*repository.FinancialSummary, error) {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range r.transactions {
		if tx.CompanyID != companyID {
			continue
		}
		if projectID != "" && tx.ProjectID != projectID {
			continue
		}
		switch tx.Type {
		case entity.TransactionIncome:
			income = income.Add(tx.Amount)
		case entity.TransactionExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return &repository.FinancialSummary{Income: income, Expense: expense}, nil
}

type transactionFixture struct {
	repo     *fakeTransactionRepo
	projects *fakeProjectRepo
	uc       *TransactionUseCase
}

func newTransactionFixture() *transactionFixture {
	repo := newFakeTransactionRepo()
	projects := newFakeProjectRepo()
	activity := NewActivityUseCase(&fakeActivityRepo{}, &fakeUserRepo{})
	return &transactionFixture{
		repo:     repo,
		projects: projects,
		uc:       NewTransactionUseCase(repo, projects, activity),
	}
}

func (f *transactionFixture) seedProject(id, companyID string) {
	f.projects.projects[id] = &entity.Project{
		ID:        id,
		CompanyID: companyID,
		Name:      "Bodega Sur",
		Status:    entity.ProjectStatusInProgress,
		Budget:    decimal.NewFromInt(5000),
		Spent:     decimal.NewFromInt(100),
	}
}

func TestExpenseAccumulatesProjectSpent(t *testing.T) {
	f := newTransactionFixture()
	f.seedProject("proj-1", testCompanyID)

	out, err := f.uc.Create(testCompanyID, testUserID, dto.CreateTransactionRequest{
		ProjectID: "proj-1",
		Type:      entity.TransactionExpense,
		Category:  "Materiales",
		Amount:    decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	project, _ := f.projects.GetByID("proj-1")
	assert.True(t, decimal.NewFromInt(350).Equal(project.Spent),
		"Spent debe pasar de 100 a 350, quedó %s", project.Spent)
}

func TestIncomeDoesNotTouchProjectSpent(t *testing.T) {
	f := newTransactionFixture()
	f.seedProject("proj-1", testCompanyID)

	_, err := f.uc.Create(testCompanyID, testUserID, dto.CreateTransactionRequest{
		ProjectID: "proj-1",
		Type:      entity.TransactionIncome,
		Amount:    decimal.NewFromInt(900),
	})
	require.NoError(t, err)

	project, _ := f.projects.GetByID("proj-1")
	assert.True(t, decimal.NewFromInt(100).Equal(project.Spent))
}

func TestTransactionCreateProjectFromOtherCompany(t *testing.T) {
	f := newTransactionFixture()
	f.seedProject("proj-ajeno", otherCompanyID)

	_, err := f.uc.Create(testCompanyID, testUserID, dto.CreateTransactionRequest{
		ProjectID: "proj-ajeno",
		Type:      entity.TransactionExpense,
		Amount:    decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	project, _ := f.projects.GetByID("proj-ajeno")
	assert.True(t, decimal.NewFromInt(100).Equal(project.Spent),
		"el gasto no debe tocar el acumulado de otra empresa")
	assert.Empty(t, f.repo.transactions, "la transacción no debe persistirse")
}

func TestTransactionGetByIDOtherCompanyNotVisible(t *testing.T) {
	f := newTransactionFixture()
	f.repo.transactions["tx-1"] = &entity.Transaction{
		ID:        "tx-1",
		CompanyID: testCompanyID,
		Type:      entity.TransactionIncome,
		Amount:    decimal.NewFromInt(10),
	}

	out, err := f.uc.GetByID(otherCompanyID, "tx-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestTransactionDeleteOtherCompanyNotFound(t *testing.T) {
	f := newTransactionFixture()
	f.repo.transactions["tx-1"] = &entity.Transaction{
		ID:        "tx-1",
		CompanyID: testCompanyID,
		Type:      entity.TransactionExpense,
		Amount:    decimal.NewFromInt(10),
	}

	err := f.uc.Delete(otherCompanyID, "tx-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.repo.transactions, 1)
}

func TestTransactionDeleteLinkedToInvoiceConflict(t *testing.T) {
	f := newTransactionFixture()
	f.repo.transactions["tx-1"] = &entity.Transaction{
		ID:        "tx-1",
		CompanyID: testCompanyID,
		Type:      entity.TransactionIncome,
		Amount:    decimal.NewFromInt(10),
		InvoiceID: "inv-1",
	}

	err := f.uc.Delete(testCompanyID, "tx-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, f.repo.transactions, 1)
}
