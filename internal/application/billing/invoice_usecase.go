package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// InvoiceUseCase ciclo de vida de facturas: Draft -> Sent -> Paid | Overdue.
// Subtotal, IVA y total se calculan siempre en el servidor a partir de las
// líneas; los montos del cliente se ignoran.
type InvoiceUseCase struct {
	invoiceRepo     repository.InvoiceRepository
	clientRepo      repository.ClientRepository
	projectRepo     repository.ProjectRepository
	transactionRepo repository.TransactionRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	transactionRepo repository.TransactionRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:     invoiceRepo,
		clientRepo:      clientRepo,
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
	}
}

// Create crea una factura en estado Draft con consecutivo FAC-<n> por empresa.
func (uc *InvoiceUseCase) Create(companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.ProjectID != "" {
		project, err := uc.projectRepo.GetByID(in.ProjectID)
		if err != nil || project == nil {
			return nil, domain.ErrNotFound
		}
		if project.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	invoiceID := uuid.New().String()
	subtotal := decimal.Zero
	lines := make([]entity.InvoiceLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Description == "" || !l.Quantity.GreaterThan(decimal.Zero) || l.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := l.Quantity.Mul(l.UnitPrice)
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   lineTotal,
		})
	}
	tax := subtotal.Mul(entity.InvoiceTaxRate).Round(2)

	seq, err := uc.invoiceRepo.NextNumber(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	issueDate := now
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}
	dueDate := issueDate.AddDate(0, 1, 0)
	if in.DueDate != nil {
		dueDate = *in.DueDate
	}
	if dueDate.Before(issueDate) {
		return nil, domain.ErrInvalidInput
	}

	invoice := &entity.Invoice{
		ID:        invoiceID,
		CompanyID: companyID,
		Number:    fmt.Sprintf("FAC-%05d", seq),
		ClientID:  in.ClientID,
		ProjectID: in.ProjectID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Lines:     lines,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		Status:    entity.InvoiceStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(companyID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List lista facturas con filtro opcional por estado.
func (uc *InvoiceUseCase) List(companyID, status string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Send pasa una factura de Draft a Sent.
func (uc *InvoiceUseCase) Send(companyID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusDraft {
		return nil, domain.ErrConflict
	}
	if err := uc.invoiceRepo.UpdateStatus(id, entity.InvoiceStatusSent); err != nil {
		return nil, err
	}
	invoice.Status = entity.InvoiceStatusSent
	return toInvoiceResponse(invoice), nil
}

// MarkPaid pasa una factura Sent u Overdue a Paid y registra el ingreso
// correspondiente como transacción financiera enlazada.
func (uc *InvoiceUseCase) MarkPaid(companyID, userID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusSent && invoice.Status != entity.InvoiceStatusOverdue {
		return nil, domain.ErrConflict
	}
	if err := uc.invoiceRepo.UpdateStatus(id, entity.InvoiceStatusPaid); err != nil {
		return nil, err
	}
	invoice.Status = entity.InvoiceStatusPaid

	now := time.Now()
	income := &entity.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   invoice.ProjectID,
		Type:        entity.TransactionIncome,
		Category:    "facturación",
		Amount:      invoice.Total,
		Date:        now,
		Description: fmt.Sprintf("Pago factura %s", invoice.Number),
		InvoiceID:   invoice.ID,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.transactionRepo.Create(income); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// MarkOverdue pasa una factura Sent a Overdue. Se invoca cuando la fecha de
// vencimiento ya pasó.
func (uc *InvoiceUseCase) MarkOverdue(companyID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusSent {
		return nil, domain.ErrConflict
	}
	if err := uc.invoiceRepo.UpdateStatus(id, entity.InvoiceStatusOverdue); err != nil {
		return nil, err
	}
	invoice.Status = entity.InvoiceStatusOverdue
	return toInvoiceResponse(invoice), nil
}

func (uc *InvoiceUseCase) getOwned(companyID, id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.InvoiceLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		CompanyID: inv.CompanyID,
		Number:    inv.Number,
		ClientID:  inv.ClientID,
		ProjectID: inv.ProjectID,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		Lines:     lines,
		Subtotal:  inv.Subtotal,
		Tax:       inv.Tax,
		Total:     inv.Total,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}
