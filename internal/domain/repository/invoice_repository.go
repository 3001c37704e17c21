package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Create persiste la factura con sus líneas; GetByID las carga.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	UpdateStatus(id, status string) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Invoice, error)
	NextNumber(companyID string) (int, error)
}
