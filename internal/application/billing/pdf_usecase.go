package billing

import (
	"context"
	"fmt"

	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// ExportUseCase genera la representación de una factura en PDF o XML.
// Solo se exportan facturas ya emitidas (no Draft).
type ExportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	pdf         InvoicePDFGenerator
	xml         InvoiceXMLExporter
}

// NewExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLExporter,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		pdf:         pdf,
		xml:         xml,
	}
}

// DownloadInvoicePDF recupera los datos de la factura y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe o no es de la empresa.
//   - domain.ErrInvalidInput     si la factura sigue en Draft.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, companyID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	invoice, company, client, err := uc.load(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateInvoicePDF(ctx, invoice, company, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", invoice.Number), nil
}

// DownloadInvoiceXML serializa la factura a XML (UBL simplificado).
func (uc *ExportUseCase) DownloadInvoiceXML(companyID, invoiceID string) (xmlBytes []byte, filename string, err error) {
	invoice, company, client, err := uc.load(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err = uc.xml.ExportInvoiceXML(invoice, company, client)
	if err != nil {
		return nil, "", fmt.Errorf("xml: serialización fallida: %w", err)
	}
	return xmlBytes, fmt.Sprintf("factura_%s.xml", invoice.Number), nil
}

func (uc *ExportUseCase) load(companyID, invoiceID string) (*entity.Invoice, *entity.Company, *entity.Client, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("export: obtener factura: %w", err)
	}
	if invoice == nil || invoice.CompanyID != companyID {
		return nil, nil, nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusDraft {
		return nil, nil, nil, fmt.Errorf("%w: la factura está en borrador, envíela antes de exportar", domain.ErrInvalidInput)
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, nil, nil, fmt.Errorf("export: obtener empresa: %w", err)
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil || client == nil {
		return nil, nil, nil, fmt.Errorf("export: obtener cliente: %w", err)
	}
	return invoice, company, client, nil
}
