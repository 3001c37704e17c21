package billing

import (
	"context"

	"github.com/construtek/obras-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company, client *entity.Client) ([]byte, error)
}

// InvoiceXMLExporter serializa una factura a XML (estructura UBL simplificada).
type InvoiceXMLExporter interface {
	ExportInvoiceXML(invoice *entity.Invoice, company *entity.Company, client *entity.Client) ([]byte, error)
}
