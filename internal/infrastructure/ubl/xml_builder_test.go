package ubl

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/domain/entity"
)

func TestExportInvoiceXML(t *testing.T) {
	issue := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	invoice := &entity.Invoice{
		ID:        "inv-1",
		Number:    "FAC-00007",
		IssueDate: issue,
		DueDate:   issue.AddDate(0, 1, 0),
		Subtotal:  decimal.NewFromInt(1000000),
		Tax:       decimal.NewFromInt(190000),
		Total:     decimal.NewFromInt(1190000),
		Lines: []entity.InvoiceLine{
			{Description: "Excavación manual", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(25000), LineTotal: decimal.NewFromInt(1000000)},
		},
	}
	company := &entity.Company{Name: "Construtek SAS", NIT: "900123456-7", Email: "info@construtek.co"}
	client := &entity.Client{Name: "Urbanizadora Andina", ContactPerson: "P. Rojas"}

	out, err := NewXMLBuilderService().ExportInvoiceXML(invoice, company, client)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("Invoice")
	require.NotNil(t, root)
	assert.Equal(t, "FAC-00007", root.SelectElement("cbc:ID").Text())
	assert.Equal(t, "2026-04-15", root.SelectElement("cbc:IssueDate").Text())

	total := root.SelectElement("cac:LegalMonetaryTotal").SelectElement("cbc:PayableAmount")
	assert.Equal(t, "1190000.00", total.Text())
	assert.Equal(t, "COP", total.SelectAttrValue("currencyID", ""))

	lines := root.SelectElements("cac:InvoiceLine")
	require.Len(t, lines, 1)
	assert.Equal(t, "Excavación manual", lines[0].SelectElement("cac:Item").SelectElement("cbc:Description").Text())
}

func TestExportInvoiceXMLNilInputs(t *testing.T) {
	_, err := NewXMLBuilderService().ExportInvoiceXML(nil, nil, nil)
	assert.Error(t, err)
}
