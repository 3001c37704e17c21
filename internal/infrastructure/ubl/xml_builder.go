// Package ubl serializa facturas a un XML con estructura UBL 2.1 simplificada
// (Invoice, AccountingSupplierParty, AccountingCustomerParty, InvoiceLine),
// suficiente para intercambio con sistemas contables.
package ubl

import (
	"fmt"

	"github.com/beevik/etree"

	appbilling "github.com/construtek/obras-api/internal/application/billing"
	"github.com/construtek/obras-api/internal/domain/entity"
)

var _ appbilling.InvoiceXMLExporter = (*XMLBuilderService)(nil)

const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	currencyCOP = "COP"
)

// XMLBuilderService construye el documento XML de una factura con etree.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// ExportInvoiceXML serializa la factura, el emisor y el cliente a XML UBL.
func (s *XMLBuilderService) ExportInvoiceXML(invoice *entity.Invoice, company *entity.Company, client *entity.Client) ([]byte, error) {
	if invoice == nil || company == nil || client == nil {
		return nil, fmt.Errorf("ubl: factura, empresa y cliente son requeridos")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCAC)
	root.CreateAttr("xmlns:cbc", nsCBC)

	addText(root, "cbc:ID", invoice.Number)
	addText(root, "cbc:IssueDate", invoice.IssueDate.Format("2006-01-02"))
	addText(root, "cbc:DueDate", invoice.DueDate.Format("2006-01-02"))
	addText(root, "cbc:DocumentCurrencyCode", currencyCOP)

	// Emisor
	supplier := root.CreateElement("cac:AccountingSupplierParty")
	supplierParty := supplier.CreateElement("cac:Party")
	addText(supplierParty.CreateElement("cac:PartyName"), "cbc:Name", company.Name)
	addText(supplierParty.CreateElement("cac:PartyTaxScheme"), "cbc:CompanyID", company.NIT)
	supplierContact := supplierParty.CreateElement("cac:Contact")
	addText(supplierContact, "cbc:Telephone", company.Phone)
	addText(supplierContact, "cbc:ElectronicMail", company.Email)

	// Cliente
	customer := root.CreateElement("cac:AccountingCustomerParty")
	customerParty := customer.CreateElement("cac:Party")
	addText(customerParty.CreateElement("cac:PartyName"), "cbc:Name", client.Name)
	customerContact := customerParty.CreateElement("cac:Contact")
	addText(customerContact, "cbc:Name", client.ContactPerson)
	addText(customerContact, "cbc:Telephone", client.Phone)
	addText(customerContact, "cbc:ElectronicMail", client.Email)

	// Impuestos
	taxTotal := root.CreateElement("cac:TaxTotal")
	addAmount(taxTotal, "cbc:TaxAmount", invoice.Tax.StringFixed(2))

	// Totales
	monetaryTotal := root.CreateElement("cac:LegalMonetaryTotal")
	addAmount(monetaryTotal, "cbc:LineExtensionAmount", invoice.Subtotal.StringFixed(2))
	addAmount(monetaryTotal, "cbc:TaxInclusiveAmount", invoice.Total.StringFixed(2))
	addAmount(monetaryTotal, "cbc:PayableAmount", invoice.Total.StringFixed(2))

	// Líneas
	for i, line := range invoice.Lines {
		lineEl := root.CreateElement("cac:InvoiceLine")
		addText(lineEl, "cbc:ID", fmt.Sprintf("%d", i+1))
		qty := lineEl.CreateElement("cbc:InvoicedQuantity")
		qty.SetText(line.Quantity.String())
		addAmount(lineEl, "cbc:LineExtensionAmount", line.LineTotal.StringFixed(2))
		item := lineEl.CreateElement("cac:Item")
		addText(item, "cbc:Description", line.Description)
		price := lineEl.CreateElement("cac:Price")
		addAmount(price, "cbc:PriceAmount", line.UnitPrice.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar documento: %w", err)
	}
	return out, nil
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func addAmount(parent *etree.Element, tag, value string) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currencyID", currencyCOP)
	el.SetText(value)
}
