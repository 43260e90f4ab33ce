package ubl

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/peppol-invoice-api/internal/domain/entity"
	pkgubl "github.com/jhoicas/peppol-invoice-api/pkg/ubl"
)

// Namespaces oficiales UBL 2.1.
const (
	// Namespace por defecto (UBL Invoice)
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	// Common Basic Components
	NsCbc = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	// Common Aggregate Components
	NsCac = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
)

// XMLBuilderService construye el documento Invoice UBL 2.1 / PEPPOL BIS 3.0.
//
// El documento se arma como árbol de elementos (etree) y se serializa aparte,
// pretty-printed. El orden de los hijos de Invoice lo manda el esquema;
// reordenar produce un documento inválido aguas abajo. Transformación pura:
// sin red ni disco.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// Build genera el documento XML completo (declaración + Invoice) como string.
func (s *XMLBuilderService) Build(inv *entity.Invoice) (string, error) {
	if inv == nil {
		return "", fmt.Errorf("ubl: factura nil")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns:cbc", NsCbc)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns", NsInvoice)

	// ---- cbc: encabezado en orden de esquema
	cbc(root, "UBLVersionID", pkgubl.UBLVersion)
	cbc(root, "CustomizationID", pkgubl.CustomizationID)
	cbc(root, "ProfileID", pkgubl.ProfileID)
	cbc(root, "ID", inv.InvoiceNumber)
	cbc(root, "IssueDate", inv.IssueDate.Format(pkgubl.DateLayout))
	cbc(root, "DueDate", inv.DueDate.Format(pkgubl.DateLayout))
	cbc(root, "InvoiceTypeCode", pkgubl.InvoiceTypeCode)
	cbc(root, "DocumentCurrencyCode", inv.Currency)

	if inv.AccountingCost != "" {
		cbc(root, "AccountingCost", inv.AccountingCost)
	}
	if inv.BuyerReference != "" {
		cbc(root, "BuyerReference", inv.BuyerReference)
	}

	// ---- cac: partes, condiciones de pago, totales y líneas
	s.addParty(root, "AccountingSupplierParty", inv.Supplier)
	s.addParty(root, "AccountingCustomerParty", inv.Customer)

	terms := inv.PaymentTerms
	if terms == "" {
		terms = pkgubl.DefaultPaymentTerms
	}
	paymentTerms := root.CreateElement("cac:PaymentTerms")
	cbc(paymentTerms, "Note", terms)

	s.addTaxTotal(root, inv)
	s.addLegalMonetaryTotal(root, inv)

	for i, item := range inv.Items {
		s.addInvoiceLine(root, i+1, item, inv)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// addParty agrega el bloque AccountingSupplierParty / AccountingCustomerParty.
// La subestructura es idéntica para emisor y receptor.
func (s *XMLBuilderService) addParty(root *etree.Element, wrapper string, party entity.Party) {
	partyEl := root.CreateElement("cac:" + wrapper).CreateElement("cac:Party")

	if party.ID != "" {
		cbc(partyEl.CreateElement("cac:PartyIdentification"), "ID", party.ID)
	}

	cbc(partyEl.CreateElement("cac:PartyName"), "Name", party.Name)

	address := partyEl.CreateElement("cac:PostalAddress")
	cbc(address, "StreetName", party.Address.Street)
	cbc(address, "CityName", party.Address.City)
	cbc(address, "PostalZone", party.Address.Postcode)
	cbc(address.CreateElement("cac:Country"), "IdentificationCode", party.Address.Country)

	taxScheme := partyEl.CreateElement("cac:PartyTaxScheme")
	cbc(taxScheme, "CompanyID", party.TaxID)
	cbc(taxScheme.CreateElement("cac:TaxScheme"), "ID", pkgubl.TaxSchemeVAT)

	legalEntity := partyEl.CreateElement("cac:PartyLegalEntity")
	cbc(legalEntity, "RegistrationName", party.Name)
	cbc(legalEntity, "CompanyID", party.CompanyID)
}

// addTaxTotal agrega cac:TaxTotal con un único TaxSubtotal de tarifa estándar.
// Facturas multi-tarifa no están soportadas.
func (s *XMLBuilderService) addTaxTotal(root *etree.Element, inv *entity.Invoice) {
	taxTotal := root.CreateElement("cac:TaxTotal")
	cbcAmount(taxTotal, "TaxAmount", inv.Tax.Amount, inv.Currency)

	subtotal := taxTotal.CreateElement("cac:TaxSubtotal")
	cbcAmount(subtotal, "TaxableAmount", inv.Amounts.Taxable, inv.Currency)
	cbcAmount(subtotal, "TaxAmount", inv.Tax.Amount, inv.Currency)

	category := subtotal.CreateElement("cac:TaxCategory")
	cbc(category, "ID", pkgubl.TaxCategoryStandard)
	cbc(category, "Percent", formatInt(inv.Tax.Percent))
	cbc(category.CreateElement("cac:TaxScheme"), "ID", pkgubl.TaxSchemeVAT)
}

// addLegalMonetaryTotal agrega cac:LegalMonetaryTotal. Los valores se pasan
// tal cual; no hay prorrateo ni redondeo.
func (s *XMLBuilderService) addLegalMonetaryTotal(root *etree.Element, inv *entity.Invoice) {
	total := root.CreateElement("cac:LegalMonetaryTotal")
	cbcAmount(total, "LineExtensionAmount", inv.Amounts.Taxable, inv.Currency)
	cbcAmount(total, "TaxExclusiveAmount", inv.Amounts.Taxable, inv.Currency)
	cbcAmount(total, "TaxInclusiveAmount", inv.Amounts.Total, inv.Currency)
	cbcAmount(total, "PayableAmount", inv.Amounts.Total, inv.Currency)
}

// addInvoiceLine agrega una cac:InvoiceLine. El ID de línea es posicional
// (1..N en orden de entrada), independiente de cualquier campo del item.
func (s *XMLBuilderService) addInvoiceLine(root *etree.Element, lineNum int, item entity.InvoiceItem, inv *entity.Invoice) {
	unitCode := item.UnitCode
	if unitCode == "" {
		unitCode = pkgubl.UnitEach
	}

	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", strconv.Itoa(lineNum))

	quantity := cbc(line, "InvoicedQuantity", formatInt(item.Quantity))
	quantity.CreateAttr("unitCode", unitCode)

	cbcAmount(line, "LineExtensionAmount", item.LineAmount, inv.Currency)

	itemEl := line.CreateElement("cac:Item")
	cbc(itemEl, "Name", item.Name)
	if item.Description != "" {
		cbc(itemEl, "Description", item.Description)
	}

	// La categoría de impuesto de la línea replica la de la factura;
	// no hay override de impuesto por línea.
	category := itemEl.CreateElement("cac:ClassifiedTaxCategory")
	cbc(category, "ID", pkgubl.TaxCategoryStandard)
	cbc(category, "Percent", formatInt(inv.Tax.Percent))
	cbc(category.CreateElement("cac:TaxScheme"), "ID", pkgubl.TaxSchemeVAT)

	cbcAmount(line.CreateElement("cac:Price"), "PriceAmount", item.Price, inv.Currency)
}

// cbc crea un hijo cbc:<local> con el texto dado (etree escapa &, <, >).
func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

// cbcAmount crea un hijo cbc:<local> monetario con atributo currencyID.
// Todo elemento denominado en moneda debe llevar el atributo, sin excepción.
func cbcAmount(parent *etree.Element, local string, value int64, currency string) *etree.Element {
	el := cbc(parent, local, formatInt(value))
	el.CreateAttr("currencyID", currency)
	return el
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
