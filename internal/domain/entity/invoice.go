package entity

import "time"

// Address dirección postal de una parte (todos los campos requeridos).
type Address struct {
	Street   string
	City     string
	Postcode string
	Country  string // código ISO 3166-1 alpha-2
}

// Party entidad legal emisora o receptora de la factura.
type Party struct {
	ID        string // identificador externo opcional (PartyIdentification)
	Name      string
	TaxID     string // CompanyID del PartyTaxScheme (número de IVA)
	CompanyID string // CompanyID del PartyLegalEntity (registro mercantil)
	Address   Address
}

// Tax tarifa plana de IVA aplicada de manera uniforme a toda la factura.
type Tax struct {
	Percent int64
	Amount  int64
}

// Amounts totales monetarios de la factura. No se recalculan ni se cruzan
// contra las líneas: se confía en los valores del emisor.
type Amounts struct {
	Taxable int64 // base imponible (sin impuesto)
	Total   int64 // total con impuesto incluido
}

// InvoiceItem línea de factura. LineAmount viene del emisor; no se recomputa
// como Quantity × Price.
type InvoiceItem struct {
	Name        string
	Description string // opcional
	Quantity    int64
	Price       int64 // precio unitario
	LineAmount  int64
	UnitCode    string // opcional; vacío => "EA"
}

// Invoice factura normalizada y validada, lista para renderizar como UBL.
// Valor inmutable: se construye desde la petición y se descarta al responder.
type Invoice struct {
	InvoiceNumber  string
	IssueDate      time.Time
	DueDate        time.Time
	Currency       string
	AccountingCost string // opcional
	BuyerReference string // opcional
	Supplier       Party
	Customer       Party
	PaymentTerms   string // opcional; vacío => texto por defecto
	Tax            Tax
	Amounts        Amounts
	Items          []InvoiceItem // orden de entrada = numeración de líneas (1..N)
	OutputFile     string        // hint opcional del emisor; no se usa para I/O local
}
