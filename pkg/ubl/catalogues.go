// Package ubl contiene catálogos y literales alineados a UBL 2.1 y al perfil
// PEPPOL BIS Billing 3.0 (EN16931).
package ubl

// =============================================================================
// Identificadores de cumplimiento PEPPOL BIS Billing 3.0
// Valores exactos exigidos por el validador de esquema; no modificar.
// =============================================================================

const (
	// UBLVersion versión del esquema UBL del documento.
	UBLVersion = "2.1"
	// CustomizationID URN de cumplimiento EN16931 + PEPPOL billing 3.0.
	CustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	// ProfileID URN del perfil de facturación PEPPOL.
	ProfileID = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
	// InvoiceTypeCode 380 = factura comercial (UNCL1001).
	InvoiceTypeCode = "380"
)

// =============================================================================
// Esquema de impuestos
// Solo se soporta IVA con tarifa estándar plana para toda la factura.
// =============================================================================

const (
	// TaxSchemeVAT identificador del esquema de impuesto (UN/ECE 5153).
	TaxSchemeVAT = "VAT"
	// TaxCategoryStandard categoría de tarifa estándar (UNCL5305).
	TaxCategoryStandard = "S"
)

// =============================================================================
// Unidades de medida (UN/ECE Recomendación 20) y valores por defecto
// =============================================================================

const (
	// UnitEach unidad por defecto cuando la línea no trae unitCode.
	UnitEach = "EA"
	// DefaultPaymentTerms nota de condiciones de pago cuando el emisor no la indica.
	DefaultPaymentTerms = "30 days from receipt of invoice"
)

// =============================================================================
// Formato de fechas calendario en el documento (cbc:IssueDate, cbc:DueDate)
// =============================================================================

const (
	// DateLayout forma textual canónica de fecha calendario.
	DateLayout = "2006-01-02"
)
