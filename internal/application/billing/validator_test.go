package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/peppol-invoice-api/internal/application/billing"
	"github.com/jhoicas/peppol-invoice-api/internal/application/dto"
	"github.com/jhoicas/peppol-invoice-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const validBody = `{
	"invoiceNumber":"INV-1",
	"issueDate":"2024-01-01",
	"dueDate":"2024-01-31",
	"currency":"EUR",
	"supplier":{"name":"A","taxId":"T1","companyId":"C1",
		"address":{"street":"S","city":"C","postcode":"P","country":"BE"}},
	"customer":{"name":"B","taxId":"T2","companyId":"C2",
		"address":{"street":"S2","city":"C2","postcode":"P2","country":"NL"}},
	"tax":{"percent":21,"amount":210},
	"amounts":{"taxable":1000,"total":1210},
	"items":[{"name":"Item","quantity":1,"price":1000,"lineAmount":1000}]
}`

// validRequest DTO completo y normalizado, listo para mutar en cada caso.
func validRequest(t *testing.T) *dto.UBLInvoiceRequest {
	t.Helper()
	req := decodeRequest(t, validBody)
	require.NoError(t, billing.Normalize(req))
	return req
}

// assertMissing valida que el error sea exactamente el de campo ausente esperado.
func assertMissing(t *testing.T, err error, path string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "missing required field: "+path, err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_PeticionCompleta(t *testing.T) {
	assert.NoError(t, billing.Validate(validRequest(t)))
}

func TestValidate_CamposRaizAusentes(t *testing.T) {
	req := validRequest(t)
	req.InvoiceNumber = ""
	assertMissing(t, billing.Validate(req), "invoiceNumber")

	req = validRequest(t)
	req.IssueDate = dto.FlexDate{}
	assertMissing(t, billing.Validate(req), "issueDate")

	req = validRequest(t)
	req.Currency = ""
	assertMissing(t, billing.Validate(req), "currency")
}

// El mensaje nombra exactamente la ruta del campo ausente y ninguna otra.
func TestValidate_CiudadDelSupplierAusente(t *testing.T) {
	req := validRequest(t)
	req.Supplier.Address.City = ""

	err := billing.Validate(req)
	assertMissing(t, err, "supplier.address.city")
	assert.NotContains(t, err.Error(), "postcode")
	assert.NotContains(t, err.Error(), "customer")
}

func TestValidate_BloquesDeParteAusentes(t *testing.T) {
	req := validRequest(t)
	req.Supplier = nil
	assertMissing(t, billing.Validate(req), "supplier")

	req = validRequest(t)
	req.Customer.Address = nil
	assertMissing(t, billing.Validate(req), "customer.address")

	req = validRequest(t)
	req.Customer.TaxID = ""
	assertMissing(t, billing.Validate(req), "customer.taxId")
}

func TestValidate_TaxYAmountsAusentes(t *testing.T) {
	req := validRequest(t)
	req.Tax = nil
	assertMissing(t, billing.Validate(req), "tax")

	req = validRequest(t)
	req.Tax.Amount = dto.FlexInt{}
	assertMissing(t, billing.Validate(req), "tax.amount")

	req = validRequest(t)
	req.Amounts.Total = dto.FlexInt{}
	assertMissing(t, billing.Validate(req), "amounts.total")
}

func TestValidate_ItemsAusentes(t *testing.T) {
	req := validRequest(t)
	req.Items = nil
	assertMissing(t, billing.Validate(req), "items")
}

// Lista presente pero vacía: mensaje propio, no "missing required field".
func TestValidate_ItemsVacios(t *testing.T) {
	req := validRequest(t)
	req.Items = []dto.InvoiceItemRequest{}

	err := billing.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Items must be an array with at least one element.", err.Error())
}

func TestValidate_CamposDeLineaAusentes(t *testing.T) {
	req := decodeRequest(t, validBody)
	req.Items = append(req.Items, dto.InvoiceItemRequest{Name: "Sin precio"})
	require.NoError(t, billing.Normalize(req))

	err := billing.Validate(req)
	assertMissing(t, err, "items[1].quantity")
}

// El recorrido se detiene en el primer campo ausente del orden declarado:
// con varios faltantes solo se reporta el primero.
func TestValidate_PrimerFalloEnOrdenDeclarado(t *testing.T) {
	req := validRequest(t)
	req.Currency = ""
	req.Supplier.Name = ""
	req.Tax = nil

	assertMissing(t, billing.Validate(req), "currency")
}
