package billing_test

import (
	"encoding/json"
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

// decodeRequest construye el DTO desde JSON literal, como lo haría el parser.
func decodeRequest(t *testing.T, body string) *dto.UBLInvoiceRequest {
	t.Helper()
	var req dto.UBLInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción de enteros
// ──────────────────────────────────────────────────────────────────────────────

// "1500" (string) y 1500 (número) deben normalizar al mismo valor canónico.
func TestNormalize_EnteroComoStringYComoNumero(t *testing.T) {
	req := decodeRequest(t, `{"tax":{"percent":"21","amount":210}}`)
	require.NoError(t, billing.Normalize(req))

	assert.Equal(t, int64(21), req.Tax.Percent.Int64())
	assert.Equal(t, int64(210), req.Tax.Amount.Int64())
}

func TestNormalize_EnteroConExponente(t *testing.T) {
	// 1.5e3 = 1500 es entero sin pérdida; debe aceptarse.
	req := decodeRequest(t, `{"amounts":{"taxable":1.5e3,"total":"1500"}}`)
	require.NoError(t, billing.Normalize(req))

	assert.Equal(t, int64(1500), req.Amounts.Taxable.Int64())
	assert.Equal(t, int64(1500), req.Amounts.Total.Int64())
}

func TestNormalize_FraccionRechaza(t *testing.T) {
	req := decodeRequest(t, `{"tax":{"percent":21.5,"amount":210}}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "tax.percent: invalid integer", err.Error())
}

func TestNormalize_StringNoNumericaRechaza(t *testing.T) {
	req := decodeRequest(t, `{"tax":{"percent":"veintiuno","amount":210}}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "tax.percent: invalid integer", err.Error())
}

func TestNormalize_BooleanoRechaza(t *testing.T) {
	req := decodeRequest(t, `{"amounts":{"taxable":true,"total":100}}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "amounts.taxable: invalid integer", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_FechaCalendario(t *testing.T) {
	req := decodeRequest(t, `{"issueDate":"2024-01-01","dueDate":"2024-01-31"}`)
	require.NoError(t, billing.Normalize(req))

	assert.Equal(t, "2024-01-01", req.IssueDate.Time().Format("2006-01-02"))
	assert.Equal(t, "2024-01-31", req.DueDate.Time().Format("2006-01-02"))
}

// Un timestamp RFC 3339 normaliza a su fecha calendario.
func TestNormalize_TimestampNormalizaAFecha(t *testing.T) {
	req := decodeRequest(t, `{"issueDate":"2024-01-01T15:30:00Z"}`)
	require.NoError(t, billing.Normalize(req))

	assert.Equal(t, "2024-01-01", req.IssueDate.Time().Format("2006-01-02"))
}

func TestNormalize_FechaInvalidaRechaza(t *testing.T) {
	req := decodeRequest(t, `{"issueDate":"31/01/2024"}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "issueDate: invalid date", err.Error())
}

func TestNormalize_FechaComoNumeroRechaza(t *testing.T) {
	req := decodeRequest(t, `{"dueDate":1704067200}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "dueDate: invalid date", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas, merge-back y orden de fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_LineasConRutaIndexada(t *testing.T) {
	req := decodeRequest(t, `{"items":[
		{"name":"Uno","quantity":1,"price":100,"lineAmount":100},
		{"name":"Dos","quantity":2,"price":"abc","lineAmount":200}
	]}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "items[1].price: invalid integer", err.Error(),
		"la ruta debe indexar la línea fallida")
}

// Los campos no coercibles (description, unitCode, opcionales) se conservan intactos.
func TestNormalize_ConservaCamposNoTocados(t *testing.T) {
	req := decodeRequest(t, `{
		"buyerReference":"PO-99",
		"items":[{"name":"Uno","description":"detalle","quantity":"3","price":10,"lineAmount":30,"unitCode":"KGM"}]
	}`)
	require.NoError(t, billing.Normalize(req))

	assert.Equal(t, "PO-99", req.BuyerReference)
	assert.Equal(t, "Uno", req.Items[0].Name)
	assert.Equal(t, "detalle", req.Items[0].Description)
	assert.Equal(t, "KGM", req.Items[0].UnitCode)
	assert.Equal(t, int64(3), req.Items[0].Quantity.Int64())
}

// Sin éxito parcial: el primer fallo aborta toda la normalización, en orden
// fijo (fechas → tax → amounts → items).
func TestNormalize_PrimerFalloGana(t *testing.T) {
	req := decodeRequest(t, `{
		"issueDate":"no-es-fecha",
		"tax":{"percent":"tampoco","amount":1},
		"amounts":{"taxable":"x","total":1}
	}`)
	err := billing.Normalize(req)

	require.Error(t, err)
	assert.Equal(t, "issueDate: invalid date", err.Error(),
		"debe reportarse el primer campo en el orden declarado")
}

// Los campos ausentes se saltan: su presencia la comprueba el validador.
func TestNormalize_AusentesSeSaltan(t *testing.T) {
	req := decodeRequest(t, `{"invoiceNumber":"INV-1"}`)
	assert.NoError(t, billing.Normalize(req))
}

func TestNormalize_NullEquivaleAAusente(t *testing.T) {
	req := decodeRequest(t, `{"issueDate":null,"tax":{"percent":null,"amount":5}}`)
	require.NoError(t, billing.Normalize(req))

	assert.False(t, req.IssueDate.Present())
	assert.False(t, req.Tax.Percent.Present())
	assert.Equal(t, int64(5), req.Tax.Amount.Int64())
}
