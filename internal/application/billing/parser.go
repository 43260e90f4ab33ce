package billing

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/peppol-invoice-api/internal/application/dto"
	"github.com/jhoicas/peppol-invoice-api/internal/domain"
)

// Parse decodifica el cuerpo de la petición en el DTO de factura.
//
// Algunos integradores upstream envían el cuerpo doblemente codificado: un
// string JSON cuyo contenido es el objeto JSON. Ambas formas se aceptan de
// manera transparente. Cualquier fallo de decode produce domain.ErrInvalidJSON.
func Parse(body []byte) (*dto.UBLInvoiceRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.ErrInvalidJSON
	}

	// Cuerpo doblemente codificado: primero se desenvuelve el string exterior.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, domain.ErrInvalidJSON
		}
		trimmed = []byte(inner)
	}

	var req dto.UBLInvoiceRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, domain.ErrInvalidJSON
	}
	return &req, nil
}
