package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidJSON cuerpo de la petición no es JSON válido.
	// El mensaje es parte del contrato de la API; no cambiar el texto.
	ErrInvalidJSON = errors.New("Invalid JSON request body")
	// ErrMissingRecordID falta el query param record_id.
	ErrMissingRecordID = errors.New("missing required query parameter: record_id")
	// ErrDispatchFailed fallo de transporte al entregar el documento al servicio externo.
	ErrDispatchFailed = errors.New("dispatch to document storage failed")
)

// ValidationError falla de validación o de coerción sobre un campo concreto.
// Path es la ruta punteada/indexada del campo (ej. "items[2].price").
type ValidationError struct {
	Path   string
	Reason string
}

// Error implementa error. Formato: "<path>: <reason>" o solo Reason si no hay path.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// NewMissingFieldError falla por campo requerido ausente.
func NewMissingFieldError(path string) *ValidationError {
	return &ValidationError{Reason: "missing required field: " + path}
}

// NewCoercionError falla por campo presente pero no coercible al tipo destino.
func NewCoercionError(path, reason string) *ValidationError {
	return &ValidationError{Path: path, Reason: reason}
}

// IsValidationError reporta si err es una falla de validación/coerción.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
