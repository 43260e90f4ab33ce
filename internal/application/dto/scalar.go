package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos escalares flexibles para el casteo de entrada.
//
// El emisor puede codificar los campos numéricos como número JSON (100) o como
// string ("100"), y las fechas como fecha calendario ("2024-01-01") o timestamp
// RFC 3339. El decode captura el token crudo sin interpretarlo; la coerción
// estricta ocurre después en el normalizador, que es quien conoce la ruta del
// campo para reportar errores. El valor resuelto se guarda junto al crudo, de
// modo que el registro original se conserva completo.

// FlexInt entero que acepta número JSON o string numérica.
// La coerción es estricta: cualquier parte fraccionaria rechaza el valor.
type FlexInt struct {
	raw      json.RawMessage
	val      int64
	resolved bool
}

// UnmarshalJSON captura el token crudo; null equivale a ausente.
func (v *FlexInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	v.raw = append(v.raw[:0], b...)
	return nil
}

// MarshalJSON re-emite el token original (o el valor resuelto si existe).
func (v FlexInt) MarshalJSON() ([]byte, error) {
	if v.resolved {
		return json.Marshal(v.val)
	}
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// Present reporta si el campo vino en la petición.
func (v *FlexInt) Present() bool {
	return v.resolved || len(v.raw) > 0
}

// Resolve coerciona el token crudo a entero. Idempotente.
func (v *FlexInt) Resolve() error {
	if v.resolved {
		return nil
	}
	s := string(v.raw)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return errInvalidInteger
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() {
		return errInvalidInteger
	}
	v.val = d.IntPart()
	v.resolved = true
	return nil
}

// Int64 devuelve el valor resuelto. Solo es válido tras Resolve sin error.
func (v *FlexInt) Int64() int64 {
	return v.val
}

// FlexDate fecha calendario que acepta "2006-01-02" o timestamp RFC 3339.
type FlexDate struct {
	raw      json.RawMessage
	val      time.Time
	resolved bool
}

// UnmarshalJSON captura el token crudo; null equivale a ausente.
func (v *FlexDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	v.raw = append(v.raw[:0], b...)
	return nil
}

// MarshalJSON re-emite la fecha canónica si está resuelta, o el token original.
func (v FlexDate) MarshalJSON() ([]byte, error) {
	if v.resolved {
		return json.Marshal(v.val.Format("2006-01-02"))
	}
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// Present reporta si el campo vino en la petición.
func (v *FlexDate) Present() bool {
	return v.resolved || len(v.raw) > 0
}

// Resolve coerciona el token crudo a fecha calendario. Idempotente.
func (v *FlexDate) Resolve() error {
	if v.resolved {
		return nil
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return errInvalidDate
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		// Segunda oportunidad: timestamp completo; se conserva solo la fecha.
		ts, err2 := time.Parse(time.RFC3339, s)
		if err2 != nil {
			return errInvalidDate
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	v.val = t
	v.resolved = true
	return nil
}

// Time devuelve la fecha resuelta. Solo es válida tras Resolve sin error.
func (v *FlexDate) Time() time.Time {
	return v.val
}

// Razones de coerción; el normalizador las antepone con la ruta del campo.
type coercionReason string

func (r coercionReason) Error() string { return string(r) }

const (
	errInvalidInteger coercionReason = "invalid integer"
	errInvalidDate    coercionReason = "invalid date"
)
