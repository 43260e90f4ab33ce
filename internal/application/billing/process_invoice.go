package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/peppol-invoice-api/internal/domain"
)

// ProcessUBLInvoiceUseCase orquesta el pipeline completo de una petición:
// parse → normalize → validate → generar XML UBL → push al servicio de
// almacenamiento. Sin estado compartido entre invocaciones.
type ProcessUBLInvoiceUseCase struct {
	builder DocumentBuilder
	pusher  DocumentPusher
	now     func() time.Time // inyectable en tests para nombres de archivo deterministas
}

// NewProcessUBLInvoiceUseCase construye el caso de uso.
func NewProcessUBLInvoiceUseCase(builder DocumentBuilder, pusher DocumentPusher) *ProcessUBLInvoiceUseCase {
	return &ProcessUBLInvoiceUseCase{
		builder: builder,
		pusher:  pusher,
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso (tests).
func (uc *ProcessUBLInvoiceUseCase) WithClock(now func() time.Time) *ProcessUBLInvoiceUseCase {
	uc.now = now
	return uc
}

// DispatchResult resultado del despacho al servicio de almacenamiento.
type DispatchResult struct {
	StatusCode int  // status HTTP del servicio externo, tal cual
	Success    bool // true si el status fue 2xx
}

// GenerateXML ejecuta el pipeline hasta la generación del documento, sin
// despacharlo. Devuelve el nombre de archivo propuesto y el XML.
// Los errores son domain.ErrInvalidJSON o *domain.ValidationError.
func (uc *ProcessUBLInvoiceUseCase) GenerateXML(body []byte) (fileName, xmlContent string, err error) {
	req, err := Parse(body)
	if err != nil {
		return "", "", err
	}
	if err := Normalize(req); err != nil {
		return "", "", err
	}
	if err := Validate(req); err != nil {
		return "", "", err
	}

	inv := req.ToEntity()
	xmlContent, err = uc.builder.Build(inv)
	if err != nil {
		return "", "", err
	}

	fileName = fmt.Sprintf("%s_%d.xml", inv.InvoiceNumber, uc.now().UnixMilli())
	return fileName, xmlContent, nil
}

// Process ejecuta el pipeline completo y despacha el documento al registro
// recordID del servicio de almacenamiento. Un status no-2xx del servicio se
// devuelve como DispatchResult con Success=false; un fallo de transporte se
// envuelve en domain.ErrDispatchFailed.
func (uc *ProcessUBLInvoiceUseCase) Process(ctx context.Context, recordID string, body []byte) (*DispatchResult, error) {
	fileName, xmlContent, err := uc.GenerateXML(body)
	if err != nil {
		return nil, err
	}

	status, err := uc.pusher.Push(ctx, recordID, PushFile{Name: fileName, Content: xmlContent})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	return &DispatchResult{
		StatusCode: status,
		Success:    status >= 200 && status < 300,
	}, nil
}
