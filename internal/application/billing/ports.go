package billing

import (
	"context"

	"github.com/jhoicas/peppol-invoice-api/internal/domain/entity"
)

// DocumentBuilder puerto del generador de documentos UBL.
// Transformación pura: sin red ni disco.
type DocumentBuilder interface {
	Build(inv *entity.Invoice) (string, error)
}

// PushFile archivo nombrado que se entrega al servicio de almacenamiento.
type PushFile struct {
	Name    string // ej. "INV-1_1717171717171.xml"
	Content string // documento XML completo
}

// DocumentPusher puerto de salida hacia el servicio externo de almacenamiento
// de documentos. Devuelve el status HTTP del servicio; un status no-2xx NO es
// error (se propaga al caller), solo los fallos de transporte lo son.
// Un solo intento, sin reintentos.
type DocumentPusher interface {
	Push(ctx context.Context, recordID string, file PushFile) (int, error)
}
