// Cliente HTTP del servicio externo de almacenamiento de documentos ("pod").
// Entrega el XML generado como archivo nombrado asociado a un registro.

package pod

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/peppol-invoice-api/internal/application/billing"
	"github.com/jhoicas/peppol-invoice-api/pkg/config"
	"github.com/jhoicas/peppol-invoice-api/pkg/logger"
)

// Client implementa billing.DocumentPusher contra la API REST del pod.
// La configuración (target, namespace, token) llega inyectada al construirlo;
// el cliente no lee variables de entorno.
type Client struct {
	httpClient *http.Client
	cfg        config.PodConfig
	log        *logger.Logger
}

// NewClient construye el cliente con un timeout de red de 30 s. El timeout
// local es del transporte; la semántica de la operación es un solo intento
// sin reintentos.
func NewClient(cfg config.PodConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		log:        log,
	}
}

// pushRequest cuerpo del push: un archivo UBL en base64 bajo la clave ubl_file.
type pushRequest struct {
	UBLFile pushFilePayload `json:"ubl_file"`
}

type pushFilePayload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // XML en Base64
}

// Push entrega el archivo al registro recordID. Devuelve el status HTTP del
// servicio tal cual (un status no-2xx NO es error); solo los fallos de
// transporte producen error.
func (c *Client) Push(ctx context.Context, recordID string, file billing.PushFile) (int, error) {
	endpoint := fmt.Sprintf("%s/api/v1/namespaces/%s/pods/%s/records/%s/push",
		c.cfg.BaseURL,
		url.PathEscape(c.cfg.Namespace),
		url.PathEscape(c.cfg.PodID),
		url.PathEscape(recordID),
	)

	payload, err := json.Marshal(pushRequest{
		UBLFile: pushFilePayload{
			Filename: file.Name,
			Content:  base64.StdEncoding.EncodeToString([]byte(file.Content)),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("pod: serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("pod: crear request: %w", err)
	}
	correlationID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	req.Header.Set("X-Correlation-Id", correlationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("pod: timeout o cancelación: %w", ctx.Err())
		}
		return 0, fmt.Errorf("pod: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	// El cuerpo de la respuesta no forma parte del contrato; solo se drena
	// (acotado) para reutilizar la conexión.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20)) // max 1 MB

	c.log.Info().
		Str("record_id", recordID).
		Str("filename", file.Name).
		Str("correlation_id", correlationID).
		Int("status", resp.StatusCode).
		Msg("push de documento al pod")

	return resp.StatusCode, nil
}
