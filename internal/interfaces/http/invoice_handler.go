package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/peppol-invoice-api/internal/application/billing"
	"github.com/jhoicas/peppol-invoice-api/internal/application/dto"
	"github.com/jhoicas/peppol-invoice-api/internal/domain"
	"github.com/jhoicas/peppol-invoice-api/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de generación de factura UBL.
type InvoiceHandler struct {
	uc  *billing.ProcessUBLInvoiceUseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.ProcessUBLInvoiceUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// Generate genera la factura UBL y la despacha al servicio de almacenamiento.
// POST /api/invoices/ubl?record_id=<id>
//
// El status de la respuesta es el del servicio externo ({"success": true|false});
// los fallos de parseo/validación responden 400 con el mensaje del primer campo
// fallido, y un fallo de transporte en el despacho responde 500 genérico.
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	recordID := c.Query("record_id")
	if recordID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: domain.ErrMissingRecordID.Error(),
		})
	}

	result, err := h.uc.Process(c.Context(), recordID, c.Body())
	if err != nil {
		if errors.Is(err, domain.ErrDispatchFailed) {
			h.log.Error().Err(err).Str("record_id", recordID).Msg("despacho al pod fallido")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "DISPATCH_ERROR",
				Message: "An error has occurred",
			})
		}
		h.log.Error().Err(err).Msg("petición de factura UBL rechazada")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	}

	return c.Status(result.StatusCode).JSON(dto.UBLInvoiceResponse{Success: result.Success})
}

// Preview genera la factura UBL y la devuelve sin despacharla.
// POST /api/invoices/ubl/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	fileName, xmlContent, err := h.uc.GenerateXML(c.Body())
	if err != nil {
		h.log.Error().Err(err).Msg("preview de factura UBL rechazado")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	}

	return c.JSON(dto.UBLPreviewResponse{
		Success:    true,
		FileName:   fileName,
		XMLContent: xmlContent,
	})
}
