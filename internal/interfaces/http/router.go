package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/peppol-invoice-api/internal/application/billing"
	"github.com/jhoicas/peppol-invoice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProcessInvoice *billing.ProcessUBLInvoiceUseCase
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Invoices UBL
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ProcessInvoice, deps.Log)
	invoices.Post("/ubl", invoiceHandler.Generate)
	invoices.Post("/ubl/preview", invoiceHandler.Preview)
}
