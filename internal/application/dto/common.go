package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UBLInvoiceResponse resultado del despacho al servicio de almacenamiento.
// El status HTTP de la respuesta es el del servicio externo; success refleja
// si ese status fue 2xx.
type UBLInvoiceResponse struct {
	Success bool `json:"success"`
}

// UBLPreviewResponse resultado de la generación sin despacho.
type UBLPreviewResponse struct {
	Success    bool   `json:"success"`
	FileName   string `json:"fileName"`
	XMLContent string `json:"xmlContent"`
}
