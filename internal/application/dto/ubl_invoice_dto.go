package dto

import (
	"github.com/jhoicas/peppol-invoice-api/internal/domain/entity"
)

// UBLInvoiceRequest cuerpo de la petición de generación de factura UBL.
// Los campos string requeridos usan "" como ausente (mismo criterio que el
// emisor original); los campos coercibles usan FlexInt/FlexDate y los bloques
// anidados son punteros para distinguir ausencia.
type UBLInvoiceRequest struct {
	InvoiceNumber  string               `json:"invoiceNumber"`
	IssueDate      FlexDate             `json:"issueDate"`
	DueDate        FlexDate             `json:"dueDate"`
	Currency       string               `json:"currency"`
	AccountingCost string               `json:"accountingCost,omitempty"`
	BuyerReference string               `json:"buyerReference,omitempty"`
	Supplier       *PartyRequest        `json:"supplier"`
	Customer       *PartyRequest        `json:"customer"`
	PaymentTerms   string               `json:"paymentTerms,omitempty"`
	Tax            *TaxRequest          `json:"tax"`
	Amounts        *AmountsRequest      `json:"amounts"`
	Items          []InvoiceItemRequest `json:"items"`
	OutputFile     string               `json:"outputFile,omitempty"`
}

// PartyRequest emisor o receptor de la factura.
type PartyRequest struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	TaxID     string          `json:"taxId"`
	CompanyID string          `json:"companyId"`
	Address   *AddressRequest `json:"address"`
}

// AddressRequest dirección postal de una parte.
type AddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// TaxRequest IVA plano de toda la factura.
type TaxRequest struct {
	Percent FlexInt `json:"percent"`
	Amount  FlexInt `json:"amount"`
}

// AmountsRequest totales monetarios.
type AmountsRequest struct {
	Taxable FlexInt `json:"taxable"`
	Total   FlexInt `json:"total"`
}

// InvoiceItemRequest línea de factura.
type InvoiceItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    FlexInt `json:"quantity"`
	Price       FlexInt `json:"price"`
	LineAmount  FlexInt `json:"lineAmount"`
	UnitCode    string  `json:"unitCode,omitempty"`
}

// ToEntity construye la factura normalizada. Solo es válido llamarlo después
// de que el normalizador resolvió los escalares y el validador comprobó la
// presencia de todos los bloques.
func (r *UBLInvoiceRequest) ToEntity() *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber:  r.InvoiceNumber,
		IssueDate:      r.IssueDate.Time(),
		DueDate:        r.DueDate.Time(),
		Currency:       r.Currency,
		AccountingCost: r.AccountingCost,
		BuyerReference: r.BuyerReference,
		Supplier:       r.Supplier.toEntity(),
		Customer:       r.Customer.toEntity(),
		PaymentTerms:   r.PaymentTerms,
		Tax: entity.Tax{
			Percent: r.Tax.Percent.Int64(),
			Amount:  r.Tax.Amount.Int64(),
		},
		Amounts: entity.Amounts{
			Taxable: r.Amounts.Taxable.Int64(),
			Total:   r.Amounts.Total.Int64(),
		},
		OutputFile: r.OutputFile,
	}
	inv.Items = make([]entity.InvoiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity.Int64(),
			Price:       it.Price.Int64(),
			LineAmount:  it.LineAmount.Int64(),
			UnitCode:    it.UnitCode,
		})
	}
	return inv
}

func (p *PartyRequest) toEntity() entity.Party {
	return entity.Party{
		ID:        p.ID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		CompanyID: p.CompanyID,
		Address: entity.Address{
			Street:   p.Address.Street,
			City:     p.Address.City,
			Postcode: p.Address.Postcode,
			Country:  p.Address.Country,
		},
	}
}
