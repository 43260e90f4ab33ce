package billing

import (
	"fmt"

	"github.com/jhoicas/peppol-invoice-api/internal/application/dto"
	"github.com/jhoicas/peppol-invoice-api/internal/domain"
)

// Validate comprueba la presencia de todos los campos que el generador UBL
// desreferencia sin condición.
//
// El recorrido sigue el orden declarado del modelo y se detiene en el primer
// campo ausente; el orden es parte del contrato de mensajes de error y no debe
// cambiarse. La corrección de tipos ya la garantizó el normalizador.
func Validate(req *dto.UBLInvoiceRequest) error {
	if req.InvoiceNumber == "" {
		return domain.NewMissingFieldError("invoiceNumber")
	}
	if !req.IssueDate.Present() {
		return domain.NewMissingFieldError("issueDate")
	}
	if !req.DueDate.Present() {
		return domain.NewMissingFieldError("dueDate")
	}
	if req.Currency == "" {
		return domain.NewMissingFieldError("currency")
	}

	if err := validateParty(req.Supplier, "supplier"); err != nil {
		return err
	}
	if err := validateParty(req.Customer, "customer"); err != nil {
		return err
	}

	if req.Tax == nil {
		return domain.NewMissingFieldError("tax")
	}
	if !req.Tax.Percent.Present() {
		return domain.NewMissingFieldError("tax.percent")
	}
	if !req.Tax.Amount.Present() {
		return domain.NewMissingFieldError("tax.amount")
	}

	if req.Amounts == nil {
		return domain.NewMissingFieldError("amounts")
	}
	if !req.Amounts.Taxable.Present() {
		return domain.NewMissingFieldError("amounts.taxable")
	}
	if !req.Amounts.Total.Present() {
		return domain.NewMissingFieldError("amounts.total")
	}

	if req.Items == nil {
		return domain.NewMissingFieldError("items")
	}
	if len(req.Items) == 0 {
		return &domain.ValidationError{Reason: "Items must be an array with at least one element."}
	}
	for i := range req.Items {
		it := &req.Items[i]
		if it.Name == "" {
			return domain.NewMissingFieldError(fmt.Sprintf("items[%d].name", i))
		}
		if !it.Quantity.Present() {
			return domain.NewMissingFieldError(fmt.Sprintf("items[%d].quantity", i))
		}
		if !it.Price.Present() {
			return domain.NewMissingFieldError(fmt.Sprintf("items[%d].price", i))
		}
		if !it.LineAmount.Present() {
			return domain.NewMissingFieldError(fmt.Sprintf("items[%d].lineAmount", i))
		}
	}

	return nil
}

func validateParty(p *dto.PartyRequest, field string) error {
	if p == nil {
		return domain.NewMissingFieldError(field)
	}
	if p.Name == "" {
		return domain.NewMissingFieldError(field + ".name")
	}
	if p.TaxID == "" {
		return domain.NewMissingFieldError(field + ".taxId")
	}
	if p.CompanyID == "" {
		return domain.NewMissingFieldError(field + ".companyId")
	}
	return validateAddress(p.Address, field+".address")
}

func validateAddress(a *dto.AddressRequest, field string) error {
	if a == nil {
		return domain.NewMissingFieldError(field)
	}
	if a.Street == "" {
		return domain.NewMissingFieldError(field + ".street")
	}
	if a.City == "" {
		return domain.NewMissingFieldError(field + ".city")
	}
	if a.Postcode == "" {
		return domain.NewMissingFieldError(field + ".postcode")
	}
	if a.Country == "" {
		return domain.NewMissingFieldError(field + ".country")
	}
	return nil
}
