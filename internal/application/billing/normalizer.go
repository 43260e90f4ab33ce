package billing

import (
	"fmt"

	"github.com/jhoicas/peppol-invoice-api/internal/application/dto"
	"github.com/jhoicas/peppol-invoice-api/internal/domain"
)

// Normalize coerciona in situ los campos de fecha y numéricos del registro.
//
// La coerción es estricta y se detiene en el primer fallo, en orden fijo:
// fechas de la raíz, tax, amounts y cada línea en orden de entrada. Los campos
// ausentes se saltan (la presencia la comprueba el validador); los campos no
// tocados se conservan sin cambios en el mismo registro.
func Normalize(req *dto.UBLInvoiceRequest) error {
	if err := resolveDate(&req.IssueDate, "issueDate"); err != nil {
		return err
	}
	if err := resolveDate(&req.DueDate, "dueDate"); err != nil {
		return err
	}

	if req.Tax != nil {
		if err := resolveInt(&req.Tax.Percent, "tax.percent"); err != nil {
			return err
		}
		if err := resolveInt(&req.Tax.Amount, "tax.amount"); err != nil {
			return err
		}
	}

	if req.Amounts != nil {
		if err := resolveInt(&req.Amounts.Taxable, "amounts.taxable"); err != nil {
			return err
		}
		if err := resolveInt(&req.Amounts.Total, "amounts.total"); err != nil {
			return err
		}
	}

	for i := range req.Items {
		it := &req.Items[i]
		if err := resolveInt(&it.Quantity, fmt.Sprintf("items[%d].quantity", i)); err != nil {
			return err
		}
		if err := resolveInt(&it.Price, fmt.Sprintf("items[%d].price", i)); err != nil {
			return err
		}
		if err := resolveInt(&it.LineAmount, fmt.Sprintf("items[%d].lineAmount", i)); err != nil {
			return err
		}
	}

	return nil
}

func resolveInt(v *dto.FlexInt, path string) error {
	if !v.Present() {
		return nil
	}
	if err := v.Resolve(); err != nil {
		return domain.NewCoercionError(path, err.Error())
	}
	return nil
}

func resolveDate(v *dto.FlexDate, path string) error {
	if !v.Present() {
		return nil
	}
	if err := v.Resolve(); err != nil {
		return domain.NewCoercionError(path, err.Error())
	}
	return nil
}
