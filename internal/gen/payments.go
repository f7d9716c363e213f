package gen

import "github.com/toolshop/seedgen/pkg/types"

// Payments generates count payment attempts against random invoices
// (an invoice can receive several). Method and status follow their
// weight tables; failed payments carry no reference ID.
func Payments(src *Source, count int, invoices []types.Invoice) []types.Payment {
	payments := make([]types.Payment, 0, count)
	stamp := src.refStamp()

	for i := 0; i < count; i++ {
		invoice := Pick(src, invoices)
		method := types.PaymentMethods[src.Weighted(types.PaymentMethodWeights)]
		status := types.PaymentStatuses[src.Weighted(types.PaymentStatusWeights)]

		p := types.Payment{
			ID:        src.NewID(),
			InvoiceID: invoice.ID,
			Method:    method,
			Status:    status,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		}
		if status != types.StatusFailed {
			p.ReferenceID = src.paymentReference(method)
		}

		payments = append(payments, p)
	}
	return payments
}

// paymentReference builds a method-prefixed reference ID.
func (s *Source) paymentReference(method string) string {
	switch method {
	case types.MethodCreditCard:
		return "CC" + s.digits(12)
	case types.MethodBankTransfer:
		return "BT" + s.digits(10)
	case types.MethodCashOnDelivery:
		return "COD" + s.digits(6)
	case types.MethodBuyNowPayLater:
		return "BNPL" + s.digits(8)
	default:
		return "PAY" + s.digits(7)
	}
}
