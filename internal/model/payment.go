package model

// PaymentMethod is one of the fixed checkout options.
type PaymentMethod string

const (
	PaymentCreditCard      PaymentMethod = "cartao"
	PaymentInvoiceSlip     PaymentMethod = "boleto"
	PaymentInstantTransfer PaymentMethod = "pix"
	PaymentCash            PaymentMethod = "dinheiro"
)

// PaymentMethods lists the options in the order they are offered.
var PaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentInvoiceSlip,
	PaymentInstantTransfer,
	PaymentCash,
}

// Label is the user-facing name shown in the checkout form and on the
// confirmation summary.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCreditCard:
		return "Cartão de crédito"
	case PaymentInvoiceSlip:
		return "Boleto"
	case PaymentInstantTransfer:
		return "PIX"
	case PaymentCash:
		return "Dinheiro"
	}
	return string(p)
}

// Valid reports whether p is one of the offered methods.
func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}
