package entities

import "time"

// PaymentKind identifies the payment rail of an attempt.
type PaymentKind string

const (
	PaymentKindPix    PaymentKind = "pix"
	PaymentKindCard   PaymentKind = "cartao"
	PaymentKindBoleto PaymentKind = "boleto"
)

// Namespace is the key-value namespace where attempts of this kind are kept.
func (k PaymentKind) Namespace() string {
	return "pagamentos_" + string(k)
}

// PaymentAttempt is the closed set of persisted payment records
// (PixPayment, CardPayment, BoletoPayment).
//
// Each kind keeps its own status enumeration; AttemptStatus returns the raw
// wire value so callers can render a mixed history without unifying them.
type PaymentAttempt interface {
	AttemptID() string
	AttemptKind() PaymentKind
	AttemptStatus() string
	AttemptCreatedAt() time.Time

	paymentAttempt()
}
