package entities

import "time"

type BoletoStatus string

const (
	BoletoStatusPendente  BoletoStatus = "pendente"
	BoletoStatusPago      BoletoStatus = "pago"
	BoletoStatusVencido   BoletoStatus = "vencido"
	BoletoStatusCancelado BoletoStatus = "cancelado"
)

// BoletoDueDays is the number of days between issue and due date.
const BoletoDueDays = 3

// BoletoPayment is a printable payment slip. The barcode is fabricated and
// has no value in the banking network.
type BoletoPayment struct {
	ID                  string       `json:"id"`
	Amount              float64      `json:"amount"`
	Description         string       `json:"description"`
	PlanReference       string       `json:"plan_reference"`
	PayerName           string       `json:"payer_name"`
	PayerDocument       string       `json:"payer_document"`
	BeneficiaryName     string       `json:"beneficiary_name"`
	BeneficiaryDocument string       `json:"beneficiary_document"`
	BankCode            string       `json:"bank_code"`
	Barcode             string       `json:"barcode"`
	DigitableLine       string       `json:"digitable_line"`
	Status              BoletoStatus `json:"status"`
	DueDate             time.Time    `json:"due_date"`
	CreatedAt           time.Time    `json:"created_at"`
}

func (p BoletoPayment) AttemptID() string           { return p.ID }
func (p BoletoPayment) AttemptKind() PaymentKind    { return PaymentKindBoleto }
func (p BoletoPayment) AttemptStatus() string       { return string(p.Status) }
func (p BoletoPayment) AttemptCreatedAt() time.Time { return p.CreatedAt }
func (BoletoPayment) paymentAttempt()               {}
