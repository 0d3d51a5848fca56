package entities

import "time"

// PixStatus is the lifecycle of a PIX charge.
//
// Transitions: pendente -> aprovado | rejeitado | expirado. erro is only
// produced when the charge could not be generated.
type PixStatus string

const (
	PixStatusPendente  PixStatus = "pendente"
	PixStatusAprovado  PixStatus = "aprovado"
	PixStatusRejeitado PixStatus = "rejeitado"
	PixStatusExpirado  PixStatus = "expirado"
	PixStatusErro      PixStatus = "erro"
)

// IsTerminal reports whether no further transition can happen.
func (s PixStatus) IsTerminal() bool {
	return s != PixStatusPendente
}

const (
	// PixExpiration is the validity window of a generated PIX code.
	PixExpiration = 30 * time.Minute
	// PixSimulatedApprovalAfter is how long the simulated provider waits
	// before reporting a charge as paid. It is unrelated to PixExpiration.
	PixSimulatedApprovalAfter = 10 * time.Second
)

// PixPayment is a PIX collection attempt.
type PixPayment struct {
	ID                string     `json:"id"`
	Amount            float64    `json:"amount"`
	Description       string     `json:"description"`
	Status            PixStatus  `json:"status"`
	PlanReference     string     `json:"plan_reference"`
	PayoutKey         string     `json:"payout_key"`
	PixCode           string     `json:"pix_code,omitempty"`
	QRCodeBase64      string     `json:"qr_code_base64,omitempty"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
}

func (p PixPayment) AttemptID() string           { return p.ID }
func (p PixPayment) AttemptKind() PaymentKind    { return PaymentKindPix }
func (p PixPayment) AttemptStatus() string       { return string(p.Status) }
func (p PixPayment) AttemptCreatedAt() time.Time { return p.CreatedAt }
func (PixPayment) paymentAttempt()               {}
