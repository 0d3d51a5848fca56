package entities

import "time"

// CardStatus follows the card gateway vocabulary, which differs from the PIX one.
type CardStatus string

const (
	CardStatusPending   CardStatus = "pending"
	CardStatusApproved  CardStatus = "approved"
	CardStatusRejected  CardStatus = "rejected"
	// CardStatusInProcess is the "processing" outcome: the charge is under
	// acquirer review and neither approved nor rejected yet.
	CardStatusInProcess CardStatus = "in_process"
	CardStatusCancelled CardStatus = "cancelled"
)

const (
	// CardProcessingFeeRate is charged by the acquirer on every card payment.
	CardProcessingFeeRate = 0.0399
)

// Cardholder keeps only the non-sensitive payer fields. Card number and CVV
// are never part of a persisted record.
type Cardholder struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
}

// CardPayment is a card collection attempt. It is created once with its final
// simulated outcome and never mutated afterwards.
type CardPayment struct {
	ID                   string      `json:"id"`
	Amount               float64     `json:"amount"`
	InstallmentCount     int         `json:"installment_count"`
	InstallmentAmount    float64     `json:"installment_amount"`
	TotalAmount          float64     `json:"total_amount"`
	Brand                CardBrandID `json:"brand"`
	Status               CardStatus  `json:"status"`
	Cardholder           Cardholder  `json:"cardholder"`
	ProcessingFeeRate    float64     `json:"processing_fee_rate"`
	NetAmount            float64     `json:"net_amount"`
	TransactionReference string      `json:"transaction_reference"`
	PlanReference        string      `json:"plan_reference"`
	CreatedAt            time.Time   `json:"created_at"`
}

func (p CardPayment) AttemptID() string           { return p.ID }
func (p CardPayment) AttemptKind() PaymentKind    { return PaymentKindCard }
func (p CardPayment) AttemptStatus() string       { return string(p.Status) }
func (p CardPayment) AttemptCreatedAt() time.Time { return p.CreatedAt }
func (CardPayment) paymentAttempt()               {}
