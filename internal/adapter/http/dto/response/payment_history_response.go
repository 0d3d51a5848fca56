package response

import (
	"time"

	"clinica_odonto/internal/domain/entities"
)

// PaymentHistoryItem is one row of the merged history. Details carries the
// kind-specific record.
type PaymentHistoryItem struct {
	ID        string      `json:"id"`
	Kind      string      `json:"kind"`
	Status    string      `json:"status"`
	Amount    float64     `json:"amount"`
	CreatedAt time.Time   `json:"created_at"`
	Details   interface{} `json:"details"`
}

func FromPaymentAttempt(a entities.PaymentAttempt) PaymentHistoryItem {
	item := PaymentHistoryItem{
		ID:        a.AttemptID(),
		Kind:      string(a.AttemptKind()),
		Status:    a.AttemptStatus(),
		CreatedAt: a.AttemptCreatedAt(),
	}
	switch p := a.(type) {
	case entities.PixPayment:
		item.Amount = p.Amount
		item.Details = FromPixPayment(p)
	case entities.CardPayment:
		item.Amount = p.TotalAmount
		item.Details = FromCardPayment(p)
	case entities.BoletoPayment:
		item.Amount = p.Amount
		item.Details = FromBoletoPayment(p)
	}
	return item
}

func FromPaymentAttempts(items []entities.PaymentAttempt) []PaymentHistoryItem {
	out := make([]PaymentHistoryItem, 0, len(items))
	for _, a := range items {
		out = append(out, FromPaymentAttempt(a))
	}
	return out
}
