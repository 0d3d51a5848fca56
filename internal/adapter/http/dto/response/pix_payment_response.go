package response

import (
	"time"

	"clinica_odonto/internal/domain/entities"
)

type PixPaymentResponse struct {
	ID                string     `json:"id"`
	Amount            float64    `json:"amount"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	PlanReference     string     `json:"plan_reference"`
	PayoutKey         string     `json:"payout_key"`
	PixCode           string     `json:"pix_code,omitempty"`
	QRCodeBase64      string     `json:"qr_code_base64,omitempty"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
}

type PixStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromPixPayment(p entities.PixPayment) PixPaymentResponse {
	return PixPaymentResponse{
		ID:                p.ID,
		Amount:            p.Amount,
		Description:       p.Description,
		Status:            string(p.Status),
		PlanReference:     p.PlanReference,
		PayoutKey:         p.PayoutKey,
		PixCode:           p.PixCode,
		QRCodeBase64:      p.QRCodeBase64,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         p.CreatedAt,
		ExpiresAt:         p.ExpiresAt,
		ApprovedAt:        p.ApprovedAt,
	}
}

func FromPixPayments(items []entities.PixPayment) []PixPaymentResponse {
	out := make([]PixPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPixPayment(p))
	}
	return out
}
