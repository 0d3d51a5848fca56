package response

import (
	"time"

	"clinica_odonto/internal/domain/entities"
)

type BoletoPaymentResponse struct {
	ID                  string    `json:"id"`
	Amount              float64   `json:"amount"`
	Description         string    `json:"description"`
	PlanReference       string    `json:"plan_reference"`
	PayerName           string    `json:"payer_name"`
	PayerDocument       string    `json:"payer_document"`
	BeneficiaryName     string    `json:"beneficiary_name"`
	BeneficiaryDocument string    `json:"beneficiary_document"`
	BankCode            string    `json:"bank_code"`
	Barcode             string    `json:"barcode"`
	DigitableLine       string    `json:"digitable_line"`
	Status              string    `json:"status"`
	DueDate             time.Time `json:"due_date"`
	CreatedAt           time.Time `json:"created_at"`
}

type BoletoStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromBoletoPayment(p entities.BoletoPayment) BoletoPaymentResponse {
	return BoletoPaymentResponse{
		ID:                  p.ID,
		Amount:              p.Amount,
		Description:         p.Description,
		PlanReference:       p.PlanReference,
		PayerName:           p.PayerName,
		PayerDocument:       p.PayerDocument,
		BeneficiaryName:     p.BeneficiaryName,
		BeneficiaryDocument: p.BeneficiaryDocument,
		BankCode:            p.BankCode,
		Barcode:             p.Barcode,
		DigitableLine:       p.DigitableLine,
		Status:              string(p.Status),
		DueDate:             p.DueDate,
		CreatedAt:           p.CreatedAt,
	}
}

func FromBoletoPayments(items []entities.BoletoPayment) []BoletoPaymentResponse {
	out := make([]BoletoPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromBoletoPayment(p))
	}
	return out
}
