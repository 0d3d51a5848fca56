package response

import (
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"
)

type CardholderResponse struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
}

type CardPaymentResponse struct {
	ID                   string             `json:"id"`
	Amount               float64            `json:"amount"`
	InstallmentCount     int                `json:"installment_count"`
	InstallmentAmount    float64            `json:"installment_amount"`
	TotalAmount          float64            `json:"total_amount"`
	Brand                string             `json:"brand"`
	Status               string             `json:"status"`
	Cardholder           CardholderResponse `json:"cardholder"`
	ProcessingFeeRate    float64            `json:"processing_fee_rate"`
	NetAmount            float64            `json:"net_amount"`
	TransactionReference string             `json:"transaction_reference"`
	PlanReference        string             `json:"plan_reference"`
	CreatedAt            time.Time          `json:"created_at"`
}

type InstallmentOptionResponse struct {
	Count             int     `json:"count"`
	InstallmentAmount float64 `json:"installment_amount"`
	FeeRatePercent    float64 `json:"fee_rate_percent"`
	TotalAmount       float64 `json:"total_amount"`
}

type CardBrandResponse struct {
	ID                  string `json:"id"`
	DisplayName         string `json:"display_name"`
	Icon                string `json:"icon"`
	NumberPrefixPattern string `json:"number_prefix_pattern"`
}

// CardValidationResponse is the inline feedback for a typed card number.
type CardValidationResponse struct {
	Valid     bool               `json:"valid"`
	Brand     *CardBrandResponse `json:"brand,omitempty"`
	Formatted string             `json:"formatted"`
}

func FromCardPayment(p entities.CardPayment) CardPaymentResponse {
	return CardPaymentResponse{
		ID:                p.ID,
		Amount:            p.Amount,
		InstallmentCount:  p.InstallmentCount,
		InstallmentAmount: p.InstallmentAmount,
		TotalAmount:       p.TotalAmount,
		Brand:             string(p.Brand),
		Status:            string(p.Status),
		Cardholder: CardholderResponse{
			Name:     p.Cardholder.Name,
			Document: p.Cardholder.Document,
			Email:    p.Cardholder.Email,
		},
		ProcessingFeeRate:    p.ProcessingFeeRate,
		NetAmount:            p.NetAmount,
		TransactionReference: p.TransactionReference,
		PlanReference:        p.PlanReference,
		CreatedAt:            p.CreatedAt,
	}
}

func FromCardPayments(items []entities.CardPayment) []CardPaymentResponse {
	out := make([]CardPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromCardPayment(p))
	}
	return out
}

func FromInstallmentOptions(options []entities.InstallmentOption) []InstallmentOptionResponse {
	out := make([]InstallmentOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, InstallmentOptionResponse{
			Count:             o.Count,
			InstallmentAmount: o.InstallmentAmount,
			FeeRatePercent:    o.FeeRatePercent,
			TotalAmount:       o.TotalAmount,
		})
	}
	return out
}

func FromCardBrand(b entities.CardBrandDescriptor) CardBrandResponse {
	return CardBrandResponse{
		ID:                  string(b.ID),
		DisplayName:         b.DisplayName,
		Icon:                b.Icon,
		NumberPrefixPattern: b.NumberPrefixPattern,
	}
}

func FromCardBrands(brands []entities.CardBrandDescriptor) []CardBrandResponse {
	out := make([]CardBrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, FromCardBrand(b))
	}
	return out
}

func FromCardCheck(c usecase.CardCheck) CardValidationResponse {
	resp := CardValidationResponse{Valid: c.Valid, Formatted: c.Formatted}
	if c.Brand != nil {
		b := FromCardBrand(*c.Brand)
		resp.Brand = &b
	}
	return resp
}
