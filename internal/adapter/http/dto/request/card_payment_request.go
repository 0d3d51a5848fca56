package request

import (
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"
)

// CardDataRequest carries the raw card form. Field checks are done by the
// use case so every field gets its own message.
type CardDataRequest struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Document   string `json:"document"`
	Email      string `json:"email"`
	Token      string `json:"token"`
}

type CardPaymentRequest struct {
	Card          CardDataRequest `json:"card"`
	Amount        float64         `json:"amount" binding:"required"`
	Installments  int             `json:"installments"`
	PlanReference string          `json:"plan_reference" binding:"required"`
	Brand         string          `json:"brand"`
	Description   string          `json:"description"`
}

func (r CardPaymentRequest) ToCommand() usecase.ProcessCardCommand {
	return usecase.ProcessCardCommand{
		Card: usecase.CardData{
			Number:     r.Card.Number,
			HolderName: r.Card.HolderName,
			Expiry:     r.Card.Expiry,
			CVV:        r.Card.CVV,
			Document:   r.Card.Document,
			Email:      r.Card.Email,
			Token:      r.Card.Token,
		},
		Amount:        r.Amount,
		Installments:  r.Installments,
		PlanReference: r.PlanReference,
		BrandID:       entities.CardBrandID(r.Brand),
		Description:   r.Description,
	}
}

type CardValidateRequest struct {
	Number string `json:"number" binding:"required"`
}
