package request

import "clinica_odonto/internal/usecase"

type BoletoPaymentRequest struct {
	PlanReference string  `json:"plan_reference" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description"`
	PayerName     string  `json:"payer_name" binding:"required"`
	PayerDocument string  `json:"payer_document" binding:"required"`
}

func (r BoletoPaymentRequest) ToCommand() usecase.GenerateBoletoCommand {
	return usecase.GenerateBoletoCommand{
		PlanReference: r.PlanReference,
		Amount:        r.Amount,
		Description:   r.Description,
		PayerName:     r.PayerName,
		PayerDocument: r.PayerDocument,
	}
}
