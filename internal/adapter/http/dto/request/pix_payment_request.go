package request

import "clinica_odonto/internal/usecase"

// PixPaymentRequest asks for a new PIX charge for a subscription plan.
type PixPaymentRequest struct {
	PlanReference string  `json:"plan_reference" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description"`
}

func (r PixPaymentRequest) ToCommand() usecase.GeneratePixCommand {
	return usecase.GeneratePixCommand{
		PlanReference: r.PlanReference,
		Amount:        r.Amount,
		Description:   r.Description,
	}
}
