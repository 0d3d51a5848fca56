package interfaces

import (
	"context"

	"clinica_odonto/internal/domain/entities"
)

// IInstallmentRateSource supplies the fee ladder used to quote installments.
type IInstallmentRateSource interface {
	Rates(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentRate, error)
}
