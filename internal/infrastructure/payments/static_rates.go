package payments

import (
	"context"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"
)

var staticInstallmentLadder = []entities.InstallmentRate{
	{Count: 1, FeeRatePercent: 0},
	{Count: 2, FeeRatePercent: 2.99},
	{Count: 3, FeeRatePercent: 3.99},
	{Count: 4, FeeRatePercent: 4.99},
	{Count: 6, FeeRatePercent: 6.99},
	{Count: 12, FeeRatePercent: 12.99},
}

// StaticInstallmentRates serves the fixed fee ladder, the same for every brand.
type StaticInstallmentRates struct{}

var _ interfaces.IInstallmentRateSource = StaticInstallmentRates{}

func (StaticInstallmentRates) Rates(ctx context.Context, _ float64, _ entities.CardBrandID) ([]entities.InstallmentRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entities.InstallmentRate, len(staticInstallmentLadder))
	copy(out, staticInstallmentLadder)
	return out, nil
}
