package usecase

import (
	"context"
	"errors"
	"sort"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidInstallmentAmount    = errors.New("invalid installment amount")
	ErrInstallmentRatesUnavailable = errors.New("installment rates unavailable")
)

// IInstallmentPricer quotes the installment plan of a card payment.
type IInstallmentPricer interface {
	Quote(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentOption, error)
}

type InstallmentPricer struct {
	rates  interfaces.IInstallmentRateSource
	logger *zap.Logger
}

var _ IInstallmentPricer = (*InstallmentPricer)(nil)

func NewInstallmentPricer(rates interfaces.IInstallmentRateSource, logger *zap.Logger) *InstallmentPricer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstallmentPricer{rates: rates, logger: logger}
}

// Quote returns one option per rate, ordered by installment count.
// The per-installment amount ignores the fee; the fee only affects the total.
func (p *InstallmentPricer) Quote(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentOption, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidInstallmentAmount
	}

	rates, err := p.rates.Rates(ctx, amount, brand)
	if err != nil {
		p.logger.Error("[installments][usecase] rate source failed", zap.String("brand", string(brand)), zap.Error(err))
		return nil, ErrInstallmentRatesUnavailable
	}
	sort.SliceStable(rates, func(i, j int) bool { return rates[i].Count < rates[j].Count })

	options := make([]entities.InstallmentOption, 0, len(rates))
	for _, r := range rates {
		if r.Count < 1 {
			continue
		}
		total := amount
		if r.Count > 1 {
			total = roundCents(amount * (1 + r.FeeRatePercent/100))
		}
		options = append(options, entities.InstallmentOption{
			Count:             r.Count,
			InstallmentAmount: roundCents(amount / float64(r.Count)),
			FeeRatePercent:    r.FeeRatePercent,
			TotalAmount:       total,
		})
	}
	return options, nil
}

func findInstallment(options []entities.InstallmentOption, count int) (entities.InstallmentOption, bool) {
	for _, o := range options {
		if o.Count == count {
			return o, true
		}
	}
	return entities.InstallmentOption{}, false
}
