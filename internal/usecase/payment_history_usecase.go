package usecase

import (
	"context"
	"sort"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPaymentHistoryUseCase lists every payment attempt regardless of kind.
type IPaymentHistoryUseCase interface {
	ListAll(ctx context.Context) ([]entities.PaymentAttempt, error)
}

type PaymentHistoryUseCase struct {
	pix    interfaces.IPixPaymentRepository
	card   interfaces.ICardPaymentRepository
	boleto interfaces.IBoletoPaymentRepository
	logger *zap.Logger
}

var _ IPaymentHistoryUseCase = (*PaymentHistoryUseCase)(nil)

func NewPaymentHistoryUseCase(pix interfaces.IPixPaymentRepository, card interfaces.ICardPaymentRepository, boleto interfaces.IBoletoPaymentRepository, logger *zap.Logger) *PaymentHistoryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHistoryUseCase{pix: pix, card: card, boleto: boleto, logger: logger}
}

// ListAll merges all kinds, newest first.
func (u *PaymentHistoryUseCase) ListAll(ctx context.Context) ([]entities.PaymentAttempt, error) {
	var out []entities.PaymentAttempt

	pix, err := u.pix.ListAll(ctx)
	if err != nil {
		u.logger.Error("[history][usecase] pix list failed", zap.Error(err))
		return nil, storeError(err)
	}
	for _, p := range pix {
		out = append(out, p)
	}

	card, err := u.card.ListAll(ctx)
	if err != nil {
		u.logger.Error("[history][usecase] card list failed", zap.Error(err))
		return nil, storeError(err)
	}
	for _, p := range card {
		out = append(out, p)
	}

	boletos, err := u.boleto.ListAll(ctx)
	if err != nil {
		u.logger.Error("[history][usecase] boleto list failed", zap.Error(err))
		return nil, storeError(err)
	}
	for _, p := range boletos {
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AttemptCreatedAt().After(out[j].AttemptCreatedAt())
	})
	return out, nil
}
