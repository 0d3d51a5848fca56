package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPixAmount     = errors.New("invalid pix amount")
	ErrInvalidPixPaymentID  = errors.New("invalid pix payment id")
	ErrPixPaymentNotFound   = errors.New("pix payment not found")
	ErrPixGenerationFailed  = errors.New("pix code generation failed")
	ErrPixStatusCheckFailed = errors.New("pix status check failed")
	ErrPixPaymentNotExpired = errors.New("pix payment not expired yet")
)

const pixIDSuffixLength = 9

// IPixPaymentUseCase drives the PIX charge lifecycle:
//
//	pendente -> aprovado | rejeitado | expirado
//
// erro is only produced when a charge cannot be generated.
type IPixPaymentUseCase interface {
	GenerateCode(ctx context.Context, cmd GeneratePixCommand) (entities.PixPayment, error)
	CheckStatus(ctx context.Context, id string) (entities.PixStatus, error)
	ListPayments(ctx context.Context) ([]entities.PixPayment, error)
	GetByID(ctx context.Context, id string) (entities.PixPayment, error)
	Expire(ctx context.Context, id string) (entities.PixPayment, error)
}

type GeneratePixCommand struct {
	PlanReference string
	Amount        float64
	Description   string
}

// PixSettings carries the payout descriptors of the receiving account.
type PixSettings struct {
	PayoutKey             string
	NotificationRecipient string
	// OnTransition, when set, runs once per charge leaving pendente.
	OnTransition          func(entities.PixStatus)
}

type PixPaymentUseCase struct {
	repo     interfaces.IPixPaymentRepository
	gateway  interfaces.IPixGateway
	notifier interfaces.INotifier
	clock    interfaces.IClock
	logger   *zap.Logger
	settings PixSettings
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(
	repo interfaces.IPixPaymentRepository,
	gateway interfaces.IPixGateway,
	notifier interfaces.INotifier,
	clock interfaces.IClock,
	logger *zap.Logger,
	settings PixSettings,
) *PixPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PixPaymentUseCase{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		settings: settings,
	}
}

func (u *PixPaymentUseCase) GenerateCode(ctx context.Context, cmd GeneratePixCommand) (entities.PixPayment, error) {
	plan := strings.TrimSpace(cmd.PlanReference)
	if plan == "" {
		return entities.PixPayment{}, ErrInvalidPlanReference
	}
	if !validAmount(cmd.Amount) {
		return entities.PixPayment{}, ErrInvalidPixAmount
	}
	amount := roundCents(cmd.Amount)
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf("Plano %s", plan)
	}

	id := fmt.Sprintf("PIX_%d_%s", u.clock.Now().UnixMilli(), randomSuffix(pixIDSuffixLength))
	log := u.logger.With(zap.String("payment_id", id), zap.String("plan", plan))
	log.Info("[pix][usecase] generate start", zap.Float64("amount", amount))

	charge, err := u.gateway.CreateCharge(ctx, interfaces.PixChargeRequest{
		TxID:        id,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		if isContextError(ctx, err) {
			log.Info("[pix][usecase] generate abandoned", zap.Error(err))
			if ctxErr := ctx.Err(); ctxErr != nil {
				return entities.PixPayment{}, ctxErr
			}
			return entities.PixPayment{}, err
		}
		log.Error("[pix][usecase] gateway create failed", zap.Error(err))
		u.saveFailedAttempt(ctx, id, plan, amount, description)
		return entities.PixPayment{}, ErrPixGenerationFailed
	}

	now := u.clock.Now()
	p := entities.PixPayment{
		ID:                id,
		Amount:            amount,
		Description:       description,
		Status:            entities.PixStatusPendente,
		PlanReference:     plan,
		PayoutKey:         u.settings.PayoutKey,
		PixCode:           charge.PixCode,
		QRCodeBase64:      charge.QRCodeBase64,
		ProviderPaymentID: charge.ProviderPaymentID,
		CreatedAt:         now,
		ExpiresAt:         now.Add(entities.PixExpiration),
	}
	if err := u.repo.Save(ctx, p); err != nil {
		log.Error("[pix][usecase] repository save failed", zap.Error(err))
		return entities.PixPayment{}, storeError(err)
	}
	log.Info("[pix][usecase] generate success", zap.String("provider_payment_id", p.ProviderPaymentID), zap.Time("expires_at", p.ExpiresAt))
	return p, nil
}

// saveFailedAttempt keeps a trace of a charge the provider refused to create.
func (u *PixPaymentUseCase) saveFailedAttempt(ctx context.Context, id, plan string, amount float64, description string) {
	now := u.clock.Now()
	p := entities.PixPayment{
		ID:            id,
		Amount:        amount,
		Description:   description,
		Status:        entities.PixStatusErro,
		PlanReference: plan,
		PayoutKey:     u.settings.PayoutKey,
		CreatedAt:     now,
		ExpiresAt:     now.Add(entities.PixExpiration),
	}
	if err := u.repo.Save(ctx, p); err != nil {
		u.logger.Warn("[pix][usecase] failed attempt not recorded", zap.String("payment_id", id), zap.Error(err))
	}
}

// CheckStatus is safe to call concurrently and repeatedly for the same id.
// An unknown id is reported as erro, not as an error value.
func (u *PixPaymentUseCase) CheckStatus(ctx context.Context, id string) (entities.PixStatus, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PixStatusErro, nil
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("[pix][usecase] repository get failed", zap.String("payment_id", id), zap.Error(err))
		return "", storeError(err)
	}
	if p.ID == "" {
		u.logger.Info("[pix][usecase] status check on unknown payment", zap.String("payment_id", id))
		return entities.PixStatusErro, nil
	}
	if p.Status != entities.PixStatusPendente {
		return p.Status, nil
	}

	next, err := u.gateway.ChargeStatus(ctx, p)
	if err != nil {
		if isContextError(ctx, err) {
			return "", err
		}
		u.logger.Error("[pix][usecase] gateway status failed", zap.String("payment_id", id), zap.Error(err))
		return "", ErrPixStatusCheckFailed
	}
	if !isPixTransition(next) {
		return entities.PixStatusPendente, nil
	}

	now := u.clock.Now()
	updated, changed, err := u.repo.Update(ctx, id, func(cur entities.PixPayment) (entities.PixPayment, bool) {
		if cur.Status != entities.PixStatusPendente {
			return cur, false
		}
		cur.Status = next
		if next == entities.PixStatusAprovado && cur.ApprovedAt == nil {
			approvedAt := now
			cur.ApprovedAt = &approvedAt
		}
		return cur, true
	})
	if err != nil {
		u.logger.Error("[pix][usecase] repository update failed", zap.String("payment_id", id), zap.Error(err))
		return "", storeError(err)
	}
	if updated.ID == "" {
		return entities.PixStatusErro, nil
	}

	if changed {
		u.logger.Info("[pix][usecase] status changed", zap.String("payment_id", id), zap.String("status", string(updated.Status)))
		u.transitioned(updated.Status)
		if updated.Status == entities.PixStatusAprovado {
			u.notify(ctx, updated, entities.NotificationSuccess,
				fmt.Sprintf("Pagamento PIX de %s aprovado para o plano %s (transação %s)", formatBRL(updated.Amount), updated.PlanReference, updated.ID))
		}
	}
	return updated.Status, nil
}

// Expire moves a pending charge to expirado once its window is over.
func (u *PixPaymentUseCase) Expire(ctx context.Context, id string) (entities.PixPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PixPayment{}, ErrInvalidPixPaymentID
	}

	now := u.clock.Now()
	notYet := false
	updated, changed, err := u.repo.Update(ctx, id, func(cur entities.PixPayment) (entities.PixPayment, bool) {
		notYet = false
		if cur.Status != entities.PixStatusPendente {
			return cur, false
		}
		if now.Before(cur.ExpiresAt) {
			notYet = true
			return cur, false
		}
		cur.Status = entities.PixStatusExpirado
		return cur, true
	})
	if err != nil {
		u.logger.Error("[pix][usecase] repository update failed", zap.String("payment_id", id), zap.Error(err))
		return entities.PixPayment{}, storeError(err)
	}
	if updated.ID == "" {
		return entities.PixPayment{}, ErrPixPaymentNotFound
	}
	if notYet {
		return updated, ErrPixPaymentNotExpired
	}
	if changed {
		u.logger.Info("[pix][usecase] payment expired", zap.String("payment_id", id))
		u.transitioned(updated.Status)
		u.notify(ctx, updated, entities.NotificationWarning,
			fmt.Sprintf("Código PIX da transação %s expirou sem pagamento", updated.ID))
	}
	return updated, nil
}

func (u *PixPaymentUseCase) ListPayments(ctx context.Context) ([]entities.PixPayment, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		u.logger.Error("[pix][usecase] repository list failed", zap.Error(err))
		return nil, storeError(err)
	}
	return items, nil
}

func (u *PixPaymentUseCase) GetByID(ctx context.Context, id string) (entities.PixPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PixPayment{}, ErrInvalidPixPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PixPayment{}, storeError(err)
	}
	if p.ID == "" {
		return entities.PixPayment{}, ErrPixPaymentNotFound
	}
	return p, nil
}

func (u *PixPaymentUseCase) notify(ctx context.Context, p entities.PixPayment, kind entities.NotificationKind, message string) {
	if u.notifier == nil {
		return
	}
	n := entities.Notification{
		Recipient: u.settings.NotificationRecipient,
		Message:   message,
		Kind:      kind,
		PaymentID: p.ID,
		CreatedAt: u.clock.Now(),
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("[pix][usecase] notification failed", zap.String("payment_id", p.ID), zap.Error(err))
	}
}

func (u *PixPaymentUseCase) transitioned(s entities.PixStatus) {
	if u.settings.OnTransition != nil {
		u.settings.OnTransition(s)
	}
}

func isPixTransition(s entities.PixStatus) bool {
	switch s {
	case entities.PixStatusAprovado, entities.PixStatusRejeitado, entities.PixStatusExpirado:
		return true
	}
	return false
}
