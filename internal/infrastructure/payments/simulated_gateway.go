package payments

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/domain/pixcode"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	SimulatedPixDelay  = 1500 * time.Millisecond
	SimulatedCardDelay = 2 * time.Second

	// Test CVVs that force an outcome on the simulated acquirer.
	CVVForceRejected  = "999"
	CVVForceInProcess = "888"
)

type PixPayoutSettings struct {
	Key          string
	MerchantName string
	MerchantCity string
}

// SimulatedPixGateway builds a real BR Code for the payout account and
// reports the charge as paid once PixSimulatedApprovalAfter has elapsed.
type SimulatedPixGateway struct {
	clock    interfaces.IClock
	settings PixPayoutSettings
	logger   *zap.Logger
}

var _ interfaces.IPixGateway = (*SimulatedPixGateway)(nil)

func NewSimulatedPixGateway(clock interfaces.IClock, settings PixPayoutSettings, logger *zap.Logger) *SimulatedPixGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[payment][gateway] simulated pix gateway enabled")
	return &SimulatedPixGateway{clock: clock, settings: settings, logger: logger}
}

func (g *SimulatedPixGateway) CreateCharge(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.PixCharge, error) {
	if err := g.clock.Sleep(ctx, SimulatedPixDelay); err != nil {
		return interfaces.PixCharge{}, err
	}

	code, err := pixcode.Build(pixcode.Payload{
		Key:          g.settings.Key,
		Description:  req.Description,
		MerchantName: g.settings.MerchantName,
		MerchantCity: g.settings.MerchantCity,
		Amount:       req.Amount,
		TxID:         req.TxID,
	})
	if err != nil {
		return interfaces.PixCharge{}, fmt.Errorf("simulated pix: build brcode: %w", err)
	}

	g.logger.Debug("[payment][gateway] simulated pix charge created", zap.String("txid", req.TxID))
	return interfaces.PixCharge{
		ProviderPaymentID: "sim_" + strings.ToLower(req.TxID),
		PixCode:           code,
		QRCodeBase64:      base64.StdEncoding.EncodeToString([]byte(code)),
	}, nil
}

func (g *SimulatedPixGateway) ChargeStatus(ctx context.Context, p entities.PixPayment) (entities.PixStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.clock.Now().Sub(p.CreatedAt) >= entities.PixSimulatedApprovalAfter {
		return entities.PixStatusAprovado, nil
	}
	return entities.PixStatusPendente, nil
}

// SimulatedCardGateway resolves the outcome from the submitted CVV.
type SimulatedCardGateway struct {
	clock  interfaces.IClock
	logger *zap.Logger
}

var _ interfaces.ICardGateway = (*SimulatedCardGateway)(nil)

func NewSimulatedCardGateway(clock interfaces.IClock, logger *zap.Logger) *SimulatedCardGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[payment][gateway] simulated card gateway enabled")
	return &SimulatedCardGateway{clock: clock, logger: logger}
}

func (g *SimulatedCardGateway) Charge(ctx context.Context, req interfaces.CardChargeRequest) (interfaces.CardCharge, error) {
	if err := g.clock.Sleep(ctx, SimulatedCardDelay); err != nil {
		return interfaces.CardCharge{}, err
	}

	charge := interfaces.CardCharge{
		Status:       entities.CardStatusApproved,
		StatusDetail: "accredited",
	}
	switch strings.TrimSpace(req.Card.CVV) {
	case CVVForceRejected:
		charge.Status = entities.CardStatusRejected
		charge.StatusDetail = "cc_rejected_other_reason"
	case CVVForceInProcess:
		charge.Status = entities.CardStatusInProcess
		charge.StatusDetail = "pending_review_manual"
	}
	g.logger.Debug("[payment][gateway] simulated card charge",
		zap.String("reference", req.Reference),
		zap.String("status", string(charge.Status)),
	)
	return charge, nil
}
