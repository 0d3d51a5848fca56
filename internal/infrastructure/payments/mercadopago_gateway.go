package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"clinica_odonto/internal/domain/cards"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrCardTokenRequired               = errors.New("card token is required by mercado pago")
	ErrInvalidProviderPaymentID        = errors.New("invalid mercado pago payment id")
)

// paymentAPI is the part of payment.Client the gateway calls.
type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway charges PIX and cards through POST /v1/payments and
// polls PIX charges through GET /v1/payments/{id}.
type MercadoPagoGateway struct {
	client paymentAPI
	clock  interfaces.IClock
	logger *zap.Logger
}

var (
	_ interfaces.IPixGateway  = (*MercadoPagoGateway)(nil)
	_ interfaces.ICardGateway = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(accessToken string, clock interfaces.IClock, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if accessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(cfg), clock, logger), nil
}

func newMercadoPagoGateway(client paymentAPI, clock interfaces.IClock, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, clock: clock, logger: logger}
}

// mpPaymentView holds the response fields the gateway reads back.
type mpPaymentView struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	StatusDetail       string `json:"status_detail"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.PixCharge, error) {
	if g == nil || g.client == nil {
		return interfaces.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	email := req.PayerEmail
	if email == "" {
		email = "pagador@clinicaodonto.com.br"
	}

	view, err := g.create(ctx, map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"payment_method_id":  "pix",
		"external_reference": req.TxID,
		"date_of_expiration": g.clock.Now().Add(entities.PixExpiration),
		"payer": map[string]any{
			"email": email,
		},
	})
	if err != nil {
		return interfaces.PixCharge{}, err
	}

	return interfaces.PixCharge{
		ProviderPaymentID: strconv.FormatInt(view.ID, 10),
		PixCode:           view.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      view.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

func (g *MercadoPagoGateway) ChargeStatus(ctx context.Context, p entities.PixPayment) (entities.PixStatus, error) {
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(p.ProviderPaymentID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, p.ProviderPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return "", err
	}
	view, err := decodeView(resp)
	if err != nil {
		return "", err
	}
	return mapPixStatus(view.Status), nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.CardChargeRequest) (interfaces.CardCharge, error) {
	if g == nil || g.client == nil {
		return interfaces.CardCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	if req.Card.Token == "" {
		return interfaces.CardCharge{}, ErrCardTokenRequired
	}

	view, err := g.create(ctx, map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"payment_method_id":  mpPaymentMethodID(req.Brand),
		"external_reference": req.Reference,
		"installments":       req.Installments,
		"token":              req.Card.Token,
		"payer": map[string]any{
			"email":      req.Payer.Email,
			"first_name": req.Payer.Name,
			"identification": map[string]any{
				"type":   documentType(req.Payer.Document),
				"number": cards.CleanDigits(req.Payer.Document),
			},
		},
	})
	if err != nil {
		return interfaces.CardCharge{}, err
	}

	return interfaces.CardCharge{
		Status:               mapCardStatus(view.Status),
		StatusDetail:         view.StatusDetail,
		TransactionReference: strconv.FormatInt(view.ID, 10),
	}, nil
}

func (g *MercadoPagoGateway) create(ctx context.Context, body map[string]any) (mpPaymentView, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return mpPaymentView{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		g.logger.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return mpPaymentView{}, err
	}

	g.logger.Info("[payment][gateway] create start",
		zap.Any("payment_method_id", body["payment_method_id"]),
		zap.Any("external_reference", body["external_reference"]),
	)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk create failed", zap.Error(err))
		return mpPaymentView{}, err
	}
	view, err := decodeView(resp)
	if err != nil {
		return mpPaymentView{}, err
	}
	g.logger.Info("[payment][gateway] create success",
		zap.Int64("provider_payment_id", view.ID),
		zap.String("provider_status", view.Status),
	)
	return view, nil
}

func decodeView(resp *payment.Response) (mpPaymentView, error) {
	if resp == nil {
		return mpPaymentView{}, errors.New("mercadopago: empty payment response")
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return mpPaymentView{}, fmt.Errorf("mercadopago: marshal response: %w", err)
	}
	var view mpPaymentView
	if err := json.Unmarshal(b, &view); err != nil {
		return mpPaymentView{}, fmt.Errorf("mercadopago: decode response: %w", err)
	}
	return view, nil
}

func mapPixStatus(status string) entities.PixStatus {
	switch strings.ToLower(status) {
	case "approved":
		return entities.PixStatusAprovado
	case "rejected", "refunded", "charged_back":
		return entities.PixStatusRejeitado
	case "cancelled", "expired":
		return entities.PixStatusExpirado
	default:
		return entities.PixStatusPendente
	}
}

func mapCardStatus(status string) entities.CardStatus {
	switch strings.ToLower(status) {
	case "approved":
		return entities.CardStatusApproved
	case "rejected":
		return entities.CardStatusRejected
	case "cancelled", "refunded", "charged_back":
		return entities.CardStatusCancelled
	case "in_process", "pending", "authorized", "in_mediation":
		return entities.CardStatusInProcess
	default:
		return entities.CardStatusPending
	}
}

func mpPaymentMethodID(brand entities.CardBrandID) string {
	switch brand {
	case entities.CardBrandMastercard:
		return "master"
	case entities.CardBrandHipercard:
		return "hipercard"
	default:
		return string(brand)
	}
}

func documentType(doc string) string {
	if len(cards.CleanDigits(doc)) == 14 {
		return "CNPJ"
	}
	return "CPF"
}
