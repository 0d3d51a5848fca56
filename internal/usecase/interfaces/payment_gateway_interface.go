package interfaces

import (
	"context"

	"clinica_odonto/internal/domain/entities"
)

// IPixGateway abstracts the PIX provider (simulated or Mercado Pago).
type IPixGateway interface {
	CreateCharge(ctx context.Context, req PixChargeRequest) (PixCharge, error)
	ChargeStatus(ctx context.Context, p entities.PixPayment) (entities.PixStatus, error)
}

// ICardGateway abstracts the card acquirer. The returned status is final for
// the attempt.
type ICardGateway interface {
	Charge(ctx context.Context, req CardChargeRequest) (CardCharge, error)
}

type PixChargeRequest struct {
	TxID        string
	Amount      float64
	Description string
	PayerEmail  string
}

type PixCharge struct {
	ProviderPaymentID string
	PixCode           string
	QRCodeBase64      string
}

// CardCredentials travel only from the request to the gateway and are never
// stored. Token is the provider card token required outside simulation.
type CardCredentials struct {
	Number string
	CVV    string
	Expiry string
	Token  string
}

type CardChargeRequest struct {
	Reference    string
	Amount       float64
	Installments int
	Brand        entities.CardBrandID
	Description  string
	Card         CardCredentials
	Payer        entities.Cardholder
}

type CardCharge struct {
	Status               entities.CardStatus
	StatusDetail         string
	TransactionReference string
}
