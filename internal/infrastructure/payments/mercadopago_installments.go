package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MercadoPagoInstallmentRates reads the payer-cost ladder from
// GET /v1/payment_methods/installments.
type MercadoPagoInstallmentRates struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *zap.Logger
}

var _ interfaces.IInstallmentRateSource = (*MercadoPagoInstallmentRates)(nil)

func NewMercadoPagoInstallmentRates(baseURL, accessToken string, logger *zap.Logger) *MercadoPagoInstallmentRates {
	if baseURL == "" {
		baseURL = "https://api.mercadopago.com"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MercadoPagoInstallmentRates{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

type mpInstallmentsResponse []struct {
	PaymentMethodID string `json:"payment_method_id"`
	PayerCosts      []struct {
		Installments    int     `json:"installments"`
		InstallmentRate float64 `json:"installment_rate"`
	} `json:"payer_costs"`
}

func (s *MercadoPagoInstallmentRates) Rates(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentRate, error) {
	if brand == "" {
		brand = entities.CardBrandVisa
	}
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(amount, 'f', 2, 64))
	q.Set("payment_method_id", mpPaymentMethodID(brand))
	endpoint := s.baseURL + "/v1/payment_methods/installments?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: installments request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: read installments: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("[installments][gateway] unexpected status",
			zap.Int("status", resp.StatusCode),
			zap.String("brand", string(brand)),
		)
		return nil, fmt.Errorf("mercadopago: installments status %d", resp.StatusCode)
	}

	var parsed mpInstallmentsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("mercadopago: decode installments: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("mercadopago: no installment plan for %s", brand)
	}

	rates := make([]entities.InstallmentRate, 0, len(parsed[0].PayerCosts))
	for _, pc := range parsed[0].PayerCosts {
		rates = append(rates, entities.InstallmentRate{
			Count:          pc.Installments,
			FeeRatePercent: pc.InstallmentRate,
		})
	}
	return rates, nil
}
