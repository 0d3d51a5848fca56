package routes

import (
	"context"
	"fmt"
	"time"

	"clinica_odonto/internal/adapter/http/middleware"
	"clinica_odonto/internal/adapter/persistence/repository"
	"clinica_odonto/internal/config"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/infrastructure/database"
	"clinica_odonto/internal/infrastructure/notification"
	"clinica_odonto/internal/infrastructure/payments"
	"clinica_odonto/internal/usecase"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	breakerMaxFailures  = 5
	breakerResetTimeout = 30 * time.Second
)

// Dependencies are the use cases served by the HTTP adapter plus the
// resources to release on shutdown.
type Dependencies struct {
	Pix     usecase.IPixPaymentUseCase
	Card    usecase.ICardPaymentUseCase
	Boleto  usecase.IBoletoPaymentUseCase
	History usecase.IPaymentHistoryUseCase

	closers []func() error
}

// Close releases store and broker connections in reverse order.
func (d *Dependencies) Close() error {
	var firstErr error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type stores struct {
	pix    interfaces.IPixPaymentRepository
	card   interfaces.ICardPaymentRepository
	boleto interfaces.IBoletoPaymentRepository
}

// BuildDependencies wires stores, gateways and notifier according to cfg.
func BuildDependencies(ctx context.Context, cfg *config.Config, clk interfaces.IClock, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	st, err := buildStores(ctx, cfg, logger, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	notifier, err := buildNotifier(cfg, logger, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	pixGateway, cardGateway, rates, err := buildGateways(cfg, clk, logger)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	pricer := usecase.NewInstallmentPricer(rates, logger)
	deps.Pix = usecase.NewPixPaymentUseCase(st.pix, pixGateway, notifier, clk, logger, usecase.PixSettings{
		PayoutKey:             cfg.Payout.PixKey,
		NotificationRecipient: cfg.Notification.Recipient,
		OnTransition:          func(s entities.PixStatus) {
			middleware.RecordPaymentProcessed(string(entities.PaymentKindPix), string(s))
		},
	})
	deps.Card = usecase.NewCardPaymentUseCase(st.card, cardGateway, pricer, notifier, clk, logger, usecase.CardPaymentSettings{
		NotificationRecipient: cfg.Notification.Recipient,
		RequireCardToken:      !cfg.Simulated(),
	})
	deps.Boleto = usecase.NewBoletoPaymentUseCase(st.boleto, notifier, clk, logger, usecase.BoletoSettings{
		BankCode:              cfg.Payout.BankCode,
		BeneficiaryName:       cfg.Payout.BeneficiaryName,
		BeneficiaryDocument:   cfg.Payout.BeneficiaryDocument,
		NotificationRecipient: cfg.Notification.Recipient,
	})
	deps.History = usecase.NewPaymentHistoryUseCase(st.pix, st.card, st.boleto, logger)
	return deps, nil
}

func buildStores(ctx context.Context, cfg *config.Config, logger *zap.Logger, deps *Dependencies) (stores, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		rdb, err := database.InitRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return stores{}, fmt.Errorf("redis store: %w", err)
		}
		deps.closers = append(deps.closers, rdb.Close)
		return stores{
			pix:    repository.NewRedisRecordRepository[entities.PixPayment](rdb),
			card:   repository.NewRedisRecordRepository[entities.CardPayment](rdb),
			boleto: repository.NewRedisRecordRepository[entities.BoletoPayment](rdb),
		}, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
		if err != nil {
			return stores{}, fmt.Errorf("dynamodb store: %w", err)
		}
		return stores{
			pix:    repository.NewPixPaymentDynamoRepository(ddb, cfg.DynamoDB.PixTable),
			card:   repository.NewCardPaymentDynamoRepository(ddb, cfg.DynamoDB.CardTable),
			boleto: repository.NewBoletoPaymentDynamoRepository(ddb, cfg.DynamoDB.BoletoTable),
		}, nil
	default:
		logger.Info("[routes] using in-memory payment store")
		return stores{
			pix:    repository.NewMemoryRecordRepository[entities.PixPayment](),
			card:   repository.NewMemoryRecordRepository[entities.CardPayment](),
			boleto: repository.NewMemoryRecordRepository[entities.BoletoPayment](),
		}, nil
	}
}

func buildNotifier(cfg *config.Config, logger *zap.Logger, deps *Dependencies) (interfaces.INotifier, error) {
	if cfg.Notification.Sink != config.NotifierKafka {
		return notification.NewLogNotifier(logger), nil
	}
	producer, err := notification.InitProducer(cfg.Notification, logger)
	if err != nil {
		return nil, fmt.Errorf("kafka notifier: %w", err)
	}
	deps.closers = append(deps.closers, producer.Close)
	return notification.NewKafkaNotifier(producer, cfg.Notification.KafkaTopic, logger), nil
}

// buildGateways picks the simulated rails unless running in production with
// the mock flag off. Real gateways sit behind a circuit breaker each.
func buildGateways(cfg *config.Config, clk interfaces.IClock, logger *zap.Logger) (interfaces.IPixGateway, interfaces.ICardGateway, interfaces.IInstallmentRateSource, error) {
	if cfg.Simulated() {
		logger.Info("[routes] payment gateways in simulation mode", zap.String("app_env", cfg.AppEnv))
		pix := payments.NewSimulatedPixGateway(clk, payments.PixPayoutSettings{
			Key:          cfg.Payout.PixKey,
			MerchantName: cfg.Payout.MerchantName,
			MerchantCity: cfg.Payout.MerchantCity,
		}, logger)
		return pix, payments.NewSimulatedCardGateway(clk, logger), payments.StaticInstallmentRates{}, nil
	}

	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, clk, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("mercado pago gateway: %w", err)
	}
	logger.Info("[routes] payment gateways backed by Mercado Pago")
	pix := payments.NewBreakerPixGateway(mp, payments.NewCircuitBreaker(breakerMaxFailures, breakerResetTimeout))
	card := payments.NewBreakerCardGateway(mp, payments.NewCircuitBreaker(breakerMaxFailures, breakerResetTimeout))
	rates := payments.NewMercadoPagoInstallmentRates(cfg.MercadoPago.BaseURL, cfg.MercadoPago.AccessToken, logger)
	return pix, card, rates, nil
}
