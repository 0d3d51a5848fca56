// Package config loads the service configuration: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"

	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreDynamoDB = "dynamodb"

	NotifierLog   = "log"
	NotifierKafka = "kafka"
)

var (
	ErrMissingAccessToken = errors.New("MERCADOPAGO_ACCESS_TOKEN is required in production")
	ErrMissingPixKey      = errors.New("PIX_KEY is required in production")
	ErrInvalidStore       = errors.New("STORE_BACKEND must be memory, redis or dynamodb")
	ErrInvalidNotifier    = errors.New("NOTIFIER must be log or kafka")
)

type MercadoPagoConfig struct {
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token"`
	Mock        bool   `yaml:"mock"`
}

type PayoutConfig struct {
	PixKey              string `yaml:"pix_key"`
	MerchantName        string `yaml:"merchant_name"`
	MerchantCity        string `yaml:"merchant_city"`
	BankCode            string `yaml:"bank_code"`
	BeneficiaryName     string `yaml:"beneficiary_name"`
	BeneficiaryDocument string `yaml:"beneficiary_document"`
}

type NotificationConfig struct {
	Sink        string `yaml:"sink"`
	Recipient   string `yaml:"recipient"`
	KafkaBroker string `yaml:"kafka_broker"`
	KafkaTopic  string `yaml:"kafka_topic"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DynamoDBConfig struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	PixTable     string `yaml:"pix_table"`
	CardTable    string `yaml:"card_table"`
	BoletoTable  string `yaml:"boleto_table"`
	AccessKeyID  string `yaml:"-"`
	SecretAccess string `yaml:"-"`
}

type TracingConfig struct {
	Enabled        bool   `yaml:"enabled"`
	JaegerEndpoint string `yaml:"jaeger_endpoint"`
}

type RateLimitConfig struct {
	StatusPollRPS   float64 `yaml:"status_poll_rps"`
	StatusPollBurst int     `yaml:"status_poll_burst"`
}

type Config struct {
	AppEnv       string             `yaml:"app_env"`
	Port         int                `yaml:"port"`
	ServiceName  string             `yaml:"service_name"`
	StoreBackend string             `yaml:"store_backend"`
	MercadoPago  MercadoPagoConfig  `yaml:"mercadopago"`
	Payout       PayoutConfig       `yaml:"payout"`
	Notification NotificationConfig `yaml:"notification"`
	Redis        RedisConfig        `yaml:"redis"`
	DynamoDB     DynamoDBConfig     `yaml:"dynamodb"`
	Tracing      TracingConfig      `yaml:"tracing"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

// Default returns the development configuration.
func Default() *Config {
	return &Config{
		AppEnv:       "development",
		Port:         8080,
		ServiceName:  "clinica-payments",
		StoreBackend: StoreMemory,
		MercadoPago: MercadoPagoConfig{
			BaseURL: "https://api.mercadopago.com",
		},
		Payout: PayoutConfig{
			PixKey:              "financeiro@clinicaodonto.com.br",
			MerchantName:        "Clinica Odonto",
			MerchantCity:        "Sao Paulo",
			BankCode:            "001",
			BeneficiaryName:     "Clinica Odonto Ltda",
			BeneficiaryDocument: "12345678000195",
		},
		Notification: NotificationConfig{
			Sink:        NotifierLog,
			Recipient:   "financeiro@clinicaodonto.com.br",
			KafkaBroker: "localhost:9092",
			KafkaTopic:  "payment_notifications",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		DynamoDB: DynamoDBConfig{
			Region:      "us-east-1",
			PixTable:    "pagamentos_pix",
			CardTable:   "pagamentos_cartao",
			BoletoTable: "pagamentos_boleto",
		},
		Tracing: TracingConfig{
			JaegerEndpoint: "http://localhost:14268/api/traces",
		},
		RateLimit: RateLimitConfig{
			StatusPollRPS:   1,
			StatusPollBurst: 5,
		},
	}
}

// Load builds the configuration. path may be empty, in which case no YAML
// file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %q: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getStringEnvOrDefault("APP_ENV", c.AppEnv)
	c.Port = getIntEnvOrDefault("PORT", c.Port)
	c.ServiceName = getStringEnvOrDefault("SERVICE_NAME", c.ServiceName)
	c.StoreBackend = strings.ToLower(getStringEnvOrDefault("STORE_BACKEND", c.StoreBackend))

	c.MercadoPago.BaseURL = strings.TrimSuffix(getStringEnvOrDefault("MERCADOPAGO_BASE_URL", c.MercadoPago.BaseURL), "/")
	c.MercadoPago.AccessToken = getStringEnvOrDefault("MERCADOPAGO_ACCESS_TOKEN", c.MercadoPago.AccessToken)
	if v, ok := mockFlagFromEnv(); ok {
		c.MercadoPago.Mock = v
	}

	c.Payout.PixKey = getStringEnvOrDefault("PIX_KEY", c.Payout.PixKey)
	c.Payout.MerchantName = getStringEnvOrDefault("PIX_MERCHANT_NAME", c.Payout.MerchantName)
	c.Payout.MerchantCity = getStringEnvOrDefault("PIX_MERCHANT_CITY", c.Payout.MerchantCity)
	c.Payout.BankCode = getStringEnvOrDefault("BOLETO_BANK_CODE", c.Payout.BankCode)
	c.Payout.BeneficiaryName = getStringEnvOrDefault("BOLETO_BENEFICIARY_NAME", c.Payout.BeneficiaryName)
	c.Payout.BeneficiaryDocument = getStringEnvOrDefault("BOLETO_BENEFICIARY_DOCUMENT", c.Payout.BeneficiaryDocument)

	c.Notification.Sink = strings.ToLower(getStringEnvOrDefault("NOTIFIER", c.Notification.Sink))
	c.Notification.Recipient = getStringEnvOrDefault("NOTIFICATION_RECIPIENT", c.Notification.Recipient)
	c.Notification.KafkaBroker = getStringEnvOrDefault("KAFKA_BROKER", c.Notification.KafkaBroker)
	c.Notification.KafkaTopic = getStringEnvOrDefault("KAFKA_NOTIFICATION_TOPIC", c.Notification.KafkaTopic)

	c.Redis.Addr = getStringEnvOrDefault("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getStringEnvOrDefault("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getIntEnvOrDefault("REDIS_DB", c.Redis.DB)

	c.DynamoDB.Region = getStringEnvOrDefault("AWS_REGION", c.DynamoDB.Region)
	c.DynamoDB.Endpoint = getStringEnvOrDefault("DYNAMODB_ENDPOINT", c.DynamoDB.Endpoint)
	c.DynamoDB.PixTable = getStringEnvOrDefault("PIX_PAYMENTS_TABLE", c.DynamoDB.PixTable)
	c.DynamoDB.CardTable = getStringEnvOrDefault("CARD_PAYMENTS_TABLE", c.DynamoDB.CardTable)
	c.DynamoDB.BoletoTable = getStringEnvOrDefault("BOLETO_PAYMENTS_TABLE", c.DynamoDB.BoletoTable)
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	c.DynamoDB.AccessKeyID = getStringEnvOrDefault("AWS_ACCESS_KEY_ID", "local")
	c.DynamoDB.SecretAccess = getStringEnvOrDefault("AWS_SECRET_ACCESS_KEY", "local")

	c.Tracing.Enabled = getBoolEnvOrDefault("TRACING_ENABLED", c.Tracing.Enabled)
	c.Tracing.JaegerEndpoint = getStringEnvOrDefault("JAEGER_ENDPOINT", c.Tracing.JaegerEndpoint)

	c.RateLimit.StatusPollRPS = getFloatEnvOrDefault("STATUS_POLL_RPS", c.RateLimit.StatusPollRPS)
	c.RateLimit.StatusPollBurst = getIntEnvOrDefault("STATUS_POLL_BURST", c.RateLimit.StatusPollBurst)
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreRedis, StoreDynamoDB:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStore, c.StoreBackend)
	}
	switch c.Notification.Sink {
	case NotifierLog, NotifierKafka:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNotifier, c.Notification.Sink)
	}
	if c.Port <= 0 {
		c.Port = 8080
	}
	if c.RateLimit.StatusPollRPS <= 0 {
		c.RateLimit.StatusPollRPS = 1
	}
	if c.RateLimit.StatusPollBurst <= 0 {
		c.RateLimit.StatusPollBurst = 1
	}

	if !c.Simulated() {
		if c.MercadoPago.AccessToken == "" {
			return ErrMissingAccessToken
		}
		if c.Payout.PixKey == "" {
			return ErrMissingPixKey
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// Simulated reports whether the simulated gateways serve payments. Only a
// production deployment with the mock flag off talks to Mercado Pago.
func (c *Config) Simulated() bool {
	return !c.IsProduction() || c.MercadoPago.Mock
}

// mockFlagFromEnv reads PAYMENT_GATEWAY_MOCK, then MERCADOPAGO_MOCK.
func mockFlagFromEnv() (bool, bool) {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v, exists := os.LookupEnv(key)
		if !exists || strings.TrimSpace(v) == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true, true
		}
		return false, true
	}
	return false, false
}

func getStringEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultValue
}

func getFloatEnvOrDefault(key string, defaultValue float64) float64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultValue
}
