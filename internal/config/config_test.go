package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "STORE_BACKEND", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
		"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_BASE_URL", "PIX_KEY", "NOTIFIER",
		"REDIS_DB", "TRACING_ENABLED", "STATUS_POLL_RPS", "STATUS_POLL_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.StoreBackend != StoreMemory || cfg.Notification.Sink != NotifierLog {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Simulated() {
		t.Fatalf("development must be simulated")
	}
	if cfg.DynamoDB.PixTable != "pagamentos_pix" || cfg.DynamoDB.CardTable != "pagamentos_cartao" {
		t.Fatalf("unexpected table names: %+v", cfg.DynamoDB)
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := `
port: 9090
store_backend: redis
payout:
  pix_key: yaml@clinic.com
  merchant_city: Curitiba
redis:
  addr: redis:6379
  db: 2
rate_limit:
  status_poll_rps: 2.5
`
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("PIX_KEY", "env@clinic.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("env must override yaml port, got %d", cfg.Port)
	}
	if cfg.StoreBackend != StoreRedis || cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config: %+v %+v", cfg.StoreBackend, cfg.Redis)
	}
	if cfg.Payout.PixKey != "env@clinic.com" || cfg.Payout.MerchantCity != "Curitiba" {
		t.Fatalf("unexpected payout: %+v", cfg.Payout)
	}
	if cfg.Payout.MerchantName != "Clinica Odonto" {
		t.Fatalf("defaults must survive partial yaml, got %q", cfg.Payout.MerchantName)
	}
	if cfg.RateLimit.StatusPollRPS != 2.5 || cfg.RateLimit.StatusPollBurst != 5 {
		t.Fatalf("unexpected rate limit: %+v", cfg.RateLimit)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "postgres")
		if _, err := Load(""); !errors.Is(err, ErrInvalidStore) {
			t.Fatalf("expected ErrInvalidStore, got %v", err)
		}
	})

	t.Run("invalid notifier", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NOTIFIER", "sms")
		if _, err := Load(""); !errors.Is(err, ErrInvalidNotifier) {
			t.Fatalf("expected ErrInvalidNotifier, got %v", err)
		}
	})

	t.Run("production requires token", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		if _, err := Load(""); !errors.Is(err, ErrMissingAccessToken) {
			t.Fatalf("expected ErrMissingAccessToken, got %v", err)
		}
	})
}

func TestSimulated(t *testing.T) {
	t.Run("production with token uses gateway", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP_USR-123")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Simulated() {
			t.Fatalf("expected real gateway")
		}
	})

	for _, v := range []string{"1", "true", "YES", "on", "mock"} {
		t.Run("mock flag "+v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", "production")
			t.Setenv("MERCADOPAGO_MOCK", v)
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !cfg.Simulated() {
				t.Fatalf("expected simulation with mock flag %q", v)
			}
		})
	}

	t.Run("explicit off beats yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "c.yaml")
		_ = os.WriteFile(path, []byte("app_env: production\nmercadopago:\n  mock: true\n  access_token: tok\n"), 0o600)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "false")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Simulated() {
			t.Fatalf("expected env to disable mock")
		}
	})
}
