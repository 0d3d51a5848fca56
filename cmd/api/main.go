package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "clinica_odonto/docs"
	"clinica_odonto/internal/adapter/http/routes"
	"clinica_odonto/internal/config"
	"clinica_odonto/internal/infrastructure/logger"
	"clinica_odonto/internal/infrastructure/tracing"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Clinica Odonto Payments API
// @version         1.0
// @description     Payment collection for clinic subscription plans: PIX, credit card and boleto.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitTracing(cfg.ServiceName, cfg.Tracing, zl)
	if err != nil {
		zl.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zl.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	if err := routes.Run(ctx, cfg, zl); err != nil {
		zl.Error("Failed to startup the application", zap.Error(err))
		os.Exit(1)
	}
}
