package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "clinica_odonto/docs" // This will be auto-generated
	"clinica_odonto/internal/adapter/http/handlers"
	"clinica_odonto/internal/adapter/http/middleware"
	"clinica_odonto/internal/config"
	"clinica_odonto/internal/infrastructure/clock"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRouter mounts every endpoint under /v1 plus /metrics and /swagger.
func NewRouter(cfg *config.Config, deps *Dependencies, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/metrics", middleware.PrometheusHandler())
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	statusLimit := middleware.NewIPRateLimiter(cfg.RateLimit.StatusPollRPS, cfg.RateLimit.StatusPollBurst, logger).Middleware()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPixRoutes(v1, handlers.NewPixPaymentHandler(deps.Pix, logger), statusLimit)
	addCardRoutes(v1, handlers.NewCardPaymentHandler(deps.Card, logger))
	addBoletoRoutes(v1, handlers.NewBoletoPaymentHandler(deps.Boleto, logger), statusLimit)
	addPaymentRoutes(v1, handlers.NewPaymentHistoryHandler(deps.History))
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[routes] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// Run will start the server and block until ctx is cancelled, then drain
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	deps, err := BuildDependencies(ctx, cfg, clock.System{}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("[routes] closing dependencies", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(cfg, deps, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[routes] listening", zap.Int("port", cfg.Port), zap.Bool("simulated", cfg.Simulated()), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
