package notification

import (
	"context"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// LogNotifier writes notifications to the service log.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	fields := []zap.Field{
		zap.String("trace_id", traceID(ctx)),
		zap.String("recipient", msg.Recipient),
		zap.String("kind", string(msg.Kind)),
		zap.String("payment_id", msg.PaymentID),
		zap.String("message", msg.Message),
	}
	switch msg.Kind {
	case entities.NotificationError:
		n.logger.Error("[notification] sent", fields...)
	case entities.NotificationWarning:
		n.logger.Warn("[notification] sent", fields...)
	default:
		n.logger.Info("[notification] sent", fields...)
	}
	return nil
}

func traceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
