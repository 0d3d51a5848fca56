package interfaces

import (
	"context"

	"clinica_odonto/internal/domain/entities"
)

// INotifier delivers payment notifications. How they are rendered is up to
// the implementation; logging is an acceptable default.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
