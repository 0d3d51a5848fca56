package interfaces

import (
	"context"
	"time"
)

// IClock is the time source of the simulators. Sleep must return ctx.Err()
// when the context ends first.
type IClock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}
