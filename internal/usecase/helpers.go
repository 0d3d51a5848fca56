package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPaymentStoreUnavailable = errors.New("payment store unavailable")
	ErrInvalidPlanReference    = errors.New("invalid plan reference")
)

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrPaymentStoreUnavailable, err)
}

func isContextError(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && roundCents(v) > 0
}

// formatBRL renders 1234.5 as "R$ 1234,50".
func formatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// randomSuffix returns n lowercase alphanumerics taken from a random UUID.
func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// millisSequence hands out strictly increasing unix-millis values so ids
// built from a timestamp stay unique within the process.
type millisSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *millisSequence) next(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return ms
}
