package payments

import (
	"context"
	"errors"
	"sync"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker stops calling a failing provider for resetTimeout after
// maxFailures consecutive failures. Context cancellations and rejected
// requests are not failures.
type CircuitBreaker struct {
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           State
	now             func() time.Time
	mu              sync.Mutex
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        StateClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := cb.allow(); err != nil {
		return err
	}

	err := fn()
	if err == nil {
		cb.onSuccess()
		return nil
	}
	if ctx.Err() == nil && isProviderFailure(err) {
		cb.onFailure()
	}
	return err
}

// isProviderFailure is false for errors raised before reaching the provider
// because the request itself was unusable.
func isProviderFailure(err error) bool {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, ErrCardTokenRequired),
		errors.Is(err, ErrInvalidProviderPaymentID):
		return false
	}
	return true
}

func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.lastFailureTime) <= cb.resetTimeout {
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.failureCount = 0
	}
	return nil
}

func (cb *CircuitBreaker) onFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	cb.lastFailureTime = cb.now()
	if cb.failureCount >= cb.maxFailures || cb.state == StateHalfOpen {
		cb.state = StateOpen
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.state = StateClosed
	cb.failureCount = 0
}

func (cb *CircuitBreaker) GetState() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// BreakerPixGateway guards a PIX gateway with a circuit breaker.
type BreakerPixGateway struct {
	next interfaces.IPixGateway
	cb   *CircuitBreaker
}

var _ interfaces.IPixGateway = (*BreakerPixGateway)(nil)

func NewBreakerPixGateway(next interfaces.IPixGateway, cb *CircuitBreaker) *BreakerPixGateway {
	return &BreakerPixGateway{next: next, cb: cb}
}

func (g *BreakerPixGateway) CreateCharge(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.PixCharge, error) {
	var out interfaces.PixCharge
	err := g.cb.Execute(ctx, func() error {
		var err error
		out, err = g.next.CreateCharge(ctx, req)
		return err
	})
	return out, err
}

func (g *BreakerPixGateway) ChargeStatus(ctx context.Context, p entities.PixPayment) (entities.PixStatus, error) {
	var out entities.PixStatus
	err := g.cb.Execute(ctx, func() error {
		var err error
		out, err = g.next.ChargeStatus(ctx, p)
		return err
	})
	return out, err
}

// BreakerCardGateway guards a card gateway with a circuit breaker.
type BreakerCardGateway struct {
	next interfaces.ICardGateway
	cb   *CircuitBreaker
}

var _ interfaces.ICardGateway = (*BreakerCardGateway)(nil)

func NewBreakerCardGateway(next interfaces.ICardGateway, cb *CircuitBreaker) *BreakerCardGateway {
	return &BreakerCardGateway{next: next, cb: cb}
}

func (g *BreakerCardGateway) Charge(ctx context.Context, req interfaces.CardChargeRequest) (interfaces.CardCharge, error) {
	var out interfaces.CardCharge
	err := g.cb.Execute(ctx, func() error {
		var err error
		out, err = g.next.Charge(ctx, req)
		return err
	})
	return out, err
}
