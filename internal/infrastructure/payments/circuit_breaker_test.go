package payments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/infrastructure/clock"
	"clinica_odonto/internal/usecase/interfaces"
	mock_interfaces "clinica_odonto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var errProvider = errors.New("provider down")

func TestCircuitBreaker(t *testing.T) {
	now := testStart
	cb := NewCircuitBreaker(2, time.Minute)
	cb.now = func() time.Time { return now }
	fail := func() error { return errProvider }
	ok := func() error { return nil }
	ctx := context.Background()

	if err := cb.Execute(ctx, fail); !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("one failure must keep the breaker closed")
	}
	_ = cb.Execute(ctx, fail)
	if cb.GetState() != StateOpen {
		t.Fatalf("expected open after max failures")
	}

	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("open breaker must fail fast, err=%v called=%v", err, called)
	}

	now = now.Add(2 * time.Minute)
	if err := cb.Execute(ctx, fail); !errors.Is(err, errProvider) {
		t.Fatalf("half-open probe must reach the provider, got %v", err)
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("failed probe must reopen the breaker")
	}

	now = now.Add(2 * time.Minute)
	if err := cb.Execute(ctx, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("successful probe must close the breaker")
	}
}

func TestCircuitBreaker_IgnoresCancellation(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = cb.Execute(ctx, func() error { return context.Canceled })
	if cb.GetState() != StateClosed {
		t.Fatalf("cancellation must not trip the breaker")
	}
}

func TestBreakerCardGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICardGateway(ctrl)
	next.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.CardCharge{}, errProvider).Times(1)

	g := NewBreakerCardGateway(next, NewCircuitBreaker(1, time.Minute))
	if _, err := g.Charge(context.Background(), interfaces.CardChargeRequest{}); !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if _, err := g.Charge(context.Background(), interfaces.CardChargeRequest{}); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestBreakerPixGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIPixGateway(ctrl)
	next.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.PixCharge{PixCode: "000201"}, nil)
	next.EXPECT().ChargeStatus(gomock.Any(), gomock.Any()).Return(entities.PixStatusAprovado, nil)

	g := NewBreakerPixGateway(next, NewCircuitBreaker(3, time.Minute))
	charge, err := g.CreateCharge(context.Background(), interfaces.PixChargeRequest{})
	if err != nil || charge.PixCode != "000201" {
		t.Fatalf("unexpected result: %+v %v", charge, err)
	}
	if status, err := g.ChargeStatus(context.Background(), testPix()); err != nil || status != entities.PixStatusAprovado {
		t.Fatalf("unexpected status: %s %v", status, err)
	}
}

func TestCircuitBreaker_IgnoresRejectedRequests(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	ctx := context.Background()

	for _, err := range []error{ErrCardTokenRequired, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, "abc")} {
		_ = cb.Execute(ctx, func() error { return err })
		if cb.GetState() != StateClosed {
			t.Fatalf("%v must not trip the breaker", err)
		}
	}
}

func TestBreakerCardGateway_MissingTokenKeepsCircuitClosed(t *testing.T) {
	api := &fakePaymentAPI{createRes: `{"id":987,"status":"approved","status_detail":"accredited"}`}
	g := NewBreakerCardGateway(newMercadoPagoGateway(api, clock.NewManual(testStart), zaptest.NewLogger(t)), NewCircuitBreaker(5, 30*time.Second))
	req := interfaces.CardChargeRequest{
		Reference:    "cart_test_1",
		Amount:       150,
		Installments: 1,
		Brand:        entities.CardBrandVisa,
		Payer:        entities.Cardholder{Name: "Maria Silva", Document: "12345678909", Email: "maria@example.com"},
	}

	for i := 0; i < 6; i++ {
		if _, err := g.Charge(context.Background(), req); !errors.Is(err, ErrCardTokenRequired) {
			t.Fatalf("attempt %d: expected ErrCardTokenRequired, got %v", i, err)
		}
	}

	req.Card.Token = "tok_ok"
	charge, err := g.Charge(context.Background(), req)
	if err != nil {
		t.Fatalf("tokenized charge must reach the provider: %v", err)
	}
	if charge.Status != entities.CardStatusApproved || len(api.created) != 1 {
		t.Fatalf("unexpected charge: %+v calls=%d", charge, len(api.created))
	}
}

func TestBreakerPixGateway_InvalidProviderIDKeepsCircuitClosed(t *testing.T) {
	api := &fakePaymentAPI{getRes: `{"id":123456,"status":"approved"}`}
	g := NewBreakerPixGateway(newMercadoPagoGateway(api, clock.NewManual(testStart), zaptest.NewLogger(t)), NewCircuitBreaker(1, time.Minute))

	bad := testPix()
	bad.ProviderPaymentID = "not-a-number"
	if _, err := g.ChargeStatus(context.Background(), bad); !errors.Is(err, ErrInvalidProviderPaymentID) {
		t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
	}
	status, err := g.ChargeStatus(context.Background(), testPix())
	if err != nil || status != entities.PixStatusAprovado {
		t.Fatalf("unexpected status: %s %v", status, err)
	}
}
