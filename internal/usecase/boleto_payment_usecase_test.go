package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clinica_odonto/internal/adapter/persistence/repository"
	"clinica_odonto/internal/domain/boleto"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/infrastructure/clock"
	mock_interfaces "clinica_odonto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var testBoletoSettings = BoletoSettings{
	BankCode:              "001",
	BeneficiaryName:       "Clinica Odonto Ltda",
	BeneficiaryDocument:   "12345678000195",
	NotificationRecipient: "financeiro@clinicaodonto.com.br",
}

type boletoFixture struct {
	uc       *BoletoPaymentUseCase
	repo     *repository.MemoryRecordRepository[entities.BoletoPayment]
	clock    *clock.Manual
	notifier *mock_interfaces.MockINotifier
}

func newBoletoFixture(t *testing.T) boletoFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewManual(testStart)
	repo := repository.NewMemoryRecordRepository[entities.BoletoPayment]()
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	return boletoFixture{
		uc:       NewBoletoPaymentUseCase(repo, notifier, clk, zaptest.NewLogger(t), testBoletoSettings),
		repo:     repo,
		clock:    clk,
		notifier: notifier,
	}
}

func boletoCommand() GenerateBoletoCommand {
	return GenerateBoletoCommand{
		PlanReference: "profissional",
		Amount:        90,
		PayerName:     "Maria Silva",
		PayerDocument: "123.456.789-09",
	}
}

func TestBoletoPaymentUseCase_Generate(t *testing.T) {
	f := newBoletoFixture(t)

	p, err := f.uc.Generate(context.Background(), boletoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.clock.Now().Sub(testStart) != time.Second {
		t.Fatalf("expected the issuing delay")
	}
	if !strings.HasPrefix(p.ID, "BOL_") || p.Status != entities.BoletoStatusPendente {
		t.Fatalf("unexpected boleto: %+v", p)
	}
	wantDue := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	if !p.DueDate.Equal(wantDue) {
		t.Fatalf("expected due %v, got %v", wantDue, p.DueDate)
	}
	if !boleto.ValidBarcode(p.Barcode) || len(p.Barcode) != 44 || !strings.HasPrefix(p.Barcode, "0019") {
		t.Fatalf("invalid barcode %q", p.Barcode)
	}
	if p.DigitableLine != boleto.DigitableLine(p.Barcode) {
		t.Fatalf("digitable line must match the barcode")
	}
	if p.Description != "Plano profissional" || p.PayerDocument != "12345678909" || p.BeneficiaryName != testBoletoSettings.BeneficiaryName {
		t.Fatalf("unexpected descriptors: %+v", p)
	}

	list, _ := f.uc.List(context.Background())
	if len(list) != 1 || list[0].ID != p.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestBoletoPaymentUseCase_Generate_Validation(t *testing.T) {
	f := newBoletoFixture(t)
	tests := []struct {
		name   string
		mutate func(*GenerateBoletoCommand)
		want   error
	}{
		{"blank plan", func(c *GenerateBoletoCommand) { c.PlanReference = "" }, ErrInvalidPlanReference},
		{"zero amount", func(c *GenerateBoletoCommand) { c.Amount = 0 }, ErrInvalidBoletoAmount},
		{"missing payer", func(c *GenerateBoletoCommand) { c.PayerName = " " }, ErrInvalidBoletoPayer},
		{"short document", func(c *GenerateBoletoCommand) { c.PayerDocument = "1234" }, ErrInvalidBoletoPayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := boletoCommand()
			tt.mutate(&cmd)
			if _, err := f.uc.Generate(context.Background(), cmd); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := f.uc.Generate(ctx, boletoCommand()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	if list, _ := f.repo.ListAll(context.Background()); len(list) != 0 {
		t.Fatalf("nothing may be persisted, got %d", len(list))
	}
}

func TestBoletoPaymentUseCase_CheckStatus(t *testing.T) {
	f := newBoletoFixture(t)
	ctx := context.Background()
	p, err := f.uc.Generate(ctx, boletoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still payable during the whole due day.
	f.clock.Advance(p.DueDate.Add(23*time.Hour).Sub(f.clock.Now()))
	status, err := f.uc.CheckStatus(ctx, p.ID)
	if err != nil || status != entities.BoletoStatusPendente {
		t.Fatalf("expected pendente on the due day, got %s %v", status, err)
	}

	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) error {
		if n.Kind != entities.NotificationWarning || n.PaymentID != p.ID || !strings.Contains(n.Message, "R$ 90,00") {
			t.Errorf("unexpected notification: %+v", n)
		}
		return nil
	}).Times(1)

	f.clock.Advance(time.Hour)
	for i := 0; i < 2; i++ {
		status, err = f.uc.CheckStatus(ctx, p.ID)
		if err != nil || status != entities.BoletoStatusVencido {
			t.Fatalf("expected vencido after the due day, got %s %v", status, err)
		}
	}

	if _, err := f.uc.CheckStatus(ctx, "BOL_0"); !errors.Is(err, ErrBoletoNotFound) {
		t.Fatalf("expected ErrBoletoNotFound, got %v", err)
	}
	if _, err := f.uc.CheckStatus(ctx, ""); !errors.Is(err, ErrInvalidBoletoPaymentID) {
		t.Fatalf("expected ErrInvalidBoletoPaymentID, got %v", err)
	}
}

func TestBoletoPaymentUseCase_Render(t *testing.T) {
	f := newBoletoFixture(t)
	cmd := boletoCommand()
	cmd.Description = `Plano <script>alert(1)</script>`
	p, err := f.uc.Generate(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html, err := f.uc.Render(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := string(html)
	for _, want := range []string{p.DigitableLine, p.Barcode, "R$ 90,00", "18/03/2026", "123.456.789-09", "12.345.678/0001-95"} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered slip must contain %q", want)
		}
	}
	if strings.Contains(page, "<script>") {
		t.Fatalf("description must be escaped")
	}

	if _, err := f.uc.Render(context.Background(), "BOL_0"); !errors.Is(err, ErrBoletoNotFound) {
		t.Fatalf("expected ErrBoletoNotFound, got %v", err)
	}
}

func TestFormatTaxDocument(t *testing.T) {
	tests := map[string]string{
		"12345678909":    "123.456.789-09",
		"12345678000195": "12.345.678/0001-95",
		"123":            "123",
	}
	for in, want := range tests {
		if got := formatTaxDocument(in); got != want {
			t.Fatalf("formatTaxDocument(%q) = %q, want %q", in, got, want)
		}
	}
}
