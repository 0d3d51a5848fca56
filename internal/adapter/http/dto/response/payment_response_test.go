package response

import (
	"encoding/json"
	"testing"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"
)

var createdAt = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestFromPaymentAttempts(t *testing.T) {
	items := []entities.PaymentAttempt{
		entities.CardPayment{ID: "cart_test_2", Amount: 100, TotalAmount: 103.99, Status: entities.CardStatusApproved, CreatedAt: createdAt.Add(time.Minute)},
		entities.PixPayment{ID: "PIX_1", Amount: 90, Status: entities.PixStatusPendente, CreatedAt: createdAt},
		entities.BoletoPayment{ID: "BOL_0", Amount: 49.9, Status: entities.BoletoStatusVencido, CreatedAt: createdAt.Add(-time.Minute)},
	}

	got := FromPaymentAttempts(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].Kind != "cartao" || got[0].Amount != 103.99 || got[0].Status != "approved" {
		t.Fatalf("unexpected card item: %+v", got[0])
	}
	if _, ok := got[0].Details.(CardPaymentResponse); !ok {
		t.Fatalf("expected card details, got %T", got[0].Details)
	}
	if got[1].Kind != "pix" || got[1].Status != "pendente" {
		t.Fatalf("unexpected pix item: %+v", got[1])
	}
	if got[2].Kind != "boleto" || got[2].Status != "vencido" || got[2].Amount != 49.9 {
		t.Fatalf("unexpected boleto item: %+v", got[2])
	}
}

func TestFromCardPayment_NoSensitiveFields(t *testing.T) {
	b, err := json.Marshal(FromCardPayment(entities.CardPayment{
		ID:         "cart_test_1",
		Brand:      entities.CardBrandVisa,
		Cardholder: entities.Cardholder{Name: "Maria Silva", Document: "12345678909", Email: "maria@example.com"},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"number", "cvv", "card_number"} {
		if _, ok := m[key]; ok {
			t.Fatalf("unexpected field %s in %s", key, b)
		}
	}
	if m["brand"] != "visa" {
		t.Fatalf("unexpected brand %v", m["brand"])
	}
}

func TestFromCardCheck(t *testing.T) {
	brand := entities.LookupCardBrand(entities.CardBrandVisa)
	got := FromCardCheck(usecase.CardCheck{Valid: true, Brand: brand, Formatted: "4111 1111 1111 1111"})
	if !got.Valid || got.Brand == nil || got.Brand.ID != "visa" || got.Formatted != "4111 1111 1111 1111" {
		t.Fatalf("unexpected response: %+v", got)
	}

	got = FromCardCheck(usecase.CardCheck{Formatted: "1234"})
	if got.Valid || got.Brand != nil {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromPixPayment_OmitsEmptyCode(t *testing.T) {
	b, err := json.Marshal(FromPixPayment(entities.PixPayment{ID: "PIX_1", Status: entities.PixStatusErro, CreatedAt: createdAt}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	_ = json.Unmarshal(b, &m)
	if _, ok := m["pix_code"]; ok {
		t.Fatalf("expected pix_code to be omitted: %s", b)
	}
	if m["status"] != "erro" {
		t.Fatalf("unexpected status %v", m["status"])
	}
}
