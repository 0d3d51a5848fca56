package pixcode

import (
	"errors"
	"strings"
	"testing"
)

func TestCRC16(t *testing.T) {
	// CRC-16/CCITT-FALSE check value.
	if got := CRC16("123456789"); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got %#04X", got)
	}
}

func TestBuild(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		code, err := Build(Payload{
			Key:          "clinica@odonto.com.br",
			Description:  "Assinatura Profissional",
			MerchantName: "Clínica Odonto",
			MerchantCity: "São Paulo",
			Amount:       90,
			TxID:         "PIX_1700000000000_abc123def",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(code, "000201") {
			t.Fatalf("unexpected prefix: %s", code)
		}
		for _, part := range []string{"0014br.gov.bcb.pix", "0121clinica@odonto.com.br", "540590.00", "5802BR", "5914Clinica Odonto", "6009Sao Paulo", "5303986"} {
			if !strings.Contains(code, part) {
				t.Fatalf("expected %q in %s", part, code)
			}
		}
		if !strings.Contains(code, "0525PIX1700000000000abc123def") {
			t.Fatalf("expected txid in %s", code)
		}
		if !Verify(code) {
			t.Fatalf("expected crc to verify: %s", code)
		}
	})

	t.Run("tampered code fails verification", func(t *testing.T) {
		code, err := Build(Payload{Key: "k", MerchantName: "A", MerchantCity: "B", Amount: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tampered := strings.Replace(code, "54041.00", "54041.01", 1)
		if Verify(tampered) {
			t.Fatalf("expected tampered code to fail verification")
		}
		if !strings.Contains(code, "62070503***") {
			t.Fatalf("expected default txid in %s", code)
		}
	})

	t.Run("validation", func(t *testing.T) {
		if _, err := Build(Payload{MerchantName: "A", MerchantCity: "B", Amount: 1}); !errors.Is(err, ErrMissingKey) {
			t.Fatalf("expected ErrMissingKey, got %v", err)
		}
		if _, err := Build(Payload{Key: "k", MerchantName: "A", MerchantCity: "B"}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := Build(Payload{Key: "k", Amount: 1}); !errors.Is(err, ErrMissingMerchant) {
			t.Fatalf("expected ErrMissingMerchant, got %v", err)
		}
	})
}
