package boleto

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDueFactor(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2025, time.February, 21, 0, 0, 0, 0, time.UTC), 9999},
		{time.Date(2025, time.February, 22, 0, 0, 0, 0, time.UTC), 1000},
		{time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC), 1604},
	}
	for _, tc := range cases {
		if got := DueFactor(tc.date); got != tc.want {
			t.Fatalf("DueFactor(%s) = %d, want %d", tc.date.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		b, err := Generate(Params{
			BankCode:  "001",
			Amount:    90,
			DueDate:   time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			FreeField: "1700000000000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Code != "00195160400000090000000000000001700000000000" {
			t.Fatalf("unexpected barcode %s", b.Code)
		}
		if b.DigitableLine != "00190.00009 00000.001701 00000.000000 5 16040000009000" {
			t.Fatalf("unexpected digitable line %s", b.DigitableLine)
		}
		if n := len(strings.NewReplacer(".", "", " ", "").Replace(b.DigitableLine)); n != 47 {
			t.Fatalf("expected 47 digits, got %d", n)
		}
		if !ValidBarcode(b.Code) {
			t.Fatalf("expected barcode to validate")
		}
	})

	t.Run("tampered barcode is rejected", func(t *testing.T) {
		if ValidBarcode("00195160400000090010000000000001700000000000") {
			t.Fatalf("expected tampered barcode to fail")
		}
	})

	t.Run("validation", func(t *testing.T) {
		if _, err := Generate(Params{BankCode: "1", Amount: 1}); !errors.Is(err, ErrInvalidBankCode) {
			t.Fatalf("expected ErrInvalidBankCode, got %v", err)
		}
		if _, err := Generate(Params{BankCode: "001", Amount: 0}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := Generate(Params{BankCode: "001", Amount: 1e9}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
