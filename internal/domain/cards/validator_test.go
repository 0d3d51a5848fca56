package cards

import (
	"testing"
	"time"

	"clinica_odonto/internal/domain/entities"
)

var luhnValid = []string{
	"4111111111111111",
	"5555555555554444",
	"4012888888881881",
	"5105105105105100",
	"6062826786276634",
	"4389350000000002",
	"3841001111222233",
}

func TestValidateCardNumber(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		for _, n := range append(luhnValid, "378282246310005", "30569309025904", "4111 1111 1111 1111") {
			if !ValidateCardNumber(n) {
				t.Fatalf("expected %q to be valid", n)
			}
		}
	})

	t.Run("single digit mutation breaks checksum", func(t *testing.T) {
		for _, n := range luhnValid {
			for pos := 0; pos < len(n); pos += 3 {
				mutated := []byte(n)
				mutated[pos] = '0' + (mutated[pos]-'0'+1)%10
				if ValidateCardNumber(string(mutated)) {
					t.Fatalf("expected mutation of %q at %d (%s) to be invalid", n, pos, mutated)
				}
			}
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, n := range []string{"", "   ", "4111-1111-1111-1111", "abcd"} {
			if ValidateCardNumber(n) {
				t.Fatalf("expected %q to be invalid", n)
			}
		}
	})
}

func TestIdentifyBrand(t *testing.T) {
	cases := map[string]entities.CardBrandID{
		"4111111111111111":    entities.CardBrandVisa,
		"5555555555554444":    entities.CardBrandMastercard,
		"378282246310005":     entities.CardBrandAmex,
		"4389350000000001":    entities.CardBrandElo,
		"6062821234567890":    entities.CardBrandHipercard,
		"30569309025904":      entities.CardBrandDiners,
		"3841001111222233":    entities.CardBrandHipercard,
		"5067 2300 0000 0000": entities.CardBrandElo,
	}
	for number, want := range cases {
		got := IdentifyBrand(number)
		if got == nil || got.ID != want {
			t.Fatalf("IdentifyBrand(%q) = %v, want %s", number, got, want)
		}
	}

	t.Run("too short", func(t *testing.T) {
		if got := IdentifyBrand("123"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("unknown prefix", func(t *testing.T) {
		if got := IdentifyBrand("9999999999999999"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestFormatters(t *testing.T) {
	if got := FormatCardNumber("4111a1111-1111 11119999"); got != "4111 1111 1111 1111" {
		t.Fatalf("unexpected card format %q", got)
	}
	if got := FormatCardNumber("41111"); got != "4111 1" {
		t.Fatalf("unexpected card format %q", got)
	}
	if got := FormatExpiry("12"); got != "12" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := FormatExpiry("1/2/3"); got != "12/3" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := FormatExpiry("122899"); got != "12/28" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := FormatExpiry(""); got != "" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := MaskCardNumber("4111 1111 1111 1111"); got != "411111******1111" {
		t.Fatalf("unexpected mask %q", got)
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	cases := map[string]bool{
		"03/26": true,
		"02/26": false,
		"12/25": false,
		"01/27": true,
		"13/27": false,
		"00/27": false,
		"1/27":  false,
	}
	for in, want := range cases {
		if got := ValidateExpiry(in, now); got != want {
			t.Fatalf("ValidateExpiry(%q) = %v, want %v", in, got, want)
		}
	}
}
