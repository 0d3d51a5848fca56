// Package cards holds the pure card helpers used by the card payment flow:
// Luhn validation, brand detection and input masks.
//
// None of these functions return errors; invalid input yields false, nil or "".
package cards

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"clinica_odonto/internal/domain/entities"
)

const (
	maxCardDigits   = 16
	maxExpiryDigits = 4
	minBrandDigits  = 4
	brandBINLength  = 6
)

type brandRule struct {
	id entities.CardBrandID
	// binOnly rules are matched against the first six digits instead of the
	// full number.
	binOnly bool
	re      *regexp.Regexp
}

// Elo and Hipercard BINs overlap the generic Visa/Mastercard/Diners ranges
// (438935 starts with 4, 3841 with 3[0689]), so they are tested first.
var brandRules = []brandRule{
	{id: entities.CardBrandElo, binOnly: true, re: regexp.MustCompile(`^(636368|438935|504175|451416|636297|5067|4576|4011)`)},
	{id: entities.CardBrandHipercard, binOnly: true, re: regexp.MustCompile(`^(606282|3841)`)},
	{id: entities.CardBrandVisa, re: regexp.MustCompile(`^4`)},
	{id: entities.CardBrandMastercard, re: regexp.MustCompile(`^5[1-5]`)},
	{id: entities.CardBrandAmex, re: regexp.MustCompile(`^3[47]`)},
	{id: entities.CardBrandDiners, re: regexp.MustCompile(`^3[0689]`)},
}

// ValidateCardNumber strips whitespace and applies the Luhn checksum.
func ValidateCardNumber(number string) bool {
	cleaned := stripSpaces(number)
	if cleaned == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IdentifyBrand returns the brand whose prefix rule matches first, or nil.
func IdentifyBrand(number string) *entities.CardBrandDescriptor {
	cleaned := stripSpaces(number)
	if len(cleaned) < minBrandDigits {
		return nil
	}

	bin := cleaned
	if len(bin) > brandBINLength {
		bin = bin[:brandBINLength]
	}

	for _, rule := range brandRules {
		subject := cleaned
		if rule.binOnly {
			subject = bin
		}
		if rule.re.MatchString(subject) {
			return entities.LookupCardBrand(rule.id)
		}
	}
	return nil
}

// FormatCardNumber keeps up to 16 digits grouped by four.
func FormatCardNumber(raw string) string {
	digits := CleanDigits(raw)
	if len(digits) > maxCardDigits {
		digits = digits[:maxCardDigits]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry applies the MM/YY mask.
func FormatExpiry(raw string) string {
	digits := CleanDigits(raw)
	if len(digits) > maxExpiryDigits {
		digits = digits[:maxExpiryDigits]
	}
	if len(digits) >= 3 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// CleanDigits drops every non-digit rune.
func CleanDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// MaskCardNumber keeps the BIN and the last four digits, for logs.
func MaskCardNumber(number string) string {
	digits := CleanDigits(number)
	if len(digits) < brandBINLength+4 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:brandBINLength] + strings.Repeat("*", len(digits)-brandBINLength-4) + digits[len(digits)-4:]
}

// ValidateExpiry accepts MM/YY (or MMYY) not earlier than the month of now.
func ValidateExpiry(expiry string, now time.Time) bool {
	digits := CleanDigits(expiry)
	if len(digits) != maxExpiryDigits {
		return false
	}
	month := int(digits[0]-'0')*10 + int(digits[1]-'0')
	year := 2000 + int(digits[2]-'0')*10 + int(digits[3]-'0')
	if month < 1 || month > 12 {
		return false
	}

	now = now.UTC()
	if year != now.Year() {
		return year > now.Year()
	}
	return month >= int(now.Month())
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
