// Package pixcode builds the static EMV "BR Code" payload used as the PIX
// copy-and-paste string.
package pixcode

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	idPayloadFormat        = "00"
	idMerchantAccount      = "26"
	idMerchantCategoryCode = "52"
	idTransactionCurrency  = "53"
	idTransactionAmount    = "54"
	idCountryCode          = "58"
	idMerchantName         = "59"
	idMerchantCity         = "60"
	idAdditionalData       = "62"
	idCRC16                = "63"

	idAccountGUI         = "00"
	idAccountKey         = "01"
	idAccountDescription = "02"
	idAdditionalTxID     = "05"

	pixGUI          = "br.gov.bcb.pix"
	currencyBRL     = "986"
	countryBR       = "BR"
	maxNameLength   = 25
	maxCityLength   = 15
	maxTxIDLength   = 25
	maxFieldLength  = 99
	defaultTxID     = "***"
	crcPlaceholder  = idCRC16 + "04"
	categoryUnknown = "0000"
)

var (
	ErrMissingKey      = errors.New("pix key is required")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrFieldTooLong    = errors.New("brcode field exceeds 99 characters")
	ErrMissingMerchant = errors.New("merchant name and city are required")
)

// Payload is the data encoded into a BR Code.
type Payload struct {
	Key          string
	Description  string
	MerchantName string
	MerchantCity string
	Amount       float64
	TxID         string
}

// Build returns the full BR Code string, CRC included.
func Build(p Payload) (string, error) {
	key := strings.TrimSpace(p.Key)
	if key == "" {
		return "", ErrMissingKey
	}
	if p.Amount <= 0 {
		return "", ErrInvalidAmount
	}
	name := truncate(sanitize(p.MerchantName), maxNameLength)
	city := truncate(sanitize(p.MerchantCity), maxCityLength)
	if name == "" || city == "" {
		return "", ErrMissingMerchant
	}

	account := field(idAccountGUI, pixGUI) + field(idAccountKey, key)
	if desc := sanitize(p.Description); desc != "" {
		account += field(idAccountDescription, desc)
	}
	if len(account) > maxFieldLength {
		return "", ErrFieldTooLong
	}

	txid := truncate(alnum(p.TxID), maxTxIDLength)
	if txid == "" {
		txid = defaultTxID
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, "01"))
	b.WriteString(field(idMerchantAccount, account))
	b.WriteString(field(idMerchantCategoryCode, categoryUnknown))
	b.WriteString(field(idTransactionCurrency, currencyBRL))
	b.WriteString(field(idTransactionAmount, fmt.Sprintf("%.2f", p.Amount)))
	b.WriteString(field(idCountryCode, countryBR))
	b.WriteString(field(idMerchantName, name))
	b.WriteString(field(idMerchantCity, city))
	b.WriteString(field(idAdditionalData, field(idAdditionalTxID, txid)))
	b.WriteString(crcPlaceholder)

	body := b.String()
	return body + fmt.Sprintf("%04X", CRC16(body)), nil
}

// Verify checks the trailing CRC of a BR Code.
func Verify(code string) bool {
	if len(code) < len(crcPlaceholder)+4 {
		return false
	}
	body, sum := code[:len(code)-4], code[len(code)-4:]
	if !strings.HasSuffix(body, crcPlaceholder) {
		return false
	}
	return fmt.Sprintf("%04X", CRC16(body)) == strings.ToUpper(sum)
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// sanitize keeps the payload ASCII so lengths are byte lengths.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r > unicode.MaxASCII {
			r = foldAccent(r)
		}
		if r >= 0x20 && r <= unicode.MaxASCII {
			out = append(out, r)
		}
	}
	return string(out)
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, s)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'ê': 'e', 'è': 'e',
	'í': 'i', 'ì': 'i',
	'ó': 'o', 'ô': 'o', 'õ': 'o', 'ò': 'o',
	'ú': 'u', 'ü': 'u',
	'ç': 'c',
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ã': 'A',
	'É': 'E', 'Ê': 'E',
	'Í': 'I',
	'Ó': 'O', 'Ô': 'O', 'Õ': 'O',
	'Ú': 'U',
	'Ç': 'C',
}

func foldAccent(r rune) rune {
	if f, ok := accentFold[r]; ok {
		return f
	}
	return -1
}
