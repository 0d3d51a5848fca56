// Package boleto fabricates FEBRABAN-shaped barcodes and digitable lines.
// The output passes the check-digit rules but is not registered with any bank.
package boleto

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	currencyReal    = "9"
	barcodeLength   = 44
	freeFieldLength = 25
	maxAmountCents  = 9_999_999_999
	maxDueFactor    = 9999
	dueFactorReset  = 1000
)

var (
	ErrInvalidBankCode = errors.New("bank code must have 3 digits")
	ErrInvalidAmount   = errors.New("amount out of range")
)

// dueFactorBase is day zero of the due-date factor.
var dueFactorBase = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

type Params struct {
	BankCode  string
	Amount    float64
	DueDate   time.Time
	FreeField string
}

type Barcode struct {
	Code          string
	DigitableLine string
}

// Generate assembles the 44-digit barcode and its 47-digit digitable line.
func Generate(p Params) (Barcode, error) {
	bank := digitsOnly(p.BankCode)
	if len(bank) != 3 {
		return Barcode{}, ErrInvalidBankCode
	}
	cents := int64(math.Round(p.Amount * 100))
	if cents <= 0 || cents > maxAmountCents {
		return Barcode{}, ErrInvalidAmount
	}

	free := digitsOnly(p.FreeField)
	if len(free) > freeFieldLength {
		free = free[len(free)-freeFieldLength:]
	}
	free = strings.Repeat("0", freeFieldLength-len(free)) + free

	factor := fmt.Sprintf("%04d", DueFactor(p.DueDate))
	amount := fmt.Sprintf("%010d", cents)

	withoutDV := bank + currencyReal + factor + amount + free
	dv := mod11(withoutDV)
	code := withoutDV[:4] + dv + withoutDV[4:]

	return Barcode{Code: code, DigitableLine: DigitableLine(code)}, nil
}

// DigitableLine converts a 44-digit barcode into the formatted typeable line.
func DigitableLine(code string) string {
	if len(code) != barcodeLength {
		return ""
	}
	free := code[19:]
	f1 := code[:4] + free[:5]
	f2 := free[5:15]
	f3 := free[15:25]
	f1 += mod10(f1)
	f2 += mod10(f2)
	f3 += mod10(f3)

	return fmt.Sprintf("%s.%s %s.%s %s.%s %s %s",
		f1[:5], f1[5:], f2[:5], f2[5:], f3[:5], f3[5:], code[4:5], code[5:19])
}

// ValidBarcode checks the general check digit.
func ValidBarcode(code string) bool {
	if len(code) != barcodeLength || digitsOnly(code) != code {
		return false
	}
	return mod11(code[:4]+code[5:]) == code[4:5]
}

// DueFactor counts days since 1997-10-07, restarting at 1000 after 9999.
func DueFactor(due time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	f := int(d.Sub(dueFactorBase).Hours() / 24)
	if f > maxDueFactor {
		f = (f-maxDueFactor-1)%(maxDueFactor-dueFactorReset+1) + dueFactorReset
	}
	return f
}

func mod11(digits string) string {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	dv := 11 - sum%11
	if dv == 0 || dv == 10 || dv == 11 {
		dv = 1
	}
	return fmt.Sprint(dv)
}

func mod10(digits string) string {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		sum += p/10 + p%10
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	return fmt.Sprint((10 - sum%10) % 10)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
