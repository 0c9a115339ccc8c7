package formatter

import (
	"strings"

	"github.com/avGenie/go-topup-store/internal/app/entity"
)

const (
	cardNumberMaxLen = 19
	cardGroupLen     = 4
	cvvMaxLen        = 4
)

type Formatter func(raw string) string

// ForField returns the display formatter of a form field. Fields without one
// are stored as typed.
func ForField(name string) Formatter {
	switch name {
	case entity.FieldCardNumber:
		return CardNumber
	case entity.FieldExpiry:
		return Expiry
	case entity.FieldCVV:
		return CVV
	default:
		return func(raw string) string { return raw }
	}
}

func CardNumber(raw string) string {
	digits := onlyDigits(raw)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%cardGroupLen == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if len(out) > cardNumberMaxLen {
		out = out[:cardNumberMaxLen]
	}

	return out
}

// Expiry renders MM/YY. A lone month digit is left as is.
func Expiry(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) < 2 {
		return digits
	}

	year := digits[2:]
	if len(year) > 2 {
		year = year[:2]
	}

	return digits[:2] + "/" + year
}

func CVV(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > cvvMaxLen {
		digits = digits[:cvvMaxLen]
	}

	return digits
}

func onlyDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
