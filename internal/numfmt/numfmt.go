// Package numfmt renders amounts the way a US-English locale does.
package numfmt

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fraction is the number of decimals every amount is shown with
const Fraction = 2

// Format groups thousands and rounds to exactly two decimals: 1234567.891 gives "1,234,567.89".
// Ties round half away from zero on the exact binary value, so 0.125 gives "0.13" and 2.675,
// stored just below the tie, gives "2.67"
func Format(v float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%v", number.Decimal(round(v), number.Scale(Fraction)))
}

func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	// v is m * 2^(exp-53), its decimal expansion ends within 53-exp fraction digits
	_, exp := math.Frexp(v)
	prec := 53 - exp
	if prec < 0 {
		prec = 0
	}

	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', prec, 64))
	if err != nil {
		return v
	}

	f, _ := d.Round(Fraction).Float64()

	return f
}
