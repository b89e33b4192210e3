package dhconv

import (
	"math"

	"github.com/robotomize/dhconv/internal/strutil"
)

const (
	// RyalPerDH 1 DH = 20 Ryal
	RyalPerDH = 20
	// FrankPerDH 1 DH = 100 Frank
	FrankPerDH = 100
)

// Amounts is one amount expressed in the three denominations
type Amounts struct {
	DH    float64
	Ryal  float64
	Frank float64
}

// Convert computes the denominations of amount units of a currency worth rate DH each
func Convert(amount, rate float64) Amounts {
	dh := amount * rate

	return Amounts{
		DH:    dh,
		Ryal:  dh * RyalPerDH,
		Frank: dh * FrankPerDH,
	}
}

// ParseAmount reads an amount typed by the user. Anything that does not start with a positive
// finite number is 0
func ParseAmount(s string) float64 {
	f, ok := strutil.LeadingFloat(s)
	if !ok || math.IsInf(f, 0) || f <= 0 {
		return 0
	}

	return f
}
