package cae

import (
	"time"

	"github.com/robotomize/dhconv/label"
)

type aedLatestRates struct {
	time  time.Time
	rates []aedExchangeRate
}

// aedExchangeRate rate is the AED price of one unit of symbol
type aedExchangeRate struct {
	symbol label.Symbol
	rate   float64
}
