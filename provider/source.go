package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/robotomize/dhconv/label"
)

var (
	// ErrNetwork transport failure or a non-success HTTP status
	ErrNetwork = errors.New("rate source unreachable")
	// ErrService the source answered but reported a failure or an unreadable payload
	ErrService = errors.New("rate source reported an error")
	// ErrMissingRate the rate table has no usable entry for the requested currency
	ErrMissingRate = errors.New("rate is missing from the rate table")
)

// Source is an interface for getting data from external sources. Source takes care of receiving data
// and giving back the rate table of a base currency
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchLatest obtains the latest rate table with base as the unit currency
	FetchLatest(ctx context.Context, base label.Symbol) (Latest, error)

	// GetExchangeable declares to give a list of exchangeable currencies
	GetExchangeable() []label.Symbol
}

// Latest is a rate table: Rates[to] units of "to" equal one unit of Base
type Latest struct {
	Base  label.Symbol
	Time  time.Time
	Rates map[label.Symbol]float64
}

// Rate returns how many units of to equal one unit of the base currency
func (l Latest) Rate(to label.Symbol) (float64, error) {
	rate, ok := l.Rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s per %s", ErrMissingRate, to, l.Base)
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, fmt.Errorf("%w: %s per %s is %v", ErrMissingRate, to, l.Base, rate)
	}

	return rate, nil
}
