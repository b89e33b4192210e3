// Package cae derives rate tables from the daily AED rates page of the Central Bank of the UAE.
package cae

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robotomize/dhconv/label"
	"github.com/robotomize/dhconv/provider"
	"github.com/robotomize/dhconv/provider/httputil"
)

const hostname = "www.centralbank.ae"

const dateReqLayout = "02/01/2006"

var exchangeableSymbols = []label.Symbol{
	label.AED, label.USD, label.CAD, label.CHF, label.CNY, label.DZD, label.EUR, label.GBP, label.JPY,
	label.KWD, label.MAD, label.QAR, label.SAR, label.TND, label.TRY,
}

// DefaultLatestResource is the rates page; the request date is added as a query parameter
var DefaultLatestResource = url.URL{Scheme: "https", Host: hostname, Path: "/en/fx-rates"}

type fetcher struct {
	u url.URL
	httputil.SourceHTTPClient
}

var _ provider.Source = (*source)(nil)

func NewSource(client *http.Client, u url.URL) *source {
	return &source{
		client: fetcher{
			u:                u,
			SourceHTTPClient: httputil.NewHTTPClient(client),
		},
		now: time.Now,
	}
}

type source struct {
	client fetcher
	now    func() time.Time
}

func (s *source) GetExchangeable() []label.Symbol {
	return exchangeableSymbols
}

func (s *source) FetchLatest(ctx context.Context, base label.Symbol) (provider.Latest, error) {
	latest, err := s.fetchingPlan(ctx, base)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("fetching plan: %w", err)
	}

	return latest, nil
}

func (s *source) fetchingPlan(ctx context.Context, base label.Symbol) (provider.Latest, error) {
	u := s.client.u
	query := u.Query()
	query.Set("date_req", s.now().UTC().Format(dateReqLayout))
	u.RawQuery = query.Encode()

	b, err := s.client.Get(ctx, u)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("%w: fetching: %w", provider.ErrNetwork, err)
	}

	latest, err := s.decode(b, base)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("decode: %w", err)
	}

	return latest, nil
}

// decode turns the "AED per unit" table into rates with base as the unit currency
func (s *source) decode(b []byte, base label.Symbol) (provider.Latest, error) {
	aedExchangeRates, err := parseHTML(b)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("%w: decode html: %v", provider.ErrService, err)
	}

	aedSymRates := map[label.Symbol]float64{
		label.AED: 1,
	}

	for _, r := range aedExchangeRates.rates {
		aedSymRates[r.symbol] = r.rate
	}

	baseRate, ok := aedSymRates[base]
	if !ok {
		return provider.Latest{}, fmt.Errorf("%w: %s is not published", provider.ErrService, base)
	}

	latest := provider.Latest{
		Base:  base,
		Time:  aedExchangeRates.time,
		Rates: make(map[label.Symbol]float64, len(aedSymRates)),
	}

	for sym, rate := range aedSymRates {
		latest.Rates[sym] = baseRate / rate
	}

	return latest, nil
}
