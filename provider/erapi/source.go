// Package erapi fetches rate tables from the open ExchangeRate-API endpoint.
package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robotomize/dhconv/label"
	"github.com/robotomize/dhconv/provider"
	"github.com/robotomize/dhconv/provider/httputil"
)

const hostname = "open.er-api.com"

const latestRawPath = "/v6/latest"

const resultSuccess = "success"

// DefaultLatestResource is the endpoint the base currency code is appended to
var DefaultLatestResource = url.URL{Scheme: "https", Host: hostname, Path: latestRawPath}

var _ provider.Source = (*source)(nil)

type fetcher struct {
	latestURL url.URL
	httputil.SourceHTTPClient
}

// NewSource returns a source that asks latestURL/<CODE> for rate tables
func NewSource(client *http.Client, latestURL url.URL) *source {
	return &source{
		client: fetcher{
			latestURL:        latestURL,
			SourceHTTPClient: httputil.NewHTTPClient(client),
		},
	}
}

type source struct {
	client fetcher
}

// GetExchangeable the open endpoint quotes every currency the converter offers
func (s *source) GetExchangeable() []label.Symbol {
	return label.Selectable
}

func (s *source) FetchLatest(ctx context.Context, base label.Symbol) (provider.Latest, error) {
	u := s.client.latestURL.JoinPath(base.String())

	b, err := s.client.Get(ctx, *u)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("%w: fetching %s: %w", provider.ErrNetwork, base, err)
	}

	latest, err := decode(b)
	if err != nil {
		return provider.Latest{}, fmt.Errorf("decode: %w", err)
	}

	if latest.Base == "" {
		latest.Base = base
	}

	return latest, nil
}

// latestResponse the subset of the v6 payload the converter reads
type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	Rates              map[string]float64 `json:"rates"`
}

func decode(b []byte) (provider.Latest, error) {
	var resp latestResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return provider.Latest{}, fmt.Errorf("%w: json unmarshal: %v", provider.ErrService, err)
	}

	if resp.Result != resultSuccess {
		return provider.Latest{}, fmt.Errorf("%w: result %q, error type %q", provider.ErrService, resp.Result, resp.ErrorType)
	}

	latest := provider.Latest{
		Base:  label.Symbol(resp.BaseCode),
		Rates: make(map[label.Symbol]float64, len(resp.Rates)),
	}

	if resp.TimeLastUpdateUnix > 0 {
		latest.Time = time.Unix(resp.TimeLastUpdateUnix, 0).UTC()
	}

	for code, rate := range resp.Rates {
		latest.Rates[label.Symbol(code)] = rate
	}

	return latest, nil
}
