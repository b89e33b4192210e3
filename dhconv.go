// Package dhconv converts amounts of a foreign currency into DH and its two fixed-ratio
// denominations, Ryal and Frank, from a live exchange rate.
package dhconv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robotomize/dhconv/internal/debounce"
	"github.com/robotomize/dhconv/internal/logging"
	"github.com/robotomize/dhconv/internal/numfmt"
	"github.com/robotomize/dhconv/label"
	"github.com/robotomize/dhconv/provider"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

// ErrSuperseded is returned by FetchRate when a newer fetch started before this one finished
var ErrSuperseded = errors.New("rate response superseded by a newer request")

// Target is the currency the fetched rate is expressed in
const Target = label.MAD

const (
	DefaultCurrency        = label.USD
	DefaultRefreshInterval = 5 * time.Minute
	DefaultDebounceDelay   = 100 * time.Millisecond
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRetryNum        = 0
	DefaultRetryDuration   = 5 * time.Second
)

const (
	StatusFetching = "Fetching rate..."
	StatusError    = "Error loading rate. Click refresh."
	// Placeholder is shown in every result field until a rate is known
	Placeholder = "---"
)

// loadingFields are marked while a fetch is in flight
var loadingFields = []Field{FieldRefresh, FieldResultDH, FieldResultRyal}

type Option func(*Converter)

type Options struct {
	Currency        label.Symbol
	RefreshInterval time.Duration
	DebounceDelay   time.Duration
	RequestTimeout  time.Duration
	RetryNum        uint64
	RetryDuration   time.Duration
}

// WithCurrency set the currency considered tracked before the first fetch
func WithCurrency(sym label.Symbol) Option {
	return func(c *Converter) {
		c.opts.Currency = sym
	}
}

// WithRefreshInterval set how often Run refreshes the rate
func WithRefreshInterval(t time.Duration) Option {
	return func(c *Converter) {
		c.opts.RefreshInterval = t
	}
}

// WithDebounceDelay set the quiet period after an amount edit before results are recomputed
func WithDebounceDelay(t time.Duration) Option {
	return func(c *Converter) {
		c.opts.DebounceDelay = t
	}
}

// WithRequestTimeout set a timeout for source requests
func WithRequestTimeout(t time.Duration) Option {
	return func(c *Converter) {
		c.opts.RequestTimeout = t
	}
}

// WithRetryNum set number of repeated requests after a network failure. Zero disables retries
func WithRetryNum(n uint64) Option {
	return func(c *Converter) {
		c.opts.RetryNum = n
	}
}

// WithRetryDuration set the pause between retries
func WithRetryDuration(t time.Duration) Option {
	return func(c *Converter) {
		c.opts.RetryDuration = t
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// withDefaults replaces the values Run and lookup can not work with.
// Durations that must be positive fall back to their defaults, a negative debounce becomes the default too
func (o Options) withDefaults() Options {
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}

	if o.RefreshInterval <= 0 {
		o.RefreshInterval = DefaultRefreshInterval
	}

	if o.DebounceDelay < 0 {
		o.DebounceDelay = DefaultDebounceDelay
	}

	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}

	if o.RetryDuration <= 0 {
		o.RetryDuration = DefaultRetryDuration
	}

	return o
}

// Converter holds the last fetched rate and keeps the display in sync with it
type Converter struct {
	opts    Options
	source  provider.Source
	display Display
	logger  logrus.FieldLogger

	debouncer *debounce.Debouncer

	// mtx guards everything below and orders display updates of concurrent fetches
	mtx      sync.Mutex
	rate     float64
	hasRate  bool
	currency label.Symbol
	gen      uint64
}

// New return converter
func New(source provider.Source, display Display, opts ...Option) *Converter {
	c := &Converter{
		opts: Options{
			Currency:        DefaultCurrency,
			RefreshInterval: DefaultRefreshInterval,
			DebounceDelay:   DefaultDebounceDelay,
			RequestTimeout:  DefaultRequestTimeout,
			RetryNum:        DefaultRetryNum,
			RetryDuration:   DefaultRetryDuration,
		},
		source:  source,
		display: display,
		logger:  logging.FromContext(context.Background()),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.opts = c.opts.withDefaults()
	c.currency = c.opts.Currency
	c.debouncer = debounce.New(c.opts.DebounceDelay, c.Recompute)

	return c
}

// Rate returns the held rate, the currency it applies to, and whether any fetch has succeeded
func (c *Converter) Rate() (float64, label.Symbol, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.rate, c.currency, c.hasRate
}

// FetchRate loads the DH rate of sym and publishes it on the status line.
// On failure the previous rate is kept and the status shows StatusError.
// A response that arrives after a newer FetchRate started is dropped with ErrSuperseded
func (c *Converter) FetchRate(ctx context.Context, sym label.Symbol) (float64, error) {
	c.mtx.Lock()
	c.gen++
	gen := c.gen
	c.setLoading(true)
	c.display.SetText(FieldStatus, StatusFetching)
	c.mtx.Unlock()

	logger := c.logger.WithFields(logrus.Fields{"currency": sym, "generation": gen})

	begin := time.Now()
	rate, err := c.lookup(ctx, sym)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if gen != c.gen {
		logger.WithField("took", time.Since(begin)).Debug("discarding superseded rate response")
		return 0, ErrSuperseded
	}

	if err != nil {
		logger.WithError(err).WithField("took", time.Since(begin)).Error("error fetching rate")
		c.display.SetText(FieldStatus, StatusError)
		c.setLoading(false)
		return 0, err
	}

	c.rate, c.hasRate, c.currency = rate, true, sym

	logger.WithFields(logrus.Fields{"rate": rate, "took": time.Since(begin)}).Info("rate updated")
	c.display.SetText(FieldStatus, fmt.Sprintf("1 %s = %s DH", sym, numfmt.Format(rate)))
	c.setLoading(false)

	return rate, nil
}

func (c *Converter) lookup(ctx context.Context, sym label.Symbol) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	b, err := retry.NewConstant(c.opts.RetryDuration)
	if err != nil {
		return 0, fmt.Errorf("retry backoff: %w", err)
	}

	b = retry.WithMaxRetries(c.opts.RetryNum, b)

	var rate float64
	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		latest, err := c.source.FetchLatest(ctx, sym)
		if err != nil {
			if errors.Is(err, provider.ErrNetwork) {
				c.logger.WithError(err).WithField("currency", sym).Debug("fetch latest failed")
				return retry.RetryableError(fmt.Errorf("fetch latest: %w", err))
			}
			return fmt.Errorf("fetch latest: %w", err)
		}

		rate, err = latest.Rate(Target)
		if err != nil {
			return fmt.Errorf("rate of %s: %w", sym, err)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	return rate, nil
}

// setLoading must be called with mtx held
func (c *Converter) setLoading(loading bool) {
	for _, f := range loadingFields {
		c.display.SetLoading(f, loading)
	}
}

// Recompute writes the current amount in every denomination, or Placeholder while no rate is known
func (c *Converter) Recompute() {
	amount := ParseAmount(c.display.Value(FieldAmount))

	c.mtx.Lock()
	rate, ok := c.rate, c.hasRate
	c.mtx.Unlock()

	if !ok {
		c.display.SetText(FieldResultDH, Placeholder)
		c.display.SetText(FieldResultRyal, Placeholder)
		c.display.SetText(FieldResultFrank, Placeholder)
		return
	}

	amounts := Convert(amount, rate)

	c.display.SetText(FieldResultDH, numfmt.Format(amounts.DH))
	c.display.SetText(FieldResultRyal, numfmt.Format(amounts.Ryal))
	c.display.SetText(FieldResultFrank, numfmt.Format(amounts.Frank))
}

// AmountChanged schedules a Recompute once the amount edits pause
func (c *Converter) AmountChanged() {
	c.debouncer.Trigger()
}

// CurrencyChanged fetches the rate of the selected currency unless it is already the tracked one
func (c *Converter) CurrencyChanged(ctx context.Context) {
	sym, ok := c.selected()
	if !ok {
		return
	}

	c.mtx.Lock()
	tracked := c.currency
	c.mtx.Unlock()

	if sym == tracked {
		return
	}

	c.update(ctx, sym)
}

// Refresh fetches the rate of the selected currency and recomputes the results
func (c *Converter) Refresh(ctx context.Context) {
	sym, ok := c.selected()
	if !ok {
		return
	}

	c.update(ctx, sym)
}

// Shortcut reports whether k is the refresh shortcut in the current focus
func (c *Converter) Shortcut(k Key) bool {
	if k.Rune != RefreshKey || k.Ctrl || k.Alt || k.Meta {
		return false
	}

	return c.display.Focused() != FieldAmount
}

// KeyPressed refreshes when k is the refresh shortcut. It reports whether it did
func (c *Converter) KeyPressed(ctx context.Context, k Key) bool {
	if !c.Shortcut(k) {
		return false
	}

	c.Refresh(ctx)

	return true
}

// Run loads the first rate and then refreshes it every RefreshInterval until ctx is done
func (c *Converter) Run(ctx context.Context) error {
	c.Refresh(ctx)

	ticker := time.NewTicker(c.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.logger.Debug("periodic refresh")
			c.Refresh(ctx)
		}
	}
}

// Close cancels a pending debounced recompute
func (c *Converter) Close() {
	c.debouncer.Stop()
}

func (c *Converter) update(ctx context.Context, sym label.Symbol) {
	if _, err := c.FetchRate(ctx, sym); errors.Is(err, ErrSuperseded) {
		return
	}

	c.Recompute()
}

func (c *Converter) selected() (label.Symbol, bool) {
	value := c.display.Value(FieldCurrency)

	sym, err := label.Parse(value)
	if err != nil {
		c.logger.WithError(err).WithField("value", value).Warn("currency selection ignored")
		return "", false
	}

	return sym, true
}
