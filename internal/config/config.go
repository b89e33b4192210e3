// Package config assembles the converter settings from defaults, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/robotomize/dhconv/label"
	"github.com/sirupsen/logrus"
)

var ErrConfigNotValid = errors.New("config is not valid")

type Config struct {
	// Source names the rate provider, erapi or cae
	Source string
	// BaseURL overrides the provider endpoint, empty keeps the provider default
	BaseURL         string
	Currency        string
	RefreshInterval time.Duration
	Debounce        time.Duration
	RequestTimeout  time.Duration
	RetryNum        uint64
	RetryDuration   time.Duration
	LogLevel        string
	// LogFile receives the logs instead of stderr when set
	LogFile string
}

// Load reads the configuration. Flags in args win over environment variables, which win over defaults.
// The file given by -env-file is loaded into the environment first, without overriding variables already set
func Load(args []string) (*Config, error) {
	var (
		fromFlags Config
		envFile   string
	)

	fs := flag.NewFlagSet("dhconv", flag.ContinueOnError)
	fs.StringVar(&envFile, "env-file", "", "path to a dotenv file with "+EnvPrefix+"* variables")
	fs.StringVar(&fromFlags.Source, "source", DefaultSource, "rate source: erapi or cae")
	fs.StringVar(&fromFlags.BaseURL, "base-url", "", "rate source endpoint, empty uses the source default")
	fs.StringVar(&fromFlags.Currency, "currency", DefaultCurrency, "currency selected at startup")
	fs.DurationVar(&fromFlags.RefreshInterval, "refresh-interval", DefaultRefreshInterval, "periodic rate refresh")
	fs.DurationVar(&fromFlags.Debounce, "debounce", DefaultDebounce, "quiet period before amount edits are applied")
	fs.DurationVar(&fromFlags.RequestTimeout, "request-timeout", DefaultRequestTimeout, "timeout of a single rate request")
	fs.Uint64Var(&fromFlags.RetryNum, "retry-num", DefaultRetryNum, "retries after a network failure")
	fs.DurationVar(&fromFlags.RetryDuration, "retry-duration", DefaultRetryDuration, "pause between retries")
	fs.StringVar(&fromFlags.LogLevel, "log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&fromFlags.LogFile, "log-file", "", "write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("flag parse: %w", err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(cfg, &fromFlags)
		}
	})

	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var overrides = map[string]func(dst, src *Config){
	"source":           func(dst, src *Config) { dst.Source = src.Source },
	"base-url":         func(dst, src *Config) { dst.BaseURL = src.BaseURL },
	"currency":         func(dst, src *Config) { dst.Currency = src.Currency },
	"refresh-interval": func(dst, src *Config) { dst.RefreshInterval = src.RefreshInterval },
	"debounce":         func(dst, src *Config) { dst.Debounce = src.Debounce },
	"request-timeout":  func(dst, src *Config) { dst.RequestTimeout = src.RequestTimeout },
	"retry-num":        func(dst, src *Config) { dst.RetryNum = src.RetryNum },
	"retry-duration":   func(dst, src *Config) { dst.RetryDuration = src.RetryDuration },
	"log-level":        func(dst, src *Config) { dst.LogLevel = src.LogLevel },
	"log-file":         func(dst, src *Config) { dst.LogFile = src.LogFile },
}

func fromEnv() (*Config, error) {
	var errs *multierror.Error

	cfg := &Config{
		Source:   getEnv("SOURCE", DefaultSource),
		BaseURL:  getEnv("BASE_URL", ""),
		Currency: getEnv("CURRENCY", DefaultCurrency),
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	durations := []struct {
		key string
		dst *time.Duration
		def time.Duration
	}{
		{key: "REFRESH_INTERVAL", dst: &cfg.RefreshInterval, def: DefaultRefreshInterval},
		{key: "DEBOUNCE", dst: &cfg.Debounce, def: DefaultDebounce},
		{key: "REQUEST_TIMEOUT", dst: &cfg.RequestTimeout, def: DefaultRequestTimeout},
		{key: "RETRY_DURATION", dst: &cfg.RetryDuration, def: DefaultRetryDuration},
	}

	for _, d := range durations {
		v, err := getEnvDuration(d.key, d.def)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		*d.dst = v
	}

	retryNum, err := getEnvUint("RETRY_NUM", DefaultRetryNum)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	cfg.RetryNum = retryNum

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotValid, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs *multierror.Error

	switch c.Source {
	case SourceERAPI, SourceCAE:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown source %q", c.Source))
	}

	sym, err := label.Parse(c.Currency)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("currency: %w", err))
	} else if !label.IsSelectable(sym) {
		errs = multierror.Append(errs, fmt.Errorf("currency %s can not be selected", sym))
	}

	if c.RefreshInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("refresh interval must be positive, got %s", c.RefreshInterval))
	}

	if c.Debounce < 0 {
		errs = multierror.Append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Debounce))
	}

	if c.RequestTimeout <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}

	if c.RetryDuration <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("retry duration must be positive, got %s", c.RetryDuration))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("log level: %w", err))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigNotValid, err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}

	return d, nil
}

func getEnvUint(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}

	return n, nil
}
