package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/robotomize/dhconv"
	"github.com/robotomize/dhconv/internal/config"
	"github.com/robotomize/dhconv/internal/logging"
	"github.com/robotomize/dhconv/internal/tui"
	"github.com/robotomize/dhconv/label"
	"github.com/robotomize/dhconv/provider"
	"github.com/robotomize/dhconv/provider/cae"
	"github.com/robotomize/dhconv/provider/erapi"
	"github.com/robotomize/dhconv/provider/httputil"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		logging.DefaultLogger().Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		logging.DefaultLogger().Fatalf("logger: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, cfg); err != nil {
		logger.WithError(err).Error("dhconv stopped")
		closeLog()
		os.Exit(1)
	}
}

func realMain(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)

	source, err := newSource(cfg)
	if err != nil {
		return fmt.Errorf("rate source: %w", err)
	}

	initial, err := label.Parse(cfg.Currency)
	if err != nil {
		return fmt.Errorf("currency: %w", err)
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("terminal raw mode: %w", err)
		}

		defer func() {
			if err := term.Restore(fd, state); err != nil {
				logger.WithError(err).Warn("restore terminal")
			}
		}()
	}

	screen := tui.NewScreen(os.Stdout, label.Selectable, initial)

	conv := dhconv.New(source, screen,
		dhconv.WithCurrency(dhconv.DefaultCurrency),
		dhconv.WithRefreshInterval(cfg.RefreshInterval),
		dhconv.WithDebounceDelay(cfg.Debounce),
		dhconv.WithRequestTimeout(cfg.RequestTimeout),
		dhconv.WithRetryNum(cfg.RetryNum),
		dhconv.WithRetryDuration(cfg.RetryDuration),
		dhconv.WithLogger(logger.WithField("source", cfg.Source)),
	)
	defer conv.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- conv.Run(ctx)
	}()

	logger.WithFields(logrus.Fields{"source": cfg.Source, "currency": initial}).Info("converter started")

	loopErr := tui.Loop(ctx, os.Stdin, screen, conv)
	cancel()

	if err := <-done; err != nil {
		return fmt.Errorf("run converter: %w", err)
	}

	_, _ = io.WriteString(os.Stdout, "\r\n")

	if loopErr != nil {
		return fmt.Errorf("input loop: %w", loopErr)
	}

	return nil
}

func newSource(cfg *config.Config) (provider.Source, error) {
	client := httputil.DefaultClient()

	switch cfg.Source {
	case config.SourceCAE:
		u, err := resource(cfg.BaseURL, cae.DefaultLatestResource)
		if err != nil {
			return nil, err
		}
		return cae.NewSource(client, u), nil
	case config.SourceERAPI:
		u, err := resource(cfg.BaseURL, erapi.DefaultLatestResource)
		if err != nil {
			return nil, err
		}
		return erapi.NewSource(client, u), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

func resource(raw string, fallback url.URL) (url.URL, error) {
	if raw == "" {
		return fallback, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return url.URL{}, fmt.Errorf("base url parse: %w", err)
	}

	return *u, nil
}

// newLogger writes to the log file when configured, stderr otherwise. The terminal owns stdout
func newLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if cfg.LogFile == "" {
		return logging.NewLogger(os.Stderr, level), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return logging.NewLogger(f, level), func() { _ = f.Close() }, nil
}
