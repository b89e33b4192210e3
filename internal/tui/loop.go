package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/robotomize/dhconv"
	"github.com/robotomize/dhconv/internal/logging"
)

// Converter is the part of dhconv.Converter the keyboard drives
type Converter interface {
	AmountChanged()
	CurrencyChanged(ctx context.Context)
	Refresh(ctx context.Context)
	Shortcut(k dhconv.Key) bool
}

// Loop reads key presses from in and applies them to screen and conv until the user quits,
// in is exhausted or ctx is done. Fetches run in the background and are awaited before Loop returns
func Loop(ctx context.Context, in io.Reader, screen *Screen, conv Converter) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logging.FromContext(ctx)

	background := func(fn func(ctx context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(ctx)
		}()
	}

	chunks := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])

				select {
				case chunks <- chunk:
				case <-ctx.Done():
					return
				}
			}

			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	screen.Render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		case chunk := <-chunks:
			for _, ev := range DecodeKeys(chunk) {
				if quit := handle(screen, conv, ev, background); quit {
					logger.Debug("quit requested")
					return nil
				}
			}
		}
	}
}

// handle applies one event. It reports whether the user asked to quit
func handle(screen *Screen, conv Converter, ev Event, background func(fn func(ctx context.Context))) bool {
	focus := screen.Focused()

	switch ev.Special {
	case KeyCtrlC, KeyEsc:
		return true
	case KeyTab:
		screen.FocusNext()
		return false
	case KeyBackspace:
		if focus == dhconv.FieldAmount && screen.Backspace() {
			conv.AmountChanged()
		}
		return false
	case KeyEnter:
		if focus == dhconv.FieldRefresh {
			background(conv.Refresh)
		}
		return false
	case KeyUp, KeyLeft, KeyDown, KeyRight:
		if focus != dhconv.FieldCurrency {
			return false
		}

		delta := 1
		if ev.Special == KeyUp || ev.Special == KeyLeft {
			delta = -1
		}

		screen.Cycle(delta)
		background(conv.CurrencyChanged)
		return false
	}

	if conv.Shortcut(ev.Key) {
		background(conv.Refresh)
		return false
	}

	if ev.Key.Ctrl || ev.Key.Alt || ev.Key.Meta {
		return false
	}

	switch focus {
	case dhconv.FieldAmount:
		if screen.Type(ev.Key.Rune) {
			conv.AmountChanged()
		}
	case dhconv.FieldRefresh:
		if ev.Key.Rune == ' ' {
			background(conv.Refresh)
			return false
		}
		return ev.Key.Rune == 'q'
	default:
		return ev.Key.Rune == 'q'
	}

	return false
}
