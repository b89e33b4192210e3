// Package tui is the terminal front end of the converter: a redrawn screen and a raw keyboard loop.
package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/robotomize/dhconv"
	"github.com/robotomize/dhconv/label"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	newline     = "\r\n"
	maxAmount   = 32
)

// focusOrder is the Tab cycle
var focusOrder = []dhconv.Field{dhconv.FieldAmount, dhconv.FieldCurrency, dhconv.FieldRefresh}

var _ dhconv.Display = (*Screen)(nil)

type ScreenOption func(*Screen)

// WithoutColor renders plain text
func WithoutColor() ScreenOption {
	return func(s *Screen) {
		for _, c := range []*color.Color{s.focusColor, s.loadingColor, s.errorColor, s.resultColor} {
			c.DisableColor()
		}
	}
}

// Screen keeps the state of every field and redraws the whole frame on each change
type Screen struct {
	out io.Writer

	focusColor   *color.Color
	loadingColor *color.Color
	errorColor   *color.Color
	resultColor  *color.Color

	mtx      sync.Mutex
	texts    map[dhconv.Field]string
	loading  map[dhconv.Field]bool
	focus    dhconv.Field
	symbols  []label.Symbol
	selected int
	amount   []rune
}

// NewScreen returns a screen offering symbols in the currency field with initial selected
func NewScreen(out io.Writer, symbols []label.Symbol, initial label.Symbol, opts ...ScreenOption) *Screen {
	s := &Screen{
		out:          out,
		focusColor:   color.New(color.FgCyan, color.Bold),
		loadingColor: color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed, color.Bold),
		resultColor:  color.New(color.FgGreen),
		texts: map[dhconv.Field]string{
			dhconv.FieldResultDH:    dhconv.Placeholder,
			dhconv.FieldResultRyal:  dhconv.Placeholder,
			dhconv.FieldResultFrank: dhconv.Placeholder,
		},
		loading: make(map[dhconv.Field]bool),
		focus:   dhconv.FieldAmount,
		symbols: symbols,
	}

	for i, sym := range symbols {
		if sym == initial {
			s.selected = i
			break
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Screen) Value(f dhconv.Field) string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	switch f {
	case dhconv.FieldAmount:
		return string(s.amount)
	case dhconv.FieldCurrency:
		return s.currency().String()
	default:
		return s.texts[f]
	}
}

func (s *Screen) SetText(f dhconv.Field, text string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.texts[f] = text
	s.render()
}

func (s *Screen) SetLoading(f dhconv.Field, loading bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.loading[f] = loading
	s.render()
}

func (s *Screen) Focused() dhconv.Field {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.focus
}

// FocusNext moves the focus along the Tab cycle
func (s *Screen) FocusNext() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := 0
	for i, f := range focusOrder {
		if f == s.focus {
			next = (i + 1) % len(focusOrder)
			break
		}
	}

	s.focus = focusOrder[next]
	s.render()
}

// Type appends r to the amount. It reports whether the amount changed
func (s *Screen) Type(r rune) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !amountRune(r) || len(s.amount) >= maxAmount {
		return false
	}

	s.amount = append(s.amount, r)
	s.render()

	return true
}

// Backspace deletes the last rune of the amount. It reports whether the amount changed
func (s *Screen) Backspace() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.amount) == 0 {
		return false
	}

	s.amount = s.amount[:len(s.amount)-1]
	s.render()

	return true
}

// Cycle moves the currency selection by delta, wrapping around
func (s *Screen) Cycle(delta int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.symbols) == 0 {
		return
	}

	n := len(s.symbols)
	s.selected = ((s.selected+delta)%n + n) % n
	s.render()
}

// Render draws the current frame
func (s *Screen) Render() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.render()
}

func (s *Screen) currency() label.Symbol {
	if len(s.symbols) == 0 {
		return ""
	}

	return s.symbols[s.selected]
}

// render must be called with mtx held
func (s *Screen) render() {
	var b strings.Builder

	b.WriteString(clearScreen)
	b.WriteString("DH converter" + newline + newline)

	b.WriteString(s.line(dhconv.FieldAmount, "Amount", string(s.amount)+s.cursor(dhconv.FieldAmount)))

	sym := s.currency()
	b.WriteString(s.line(dhconv.FieldCurrency, "Currency",
		fmt.Sprintf("< %s > %s", sym, label.Currencies[sym].Name)))

	b.WriteString(newline)
	b.WriteString(s.line(dhconv.FieldResultDH, "DH", s.resultColor.Sprint(s.texts[dhconv.FieldResultDH])))
	b.WriteString(s.line(dhconv.FieldResultRyal, "Ryal", s.resultColor.Sprint(s.texts[dhconv.FieldResultRyal])))
	b.WriteString(s.line(dhconv.FieldResultFrank, "Frank", s.resultColor.Sprint(s.texts[dhconv.FieldResultFrank])))
	b.WriteString(newline)

	status := s.texts[dhconv.FieldStatus]
	if status == dhconv.StatusError {
		status = s.errorColor.Sprint(status)
	}
	b.WriteString(s.line(dhconv.FieldStatus, "Rate", status))

	b.WriteString(s.line(dhconv.FieldRefresh, "", "[ Refresh ]"))
	b.WriteString(newline)
	b.WriteString("Tab next field, arrows change currency, r refresh, q quit" + newline)

	_, _ = io.WriteString(s.out, b.String())
}

func (s *Screen) line(f dhconv.Field, title, value string) string {
	marker := "  "
	if s.focus == f {
		marker = s.focusColor.Sprint("> ")
		title = s.focusColor.Sprint(title)
	}

	if title != "" {
		title += ": "
	}

	loading := ""
	if s.loading[f] {
		loading = s.loadingColor.Sprint(" [loading]")
	}

	return marker + title + value + loading + newline
}

func (s *Screen) cursor(f dhconv.Field) string {
	if s.focus != f {
		return ""
	}

	return "_"
}

func amountRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		return true
	default:
		return false
	}
}
