// Package label describes the currencies the converter knows about.
package label

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

var (
	ErrSymbolNotValid     = errors.New("currency symbol is not a valid ISO 4217 code")
	ErrSymbolNotSupported = errors.New("currency symbol is not supported")
)

// Symbol is an ISO 4217 alphabetic currency code
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Currency pairs a symbol with its english display name
type Currency struct {
	Symbol Symbol
	Name   string
}

const (
	AED Symbol = "AED"
	CAD Symbol = "CAD"
	CHF Symbol = "CHF"
	CNY Symbol = "CNY"
	DZD Symbol = "DZD"
	EGP Symbol = "EGP"
	EUR Symbol = "EUR"
	GBP Symbol = "GBP"
	JPY Symbol = "JPY"
	KWD Symbol = "KWD"
	MAD Symbol = "MAD"
	QAR Symbol = "QAR"
	SAR Symbol = "SAR"
	TND Symbol = "TND"
	TRY Symbol = "TRY"
	USD Symbol = "USD"
)

// Currencies indexes every known currency by symbol
var Currencies = map[Symbol]Currency{
	AED: {Symbol: AED, Name: "UAE Dirham"},
	CAD: {Symbol: CAD, Name: "Canadian Dollar"},
	CHF: {Symbol: CHF, Name: "Swiss Franc"},
	CNY: {Symbol: CNY, Name: "Chinese Yuan"},
	DZD: {Symbol: DZD, Name: "Algerian Dinar"},
	EGP: {Symbol: EGP, Name: "Egyptian Pound"},
	EUR: {Symbol: EUR, Name: "Euro"},
	GBP: {Symbol: GBP, Name: "British Pound"},
	JPY: {Symbol: JPY, Name: "Japanese Yen"},
	KWD: {Symbol: KWD, Name: "Kuwaiti Dinar"},
	MAD: {Symbol: MAD, Name: "Moroccan Dirham"},
	QAR: {Symbol: QAR, Name: "Qatari Riyal"},
	SAR: {Symbol: SAR, Name: "Saudi Riyal"},
	TND: {Symbol: TND, Name: "Tunisian Dinar"},
	TRY: {Symbol: TRY, Name: "Turkish Lira"},
	USD: {Symbol: USD, Name: "US Dollar"},
}

// Names maps display names back to symbols. Rate pages that only print names are decoded with it.
var Names = func() map[string]Symbol {
	names := make(map[string]Symbol, len(Currencies))
	for sym, ccy := range Currencies {
		names[ccy.Name] = sym
	}

	return names
}()

// Selectable is the ordered list of currencies a user can convert from
var Selectable = []Symbol{USD, EUR, GBP, SAR, AED, QAR, KWD, CAD, CHF, JPY, CNY, TRY, EGP, TND, DZD}

// Parse validates s as an ISO 4217 code and checks that it is one of the Currencies
func Parse(s string) (Symbol, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSymbolNotValid, s)
	}

	sym := Symbol(unit.String())
	if _, ok := Currencies[sym]; !ok {
		return "", fmt.Errorf("%w: %s", ErrSymbolNotSupported, sym)
	}

	return sym, nil
}

// IsSelectable reports whether sym is offered for conversion
func IsSelectable(sym Symbol) bool {
	for _, s := range Selectable {
		if s == sym {
			return true
		}
	}

	return false
}
