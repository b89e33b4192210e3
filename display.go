package dhconv

// Field identifies one element of the display surface
//
//go:generate stringer -type=Field -trimprefix=Field
type Field int

const (
	// FieldAmount the amount input
	FieldAmount Field = iota
	// FieldCurrency the currency selection
	FieldCurrency
	FieldResultDH
	FieldResultRyal
	FieldResultFrank
	// FieldStatus the rate line
	FieldStatus
	// FieldRefresh the refresh control
	FieldRefresh
)

// Display is the surface the converter reads input from and writes results to.
// Implementations must be safe for concurrent use and must not call back into the Converter
//
//go:generate mockgen -source display.go -destination mock_display.go -package dhconv
type Display interface {
	// Value returns the current content of an input field
	Value(f Field) string
	SetText(f Field, text string)
	SetLoading(f Field, loading bool)
	// Focused returns the field that has the input focus
	Focused() Field
}

// Key is a single key press with its modifiers
type Key struct {
	Rune rune
	Ctrl bool
	Alt  bool
	Meta bool
}

// RefreshKey refreshes the rate unless the amount field has focus or a modifier is held
const RefreshKey = 'r'
