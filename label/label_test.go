package label

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Symbol
		err      error
	}{
		{
			name:     "test_parse_upper",
			input:    "USD",
			expected: USD,
		},
		{
			name:     "test_parse_lower_spaces",
			input:    "  eur ",
			expected: EUR,
		},
		{
			name:  "test_parse_not_iso",
			input: "DH",
			err:   ErrSymbolNotValid,
		},
		{
			name:  "test_parse_unknown_iso",
			input: "ZZZ",
			err:   ErrSymbolNotValid,
		},
		{
			name:  "test_parse_not_supported",
			input: "SEK",
			err:   ErrSymbolNotSupported,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(len(Currencies), len(Names)); diff != "" {
		t.Errorf("names are not unique (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(MAD, Names["Moroccan Dirham"]); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestSelectable(t *testing.T) {
	t.Parallel()

	for _, sym := range Selectable {
		if _, ok := Currencies[sym]; !ok {
			t.Errorf("selectable symbol %s is missing from currencies", sym)
		}
	}

	if IsSelectable(MAD) {
		t.Errorf("target denomination must not be selectable")
	}

	if !IsSelectable(USD) {
		t.Errorf("USD must be selectable")
	}
}
