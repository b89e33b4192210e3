package numfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "test_zero", value: 0, want: "0.00"},
		{name: "test_small", value: 50, want: "50.00"},
		{name: "test_thousands", value: 1000, want: "1,000.00"},
		{name: "test_rounding", value: 9.155301, want: "9.16"},
		{name: "test_millions", value: 1234567.891, want: "1,234,567.89"},
		{name: "test_fraction_only", value: 0.5, want: "0.50"},
		{name: "test_tie_rounds_up", value: 0.125, want: "0.13"},
		{name: "test_tie_odd", value: 0.375, want: "0.38"},
		{name: "test_tie_even", value: 0.625, want: "0.63"},
		{name: "test_product_tie", value: 0.5 * 0.25, want: "0.13"},
		{name: "test_below_tie", value: 2.675, want: "2.67"},
		{name: "test_below_tie_small", value: 1.015, want: "1.01"},
		{name: "test_grouped_tie", value: 1234.625, want: "1,234.63"},
		{name: "test_tiny", value: 1e-300, want: "0.00"},
		{name: "test_large", value: 1e12, want: "1,000,000,000,000.00"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, Format(tc.value)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
