package dhconv

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		amount   float64
		rate     float64
		expected Amounts
	}{
		{
			name:     "test_usd",
			amount:   5,
			rate:     10,
			expected: Amounts{DH: 50, Ryal: 1000, Frank: 5000},
		},
		{
			name:     "test_zero_amount",
			amount:   0,
			rate:     10.85,
			expected: Amounts{},
		},
		{
			name:     "test_fraction",
			amount:   0.5,
			rate:     2,
			expected: Amounts{DH: 1, Ryal: 20, Frank: 100},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.expected, Convert(tc.amount, tc.rate)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_Ratios(t *testing.T) {
	t.Parallel()

	amounts := []float64{0, 0.01, 1, 3.3, 17.25, 1234567.891, 1e9}
	rates := []float64{0.0027, 0.9, 9.155301, 10, 32.67, 260.4}

	for _, amount := range amounts {
		for _, rate := range rates {
			got := Convert(amount, rate)
			if got.DH != amount*rate {
				t.Errorf("DH of %v at %v: got %v", amount, rate, got.DH)
			}
			if got.Ryal != got.DH*RyalPerDH {
				t.Errorf("Ryal of %v at %v: got %v, DH %v", amount, rate, got.Ryal, got.DH)
			}
			if got.Frank != got.DH*FrankPerDH {
				t.Errorf("Frank of %v at %v: got %v, DH %v", amount, rate, got.Frank, got.DH)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "test_empty", input: "", expected: 0},
		{name: "test_integer", input: "5", expected: 5},
		{name: "test_decimal", input: "12.75", expected: 12.75},
		{name: "test_leading_spaces", input: "  42", expected: 42},
		{name: "test_trailing_garbage", input: "12abc", expected: 12},
		{name: "test_leading_dot", input: ".5", expected: 0.5},
		{name: "test_exponent", input: "1e3", expected: 1000},
		{name: "test_letters", input: "abc", expected: 0},
		{name: "test_negative", input: "-5", expected: 0},
		{name: "test_overflow", input: "1e400", expected: 0},
		{name: "test_sign_only", input: "+", expected: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseAmount(tc.input)
			if math.IsNaN(got) {
				t.Fatalf("NaN for %q", tc.input)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
