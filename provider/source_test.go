package provider

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/dhconv/label"
)

func TestLatest_Rate(t *testing.T) {
	t.Parallel()

	latest := Latest{
		Base: label.USD,
		Rates: map[label.Symbol]float64{
			label.MAD: 9.95,
			label.EUR: 0.92,
			label.CAD: 0,
			label.JPY: math.NaN(),
			label.GBP: math.Inf(1),
		},
	}

	testCases := []struct {
		name     string
		to       label.Symbol
		expected float64
		err      error
	}{
		{
			name:     "test_rate_present",
			to:       label.MAD,
			expected: 9.95,
		},
		{
			name: "test_rate_absent",
			to:   label.SAR,
			err:  ErrMissingRate,
		},
		{
			name: "test_rate_zero",
			to:   label.CAD,
			err:  ErrMissingRate,
		},
		{
			name: "test_rate_nan",
			to:   label.JPY,
			err:  ErrMissingRate,
		},
		{
			name: "test_rate_inf",
			to:   label.GBP,
			err:  ErrMissingRate,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := latest.Rate(tc.to)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("rate: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
