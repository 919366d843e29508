package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStarFlags(t *testing.T) {
	tests := []struct {
		rating int
		want   [5]bool
	}{
		{0, [5]bool{false, false, false, false, false}},
		{1, [5]bool{false, false, false, false, true}},
		{2, [5]bool{false, false, false, true, true}},
		{3, [5]bool{false, false, true, true, true}},
		{4, [5]bool{false, true, true, true, true}},
		{5, [5]bool{true, true, true, true, true}},
	}

	for _, tt := range tests {
		got := StarFlags(tt.rating)
		assert.Equal(t, tt.want, got, "rating %d", tt.rating)

		// Exactly rating stars light up and they are contiguous from the
		// low-threshold end.
		full := 0
		for _, f := range got {
			if f {
				full++
			}
		}
		assert.Equal(t, tt.rating, full)
	}
}

func TestAggregateFillPercent(t *testing.T) {
	assert.InDelta(t, 0.0, AggregateFillPercent(0), 1e-9)
	assert.InDelta(t, 50.0, AggregateFillPercent(2.5), 1e-9)
	assert.InDelta(t, 74.0, AggregateFillPercent(3.7), 1e-9)
	assert.InDelta(t, 100.0, AggregateFillPercent(5), 1e-9)

	// Out-of-range averages clamp instead of over/underfilling.
	assert.InDelta(t, 0.0, AggregateFillPercent(-1), 1e-9)
	assert.InDelta(t, 100.0, AggregateFillPercent(6.2), 1e-9)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 11, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Nov 3, 2024", FormatDate(ts))
}
