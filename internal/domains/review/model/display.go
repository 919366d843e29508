package model

import "time"

// StarFlags computes the discrete 5-star display for a single review. Star i,
// counted 1-indexed from the high end, is full iff rating > 5-i, so a rating
// of 3 lights exactly the three lowest-threshold stars and there are never
// half-stars.
func StarFlags(rating int) [5]bool {
	var stars [5]bool
	for i := 1; i <= 5; i++ {
		stars[i-1] = rating > 5-i
	}
	return stars
}

// AggregateFillPercent converts an average rating into the continuous fill
// percentage used for the aggregate star block, clamped to [0,100]. This is
// deliberately a different rule from the discrete per-review stars.
func AggregateFillPercent(avg float64) float64 {
	if avg < 0 {
		avg = 0
	}
	if avg > 5 {
		avg = 5
	}
	return avg / 5 * 100
}

// FormatDate renders a review timestamp the way the UI shows it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
