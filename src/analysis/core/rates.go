package core

// -----------------------------------------------------------------------------

// SafeRate divides total by span, returning 0 when the span is not positive.
func SafeRate(total float64, span float64) float64 {
	if span <= 0 {
		return 0.0
	}
	return total / span
}

// -----------------------------------------------------------------------------

// SuccessRatio returns successes as a share of total, guarding empty totals.
func SuccessRatio(successes, total float64) float64 {
	if total == 0 {
		return 0.0
	}
	return successes / total
}
