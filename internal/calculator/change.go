package calculator

// PeriodChange computes the percent change between the last price and
// the price n positions back: (last − prior) / prior × 100. Requires at
// least n+1 prices; otherwise, and when the prior price is zero, the
// second return value is false.
func PeriodChange(prices []float64, n int) (float64, bool) {
	if n <= 0 || len(prices) < n+1 {
		return 0, false
	}
	last := prices[len(prices)-1]
	prior := prices[len(prices)-1-n]
	if prior == 0 {
		return 0, false
	}
	return (last - prior) / prior * 100, true
}
