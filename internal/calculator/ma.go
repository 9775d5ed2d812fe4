package calculator

// SMA computes the simple moving average of the trailing `period`
// prices. The second return value is false when fewer than `period`
// prices exist.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), true
}

// AboveMovingAverage reports whether the most recent price sits above
// the simple mean of the trailing `window` prices. The second return
// value is false when fewer than `window` prices exist.
func AboveMovingAverage(prices []float64, window int) (bool, bool) {
	ma, ok := SMA(prices, window)
	if !ok {
		return false, false
	}
	return prices[len(prices)-1] > ma, true
}
