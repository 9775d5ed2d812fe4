package calculator

import "math"

// tradingDaysPerYear is the annualization base for daily returns.
const tradingDaysPerYear = 252

// Volatility computes the annualized volatility over the trailing
// `window` daily returns: the sample standard deviation of
// (p[i]−p[i-1])/p[i-1], multiplied by √252, as a percentage. Requires
// at least window+1 prices; otherwise, and when a price in the window
// is zero, the second return value is false.
func Volatility(prices []float64, window int) (float64, bool) {
	if window < 2 || len(prices) < window+1 {
		return 0, false
	}

	tail := prices[len(prices)-window-1:]
	returns := make([]float64, 0, window)
	for i := 1; i < len(tail); i++ {
		if tail[i-1] == 0 {
			return 0, false
		}
		returns = append(returns, (tail[i]-tail[i-1])/tail[i-1])
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear) * 100, true
}
