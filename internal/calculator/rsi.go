package calculator

// RSI computes the Relative Strength Index over the trailing `period`
// day-over-day deltas: average gain divided by average loss, each a
// plain mean over the window. Requires at least period+1 prices;
// otherwise the second return value is false.
//
// When the window holds no losses the relative strength is infinite and
// the RSI is exactly 100.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period+1 {
		return 0, false
	}

	window := prices[len(prices)-period-1:]
	var gainSum, lossSum float64
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)
	if avgLoss == 0 {
		return 100, true
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), true
}
