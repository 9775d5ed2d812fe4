package calculator

import "FinSight/internal/model"

// Range52Week scans the most recent 252 trading days of the series and
// returns the highest and lowest close. Used as a fallback when the
// quote provider does not report a 52-week range. The third return
// value is false for an empty series.
func Range52Week(series *model.PriceSeries) (high, low float64, ok bool) {
	if series.Empty() {
		return 0, 0, false
	}
	points := series.Points
	start := len(points) - 252
	if start < 0 {
		start = 0
	}
	high = points[start].Close
	low = points[start].Close
	for _, p := range points[start:] {
		if p.Close > high {
			high = p.Close
		}
		if p.Close < low {
			low = p.Close
		}
	}
	return high, low, true
}
