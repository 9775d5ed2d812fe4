package analyzer

import (
	"FinSight/internal/calculator"
	"FinSight/internal/model"
	"FinSight/internal/risk"
)

// buildAnalysis computes every indicator the series supports and runs
// the risk classifier over the result. Indicators the series is too
// short for stay nil. An empty series yields an analysis with no
// metrics and no risk level.
func buildAnalysis(symbol string, series *model.PriceSeries) *model.StockAnalysis {
	a := model.NewStockAnalysis(symbol)
	if series.Empty() {
		return a
	}

	closes := series.Closes()

	if v, ok := calculator.PeriodChange(closes, 1); ok {
		a.PriceChange1D = &v
	}
	if v, ok := calculator.PeriodChange(closes, 7); ok {
		a.PriceChange7D = &v
	}
	if v, ok := calculator.PeriodChange(closes, 30); ok {
		a.PriceChange30D = &v
	}
	if v, ok := calculator.Volatility(closes, 30); ok {
		a.Volatility30D = &v
	}
	if v, ok := calculator.RSI(closes, 14); ok {
		a.RSI14 = &v
	}
	if above, ok := calculator.AboveMovingAverage(closes, 50); ok {
		a.Above50MA = &above
	}
	if above, ok := calculator.AboveMovingAverage(closes, 200); ok {
		a.Above200MA = &above
	}

	level, factors := risk.Classify(a)
	a.RiskLevel = &level
	a.RiskFactors = factors
	return a
}
