// Package risk maps technical indicators to a risk level with
// human-readable factor descriptions.
package risk

import (
	"fmt"

	"FinSight/internal/model"
)

// Rule thresholds. Each rule is evaluated independently against the
// indicators that are actually present; an absent indicator never
// triggers its rule.
const (
	highVolatility     = 50
	moderateVolatility = 30
	overboughtRSI      = 70
	oversoldRSI        = 30
	declineThreshold   = -10
)

// Classify accumulates a risk score over the analysis' indicators and
// maps it to a level. It is a total function: any combination of
// present and absent indicators yields exactly one level, with the
// triggered factors listed in rule order.
func Classify(a *model.StockAnalysis) (model.RiskLevel, []string) {
	score := 0
	var factors []string

	if v := a.Volatility30D; v != nil {
		if *v > highVolatility {
			factors = append(factors, fmt.Sprintf("High volatility (%.1f%%)", *v))
			score += 2
		} else if *v > moderateVolatility {
			factors = append(factors, fmt.Sprintf("Moderate volatility (%.1f%%)", *v))
			score++
		}
	}

	if rsi := a.RSI14; rsi != nil {
		if *rsi > overboughtRSI {
			factors = append(factors, fmt.Sprintf("Overbought (RSI: %.1f)", *rsi))
			score++
		} else if *rsi < oversoldRSI {
			factors = append(factors, fmt.Sprintf("Oversold (RSI: %.1f)", *rsi))
			score++
		}
	}

	// Only an explicit "below" counts; an unknown trend does not.
	if a.Above200MA != nil && !*a.Above200MA {
		factors = append(factors, "Below 200-day moving average")
		score++
	}

	if c := a.PriceChange30D; c != nil && *c < declineThreshold {
		factors = append(factors, fmt.Sprintf("Significant 30-day decline (%.1f%%)", *c))
		score++
	}

	switch {
	case score >= 4:
		return model.RiskVeryHigh, factors
	case score >= 3:
		return model.RiskHigh, factors
	case score >= 2:
		return model.RiskMedium, factors
	default:
		return model.RiskLow, factors
	}
}
