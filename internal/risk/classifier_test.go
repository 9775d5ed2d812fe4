package risk

import (
	"testing"

	"FinSight/internal/model"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

func analysisWith(vol, rsi *float64, above200 *bool, change30 *float64) *model.StockAnalysis {
	return &model.StockAnalysis{
		Symbol:         "TEST",
		Volatility30D:  vol,
		RSI14:          rsi,
		Above200MA:     above200,
		PriceChange30D: change30,
	}
}

func TestClassify_AllRulesFire(t *testing.T) {
	level, factors := Classify(analysisWith(f(55), f(75), b(false), f(-15)))
	if level != model.RiskVeryHigh {
		t.Errorf("expected very_high, got %s", level)
	}
	want := []string{
		"High volatility (55.0%)",
		"Overbought (RSI: 75.0)",
		"Below 200-day moving average",
		"Significant 30-day decline (-15.0%)",
	}
	if len(factors) != len(want) {
		t.Fatalf("expected %d factors, got %d: %v", len(want), len(factors), factors)
	}
	for i, w := range want {
		if factors[i] != w {
			t.Errorf("factor %d: expected %q, got %q", i, w, factors[i])
		}
	}
}

func TestClassify_NoIndicators(t *testing.T) {
	level, factors := Classify(analysisWith(nil, nil, nil, nil))
	if level != model.RiskLow {
		t.Errorf("expected low for no indicators, got %s", level)
	}
	if len(factors) != 0 {
		t.Errorf("expected no factors, got %v", factors)
	}
}

func TestClassify_Levels(t *testing.T) {
	tests := []struct {
		name     string
		analysis *model.StockAnalysis
		want     model.RiskLevel
		factors  int
	}{
		{"moderate volatility only", analysisWith(f(31), nil, nil, nil), model.RiskLow, 1},
		{"high volatility only", analysisWith(f(51), nil, nil, nil), model.RiskMedium, 1},
		{"oversold only", analysisWith(nil, f(25), nil, nil), model.RiskLow, 1},
		{"overbought and decline", analysisWith(nil, f(75), nil, f(-12)), model.RiskMedium, 2},
		{"three rules", analysisWith(f(35), f(25), b(false), nil), model.RiskHigh, 3},
		{"unknown trend does not count", analysisWith(nil, nil, nil, nil), model.RiskLow, 0},
		{"above trend does not count", analysisWith(nil, nil, b(true), nil), model.RiskLow, 0},
		{"boundary volatility 30", analysisWith(f(30), nil, nil, nil), model.RiskLow, 0},
		{"boundary volatility 50", analysisWith(f(50), nil, nil, nil), model.RiskLow, 1},
		{"boundary RSI 70", analysisWith(nil, f(70), nil, nil), model.RiskLow, 0},
		{"boundary RSI 30", analysisWith(nil, f(30), nil, nil), model.RiskLow, 0},
		{"boundary decline -10", analysisWith(nil, nil, nil, f(-10)), model.RiskLow, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, factors := Classify(tt.analysis)
			if level != tt.want {
				t.Errorf("expected %s, got %s", tt.want, level)
			}
			if len(factors) != tt.factors {
				t.Errorf("expected %d factors, got %v", tt.factors, factors)
			}
		})
	}
}

func TestClassify_MonotonicScore(t *testing.T) {
	// Adding a triggering condition never lowers the level.
	base := analysisWith(nil, f(75), nil, f(-15))
	baseLevel, _ := Classify(base)

	calm := analysisWith(f(29), f(75), nil, f(-15))
	calmLevel, _ := Classify(calm)
	if calmLevel.Rank() < baseLevel.Rank() {
		t.Errorf("sub-threshold volatility lowered the level: %s < %s", calmLevel, baseLevel)
	}

	moderate := analysisWith(f(31), f(75), nil, f(-15))
	moderateLevel, _ := Classify(moderate)
	if moderateLevel.Rank() < calmLevel.Rank() {
		t.Errorf("crossing 30%% volatility lowered the level: %s < %s", moderateLevel, calmLevel)
	}

	high := analysisWith(f(55), f(75), nil, f(-15))
	highLevel, _ := Classify(high)
	if highLevel.Rank() < moderateLevel.Rank() {
		t.Errorf("crossing 50%% volatility lowered the level: %s < %s", highLevel, moderateLevel)
	}
}

func TestClassify_VolatilityRulesMutuallyExclusive(t *testing.T) {
	_, factors := Classify(analysisWith(f(60), nil, nil, nil))
	if len(factors) != 1 {
		t.Fatalf("high volatility must not also report moderate, got %v", factors)
	}
	if factors[0] != "High volatility (60.0%)" {
		t.Errorf("unexpected factor %q", factors[0])
	}
}
