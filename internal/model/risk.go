package model

// RiskLevel classifies a holding's technical risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// riskRank orders risk levels from least to most severe.
var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskVeryHigh: 3,
}

// Rank returns the severity order of the level, RiskLow being lowest.
func (r RiskLevel) Rank() int {
	return riskRank[r]
}
