package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectorUnknown is the allocation bucket for holdings without a sector.
const SectorUnknown = "Unknown"

// Portfolio is an ordered collection of holdings.
type Portfolio struct {
	Name      string     `json:"name"`
	Holdings  []*Holding `json:"holdings"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewPortfolio creates a named portfolio.
func NewPortfolio(name string, holdings []*Holding) *Portfolio {
	if name == "" {
		name = "My Portfolio"
	}
	return &Portfolio{Name: name, Holdings: holdings, CreatedAt: time.Now()}
}

// TotalValue sums the current value of all holdings. Holdings without a
// price contribute zero.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		if v := h.CurrentValue(); v != nil {
			total = total.Add(*v)
		}
	}
	return total
}

// TotalCost sums cost basis × shares across holdings. Holdings without a
// cost basis contribute zero.
func (p *Portfolio) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		if h.CostBasis != nil {
			total = total.Add(h.CostBasis.Mul(h.Shares))
		}
	}
	return total
}

// TotalGainLoss returns total value minus total cost.
func (p *Portfolio) TotalGainLoss() decimal.Decimal {
	return p.TotalValue().Sub(p.TotalCost())
}

// TotalGainLossPercent returns the overall percentage gain or loss, or 0
// when the total cost is zero.
func (p *Portfolio) TotalGainLossPercent() float64 {
	cost := p.TotalCost()
	if !cost.IsPositive() {
		return 0
	}
	return p.TotalGainLoss().Div(cost).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// Allocation returns each holding's share of total value as a
// percentage. The map is empty when the total value is zero.
func (p *Portfolio) Allocation() map[string]float64 {
	total := p.TotalValue()
	alloc := make(map[string]float64)
	if total.IsZero() {
		return alloc
	}
	hundred := decimal.NewFromInt(100)
	for _, h := range p.Holdings {
		value := decimal.Zero
		if v := h.CurrentValue(); v != nil {
			value = *v
		}
		alloc[h.Symbol] = value.Div(total).Mul(hundred).InexactFloat64()
	}
	return alloc
}

// SectorAllocation returns each sector's share of total value as a
// percentage, grouping holdings without a sector under SectorUnknown.
// The map is empty when the total value is zero. Ordering for display is
// the caller's concern.
func (p *Portfolio) SectorAllocation() map[string]float64 {
	total := p.TotalValue()
	alloc := make(map[string]float64)
	if total.IsZero() {
		return alloc
	}
	sectorValues := make(map[string]decimal.Decimal)
	for _, h := range p.Holdings {
		sector := SectorUnknown
		if h.Sector != nil {
			sector = *h.Sector
		}
		value := decimal.Zero
		if v := h.CurrentValue(); v != nil {
			value = *v
		}
		sectorValues[sector] = sectorValues[sector].Add(value)
	}
	hundred := decimal.NewFromInt(100)
	for sector, value := range sectorValues {
		alloc[sector] = value.Div(total).Mul(hundred).InexactFloat64()
	}
	return alloc
}
