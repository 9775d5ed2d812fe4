package model

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func holdingWithValue(symbol, sector string, value int64) *Holding {
	h := &Holding{
		Symbol:       symbol,
		Shares:       decimal.NewFromInt(1),
		CurrentPrice: dec(decimal.NewFromInt(value).String()),
	}
	if sector != "" {
		h.Sector = strPtr(sector)
	}
	return h
}

func TestPortfolio_Totals(t *testing.T) {
	p := NewPortfolio("test", []*Holding{
		{Symbol: "A", Shares: decimal.NewFromInt(10), CostBasis: dec("100"), CurrentPrice: dec("150")},
		{Symbol: "B", Shares: decimal.NewFromInt(2), CostBasis: dec("50"), CurrentPrice: dec("40")},
		{Symbol: "C", Shares: decimal.NewFromInt(3)}, // no price, no cost
	})

	if got := p.TotalValue(); !got.Equal(decimal.NewFromInt(1580)) {
		t.Errorf("expected total value 1580, got %s", got)
	}
	if got := p.TotalCost(); !got.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected total cost 1100, got %s", got)
	}
	if got := p.TotalGainLoss(); !got.Equal(decimal.NewFromInt(480)) {
		t.Errorf("expected total gain 480, got %s", got)
	}
	want := 480.0 / 1100.0 * 100
	if got := p.TotalGainLossPercent(); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected gain percent %v, got %v", want, got)
	}
}

func TestPortfolio_TotalGainLossPercent_ZeroCost(t *testing.T) {
	p := NewPortfolio("test", []*Holding{holdingWithValue("A", "", 1000)})
	if got := p.TotalGainLossPercent(); got != 0 {
		t.Errorf("expected 0 for zero total cost, got %v", got)
	}
}

func TestPortfolio_TotalValueAdditive(t *testing.T) {
	a := []*Holding{holdingWithValue("A", "", 1200), holdingWithValue("B", "", 800)}
	b := []*Holding{holdingWithValue("C", "", 3000)}

	pa := NewPortfolio("a", a)
	pb := NewPortfolio("b", b)
	combined := NewPortfolio("ab", append(append([]*Holding{}, a...), b...))

	if !combined.TotalValue().Equal(pa.TotalValue().Add(pb.TotalValue())) {
		t.Errorf("total value is not additive: %s != %s + %s",
			combined.TotalValue(), pa.TotalValue(), pb.TotalValue())
	}
}

func TestPortfolio_Allocation(t *testing.T) {
	p := NewPortfolio("test", []*Holding{
		holdingWithValue("A", "", 1000),
		holdingWithValue("B", "", 3000),
	})

	alloc := p.Allocation()
	if math.Abs(alloc["A"]-25.0) > 1e-9 {
		t.Errorf("expected A at 25%%, got %v", alloc["A"])
	}
	if math.Abs(alloc["B"]-75.0) > 1e-9 {
		t.Errorf("expected B at 75%%, got %v", alloc["B"])
	}

	sum := 0.0
	for _, pct := range alloc {
		sum += pct
	}
	if math.Abs(sum-100.0) > 1e-6 {
		t.Errorf("allocations must sum to 100, got %v", sum)
	}
}

func TestPortfolio_Allocation_ZeroValue(t *testing.T) {
	p := NewPortfolio("test", []*Holding{
		{Symbol: "A", Shares: decimal.NewFromInt(1)},
	})
	if alloc := p.Allocation(); len(alloc) != 0 {
		t.Errorf("expected empty allocation for zero total value, got %v", alloc)
	}
	if alloc := p.SectorAllocation(); len(alloc) != 0 {
		t.Errorf("expected empty sector allocation for zero total value, got %v", alloc)
	}
}

func TestPortfolio_SectorAllocation(t *testing.T) {
	p := NewPortfolio("test", []*Holding{
		holdingWithValue("A", "Technology", 1000),
		holdingWithValue("B", "Technology", 1000),
		holdingWithValue("C", "Energy", 1000),
		holdingWithValue("D", "", 1000), // no sector
	})

	alloc := p.SectorAllocation()
	if math.Abs(alloc["Technology"]-50.0) > 1e-9 {
		t.Errorf("expected Technology at 50%%, got %v", alloc["Technology"])
	}
	if math.Abs(alloc["Energy"]-25.0) > 1e-9 {
		t.Errorf("expected Energy at 25%%, got %v", alloc["Energy"])
	}
	if math.Abs(alloc[SectorUnknown]-25.0) > 1e-9 {
		t.Errorf("expected Unknown at 25%%, got %v", alloc[SectorUnknown])
	}
}

func TestNewPortfolio_DefaultName(t *testing.T) {
	p := NewPortfolio("", nil)
	if p.Name != "My Portfolio" {
		t.Errorf("expected default name, got %q", p.Name)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
}
