package model

import "github.com/shopspring/decimal"

// Holding represents a single stock position in a portfolio.
//
// Shares and cost basis come from the input file or symbol list; the
// remaining fields are filled by quote enrichment and stay nil when the
// provider has no data for them. Nil means "not available", which is
// distinct from zero everywhere in this package.
type Holding struct {
	Symbol    string           `json:"symbol"`
	Shares    decimal.Decimal  `json:"shares"`
	CostBasis *decimal.Decimal `json:"cost_basis"`

	// Populated by enrichment.
	CurrentPrice     *decimal.Decimal `json:"current_price"`
	CompanyName      *string          `json:"company_name"`
	Sector           *string          `json:"sector"`
	Industry         *string          `json:"industry"`
	MarketCap        *decimal.Decimal `json:"market_cap"`
	PERatio          *float64         `json:"pe_ratio"`
	DividendYield    *float64         `json:"dividend_yield"`
	FiftyTwoWeekHigh *decimal.Decimal `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  *decimal.Decimal `json:"fifty_two_week_low"`
}

// CurrentValue returns shares × current price, or nil when the price is
// not available. Recomputed on every call.
func (h *Holding) CurrentValue() *decimal.Decimal {
	if h.CurrentPrice == nil {
		return nil
	}
	v := h.Shares.Mul(*h.CurrentPrice)
	return &v
}

// TotalGainLoss returns the unrealized gain or loss in money terms, or
// nil when either the price or the cost basis is not available.
func (h *Holding) TotalGainLoss() *decimal.Decimal {
	if h.CurrentPrice == nil || h.CostBasis == nil {
		return nil
	}
	v := h.CurrentPrice.Sub(*h.CostBasis).Mul(h.Shares)
	return &v
}

// GainLossPercent returns the percentage gain or loss against the cost
// basis, or nil when the price is missing or the cost basis is missing
// or non-positive.
func (h *Holding) GainLossPercent() *float64 {
	if h.CurrentPrice == nil || h.CostBasis == nil || !h.CostBasis.IsPositive() {
		return nil
	}
	p := h.CurrentPrice.Sub(*h.CostBasis).
		Div(*h.CostBasis).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
	return &p
}

// Quote holds the market snapshot a quote provider returns for a symbol.
// Any field may be nil when the provider has no value for it.
type Quote struct {
	Price            *decimal.Decimal
	CompanyName      *string
	Sector           *string
	Industry         *string
	MarketCap        *decimal.Decimal
	PERatio          *float64
	DividendYield    *float64
	FiftyTwoWeekHigh *decimal.Decimal
	FiftyTwoWeekLow  *decimal.Decimal
}

// ApplyQuote copies every present quote field onto the holding. Missing
// quote fields leave the holding untouched.
func (h *Holding) ApplyQuote(q *Quote) {
	if q == nil {
		return
	}
	if q.Price != nil {
		h.CurrentPrice = q.Price
	}
	if q.CompanyName != nil {
		h.CompanyName = q.CompanyName
	}
	if q.Sector != nil {
		h.Sector = q.Sector
	}
	if q.Industry != nil {
		h.Industry = q.Industry
	}
	if q.MarketCap != nil {
		h.MarketCap = q.MarketCap
	}
	if q.PERatio != nil {
		h.PERatio = q.PERatio
	}
	if q.DividendYield != nil {
		h.DividendYield = q.DividendYield
	}
	if q.FiftyTwoWeekHigh != nil {
		h.FiftyTwoWeekHigh = q.FiftyTwoWeekHigh
	}
	if q.FiftyTwoWeekLow != nil {
		h.FiftyTwoWeekLow = q.FiftyTwoWeekLow
	}
}
