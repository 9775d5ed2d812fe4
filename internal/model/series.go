package model

import "time"

// PricePoint is a single daily closing price.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries holds daily closing prices ordered oldest to newest.
type PriceSeries struct {
	Symbol    string       `json:"symbol"`
	Points    []PricePoint `json:"points"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Closes returns the closing prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Empty reports whether the series has no data points.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}
