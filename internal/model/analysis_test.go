package model

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStockAnalysis_ExplicitNulls(t *testing.T) {
	a := NewStockAnalysis("AAPL")
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"price_change_1d", "price_change_7d", "price_change_30d",
		"volatility_30d", "rsi_14", "above_50_ma", "above_200_ma",
		"overall_sentiment", "sentiment_summary", "risk_level",
	} {
		v, ok := raw[key]
		if !ok {
			t.Errorf("missing key %q, absent fields must serialize as null", key)
			continue
		}
		if string(v) != "null" {
			t.Errorf("key %q: expected null, got %s", key, v)
		}
	}
}

func TestPortfolioAnalysis_JSONRoundTrip(t *testing.T) {
	change := 4.2
	rsi := 61.5
	above := true
	level := RiskMedium
	sentiment := SentimentBullish
	summary := "steady quarter"

	p := NewPortfolio("retirement", []*Holding{
		{
			Symbol:       "AAPL",
			Shares:       decimal.NewFromInt(10),
			CostBasis:    dec("100.50"),
			CurrentPrice: dec("150.25"),
		},
	})
	analysis := NewPortfolioAnalysis(p)
	sa := NewStockAnalysis("AAPL")
	sa.PriceChange30D = &change
	sa.RSI14 = &rsi
	sa.Above200MA = &above
	sa.RiskLevel = &level
	sa.RiskFactors = []string{"Moderate volatility (35.0%)"}
	sa.OverallSentiment = &sentiment
	sa.SentimentSummary = &summary
	sa.NewsArticles = []NewsArticle{
		{
			Title:       "Apple ships",
			Source:      "Wire",
			URL:         "https://example.com/a",
			PublishedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			Symbol:      "AAPL",
		},
	}
	analysis.StockAnalyses["AAPL"] = sa

	first, err := json.Marshal(analysis)
	if err != nil {
		t.Fatal(err)
	}

	var decoded PortfolioAnalysis
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(&decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed the encoding:\nfirst:  %s\nsecond: %s", first, second)
	}

	if decoded.ID != analysis.ID {
		t.Errorf("id changed: %s != %s", decoded.ID, analysis.ID)
	}
	got := decoded.StockAnalyses["AAPL"]
	if got == nil {
		t.Fatal("stock analysis for AAPL lost in round trip")
	}
	if got.RiskLevel == nil || *got.RiskLevel != RiskMedium {
		t.Errorf("risk level lost: %v", got.RiskLevel)
	}
	if got.PriceChange7D != nil {
		t.Error("absent field must stay absent after round trip")
	}
	h := decoded.Portfolio.Holdings[0]
	if !h.Shares.Equal(decimal.NewFromInt(10)) || !h.CostBasis.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("holding decimals lost: shares=%s cost=%s", h.Shares, h.CostBasis)
	}
}

func TestPortfolioAnalysis_ApplyInsights(t *testing.T) {
	p := NewPortfolio("", nil)
	a := NewPortfolioAnalysis(p)

	a.ApplyInsights(nil)
	if a.PortfolioSummary != nil {
		t.Error("nil insights must be a no-op")
	}

	summary := "concentrated in tech"
	score := 4
	a.ApplyInsights(&PortfolioInsights{
		PortfolioSummary:     &summary,
		DiversificationScore: &score,
		Strengths:            []string{"strong performers"},
	})
	if a.PortfolioSummary == nil || *a.PortfolioSummary != summary {
		t.Errorf("summary not applied: %v", a.PortfolioSummary)
	}
	if a.DiversificationScore == nil || *a.DiversificationScore != 4 {
		t.Errorf("score not applied: %v", a.DiversificationScore)
	}
	if len(a.Strengths) != 1 {
		t.Errorf("strengths not applied: %v", a.Strengths)
	}
}
