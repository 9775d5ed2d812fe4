package model

import (
	"time"

	"github.com/google/uuid"
)

// StockAnalysis holds the technical and sentiment analysis for one
// symbol. Pointer fields are nil when the underlying data was
// insufficient or unavailable; they serialize as explicit nulls so a
// saved analysis round-trips losslessly.
type StockAnalysis struct {
	Symbol     string    `json:"symbol"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Price metrics, percentages.
	PriceChange1D  *float64 `json:"price_change_1d"`
	PriceChange7D  *float64 `json:"price_change_7d"`
	PriceChange30D *float64 `json:"price_change_30d"`
	Volatility30D  *float64 `json:"volatility_30d"`

	// Technical indicators.
	RSI14      *float64 `json:"rsi_14"`
	Above50MA  *bool    `json:"above_50_ma"`
	Above200MA *bool    `json:"above_200_ma"`

	// Sentiment, populated by the news pass.
	NewsArticles     []NewsArticle   `json:"news_articles"`
	OverallSentiment *SentimentScore `json:"overall_sentiment"`
	SentimentSummary *string         `json:"sentiment_summary"`

	// Risk assessment.
	RiskLevel   *RiskLevel `json:"risk_level"`
	RiskFactors []string   `json:"risk_factors"`
}

// NewStockAnalysis creates an empty analysis for a symbol.
func NewStockAnalysis(symbol string) *StockAnalysis {
	return &StockAnalysis{Symbol: symbol, AnalyzedAt: time.Now()}
}

// PortfolioInsights is the structured portfolio-level assessment an
// insight service produces.
type PortfolioInsights struct {
	PortfolioSummary     *string  `json:"portfolio_summary"`
	DiversificationScore *int     `json:"diversification_score"`
	RiskScore            *int     `json:"risk_score"`
	OverallSentiment     *string  `json:"overall_sentiment"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Recommendations      []string `json:"recommendations"`
	MarketOutlook        *string  `json:"market_outlook"`
}

// PortfolioAnalysis is the complete result of one analysis run.
type PortfolioAnalysis struct {
	ID         uuid.UUID  `json:"id"`
	Portfolio  *Portfolio `json:"portfolio"`
	AnalyzedAt time.Time  `json:"analyzed_at"`

	StockAnalyses map[string]*StockAnalysis `json:"stock_analyses"`

	// Portfolio-level insights, nil/empty when the insight pass did not
	// run or its response could not be parsed.
	PortfolioSummary     *string  `json:"portfolio_summary"`
	DiversificationScore *int     `json:"diversification_score"`
	RiskScore            *int     `json:"risk_score"`
	OverallSentiment     *string  `json:"overall_sentiment"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Recommendations      []string `json:"recommendations"`
	MarketOutlook        *string  `json:"market_outlook"`
}

// NewPortfolioAnalysis creates an analysis shell for a portfolio.
func NewPortfolioAnalysis(p *Portfolio) *PortfolioAnalysis {
	return &PortfolioAnalysis{
		ID:            uuid.New(),
		Portfolio:     p,
		AnalyzedAt:    time.Now(),
		StockAnalyses: make(map[string]*StockAnalysis),
	}
}

// ApplyInsights copies the insight fields onto the analysis.
func (a *PortfolioAnalysis) ApplyInsights(in *PortfolioInsights) {
	if in == nil {
		return
	}
	a.PortfolioSummary = in.PortfolioSummary
	a.DiversificationScore = in.DiversificationScore
	a.RiskScore = in.RiskScore
	a.OverallSentiment = in.OverallSentiment
	a.Strengths = in.Strengths
	a.Weaknesses = in.Weaknesses
	a.Recommendations = in.Recommendations
	a.MarketOutlook = in.MarketOutlook
}
