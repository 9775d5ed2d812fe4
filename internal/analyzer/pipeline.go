// Package analyzer orchestrates the per-holding analysis pipeline:
// enrichment, technical analysis, news sentiment, and portfolio-level
// insights. External collaborators are injected; any of them failing
// degrades the affected fields to "not available" without aborting the
// run.
package analyzer

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"FinSight/internal/ai"
	"FinSight/internal/calculator"
	"FinSight/internal/collector"
	"FinSight/internal/model"
)

// Stage of a holding within one analysis run. Holdings advance in
// strict order and are batched by stage: every holding finishes a stage
// before any holding starts the next one.
type Stage int

const (
	StagePending Stage = iota
	StageEnriched
	StageTechnicallyAnalyzed
	StageNewsAnalyzed
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "PENDING"
	case StageEnriched:
		return "ENRICHED"
	case StageTechnicallyAnalyzed:
		return "TECHNICALLY_ANALYZED"
	case StageNewsAnalyzed:
		return "NEWS_ANALYZED"
	case StageDone:
		return "DONE"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ProgressFunc receives one call per completed pipeline step. It must
// not mutate pipeline state.
type ProgressFunc func(step, total int, description string)

// StageFunc receives each per-holding stage transition.
type StageFunc func(symbol string, stage Stage)

// Options control which pipeline passes run.
type Options struct {
	IncludeNews     bool
	IncludeInsights bool
	NewsLimit       int
	HistoryDays     int
	Progress        ProgressFunc
	OnStage         StageFunc
}

// Pipeline runs the analysis passes over a portfolio. The news,
// sentiment, and insight collaborators may be nil, which disables the
// corresponding pass.
type Pipeline struct {
	quotes    collector.QuoteFetcher
	history   collector.HistoryFetcher
	news      collector.NewsFetcher
	sentiment ai.SentimentAnalyzer
	insights  ai.InsightGenerator
}

// NewPipeline creates a pipeline with explicit collaborators.
func NewPipeline(
	quotes collector.QuoteFetcher,
	history collector.HistoryFetcher,
	news collector.NewsFetcher,
	sentiment ai.SentimentAnalyzer,
	insights ai.InsightGenerator,
) *Pipeline {
	return &Pipeline{
		quotes:    quotes,
		history:   history,
		news:      news,
		sentiment: sentiment,
		insights:  insights,
	}
}

// run tracks per-holding stages and the step counter for one Analyze
// call.
type run struct {
	stages   map[string]Stage
	step     int
	total    int
	progress ProgressFunc
	onStage  StageFunc
}

func (r *run) complete(description string) {
	r.step++
	if r.progress != nil {
		r.progress(r.step, r.total, description)
	}
}

func (r *run) advance(symbol string, to Stage) {
	if to <= r.stages[symbol] {
		return
	}
	r.stages[symbol] = to
	if r.onStage != nil {
		r.onStage(symbol, to)
	}
}

// Analyze runs the full pipeline over a portfolio and returns the
// populated analysis. Every holding yields a result; failed external
// calls leave their fields nil.
func (p *Pipeline) Analyze(portfolio *model.Portfolio, opts Options) *model.PortfolioAnalysis {
	if opts.NewsLimit <= 0 {
		opts.NewsLimit = 5
	}
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 200
	}
	newsPass := opts.IncludeNews && p.news != nil
	insightPass := opts.IncludeInsights && p.insights != nil

	analysis := model.NewPortfolioAnalysis(portfolio)

	perHolding := 2
	if newsPass {
		perHolding = 3
	}
	r := &run{
		stages:   make(map[string]Stage, len(portfolio.Holdings)),
		total:    len(portfolio.Holdings) * perHolding,
		progress: opts.Progress,
		onStage:  opts.OnStage,
	}
	if insightPass {
		r.total++
	}

	// Pass 1: enrich every holding with current market data.
	for _, h := range portfolio.Holdings {
		p.enrich(h)
		r.advance(h.Symbol, StageEnriched)
		r.complete(fmt.Sprintf("Fetched data for %s", h.Symbol))
	}

	// Pass 2: technical analysis per holding.
	for _, h := range portfolio.Holdings {
		analysis.StockAnalyses[h.Symbol] = p.technical(h, opts.HistoryDays)
		r.advance(h.Symbol, StageTechnicallyAnalyzed)
		r.complete(fmt.Sprintf("Analyzed %s", h.Symbol))
	}

	// Pass 3: news and sentiment per holding.
	if newsPass {
		for _, h := range portfolio.Holdings {
			p.newsSentiment(analysis.StockAnalyses[h.Symbol], opts.NewsLimit)
			r.advance(h.Symbol, StageNewsAnalyzed)
			r.complete(fmt.Sprintf("Analyzed news for %s", h.Symbol))
		}
	}

	for _, h := range portfolio.Holdings {
		r.advance(h.Symbol, StageDone)
	}

	// Pass 4: portfolio-level insights.
	if insightPass {
		insights, err := p.insights.GenerateInsights(summarize(portfolio), analysis.StockAnalyses)
		if err != nil {
			log.Printf("[WARN] portfolio insights: %v", err)
		} else {
			analysis.ApplyInsights(insights)
		}
		r.complete("Generated AI insights")
	}

	return analysis
}

// enrich fills a holding's market fields from the quote provider. A
// failed fetch leaves the holding as loaded.
func (p *Pipeline) enrich(h *model.Holding) {
	quote, err := p.quotes.FetchQuote(h.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch quote for %s: %v", h.Symbol, err)
		return
	}
	h.ApplyQuote(quote)
}

// technical fetches price history and computes indicators and risk for
// one holding. When the quote carried no 52-week range, it is derived
// from the history instead.
func (p *Pipeline) technical(h *model.Holding, historyDays int) *model.StockAnalysis {
	series, err := p.history.FetchHistory(h.Symbol, historyDays)
	if err != nil {
		log.Printf("[WARN] fetch history for %s: %v", h.Symbol, err)
		series = &model.PriceSeries{Symbol: h.Symbol}
	}

	if h.FiftyTwoWeekHigh == nil && h.FiftyTwoWeekLow == nil {
		if high, low, ok := calculator.Range52Week(series); ok {
			hd := decimal.NewFromFloat(high)
			ld := decimal.NewFromFloat(low)
			h.FiftyTwoWeekHigh = &hd
			h.FiftyTwoWeekLow = &ld
		}
	}

	return buildAnalysis(h.Symbol, series)
}

// newsSentiment attaches news articles and, when a sentiment analyzer
// is available, their sentiment annotations to a stock analysis.
func (p *Pipeline) newsSentiment(a *model.StockAnalysis, limit int) {
	articles, err := p.news.FetchNews(a.Symbol, limit)
	if err != nil {
		log.Printf("[WARN] fetch news for %s: %v", a.Symbol, err)
		return
	}
	if len(articles) == 0 {
		return
	}

	if p.sentiment == nil {
		a.NewsArticles = articles
		return
	}

	result, err := p.sentiment.AnalyzeSentiment(a.Symbol, articles)
	if err != nil {
		log.Printf("[WARN] sentiment for %s: %v", a.Symbol, err)
		a.NewsArticles = articles
		return
	}
	a.NewsArticles = result.Articles
	overall := result.OverallSentiment
	a.OverallSentiment = &overall
	summary := result.Summary
	a.SentimentSummary = &summary
}

// summarize builds the portfolio overview text handed to the insight
// generator.
func summarize(p *model.Portfolio) string {
	var sectors []string
	for sector, pct := range p.SectorAllocation() {
		sectors = append(sectors, fmt.Sprintf("%s: %.1f%%", sector, pct))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Portfolio: %s\n", p.Name)
	fmt.Fprintf(&b, "Total Value: $%s\n", p.TotalValue().StringFixed(2))
	fmt.Fprintf(&b, "Total Gain/Loss: $%s (%.1f%%)\n",
		p.TotalGainLoss().StringFixed(2), p.TotalGainLossPercent())
	fmt.Fprintf(&b, "Holdings: %d stocks\n", len(p.Holdings))
	fmt.Fprintf(&b, "Sector Allocation: %s\n", strings.Join(sectors, ", "))
	return b.String()
}
