// Package report renders a portfolio analysis as plain text and
// persists it as JSON. Presentation metadata for the risk and sentiment
// enums lives here, outside the decision logic.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"FinSight/internal/model"
)

const notAvailable = "N/A"

// riskMeta maps risk levels to display metadata.
var riskMeta = map[model.RiskLevel]struct {
	Emoji string
	Label string
}{
	model.RiskLow:      {"🟢", "LOW"},
	model.RiskMedium:   {"🟡", "MEDIUM"},
	model.RiskHigh:     {"🟠", "HIGH"},
	model.RiskVeryHigh: {"🔴", "VERY HIGH"},
}

// sentimentMeta maps sentiment scores to display metadata. Weight is
// the numeric score on a -1..1 scale.
var sentimentMeta = map[model.SentimentScore]struct {
	Emoji  string
	Weight float64
}{
	model.SentimentVeryBearish: {"🔴", -1.0},
	model.SentimentBearish:     {"🟠", -0.5},
	model.SentimentNeutral:     {"🟡", 0.0},
	model.SentimentBullish:     {"🟢", 0.5},
	model.SentimentVeryBullish: {"🟢✨", 1.0},
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return notAvailable
	}
	return "$" + humanize.CommafWithDigits(d.InexactFloat64(), 2)
}

func pct(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%+.2f%%", *v)
}

func num(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1f", *v)
}

func trend(above *bool) string {
	if above == nil {
		return notAvailable
	}
	if *above {
		return "above"
	}
	return "below"
}

// FormatReport renders the full analysis as a plain-text dashboard.
// Missing metrics render as N/A, never as zero.
func FormatReport(a *model.PortfolioAnalysis) string {
	p := a.Portfolio
	var b strings.Builder

	fmt.Fprintf(&b, "📊 %s | %s\n\n", p.Name, a.AnalyzedAt.Format("2006-01-02 15:04"))

	// Portfolio totals
	totalValue := p.TotalValue()
	fmt.Fprintf(&b, "Total Value:     $%s\n", humanize.CommafWithDigits(totalValue.InexactFloat64(), 2))
	fmt.Fprintf(&b, "Total Cost:      $%s\n", humanize.CommafWithDigits(p.TotalCost().InexactFloat64(), 2))
	fmt.Fprintf(&b, "Total Gain/Loss: $%s (%+.1f%%)\n\n",
		humanize.CommafWithDigits(p.TotalGainLoss().InexactFloat64(), 2), p.TotalGainLossPercent())

	// Per-holding table
	alloc := p.Allocation()
	for _, h := range p.Holdings {
		fmt.Fprintf(&b, "%s", h.Symbol)
		if h.CompanyName != nil {
			fmt.Fprintf(&b, " — %s", *h.CompanyName)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Price: %s | Value: %s | Gain: %s (%s)\n",
			money(h.CurrentPrice), money(h.CurrentValue()),
			money(h.TotalGainLoss()), pct(h.GainLossPercent()))
		if len(alloc) > 0 {
			fmt.Fprintf(&b, "  Allocation: %.1f%%\n", alloc[h.Symbol])
		}

		if sa, ok := a.StockAnalyses[h.Symbol]; ok {
			fmt.Fprintf(&b, "  1d: %s | 7d: %s | 30d: %s | Vol: %s | RSI: %s\n",
				pct(sa.PriceChange1D), pct(sa.PriceChange7D), pct(sa.PriceChange30D),
				num(sa.Volatility30D), num(sa.RSI14))
			fmt.Fprintf(&b, "  50d MA: %s | 200d MA: %s\n", trend(sa.Above50MA), trend(sa.Above200MA))
			if sa.RiskLevel != nil {
				meta := riskMeta[*sa.RiskLevel]
				fmt.Fprintf(&b, "  Risk: %s %s\n", meta.Emoji, meta.Label)
				for _, factor := range sa.RiskFactors {
					fmt.Fprintf(&b, "    • %s\n", factor)
				}
			} else {
				fmt.Fprintf(&b, "  Risk: %s\n", notAvailable)
			}
			if sa.OverallSentiment != nil {
				meta := sentimentMeta[*sa.OverallSentiment]
				fmt.Fprintf(&b, "  Sentiment: %s %s\n", meta.Emoji, *sa.OverallSentiment)
				if sa.SentimentSummary != nil {
					fmt.Fprintf(&b, "    %s\n", *sa.SentimentSummary)
				}
			}
		}
		b.WriteString("\n")
	}

	// Sector allocation, largest first.
	sectors := p.SectorAllocation()
	if len(sectors) > 0 {
		b.WriteString("Sector Allocation:\n")
		names := make([]string, 0, len(sectors))
		for name := range sectors {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if sectors[names[i]] != sectors[names[j]] {
				return sectors[names[i]] > sectors[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			fmt.Fprintf(&b, "  %-20s %5.1f%%\n", name, sectors[name])
		}
		b.WriteString("\n")
	}

	// AI insights
	if a.PortfolioSummary != nil {
		b.WriteString("🤖 AI Insights\n")
		fmt.Fprintf(&b, "  %s\n", *a.PortfolioSummary)
		if a.DiversificationScore != nil {
			fmt.Fprintf(&b, "  Diversification: %d/100\n", *a.DiversificationScore)
		}
		if a.RiskScore != nil {
			fmt.Fprintf(&b, "  Risk Score: %d/100\n", *a.RiskScore)
		}
		writeList(&b, "Strengths", a.Strengths)
		writeList(&b, "Weaknesses", a.Weaknesses)
		writeList(&b, "Recommendations", a.Recommendations)
		if a.MarketOutlook != nil {
			fmt.Fprintf(&b, "  Outlook: %s\n", *a.MarketOutlook)
		}
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "    • %s\n", item)
	}
}

// FormatProgress renders one progress event as a single line.
func FormatProgress(step, total int, description string) string {
	return fmt.Sprintf("[%d/%d] %s", step, total, description)
}

// Timestamp formats a time for file names.
func Timestamp(t time.Time) string {
	return t.Format("20060102-150405")
}
