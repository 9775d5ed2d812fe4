package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"FinSight/internal/model"
)

// LoadPortfolioCSV loads a portfolio from a delimited file with a
// header row naming at least "symbol" and "shares" columns, plus an
// optional "cost_basis" column.
//
// Rows with an empty symbol are skipped. A row with an unparseable or
// non-positive share count, or an unparseable cost basis, aborts the
// load: bad input fails here, never mid-analysis.
func LoadPortfolioCSV(path string) (*model.Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open portfolio file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	symbolCol, ok := cols["symbol"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "symbol")
	}
	sharesCol, ok := cols["shares"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "shares")
	}
	costCol, hasCost := cols["cost_basis"]

	field := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var holdings []*model.Holding
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		symbol := strings.ToUpper(field(row, symbolCol))
		if symbol == "" {
			continue
		}

		shares, err := decimal.NewFromString(field(row, sharesCol))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid shares for %s: %w", line, symbol, err)
		}
		if !shares.IsPositive() {
			return nil, fmt.Errorf("line %d: shares for %s must be positive", line, symbol)
		}

		h := &model.Holding{Symbol: symbol, Shares: shares}
		if hasCost {
			if raw := field(row, costCol); raw != "" {
				cost, err := decimal.NewFromString(raw)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid cost_basis for %s: %w", line, symbol, err)
				}
				h.CostBasis = &cost
			}
		}
		holdings = append(holdings, h)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return model.NewPortfolio(name, holdings), nil
}

// PortfolioFromSymbols builds a portfolio of one share per symbol, the
// quick path when no positions file is given. Empty entries are
// dropped.
func PortfolioFromSymbols(symbols []string) *model.Portfolio {
	var holdings []*model.Holding
	for _, s := range symbols {
		symbol := strings.ToUpper(strings.TrimSpace(s))
		if symbol == "" {
			continue
		}
		holdings = append(holdings, &model.Holding{
			Symbol: symbol,
			Shares: decimal.NewFromInt(1),
		})
	}
	return model.NewPortfolio("", holdings)
}
