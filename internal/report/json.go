package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"FinSight/internal/model"
)

// SaveAnalysis writes the analysis to a JSON file, creating parent
// directories as needed. Absent fields are written as explicit nulls so
// the document round-trips.
func SaveAnalysis(a *model.PortfolioAnalysis, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	return nil
}

// LoadAnalysis reads an analysis previously written by SaveAnalysis.
func LoadAnalysis(path string) (*model.PortfolioAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}
	var a model.PortfolioAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &a, nil
}
