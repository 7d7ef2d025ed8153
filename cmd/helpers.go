package cmd

import (
	"fmt"
	"os"

	"github.com/rentlens/rentlens/internal/dataset"
	"github.com/rentlens/rentlens/internal/regress"
)

// loadCleaned reads the CSV at path and applies the standard cleaning pass
// for the configured region.
func loadCleaned(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	ds, err := dataset.Load(f)
	if err != nil {
		return nil, err
	}
	clean, stats, err := dataset.Clean(ds, cfg.Region)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "%s (region %q)\n", stats, cfg.Region)
	return clean, nil
}

// controlFormula is the baseline model: response on the structural
// controls only.
func controlFormula(transform regress.Transform) regress.Formula {
	return regress.Formula{
		Response:  cfg.Response,
		Transform: transform,
		Terms:     append([]string{}, cfg.Controls...),
	}
}

// fullFormula regresses the response on every configured predictor.
func fullFormula(transform regress.Transform) regress.Formula {
	return regress.Formula{
		Response:  cfg.Response,
		Transform: transform,
		Terms:     append([]string{}, cfg.Predictors...),
	}
}

// emit writes markdown to --output when set, stdout otherwise.
func emit(md string) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("✓ Wrote report to %s\n", outputPath)
		return nil
	}
	fmt.Println(md)
	return nil
}
