package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rentlens/rentlens/internal/regress"
)

var (
	fitLog   bool
	fitTerms []string
)

var fitCmd = &cobra.Command{
	Use:   "fit <csv>",
	Short: "Fit the control-only and full OLS models",
	Long: `Fits two models on the cleaned dataset: the control-only baseline
(structural terms) and the full model over every configured predictor.
Pass --log to fit the log-transformed response, or --terms to fit a single
custom model instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadCleaned(args[0])
		if err != nil {
			return err
		}
		transform := regress.Identity
		if fitLog {
			transform = regress.Log
		}

		if len(fitTerms) > 0 {
			f := regress.Formula{Response: cfg.Response, Transform: transform, Terms: fitTerms}
			m, err := regress.Fit(f, ds)
			if err != nil {
				return err
			}
			return emit(m.Markdown())
		}

		control, err := regress.Fit(controlFormula(transform), ds)
		if err != nil {
			return err
		}
		full, err := regress.Fit(fullFormula(transform), ds)
		if err != nil {
			return err
		}
		return emit(strings.Join([]string{control.Markdown(), full.Markdown()}, "\n"))
	},
}

func init() {
	fitCmd.Flags().BoolVar(&fitLog, "log", false, "fit log(response)")
	fitCmd.Flags().StringSliceVar(&fitTerms, "terms", nil, "fit a single model with these predictor terms")
	rootCmd.AddCommand(fitCmd)
}
