package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentlens/rentlens/internal/regress"
	"github.com/rentlens/rentlens/internal/report"
)

var reportFull bool

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Ranked percent-change coefficient report for the log-price model",
	Long: `Fits log(response) with backward AIC selection (or the full model with
--full), converts each coefficient to a percent-change effect, and prints
the table ranked by effect magnitude with confidence intervals.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadCleaned(args[0])
		if err != nil {
			return err
		}
		var m *regress.Model
		if reportFull {
			m, err = regress.Fit(fullFormula(regress.Log), ds)
		} else {
			var sel *regress.Selection
			sel, err = regress.Backward(fullFormula(regress.Log), ds)
			if sel != nil {
				m = sel.Model
			}
		}
		if err != nil {
			return err
		}
		return emit(report.New(m, cfg.ConfidenceLevel).Markdown())
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportFull, "full", false, "report on the full model, skipping stepwise selection")
	rootCmd.AddCommand(reportCmd)
}
