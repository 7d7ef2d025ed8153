package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentlens/rentlens/internal/diagnostics"
	"github.com/rentlens/rentlens/internal/regress"
)

var (
	diagFull bool
	diagLog  bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <csv>",
	Short: "Run influence, heteroscedasticity, normality, and VIF checks",
	Long: `Runs the stepwise-selected model through the diagnostics engine:
Cook's distance (flagging observations above 4/n), the Breusch-Pagan test,
the Shapiro-Wilk residual-normality test, and per-column variance inflation
factors. Pass --full to diagnose the full model instead of the selected one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadCleaned(args[0])
		if err != nil {
			return err
		}
		transform := regress.Identity
		if diagLog {
			transform = regress.Log
		}

		var m *regress.Model
		if diagFull {
			m, err = regress.Fit(fullFormula(transform), ds)
		} else {
			var sel *regress.Selection
			sel, err = regress.Backward(fullFormula(transform), ds)
			if sel != nil {
				m = sel.Model
			}
		}
		if err != nil {
			return err
		}

		results, err := diagnostics.NewEngine(logger).Run(m)
		if err != nil {
			return err
		}
		return emit(m.Markdown() + "\n" + results.Markdown())
	},
}

func init() {
	diagnoseCmd.Flags().BoolVar(&diagFull, "full", false, "diagnose the full model, skipping stepwise selection")
	diagnoseCmd.Flags().BoolVar(&diagLog, "log", false, "diagnose on log(response)")
	rootCmd.AddCommand(diagnoseCmd)
}
