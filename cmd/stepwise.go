package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentlens/rentlens/internal/regress"
)

var stepwiseLog bool

var stepwiseCmd = &cobra.Command{
	Use:   "stepwise <csv>",
	Short: "Backward AIC elimination from the full model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadCleaned(args[0])
		if err != nil {
			return err
		}
		transform := regress.Identity
		if stepwiseLog {
			transform = regress.Log
		}
		sel, err := regress.Backward(fullFormula(transform), ds)
		if err != nil {
			return err
		}
		return emit(sel.Markdown())
	},
}

func init() {
	stepwiseCmd.Flags().BoolVar(&stepwiseLog, "log", false, "select on log(response)")
	rootCmd.AddCommand(stepwiseCmd)
}
