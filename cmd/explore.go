package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentlens/rentlens/internal/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <csv>",
	Short: "Clean the listings table and summarize every column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadCleaned(args[0])
		if err != nil {
			return err
		}
		return emit(explore.Summarize(ds).Markdown())
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
