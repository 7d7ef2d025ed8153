package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/rentlens/rentlens/internal/config"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagRegion string
	outputPath string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Structured logger for the diagnostics engine; no-op unless --debug.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rentlens",
	Short: "rentlens: regression workflow for rental-listing data",
	Long: `rentlens cleans a rental-listings CSV for a single region, explores its
distributions, fits and compares OLS price models, selects terms by backward
AIC elimination, validates model assumptions, and reports coefficients as
percent-change effects.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.rentlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "region to keep (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c
	if flagRegion != "" {
		cfg.Region = flagRegion
	}

	logger = zap.NewNop()
	if debug {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
}
