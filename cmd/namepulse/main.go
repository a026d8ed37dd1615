package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/namepulse/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "namepulse",
	Short: "Cohort analytics for ranked given-name statistics",
	Long: `namepulse turns a ranked name snapshot (one row per name, decade and
gender) into a report covering concentration, diversity, lifecycle, churn
and linguistic patterns across decades.`,
	SilenceUsage: true,
}

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
