package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/namepulse/internal/app"
	"github.com/okian/namepulse/internal/config"
	"github.com/okian/namepulse/internal/render"
	"github.com/okian/namepulse/pkg/logger"
)

var (
	reportFormat string
	reportData   string
	reportOut    string
)

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "summary", "output format (summary|markdown|json)")
	reportCmd.Flags().StringVarP(&reportData, "data", "d", "", "snapshot CSV path (overrides config)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write output to file instead of stdout")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute a report from a snapshot and render it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			return err
		}
		if reportData != "" {
			cfg.DataPath = reportData
		}

		svc, err := app.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		rep, err := svc.Report(ctx)
		if err != nil {
			return err
		}

		out := os.Stdout
		if reportOut != "" {
			f, err := os.Create(reportOut)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch reportFormat {
		case "markdown", "md":
			return render.Markdown(out, rep)
		case "json":
			return render.JSON(out, rep)
		case "summary", "":
			return render.Summary(out, rep)
		default:
			return fmt.Errorf("unknown format %q", reportFormat)
		}
	},
}
