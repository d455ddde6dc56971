package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerclean-dev/ledgerclean/internal/config"
	"github.com/ledgerclean-dev/ledgerclean/internal/logger"
	"github.com/ledgerclean-dev/ledgerclean/internal/pipeline"
)

func newCleanCommand() *cobra.Command {
	var configPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean a bank statement export and write the analysis-ready datasets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return runClean(cmd, configPath, outDir, input)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "path to the project config")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")

	return cmd
}

func runClean(cmd *cobra.Command, configPath, outDir, input string) error {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		// No project file: run with the stock vocabulary and defaults.
		cfg = config.Default("")
	} else if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	svc := pipeline.NewService(cfg, logger.New())

	path, err := svc.ResolveInput(input)
	if err != nil {
		return err
	}

	report, err := svc.Run(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cleaned %d transactions from %s (%s)\n", report.Rows, report.InputFile, report.Encoding)
	fmt.Fprintf(out, "  Flagged anomalies: %d\n", report.Anomalies)
	fmt.Fprintf(out, "  Total income:      %s\n", report.TotalIncome.StringFixed(2))
	fmt.Fprintf(out, "  Total expenses:    %s\n", report.TotalExpenses.StringFixed(2))
	fmt.Fprintf(out, "  Final balance:     %s\n", report.FinalBalance.StringFixed(2))
	fmt.Fprintf(out, "Outputs written to %s\n", cfg.Output.Dir)
	return nil
}
