// Command loan-revolver prints the repayment plan of a revolving loan.
//
// Usage:
//
//	loan-revolver a TOTAL_DEBT ANNUAL_RATE PAYMENT
//	loan-revolver c TOTAL_DEBT ANNUAL_RATE PERIOD_COUNT
//	loan-revolver serve
package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/loan-revolver/internal/config"
	"github.com/iwvelando/loan-revolver/internal/planner"
	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/iwvelando/loan-revolver/pkg/output"
	"github.com/iwvelando/loan-revolver/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configLocation string
	outputFormat   string
	logLevel       string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "loan-revolver MODE TOTAL_DEBT ANNUAL_RATE AMOUNT_OR_COUNT",
		Short: "Compute the repayment plan of a revolving loan",
		Long: `Compute the month-by-month repayment plan of a revolving loan.

MODE is "a" (by-amount: AMOUNT_OR_COUNT is the monthly payment) or
"c" (by-count: AMOUNT_OR_COUNT is the number of months to repay in).
ANNUAL_RATE is a nominal annual percentage, e.g. 18.0.

Examples:
  loan-revolver a 1000000 18.0 100000
  loan-revolver c 1000000 18.0 60 --output-format pretty`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configLocation, "config", constants.DefaultConfigFile,
		"path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level override (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.outputFormat, "output-format", "",
		"type of output override: json, pretty, csv")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func runPlan(cmd *cobra.Command, opts *rootOptions, args []string) error {
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configLocation, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel, "warn")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatJSON
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	req, err := validation.ParseArguments(args)
	if err != nil {
		return err
	}

	plan, err := planner.New(logger).Plan(req)
	if err != nil {
		return err
	}

	if err := output.Render(cmd.OutOrStdout(), outputFormat, plan); err != nil {
		logger.Error("failed to write plan",
			zap.String("op", "main.runPlan"),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
