package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/calculation"
	"github.com/Vishwanath-Code01/Loan-Advisor/internal/config"
	"github.com/Vishwanath-Code01/Loan-Advisor/internal/output"
)

var (
	inputFile    string
	outputFormat string
	debug        bool
)

// stderrLogger routes engine diagnostics to stderr so report output on
// stdout stays clean.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
	}
}
func (l stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}
func (l stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}
func (l stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loan-advisor",
		Short: "Compare prepaying a home loan against investing the lump sum",
		Long: `loan-advisor answers one question: given a home loan and extra cash,
are you better off prepaying principal or investing the money? It accounts
for amortization mechanics, statutory deduction caps, and the tax treatment
of investment gains.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the comparison for a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngineWithRules(cfg.Rules())
			engine.SetLogger(stderrLogger{debug: debug})

			result, err := engine.RunScenario(context.Background(), &cfg.Scenario)
			if err != nil {
				return fmt.Errorf("scenario run failed: %w", err)
			}

			return output.GenerateReport(result, outputFormat)
		},
	}
	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "scenario.yaml", "scenario configuration file")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, json, csv)")
	analyzeCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.WriteExampleConfiguration(inputFile); err != nil {
				return err
			}
			fmt.Printf("Wrote example scenario to %s\n", inputFile)
			return nil
		},
	}
	exampleCmd.Flags().StringVarP(&inputFile, "output", "o", "scenario.yaml", "where to write the example scenario")

	rootCmd.AddCommand(analyzeCmd, exampleCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
