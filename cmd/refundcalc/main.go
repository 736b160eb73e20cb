package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tadbeer/refund-calculator/internal/api"
	"github.com/tadbeer/refund-calculator/internal/calculation"
	"github.com/tadbeer/refund-calculator/internal/config"
	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile bool
	debugMode  bool
	listenAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "refundcalc",
		Short: "Refund determination calculator for cancelled placements",
		Long: `refundcalc computes the refund owed to a client for a cancelled
domestic-worker placement: VAT separation, tenure-based proration,
nationality/stage penalties, document gating and the due date.`,
		SilenceUsage: true,
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a refund from a YAML case file",
		RunE:  runCalculate,
	}
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "case file (YAML)")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console",
		fmt.Sprintf("output format, one of %v", output.AvailableFormatterNames()))
	calculateCmd.Flags().BoolVarP(&outputFile, "output-file", "o", false, "write to a timestamped file instead of stdout")
	calculateCmd.Flags().BoolVar(&debugMode, "debug", false, "log branch selection to stderr")
	_ = calculateCmd.MarkFlagRequired("input")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print a starter case file",
		RunE:  runExample,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&debugMode, "debug", false, "log branch selection to stderr")

	rootCmd.AddCommand(calculateCmd, exampleCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEngine() *calculation.RefundEngine {
	engine := calculation.NewRefundEngine()
	if debugMode {
		engine.SetLogger(calculation.WriterLogger{W: os.Stderr})
	}
	return engine
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	cf, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", formatName, output.AvailableFormatterNames())
	}

	engine := newEngine()
	result := engine.ComputeRefund(cf.Case)
	if cf.ManualDeduction != nil {
		result = calculation.ApplyManualDeduction(result, *cf.ManualDeduction)
	}

	statement := &domain.RefundStatement{Case: cf.Case, Result: result}

	if outputFile {
		name, err := output.WriteFormatted(formatter, statement, formatter.Name())
		if err != nil {
			return fmt.Errorf("failed to write statement: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
		return nil
	}

	data, err := formatter.Format(statement)
	if err != nil {
		return fmt.Errorf("failed to format statement: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runExample(cmd *cobra.Command, args []string) error {
	cf := config.NewInputParser().CreateExampleCase()
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal example case: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	handler := api.NewHandler(newEngine())
	router := api.NewRouter(handler)
	fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", listenAddr)
	return http.ListenAndServe(listenAddr, router)
}
