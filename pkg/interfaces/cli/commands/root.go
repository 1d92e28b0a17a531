// Package commands wires the CLI surface: analyze, status, monitor and
// generate subcommands over the analysis pipeline.
package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/orchestration"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/events"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/repositories/csv"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/repositories/xlsx"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/sinks"
)

var (
	dataDir    string
	workbook   string
	configFile string
	outputDir  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "supplychain",
	Short: "Supply chain bottleneck analysis and orchestration",
	Long: `Analyze a supply-chain snapshot for bottlenecks, generate agent
recommendations, coordinate them into decisions and emit a full report.

Data is read from CSV files in the data directory, or from a single XLSX
workbook when --workbook is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data", "Directory containing the CSV tables")
	rootCmd.PersistentFlags().StringVar(&workbook, "workbook", "", "Load tables from an XLSX workbook instead of CSV files")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Analysis configuration YAML (defaults apply when omitted)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "reports", "Directory for generated report files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// ExecuteContext runs the CLI under the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func loadAnalysisConfig() (config.AnalysisConfig, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func newProvider() repositories.DatasetProvider {
	if workbook != "" {
		return xlsx.NewProvider(workbook)
	}
	return csv.NewProvider(dataDir)
}

func buildPipeline(logger *zap.Logger) (*orchestration.Pipeline, error) {
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return nil, err
	}
	sink := sinks.NewJSONSink(outputDir, logger.Named("sink"))
	store := events.NewInMemoryStore()
	return orchestration.NewPipeline(newProvider(), sink, cfg, store, logger), nil
}

// explainLoadError gives schema failures a friendlier message than the raw
// wrapped error chain.
func explainLoadError(err error) string {
	var schemaErr *repositories.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Sprintf("dataset %s is missing columns: %s",
			schemaErr.Dataset, strings.Join(schemaErr.MissingColumns, ", "))
	}
	return err.Error()
}
