package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/orchestration"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/interfaces/cli/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis workflow",
	Long: `Run one complete analysis: load the datasets, detect bottlenecks, run
the demand, inventory and logistics agents, coordinate their output into
decisions and write the final report.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pipeline, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	output.Banner(cmd.OutOrStdout(), time.Now().Format("2006-01-02 15:04:05"))

	report, err := pipeline.RunAnalysis(cmd.Context())
	if err != nil {
		var stageErr *orchestration.StageError
		if errors.As(err, &stageErr) && stageErr.Stage == orchestration.StageLoad {
			fmt.Fprintf(os.Stderr, "❌ Analysis failed: %s\n", explainLoadError(stageErr.Err))
			return err
		}
		fmt.Fprintf(os.Stderr, "❌ Analysis failed: %v\n", err)
		return err
	}

	output.RenderReport(cmd.OutOrStdout(), report)
	output.RenderDataSummary(cmd.OutOrStdout(), report.DataSummary)
	output.Footer(cmd.OutOrStdout(), time.Now().Format("2006-01-02 15:04:05"))
	return nil
}
