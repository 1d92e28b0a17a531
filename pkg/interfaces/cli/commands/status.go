package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/interfaces/cli/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-shot real-time status snapshot",
	Long: `Load a fresh snapshot and run bottleneck detection only, without
agents, coordination or report generation. Prints the overall status, the
top critical issues and the per-component system health map.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pipeline, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	status, err := pipeline.GetRealTimeStatus(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Status check failed: %s\n", explainLoadError(err))
		return err
	}

	output.RenderStatus(cmd.OutOrStdout(), status)
	return nil
}
