package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/interfaces/cli/output"
)

var monitorInterval int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously poll real-time status",
	Long: `Repeat the real-time status check at a fixed interval until
interrupted. A failed load is reported and monitoring continues with the
next tick.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().IntVarP(&monitorInterval, "interval", "n", 30, "Seconds between status checks")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pipeline, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "🔄 REAL-TIME MONITORING MODE")
	fmt.Fprintf(cmd.OutOrStdout(), "Checking every %d seconds, press Ctrl+C to stop\n", monitorInterval)

	ctx := cmd.Context()
	ticker := time.NewTicker(time.Duration(monitorInterval) * time.Second)
	defer ticker.Stop()

	for {
		status, err := pipeline.GetRealTimeStatus(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Status check failed: %s\n", explainLoadError(err))
		} else {
			output.RenderStatus(cmd.OutOrStdout(), status)
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "\n👋 Monitoring stopped")
			return nil
		case <-ticker.C:
		}
	}
}
