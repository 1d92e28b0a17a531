package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/orchestration"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/events"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/repositories/memory"
	fixtures "github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/testing"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/interfaces/cli/output"
)

// Demonstrates embedding the pipeline with an in-memory dataset, no CSV
// files and no report sink.
func main() {
	ctx := context.Background()

	provider := memory.NewProvider(*fixtures.BuildSampleDatasets())
	store := events.NewInMemoryStore()
	pipeline := orchestration.NewPipeline(provider, nil, config.DefaultConfig(), store, nil)

	fmt.Println("🔗 Running supply chain analysis on the sample dataset...")

	report, err := pipeline.RunAnalysis(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Analysis failed: %v\n", err)
		os.Exit(1)
	}

	output.RenderReport(os.Stdout, report)

	runEvents, _ := store.ReadEvents(report.RunID)
	fmt.Printf("📜 Recorded %d pipeline events for run %s\n", len(runEvents), report.RunID)
}
