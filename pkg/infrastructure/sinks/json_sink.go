// Package sinks provides report output destinations.
package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
)

// fileTimestampLayout names report files by their generation time.
const fileTimestampLayout = "20060102_150405"

// JSONSink writes each report as an indented JSON file named
// supply_chain_report_<timestamp>.json in the output directory.
type JSONSink struct {
	dir    string
	logger *zap.Logger
}

// NewJSONSink creates a sink writing into the given directory. A nil logger
// keeps the sink silent.
func NewJSONSink(dir string, logger *zap.Logger) *JSONSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONSink{dir: dir, logger: logger}
}

var _ repositories.ReportSink = (*JSONSink)(nil)

// Write persists the report. The output directory is created on demand.
func (s *JSONSink) Write(ctx context.Context, report *entities.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("supply_chain_report_%s.json", report.Timestamp.Format(fileTimestampLayout))
	path := filepath.Join(s.dir, name)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	s.logger.Info("report written", zap.String("path", path), zap.String("run_id", report.RunID))
	return nil
}
