package repositories

import (
	"context"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// ReportSink accepts the final report of a completed run. Implementations
// own serialization and storage location.
type ReportSink interface {
	Write(ctx context.Context, report *entities.Report) error
}
