package orchestration

import (
	"time"

	"github.com/google/uuid"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// RunStatus tracks how far a run has progressed through the pipeline.
type RunStatus string

const (
	RunInitializing        RunStatus = "INITIALIZING"
	RunDataLoaded          RunStatus = "DATA_LOADED"
	RunBottlenecksDetected RunStatus = "BOTTLENECKS_DETECTED"
	RunDemandAnalyzed      RunStatus = "DEMAND_ANALYZED"
	RunInventoryOptimized  RunStatus = "INVENTORY_OPTIMIZED"
	RunLogisticsOptimized  RunStatus = "LOGISTICS_OPTIMIZED"
	RunDecisionsMade       RunStatus = "DECISIONS_MADE"
	RunCompleted           RunStatus = "COMPLETED"
	RunFailed              RunStatus = "FAILED"
)

// RunState is the only mutable object of a run. The pipeline driver owns it
// exclusively and hands it stage to stage; it is never shared across runs.
// Status is FAILED if and only if Error is non-empty, and once failed no
// stage mutates the accumulated results.
type RunState struct {
	RunID           string
	Data            *entities.Datasets
	Bottlenecks     []entities.Bottleneck
	Recommendations []entities.Recommendation
	Decisions       []entities.Decision
	Report          *entities.Report
	Status          RunStatus
	Error           string
	StartedAt       time.Time
}

// NewRunState creates a fresh run state with a unique run id.
func NewRunState(startedAt time.Time) *RunState {
	return &RunState{
		RunID:     uuid.NewString(),
		Status:    RunInitializing,
		StartedAt: startedAt,
	}
}

// Failed reports whether the run has failed.
func (s *RunState) Failed() bool {
	return s.Status == RunFailed
}

// fail marks the run failed. Status and Error move together to preserve the
// FAILED-iff-error invariant.
func (s *RunState) fail(err error) {
	s.Status = RunFailed
	s.Error = err.Error()
}
