// Package orchestration implements the pipeline driver: a fixed sequence of
// seven named stages threading one run state from dataset loading through
// report generation, with stage-boundary failure capture.
package orchestration

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/agents"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/coordination"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/detection"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/events"
)

// Stage names one step of the fixed pipeline.
type Stage string

const (
	StageLoad       Stage = "load"
	StageDetect     Stage = "detect"
	StageDemand     Stage = "demand"
	StageInventory  Stage = "inventory"
	StageLogistics  Stage = "logistics"
	StageCoordinate Stage = "coordinate"
	StageReport     Stage = "report"
)

// StageError is the failure result of a run, naming the first stage that
// failed and wrapping its underlying error.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline drives one analysis run: load, detect, demand, inventory,
// logistics, coordinate, report. Stages execute strictly sequentially; a
// failed stage marks the run FAILED and every later stage becomes a no-op.
type Pipeline struct {
	provider repositories.DatasetProvider
	sink     repositories.ReportSink

	engine         *detection.Engine
	demandAgent    *agents.DemandAgent
	inventoryAgent *agents.InventoryAgent
	logisticsAgent *agents.LogisticsAgent
	coordinator    *coordination.Coordinator
	assembler      *ReportAssembler

	cfg    config.AnalysisConfig
	store  events.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewPipeline creates a pipeline over the given provider and sink. The sink
// and event store may be nil; a nil logger keeps the pipeline silent.
func NewPipeline(
	provider repositories.DatasetProvider,
	sink repositories.ReportSink,
	cfg config.AnalysisConfig,
	store events.Store,
	logger *zap.Logger,
) *Pipeline {
	return NewPipelineWithClock(provider, sink, cfg, store, logger, time.Now)
}

// NewPipelineWithClock creates a pipeline with an injected clock shared by
// every time-dependent component.
func NewPipelineWithClock(
	provider repositories.DatasetProvider,
	sink repositories.ReportSink,
	cfg config.AnalysisConfig,
	store events.Store,
	logger *zap.Logger,
	now func() time.Time,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		provider:       provider,
		sink:           sink,
		engine:         detection.NewEngineWithClock(cfg, logger.Named("detection"), now),
		demandAgent:    agents.NewDemandAgentWithClock(cfg, logger.Named("demand"), now),
		inventoryAgent: agents.NewInventoryAgent(cfg, logger.Named("inventory")),
		logisticsAgent: agents.NewLogisticsAgentWithClock(cfg, logger.Named("logistics"), now),
		coordinator:    coordination.NewCoordinatorWithClock(logger.Named("coordinator"), now),
		assembler:      NewReportAssemblerWithClock(cfg, now),
		cfg:            cfg,
		store:          store,
		logger:         logger,
		now:            now,
	}
}

// RunAnalysis executes the complete workflow and returns the final report.
// On failure it returns a *StageError naming the first failed stage; there
// is no partial success, a run either completes with a full report or fails
// with none.
func (p *Pipeline) RunAnalysis(ctx context.Context) (*entities.Report, error) {
	state := NewRunState(p.now())
	p.logger.Info("starting supply chain analysis", zap.String("run_id", state.RunID))
	p.record(state.RunID, events.AnalysisStartedEvent, events.AnalysisStarted{RunID: state.RunID})

	stages := []struct {
		name Stage
		fn   func(context.Context, *RunState) error
	}{
		{StageLoad, p.loadData},
		{StageDetect, p.detectBottlenecks},
		{StageDemand, p.runDemandAgent},
		{StageInventory, p.runInventoryAgent},
		{StageLogistics, p.runLogisticsAgent},
		{StageCoordinate, p.coordinate},
		{StageReport, p.generateReport},
	}

	var failure *StageError
	for _, stage := range stages {
		if state.Failed() {
			// Stages entered after a failure are no-ops, not errors.
			continue
		}
		if err := p.runStage(ctx, stage.name, stage.fn, state); err != nil {
			state.fail(err)
			if failure == nil {
				failure = &StageError{Stage: stage.name, Err: err}
			}
			p.logger.Error("stage failed",
				zap.String("run_id", state.RunID),
				zap.String("stage", string(stage.name)),
				zap.Error(err))
			p.record(state.RunID, events.StageFailedEvent, events.StageFailed{
				Stage: string(stage.name),
				Error: err.Error(),
			})
			continue
		}
		p.record(state.RunID, events.StageCompletedEvent, events.StageCompleted{
			Stage:  string(stage.name),
			Status: string(state.Status),
		})
	}

	if failure != nil {
		return nil, failure
	}

	p.logger.Info("analysis workflow completed",
		zap.String("run_id", state.RunID),
		zap.String("status", string(state.Report.Status)))
	return state.Report, nil
}

// runStage executes one stage and converts panics into stage errors so any
// unexpected failure is captured at the stage boundary.
func (p *Pipeline) runStage(ctx context.Context, name Stage, fn func(context.Context, *RunState) error, state *RunState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in stage %s: %v", name, r)
		}
	}()
	return fn(ctx, state)
}

func (p *Pipeline) loadData(ctx context.Context, state *RunState) error {
	data, err := p.provider.LoadDatasets(ctx)
	if err != nil {
		return err
	}
	state.Data = data
	state.Status = RunDataLoaded
	return nil
}

func (p *Pipeline) detectBottlenecks(_ context.Context, state *RunState) error {
	state.Bottlenecks = p.engine.RunFullAnalysis(state.Data)
	state.Status = RunBottlenecksDetected

	critical := len(detection.Critical(state.Bottlenecks))
	p.record(state.RunID, events.BottlenecksDetectedEvent, events.BottlenecksDetected{
		Total:    len(state.Bottlenecks),
		Critical: critical,
	})
	return nil
}

func (p *Pipeline) runDemandAgent(_ context.Context, state *RunState) error {
	recs := p.demandAgent.Analyze(state.Data, state.Bottlenecks)
	state.Recommendations = append(state.Recommendations, recs...)
	state.Status = RunDemandAnalyzed
	return nil
}

func (p *Pipeline) runInventoryAgent(_ context.Context, state *RunState) error {
	recs := p.inventoryAgent.Analyze(state.Data, state.Bottlenecks)
	state.Recommendations = append(state.Recommendations, recs...)
	state.Status = RunInventoryOptimized
	return nil
}

func (p *Pipeline) runLogisticsAgent(_ context.Context, state *RunState) error {
	recs := p.logisticsAgent.Analyze(state.Data, state.Bottlenecks)
	state.Recommendations = append(state.Recommendations, recs...)
	state.Status = RunLogisticsOptimized
	return nil
}

func (p *Pipeline) coordinate(_ context.Context, state *RunState) error {
	state.Decisions = p.coordinator.Decide(state.Bottlenecks, state.Recommendations)
	state.Status = RunDecisionsMade

	critical := 0
	for _, d := range state.Decisions {
		if d.Priority == entities.PriorityCritical {
			critical++
		}
	}
	p.record(state.RunID, events.DecisionsApprovedEvent, events.DecisionsApproved{
		Total:    len(state.Decisions),
		Critical: critical,
	})
	return nil
}

func (p *Pipeline) generateReport(ctx context.Context, state *RunState) error {
	report := p.assembler.Assemble(state)

	if p.sink != nil {
		if err := p.sink.Write(ctx, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	state.Report = report
	state.Status = RunCompleted

	p.record(state.RunID, events.ReportGeneratedEvent, events.ReportGenerated{
		Status:      report.Status,
		TotalAlerts: len(report.Alerts),
	})
	return nil
}

// record appends a telemetry event if a store is configured. Telemetry never
// fails a run.
func (p *Pipeline) record(runID, eventType string, data interface{}) {
	if p.store == nil {
		return
	}
	if err := p.store.AppendEvent(runID, events.NewEvent(eventType, runID, data)); err != nil {
		p.logger.Warn("failed to record event", zap.String("event", eventType), zap.Error(err))
	}
}
