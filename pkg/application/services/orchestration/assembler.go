package orchestration

import (
	"time"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/detection"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// ActionReview is the fallback action on alerts derived from recommendations
// that carry no action of their own.
const ActionReview = "REVIEW"

// ReportAssembler builds the immutable report snapshot from a finished run
// state: summary counts, the overall status rollup, and operator alerts.
// Assembly operates on already-validated in-memory structures and never
// fails.
type ReportAssembler struct {
	cfg config.AnalysisConfig
	now func() time.Time
}

// NewReportAssembler creates a report assembler.
func NewReportAssembler(cfg config.AnalysisConfig) *ReportAssembler {
	return NewReportAssemblerWithClock(cfg, time.Now)
}

// NewReportAssemblerWithClock creates a report assembler with an injected
// clock used for the report timestamp.
func NewReportAssemblerWithClock(cfg config.AnalysisConfig, now func() time.Time) *ReportAssembler {
	return &ReportAssembler{cfg: cfg, now: now}
}

// Assemble computes the report. Overall status is CRITICAL when the
// HIGH-severity bottleneck count exceeds the critical threshold, WARNING
// above the warning threshold, NORMAL otherwise. Every HIGH bottleneck and
// every HIGH-priority recommendation becomes one alert; recommendation
// alerts are surfaced at MEDIUM severity regardless of source priority.
func (a *ReportAssembler) Assemble(state *RunState) *entities.Report {
	criticalBottlenecks := len(detection.Critical(state.Bottlenecks))
	highPriorityRecs := 0
	for _, r := range state.Recommendations {
		if r.IsHighPriority() {
			highPriorityRecs++
		}
	}

	status := entities.StatusNormal
	switch {
	case criticalBottlenecks > a.cfg.ReportCriticalThreshold:
		status = entities.StatusCritical
	case criticalBottlenecks > a.cfg.ReportWarningThreshold:
		status = entities.StatusWarning
	}

	alerts := []entities.Alert{}
	for _, b := range state.Bottlenecks {
		if !b.IsHigh() {
			continue
		}
		alerts = append(alerts, entities.Alert{
			Type:           entities.AlertCriticalBottleneck,
			Message:        b.Message,
			ActionRequired: b.RecommendedAction,
			Severity:       entities.SeverityHigh,
		})
	}
	for _, r := range state.Recommendations {
		if !r.IsHighPriority() {
			continue
		}
		message := r.Message
		if message == "" {
			message = string(r.Type)
		}
		action := r.Action
		if action == "" {
			action = ActionReview
		}
		alerts = append(alerts, entities.Alert{
			Type:           entities.AlertHighPriorityRecommendation,
			Message:        message,
			ActionRequired: action,
			Severity:       entities.SeverityMedium,
		})
	}

	var dataSummary map[string]int
	if state.Data != nil {
		dataSummary = state.Data.RowCounts()
	}

	return &entities.Report{
		RunID:     state.RunID,
		Timestamp: a.now(),
		Status:    status,
		Summary: entities.ReportSummary{
			TotalBottlenecks:     len(state.Bottlenecks),
			CriticalBottlenecks:  criticalBottlenecks,
			TotalRecommendations: len(state.Recommendations),
			HighPriorityItems:    highPriorityRecs,
			TotalAlerts:          len(alerts),
		},
		Bottlenecks: entities.BottleneckSection{
			Summary: detection.Summarize(state.Bottlenecks),
			Details: state.Bottlenecks,
		},
		Recommendations: state.Recommendations,
		FinalDecisions:  state.Decisions,
		Alerts:          alerts,
		DataSummary:     dataSummary,
	}
}
