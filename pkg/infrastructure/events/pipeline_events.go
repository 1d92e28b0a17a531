package events

import (
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

const (
	AnalysisStartedEvent     = "analysis.started"
	StageCompletedEvent      = "stage.completed"
	StageFailedEvent         = "stage.failed"
	BottlenecksDetectedEvent = "bottlenecks.detected"
	DecisionsApprovedEvent   = "decisions.approved"
	ReportGeneratedEvent     = "report.generated"

	StatusCheckedEvent = "status.checked"
)

type AnalysisStarted struct {
	RunID string `json:"run_id"`
}

type StageCompleted struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

type StageFailed struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type BottlenecksDetected struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
}

type DecisionsApproved struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
}

type ReportGenerated struct {
	Status      entities.OverallStatus `json:"status"`
	TotalAlerts int                    `json:"total_alerts"`
}

type StatusChecked struct {
	OverallStatus entities.OverallStatus `json:"overall_status"`
	Critical      int                    `json:"critical"`
}
