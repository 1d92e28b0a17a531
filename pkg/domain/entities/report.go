package entities

import "time"

// OverallStatus is the report-level or real-time rollup of supply-chain health
type OverallStatus string

const (
	StatusNormal   OverallStatus = "NORMAL"
	StatusWarning  OverallStatus = "WARNING"
	StatusCritical OverallStatus = "CRITICAL"
)

// AlertType identifies the source of a report-level alert
type AlertType string

const (
	AlertCriticalBottleneck         AlertType = "CRITICAL_BOTTLENECK"
	AlertHighPriorityRecommendation AlertType = "HIGH_PRIORITY_RECOMMENDATION"
)

// Alert is a report-level notice surfaced to operators.
type Alert struct {
	Type           AlertType `json:"type"`
	Message        string    `json:"message"`
	ActionRequired string    `json:"action_required"`
	Severity       Severity  `json:"severity"`
}

// ReportSummary holds the headline counts of a completed run.
type ReportSummary struct {
	TotalBottlenecks     int `json:"total_bottlenecks"`
	CriticalBottlenecks  int `json:"critical_bottlenecks"`
	TotalRecommendations int `json:"total_recommendations"`
	HighPriorityItems    int `json:"high_priority_items"`
	TotalAlerts          int `json:"total_alerts"`
}

// BottleneckSummary aggregates bottlenecks by type and severity.
type BottleneckSummary struct {
	Total      int                    `json:"total"`
	ByType     map[BottleneckType]int `json:"by_type"`
	BySeverity map[Severity]int       `json:"by_severity"`
}

// BottleneckSection pairs the aggregate view with the full detail list.
type BottleneckSection struct {
	Summary BottleneckSummary `json:"summary"`
	Details []Bottleneck      `json:"details"`
}

// Report is the immutable snapshot produced by a completed run. Sinks own
// serialization and storage; the core guarantees only this field set.
type Report struct {
	RunID           string            `json:"run_id"`
	Timestamp       time.Time         `json:"timestamp"`
	Status          OverallStatus     `json:"status"`
	Summary         ReportSummary     `json:"summary"`
	Bottlenecks     BottleneckSection `json:"bottlenecks"`
	Recommendations []Recommendation  `json:"recommendations"`
	FinalDecisions  []Decision        `json:"final_decisions"`
	Alerts          []Alert           `json:"alerts"`
	DataSummary     map[string]int    `json:"data_summary,omitempty"`
}

// HealthState is the per-component state in the real-time health map
type HealthState string

const (
	HealthGood    HealthState = "GOOD"
	HealthWarning HealthState = "WARNING"
)

// System-health component keys, in display order.
const (
	HealthDataLoading         = "data_loading"
	HealthInventoryLevels     = "inventory_levels"
	HealthShipmentStatus      = "shipment_status"
	HealthSupplierReliability = "supplier_reliability"
)

// HealthComponents lists the fixed health-map keys in display order.
var HealthComponents = []string{
	HealthDataLoading,
	HealthInventoryLevels,
	HealthShipmentStatus,
	HealthSupplierReliability,
}

// RealTimeStatus is the lightweight detection-only view of the supply chain.
type RealTimeStatus struct {
	Timestamp           time.Time              `json:"timestamp"`
	OverallStatus       OverallStatus          `json:"overall_status"`
	TotalBottlenecks    int                    `json:"total_bottlenecks"`
	CriticalIssuesCount int                    `json:"critical_issues_count"`
	CriticalIssues      []Bottleneck           `json:"critical_issues"`
	SystemHealth        map[string]HealthState `json:"system_health"`
}
