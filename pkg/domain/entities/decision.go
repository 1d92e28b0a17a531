package entities

import "time"

// DecisionType identifies the coordination path that produced a decision
type DecisionType string

const (
	InventoryAction              DecisionType = "INVENTORY_ACTION"
	LogisticsAction              DecisionType = "LOGISTICS_ACTION"
	GeneralAction                DecisionType = "GENERAL_ACTION"
	CriticalBottleneckResolution DecisionType = "CRITICAL_BOTTLENECK_RESOLUTION"
)

// DecisionStatus represents the approval state of a decision
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "APPROVED"
	DecisionUrgent   DecisionStatus = "URGENT"
)

// CoordinatorName is recorded on every decision.
const CoordinatorName = "Orchestrator"

// Decision is a coordinator-approved or escalated action. decision_id values
// (DEC_001...) come from one monotonically increasing counter shared across
// all decision kinds within a run. Exactly one of Recommendation or
// Bottleneck is set, discriminated by Type: CRITICAL_BOTTLENECK_RESOLUTION
// carries the source bottleneck, every other kind the source recommendation.
type Decision struct {
	DecisionID        string         `json:"decision_id"`
	Type              DecisionType   `json:"type"`
	Action            string         `json:"action"`
	Priority          Priority       `json:"priority"`
	Status            DecisionStatus `json:"status"`
	CoordinatingAgent string         `json:"coordinating_agent"`
	Timestamp         time.Time      `json:"timestamp"`

	ProductID    ProductID  `json:"product_id,omitempty"`
	ShipmentID   ShipmentID `json:"shipment_id,omitempty"`
	Carrier      string     `json:"carrier,omitempty"`
	BottleneckID string     `json:"bottleneck_id,omitempty"`

	Recommendation *Recommendation `json:"details,omitempty"`
	Bottleneck     *Bottleneck     `json:"bottleneck_details,omitempty"`
}
