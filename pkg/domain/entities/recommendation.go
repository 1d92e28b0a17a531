package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Priority classifies how urgent a recommendation or decision is
type Priority string

const (
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityCritical Priority = "CRITICAL"
)

// RecommendationType identifies the rule that produced a recommendation
type RecommendationType string

const (
	IncreaseInventoryForDemandSpike RecommendationType = "INCREASE_INVENTORY_FOR_DEMAND_SPIKE"
	ReduceInventoryForLowDemand     RecommendationType = "REDUCE_INVENTORY_FOR_LOW_DEMAND"
	AddressDemandBottleneck         RecommendationType = "ADDRESS_DEMAND_BOTTLENECK"
	EmergencyReorder                RecommendationType = "EMERGENCY_REORDER"
	StandardReorder                 RecommendationType = "STANDARD_REORDER"
	ResolveInventoryBottleneck      RecommendationType = "RESOLVE_INVENTORY_BOTTLENECK"
	ExpediteDelayedShipment         RecommendationType = "EXPEDITE_DELAYED_SHIPMENT"
	OptimizeCarrierSelection        RecommendationType = "OPTIMIZE_CARRIER_SELECTION"
	ResolveLogisticsBottleneck      RecommendationType = "RESOLVE_LOGISTICS_BOTTLENECK"
)

// Contains reports whether the type name contains the given keyword.
// The decision coordinator routes recommendations by keyword.
func (t RecommendationType) Contains(keyword string) bool {
	return strings.Contains(string(t), keyword)
}

// Agent names as they appear on recommendations.
const (
	DemandAgentName    = "DemandMonitor"
	InventoryAgentName = "InventoryManager"
	LogisticsAgentName = "LogisticsOptimizer"
)

// Recommendation is an agent-proposed corrective action. It carries no
// identifier; the order of generation is load-bearing for coordinator
// tie-breaks. The Type field discriminates the variant.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Priority Priority           `json:"priority"`
	Agent    string             `json:"agent"`
	Message  string             `json:"message"`
	Action   string             `json:"action,omitempty"`

	// Demand variants
	ProductID           ProductID `json:"product_id,omitempty"`
	CurrentDemand       float64   `json:"current_demand,omitempty"`
	HistoricalAverage   float64   `json:"historical_avg,omitempty"`
	RecommendedIncrease float64   `json:"recommended_increase,omitempty"`

	// Inventory variants
	ProductName         string      `json:"product_name,omitempty"`
	CurrentStock        Quantity    `json:"current_stock,omitempty"`
	MinThreshold        Quantity    `json:"min_threshold,omitempty"`
	RecommendedQuantity float64     `json:"recommended_quantity,omitempty"`
	WarehouseID         WarehouseID `json:"warehouse_id,omitempty"`
	SupplierID          SupplierID  `json:"supplier_id,omitempty"`

	// Logistics variants
	ShipmentID       ShipmentID      `json:"shipment_id,omitempty"`
	OrderID          OrderID         `json:"order_id,omitempty"`
	Carrier          string          `json:"carrier,omitempty"`
	EstimatedArrival time.Time       `json:"estimated_arrival,omitzero"`
	AverageCost      decimal.Decimal `json:"avg_cost,omitzero"`

	// Bottleneck-resolution variants
	BottleneckID string `json:"bottleneck_id,omitempty"`
}

// IsHighPriority reports whether the recommendation has HIGH priority.
func (r *Recommendation) IsHighPriority() bool {
	return r.Priority == PriorityHigh
}
