package entities

import (
	"fmt"
	"strings"
	"time"
)

// Severity classifies how urgent a detected bottleneck is
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

// BottleneckType identifies the detector variant that produced a bottleneck
type BottleneckType string

const (
	InventoryShortage           BottleneckType = "INVENTORY_SHORTAGE"
	InsufficientStockForOrders  BottleneckType = "INSUFFICIENT_STOCK_FOR_ORDERS"
	DelayedShipment             BottleneckType = "DELAYED_SHIPMENT"
	AtRiskShipment              BottleneckType = "AT_RISK_SHIPMENT"
	WarehouseCapacityConstraint BottleneckType = "WAREHOUSE_CAPACITY_CONSTRAINT"
	DemandSpike                 BottleneckType = "DEMAND_SPIKE"
	SupplierReliabilityIssue    BottleneckType = "SUPPLIER_RELIABILITY_ISSUE"
)

// Contains reports whether the type name contains the given keyword.
// Agents and the real-time health map route bottlenecks by keyword.
func (t BottleneckType) Contains(keyword string) bool {
	return strings.Contains(string(t), keyword)
}

// Recommended actions attached to bottlenecks by the detectors.
const (
	ActionReorderImmediately      = "REORDER_IMMEDIATELY"
	ActionExpediteReorder         = "EXPEDITE_REORDER"
	ActionContactCarrier          = "CONTACT_CARRIER"
	ActionMonitorClosely          = "MONITOR_CLOSELY"
	ActionRedistributeInventory   = "REDISTRIBUTE_INVENTORY"
	ActionIncreaseInventory       = "INCREASE_INVENTORY"
	ActionFindAlternativeSupplier = "FIND_ALTERNATIVE_SUPPLIER"
)

// Bottleneck represents a detected supply-chain anomaly. The Type field
// discriminates the variant; only the fields for that variant are populated.
// ID and DetectedAt are assigned by the detection engine after the detectors
// have run, in fixed concatenation order.
type Bottleneck struct {
	ID                string         `json:"id,omitempty"`
	Type              BottleneckType `json:"type"`
	Severity          Severity       `json:"severity"`
	Message           string         `json:"message"`
	RecommendedAction string         `json:"recommended_action"`
	DetectedAt        time.Time      `json:"detected_at,omitzero"`

	// Inventory variants
	ProductID        ProductID   `json:"product_id,omitempty"`
	ProductName      string      `json:"product_name,omitempty"`
	CurrentStock     Quantity    `json:"current_stock,omitempty"`
	MinThreshold     Quantity    `json:"min_threshold,omitempty"`
	RequiredQuantity Quantity    `json:"required_quantity,omitempty"`
	Shortage         Quantity    `json:"shortage,omitempty"`
	WarehouseID      WarehouseID `json:"warehouse_id,omitempty"`

	// Shipment variants
	ShipmentID       ShipmentID     `json:"shipment_id,omitempty"`
	OrderID          OrderID        `json:"order_id,omitempty"`
	Carrier          string         `json:"carrier,omitempty"`
	DaysOverdue      int            `json:"days_overdue,omitempty"`
	EstimatedArrival time.Time      `json:"estimated_arrival,omitzero"`
	ShipmentStatus   ShipmentStatus `json:"status,omitempty"`

	// Capacity variant
	WarehouseName   string   `json:"warehouse_name,omitempty"`
	UtilizationRate float64  `json:"utilization_rate,omitempty"`
	Capacity        Quantity `json:"capacity,omitempty"`

	// Demand spike variant
	CurrentDemand float64   `json:"current_demand,omitempty"`
	AverageDemand float64   `json:"average_demand,omitempty"`
	SpikeRatio    float64   `json:"spike_ratio,omitempty"`
	Date          time.Time `json:"date,omitzero"`

	// Supplier variant
	SupplierID       SupplierID `json:"supplier_id,omitempty"`
	SupplierName     string     `json:"supplier_name,omitempty"`
	ReliabilityScore float64    `json:"reliability_score,omitempty"`
	LeadTimeDays     int        `json:"lead_time_days,omitempty"`
	// AffectedProducts is only meaningful on supplier bottlenecks, where a
	// zero count is valid and must still be reported.
	AffectedProducts *int `json:"affected_products,omitempty"`
}

// IsHigh reports whether the bottleneck has HIGH severity.
func (b *Bottleneck) IsHigh() bool {
	return b.Severity == SeverityHigh
}

// NewInventoryShortageBottleneck flags an item at or below its minimum threshold.
func NewInventoryShortageBottleneck(item InventoryItem, severity Severity) Bottleneck {
	return Bottleneck{
		Type:              InventoryShortage,
		Severity:          severity,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		CurrentStock:      item.CurrentStock,
		MinThreshold:      item.MinThreshold,
		WarehouseID:       item.WarehouseID,
		Message:           fmt.Sprintf("Product %s is below minimum threshold", item.ProductName),
		RecommendedAction: ActionReorderImmediately,
	}
}

// NewInsufficientStockBottleneck flags an item whose open order demand exceeds stock.
func NewInsufficientStockBottleneck(item InventoryItem, required Quantity) Bottleneck {
	return Bottleneck{
		Type:              InsufficientStockForOrders,
		Severity:          SeverityHigh,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		CurrentStock:      item.CurrentStock,
		RequiredQuantity:  required,
		Shortage:          required - item.CurrentStock,
		WarehouseID:       item.WarehouseID,
		Message:           fmt.Sprintf("Insufficient stock for pending orders of %s", item.ProductName),
		RecommendedAction: ActionExpediteReorder,
	}
}

// NewDelayedShipmentBottleneck flags an overdue shipment.
func NewDelayedShipmentBottleneck(s Shipment, daysOverdue int, severity Severity) Bottleneck {
	return Bottleneck{
		Type:              DelayedShipment,
		Severity:          severity,
		ShipmentID:        s.ShipmentID,
		OrderID:           s.OrderID,
		Carrier:           s.Carrier,
		DaysOverdue:       daysOverdue,
		EstimatedArrival:  s.EstimatedArrival,
		ShipmentStatus:    s.Status,
		Message:           fmt.Sprintf("Shipment %s is %d days overdue", s.ShipmentID, daysOverdue),
		RecommendedAction: ActionContactCarrier,
	}
}

// NewAtRiskShipmentBottleneck flags a shipment due within a day but still in transit.
func NewAtRiskShipmentBottleneck(s Shipment) Bottleneck {
	return Bottleneck{
		Type:              AtRiskShipment,
		Severity:          SeverityMedium,
		ShipmentID:        s.ShipmentID,
		OrderID:           s.OrderID,
		Carrier:           s.Carrier,
		EstimatedArrival:  s.EstimatedArrival,
		ShipmentStatus:    s.Status,
		Message:           fmt.Sprintf("Shipment %s may be at risk of delay", s.ShipmentID),
		RecommendedAction: ActionMonitorClosely,
	}
}

// NewCapacityConstraintBottleneck flags a warehouse running near capacity.
func NewCapacityConstraintBottleneck(w Warehouse, utilization float64, severity Severity) Bottleneck {
	return Bottleneck{
		Type:              WarehouseCapacityConstraint,
		Severity:          severity,
		WarehouseID:       w.WarehouseID,
		WarehouseName:     w.WarehouseName,
		UtilizationRate:   utilization,
		Capacity:          w.Capacity,
		Message:           fmt.Sprintf("Warehouse %s is at %.1f%% capacity", w.WarehouseName, utilization*100),
		RecommendedAction: ActionRedistributeInventory,
	}
}

// NewDemandSpikeBottleneck flags an unusual jump in the latest demand observation.
func NewDemandSpikeBottleneck(productID ProductID, rec DemandRecord, movingAvg float64) Bottleneck {
	return Bottleneck{
		Type:              DemandSpike,
		Severity:          SeverityMedium,
		ProductID:         productID,
		CurrentDemand:     float64(rec.DemandQuantity),
		AverageDemand:     movingAvg,
		SpikeRatio:        float64(rec.DemandQuantity) / movingAvg,
		Date:              rec.Date,
		Message:           fmt.Sprintf("Demand spike detected for product %s", productID),
		RecommendedAction: ActionIncreaseInventory,
	}
}

// NewSupplierReliabilityBottleneck flags a supplier with a low reliability score.
func NewSupplierReliabilityBottleneck(s Supplier, affectedProducts int, severity Severity) Bottleneck {
	return Bottleneck{
		Type:              SupplierReliabilityIssue,
		Severity:          severity,
		SupplierID:        s.SupplierID,
		SupplierName:      s.SupplierName,
		ReliabilityScore:  s.ReliabilityScore,
		LeadTimeDays:      s.LeadTimeDays,
		AffectedProducts:  &affectedProducts,
		Message:           fmt.Sprintf("Supplier %s has low reliability score", s.SupplierName),
		RecommendedAction: ActionFindAlternativeSupplier,
	}
}
