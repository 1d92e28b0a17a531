package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductID represents a unique product identifier
type ProductID string

// WarehouseID represents a unique warehouse identifier
type WarehouseID string

// SupplierID represents a unique supplier identifier
type SupplierID string

// ShipmentID represents a unique shipment identifier
type ShipmentID string

// OrderID represents a unique order identifier
type OrderID string

// Quantity represents an integer quantity value for discrete stock units
type Quantity int64

// OrderStatus represents the fulfillment status of a customer order
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Open reports whether an order still consumes stock (not yet shipped).
func (s OrderStatus) Open() bool {
	return s == OrderPending || s == OrderProcessing
}

// ShipmentStatus represents the transit status of a shipment
type ShipmentStatus string

const (
	ShipmentPreparing ShipmentStatus = "PREPARING"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelayed   ShipmentStatus = "DELAYED"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
)

// InventoryItem represents the stock position of one product at one warehouse
type InventoryItem struct {
	ProductID    ProductID   `json:"product_id"`
	ProductName  string      `json:"product_name"`
	CurrentStock Quantity    `json:"current_stock"`
	MinThreshold Quantity    `json:"min_threshold"`
	WarehouseID  WarehouseID `json:"warehouse_id"`
	SupplierID   SupplierID  `json:"supplier_id"`
}

// Order represents a customer order line for a single product
type Order struct {
	ProductID ProductID   `json:"product_id"`
	Quantity  Quantity    `json:"quantity"`
	OrderDate time.Time   `json:"order_date"`
	Status    OrderStatus `json:"status"`
}

// Shipment represents an outbound shipment tied to an order
type Shipment struct {
	ShipmentID       ShipmentID      `json:"shipment_id"`
	OrderID          OrderID         `json:"order_id"`
	Carrier          string          `json:"carrier"`
	Cost             decimal.Decimal `json:"cost"`
	ShipDate         time.Time       `json:"ship_date"`
	EstimatedArrival time.Time       `json:"estimated_arrival"`
	Status           ShipmentStatus  `json:"status"`
}

// Supplier represents a supplier with its delivery performance profile
type Supplier struct {
	SupplierID       SupplierID `json:"supplier_id"`
	SupplierName     string     `json:"supplier_name"`
	ReliabilityScore float64    `json:"reliability_score"`
	LeadTimeDays     int        `json:"lead_time_days"`
}

// DemandRecord represents one historical demand observation for a product
type DemandRecord struct {
	ProductID      ProductID `json:"product_id"`
	Date           time.Time `json:"date"`
	DemandQuantity Quantity  `json:"demand_quantity"`
}

// Warehouse represents a storage location with a fixed capacity
type Warehouse struct {
	WarehouseID   WarehouseID `json:"warehouse_id"`
	WarehouseName string      `json:"warehouse_name"`
	Capacity      Quantity    `json:"capacity"`
}

// Datasets is the point-in-time snapshot of all six supply-chain tables.
// It is read-only input to the analysis pipeline.
type Datasets struct {
	Inventory     []InventoryItem
	Orders        []Order
	Shipments     []Shipment
	Suppliers     []Supplier
	DemandHistory []DemandRecord
	Warehouses    []Warehouse
}

// RowCounts returns the number of rows per table, keyed by table name.
func (d *Datasets) RowCounts() map[string]int {
	return map[string]int{
		"inventory":      len(d.Inventory),
		"orders":         len(d.Orders),
		"shipments":      len(d.Shipments),
		"suppliers":      len(d.Suppliers),
		"demand_history": len(d.DemandHistory),
		"warehouses":     len(d.Warehouses),
	}
}
