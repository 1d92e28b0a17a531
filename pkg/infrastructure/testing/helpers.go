// Package testing provides shared dataset fixtures for tests.
package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// FixtureTime is the reference "now" used by the sample dataset. Tests that
// inject a clock should use this value so date-relative rules line up.
var FixtureTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// BuildSampleDatasets builds a small snapshot that exercises every detector:
// a product below threshold, an overdue shipment, an at-risk shipment, an
// over-utilized warehouse, a demand spike and an unreliable supplier.
func BuildSampleDatasets() *entities.Datasets {
	now := FixtureTime

	inventory := []entities.InventoryItem{
		{ProductID: "PROD_001", ProductName: "Widget A", CurrentStock: 10, MinThreshold: 50, WarehouseID: "WH_001", SupplierID: "SUP_001"},
		{ProductID: "PROD_002", ProductName: "Widget B", CurrentStock: 200, MinThreshold: 40, WarehouseID: "WH_001", SupplierID: "SUP_002"},
		{ProductID: "PROD_003", ProductName: "Widget C", CurrentStock: 80, MinThreshold: 30, WarehouseID: "WH_002", SupplierID: "SUP_002"},
	}

	orders := []entities.Order{
		{ProductID: "PROD_001", Quantity: 30, OrderDate: now.AddDate(0, 0, -2), Status: entities.OrderPending},
		{ProductID: "PROD_002", Quantity: 25, OrderDate: now.AddDate(0, 0, -5), Status: entities.OrderProcessing},
		{ProductID: "PROD_003", Quantity: 10, OrderDate: now.AddDate(0, 0, -20), Status: entities.OrderDelivered},
	}

	shipments := []entities.Shipment{
		{
			ShipmentID:       "SHIP_001",
			OrderID:          "ORD_001",
			Carrier:          "FastShip",
			Cost:             decimal.NewFromFloat(120.50),
			ShipDate:         now.AddDate(0, 0, -10),
			EstimatedArrival: now.AddDate(0, 0, -5),
			Status:           entities.ShipmentInTransit,
		},
		{
			ShipmentID:       "SHIP_002",
			OrderID:          "ORD_002",
			Carrier:          "QuickLogistics",
			Cost:             decimal.NewFromFloat(85.00),
			ShipDate:         now.AddDate(0, 0, -1),
			EstimatedArrival: now.Add(12 * time.Hour),
			Status:           entities.ShipmentInTransit,
		},
		{
			ShipmentID:       "SHIP_003",
			OrderID:          "ORD_003",
			Carrier:          "FastShip",
			Cost:             decimal.NewFromFloat(95.25),
			ShipDate:         now.AddDate(0, 0, -8),
			EstimatedArrival: now.AddDate(0, 0, -3),
			Status:           entities.ShipmentDelivered,
		},
	}

	suppliers := []entities.Supplier{
		{SupplierID: "SUP_001", SupplierName: "Acme Components", ReliabilityScore: 0.80, LeadTimeDays: 7},
		{SupplierID: "SUP_002", SupplierName: "Global Parts", ReliabilityScore: 0.95, LeadTimeDays: 3},
	}

	// PROD_002 spikes: three quiet days then a surge on the latest date.
	demandHistory := []entities.DemandRecord{
		{ProductID: "PROD_002", Date: now.AddDate(0, 0, -4), DemandQuantity: 10},
		{ProductID: "PROD_002", Date: now.AddDate(0, 0, -3), DemandQuantity: 12},
		{ProductID: "PROD_002", Date: now.AddDate(0, 0, -2), DemandQuantity: 11},
		{ProductID: "PROD_002", Date: now.AddDate(0, 0, -1), DemandQuantity: 60},
		{ProductID: "PROD_003", Date: now.AddDate(0, 0, -2), DemandQuantity: 20},
		{ProductID: "PROD_003", Date: now.AddDate(0, 0, -1), DemandQuantity: 21},
	}

	warehouses := []entities.Warehouse{
		{WarehouseID: "WH_001", WarehouseName: "Central", Capacity: 220},
		{WarehouseID: "WH_002", WarehouseName: "North", Capacity: 5000},
	}

	return &entities.Datasets{
		Inventory:     inventory,
		Orders:        orders,
		Shipments:     shipments,
		Suppliers:     suppliers,
		DemandHistory: demandHistory,
		Warehouses:    warehouses,
	}
}
