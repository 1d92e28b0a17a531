package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

func TestInventoryAgentReorders(t *testing.T) {
	agent := NewInventoryAgent(config.DefaultConfig(), nil)

	data := &entities.Datasets{
		Inventory: []entities.InventoryItem{
			{ProductID: "PROD_001", ProductName: "Widget A", CurrentStock: 10, MinThreshold: 50, WarehouseID: "WH_001", SupplierID: "SUP_001"},
			{ProductID: "PROD_002", ProductName: "Widget B", CurrentStock: 30, MinThreshold: 40, WarehouseID: "WH_001", SupplierID: "SUP_001"},
			{ProductID: "PROD_003", ProductName: "Widget C", CurrentStock: 100, MinThreshold: 40, WarehouseID: "WH_002", SupplierID: "SUP_002"},
			// Undefined ratio, not an anomaly.
			{ProductID: "PROD_004", ProductName: "Widget D", CurrentStock: 0, MinThreshold: 0, WarehouseID: "WH_002", SupplierID: "SUP_002"},
		},
	}

	result := agent.Analyze(data, nil)
	require.Len(t, result, 2)

	emergency := result[0]
	assert.Equal(t, entities.EmergencyReorder, emergency.Type)
	assert.Equal(t, entities.PriorityHigh, emergency.Priority)
	assert.Equal(t, entities.InventoryAgentName, emergency.Agent)
	assert.Equal(t, entities.ProductID("PROD_001"), emergency.ProductID)
	assert.InDelta(t, 100.0, emergency.RecommendedQuantity, 0.001)

	standard := result[1]
	assert.Equal(t, entities.StandardReorder, standard.Type)
	assert.Equal(t, entities.PriorityMedium, standard.Priority)
	assert.Equal(t, entities.ProductID("PROD_002"), standard.ProductID)
	assert.InDelta(t, 60.0, standard.RecommendedQuantity, 0.001)
}

func TestInventoryAgentResolvesInventoryBottlenecks(t *testing.T) {
	agent := NewInventoryAgent(config.DefaultConfig(), nil)

	bottlenecks := []entities.Bottleneck{
		{
			ID:                "BN_001",
			Type:              entities.InventoryShortage,
			ProductID:         "PROD_001",
			WarehouseID:       "WH_001",
			Message:           "Product Widget A is below minimum threshold",
			RecommendedAction: entities.ActionReorderImmediately,
		},
		{ID: "BN_002", Type: entities.InventoryShortage, ProductID: "PROD_002"},
		// Matching is on the INVENTORY keyword, so these are ignored.
		{ID: "BN_003", Type: entities.InsufficientStockForOrders, ProductID: "PROD_003"},
		{ID: "BN_004", Type: entities.SupplierReliabilityIssue},
	}

	result := agent.Analyze(&entities.Datasets{}, bottlenecks)
	require.Len(t, result, 2)

	assert.Equal(t, entities.ResolveInventoryBottleneck, result[0].Type)
	assert.Equal(t, entities.ActionReorderImmediately, result[0].Action)
	assert.Equal(t, "BN_001", result[0].BottleneckID)

	// Bottleneck with no recommended action falls back to REORDER.
	assert.Equal(t, ActionReorder, result[1].Action)
	assert.Equal(t, "BN_002", result[1].BottleneckID)
}
