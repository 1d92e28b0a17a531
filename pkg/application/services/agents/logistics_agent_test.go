package agents

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

func newTestLogisticsAgent() *LogisticsAgent {
	return NewLogisticsAgentWithClock(config.DefaultConfig(), nil, func() time.Time { return testNow })
}

func TestLogisticsAgentExpeditesOverdueShipments(t *testing.T) {
	agent := newTestLogisticsAgent()

	data := &entities.Datasets{
		Shipments: []entities.Shipment{
			{ShipmentID: "SHIP_001", OrderID: "ORD_001", Carrier: "FastShip", Cost: decimal.NewFromInt(100), EstimatedArrival: testNow.AddDate(0, 0, -5), Status: entities.ShipmentInTransit},
			{ShipmentID: "SHIP_002", OrderID: "ORD_002", Carrier: "FastShip", Cost: decimal.NewFromInt(100), EstimatedArrival: testNow.AddDate(0, 0, -2), Status: entities.ShipmentDelivered},
			{ShipmentID: "SHIP_003", OrderID: "ORD_003", Carrier: "FastShip", Cost: decimal.NewFromInt(100), EstimatedArrival: testNow.AddDate(0, 0, 3), Status: entities.ShipmentInTransit},
		},
	}

	result := agent.Analyze(data, nil)
	require.Len(t, result, 1)

	r := result[0]
	assert.Equal(t, entities.ExpediteDelayedShipment, r.Type)
	assert.Equal(t, entities.PriorityHigh, r.Priority)
	assert.Equal(t, entities.LogisticsAgentName, r.Agent)
	assert.Equal(t, entities.ActionContactCarrier, r.Action)
	assert.Equal(t, entities.ShipmentID("SHIP_001"), r.ShipmentID)
}

func TestLogisticsAgentPicksCheapestCarrier(t *testing.T) {
	agent := newTestLogisticsAgent()

	future := testNow.AddDate(0, 0, 5)
	data := &entities.Datasets{
		Shipments: []entities.Shipment{
			{ShipmentID: "SHIP_001", Carrier: "FastShip", Cost: decimal.NewFromInt(200), EstimatedArrival: future, Status: entities.ShipmentInTransit},
			{ShipmentID: "SHIP_002", Carrier: "QuickLogistics", Cost: decimal.NewFromInt(80), EstimatedArrival: future, Status: entities.ShipmentInTransit},
			{ShipmentID: "SHIP_003", Carrier: "QuickLogistics", Cost: decimal.NewFromInt(120), EstimatedArrival: future, Status: entities.ShipmentInTransit},
		},
	}

	result := agent.Analyze(data, nil)
	require.Len(t, result, 1)

	r := result[0]
	assert.Equal(t, entities.OptimizeCarrierSelection, r.Type)
	assert.Equal(t, entities.PriorityMedium, r.Priority)
	assert.Equal(t, "QuickLogistics", r.Carrier)
	assert.True(t, r.AverageCost.Equal(decimal.NewFromInt(100)))
}

func TestLogisticsAgentCarrierTieKeepsFirstSeen(t *testing.T) {
	agent := newTestLogisticsAgent()

	future := testNow.AddDate(0, 0, 5)
	data := &entities.Datasets{
		Shipments: []entities.Shipment{
			{ShipmentID: "SHIP_001", Carrier: "FastShip", Cost: decimal.NewFromInt(100), EstimatedArrival: future, Status: entities.ShipmentInTransit},
			{ShipmentID: "SHIP_002", Carrier: "QuickLogistics", Cost: decimal.NewFromInt(100), EstimatedArrival: future, Status: entities.ShipmentInTransit},
		},
	}

	result := agent.Analyze(data, nil)
	require.Len(t, result, 1)
	assert.Equal(t, "FastShip", result[0].Carrier)
}

func TestLogisticsAgentSingleCarrierNoOptimization(t *testing.T) {
	agent := newTestLogisticsAgent()

	data := &entities.Datasets{
		Shipments: []entities.Shipment{
			{ShipmentID: "SHIP_001", Carrier: "FastShip", Cost: decimal.NewFromInt(100), EstimatedArrival: testNow.AddDate(0, 0, 5), Status: entities.ShipmentInTransit},
		},
	}

	result := agent.Analyze(data, nil)
	assert.Empty(t, result)
}

func TestLogisticsAgentResolvesLogisticsBottlenecks(t *testing.T) {
	agent := newTestLogisticsAgent()

	bottlenecks := []entities.Bottleneck{
		{ID: "BN_001", Type: entities.DelayedShipment, ShipmentID: "SHIP_001", Carrier: "FastShip", RecommendedAction: entities.ActionContactCarrier},
		{ID: "BN_002", Type: entities.AtRiskShipment, ShipmentID: "SHIP_002"},
		{ID: "BN_003", Type: entities.InventoryShortage},
	}

	result := agent.Analyze(&entities.Datasets{}, bottlenecks)
	require.Len(t, result, 2)

	assert.Equal(t, entities.ResolveLogisticsBottleneck, result[0].Type)
	assert.Equal(t, entities.ActionContactCarrier, result[0].Action)
	assert.Equal(t, "BN_001", result[0].BottleneckID)

	// At-risk bottlenecks carry MONITOR_CLOSELY from the detector; with no
	// action set the agent falls back to INVESTIGATE.
	assert.Equal(t, ActionInvestigate, result[1].Action)
}
