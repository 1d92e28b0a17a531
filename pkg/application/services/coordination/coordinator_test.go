package coordination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/agents"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestCoordinator() *Coordinator {
	return NewCoordinatorWithClock(nil, func() time.Time { return testNow })
}

func TestDecideDeduplicatesInventoryPerProduct(t *testing.T) {
	coordinator := newTestCoordinator()

	recommendations := []entities.Recommendation{
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_002", Agent: entities.InventoryAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	require.Len(t, decisions, 2)

	assert.Equal(t, "DEC_001", decisions[0].DecisionID)
	assert.Equal(t, entities.InventoryAction, decisions[0].Type)
	assert.Equal(t, entities.ProductID("PROD_001"), decisions[0].ProductID)
	assert.Equal(t, entities.DecisionApproved, decisions[0].Status)
	assert.Equal(t, entities.CoordinatorName, decisions[0].CoordinatingAgent)

	assert.Equal(t, "DEC_002", decisions[1].DecisionID)
	assert.Equal(t, entities.ProductID("PROD_002"), decisions[1].ProductID)
}

func TestDecideMergesReorderTypesForSameProduct(t *testing.T) {
	coordinator := newTestCoordinator()

	// A standard and an emergency reorder for the same product collapse into
	// one decision regardless of input order; the HIGH one wins.
	orderings := map[string][]entities.Recommendation{
		"medium first": {
			{Type: entities.StandardReorder, Priority: entities.PriorityMedium, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
			{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		},
		"high first": {
			{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
			{Type: entities.StandardReorder, Priority: entities.PriorityMedium, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		},
	}

	for name, recommendations := range orderings {
		t.Run(name, func(t *testing.T) {
			decisions := coordinator.Decide(nil, recommendations)
			require.Len(t, decisions, 1)

			assert.Equal(t, entities.InventoryAction, decisions[0].Type)
			assert.Equal(t, string(entities.EmergencyReorder), decisions[0].Action)
			assert.Equal(t, entities.PriorityHigh, decisions[0].Priority)
			assert.Equal(t, entities.ProductID("PROD_001"), decisions[0].ProductID)
		})
	}
}

func TestDecideHighPriorityProcessedFirst(t *testing.T) {
	coordinator := newTestCoordinator()

	// MEDIUM arrives before HIGH in emission order; HIGH still wins the
	// earlier decision ids.
	recommendations := []entities.Recommendation{
		{Type: entities.StandardReorder, Priority: entities.PriorityMedium, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_002", Agent: entities.InventoryAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	require.Len(t, decisions, 2)

	assert.Equal(t, entities.ProductID("PROD_002"), decisions[0].ProductID)
	assert.Equal(t, entities.PriorityHigh, decisions[0].Priority)
	assert.Equal(t, entities.ProductID("PROD_001"), decisions[1].ProductID)
}

func TestDecideLogisticsOneDecisionPerRecommendation(t *testing.T) {
	coordinator := newTestCoordinator()

	recommendations := []entities.Recommendation{
		{Type: entities.ExpediteDelayedShipment, Priority: entities.PriorityHigh, ShipmentID: "SHIP_001", Carrier: "FastShip", Agent: entities.LogisticsAgentName},
		{Type: entities.ExpediteDelayedShipment, Priority: entities.PriorityHigh, ShipmentID: "SHIP_002", Carrier: "FastShip", Agent: entities.LogisticsAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	require.Len(t, decisions, 2)

	for i, d := range decisions {
		assert.Equal(t, entities.LogisticsAction, d.Type)
		assert.Equal(t, string(entities.ExpediteDelayedShipment), d.Action)
		require.NotNil(t, d.Recommendation)
		assert.Equal(t, recommendations[i].ShipmentID, d.ShipmentID)
	}
}

func TestDecideGeneralAction(t *testing.T) {
	coordinator := newTestCoordinator()

	recommendations := []entities.Recommendation{
		{Type: entities.AddressDemandBottleneck, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.DemandAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	require.Len(t, decisions, 1)
	assert.Equal(t, entities.GeneralAction, decisions[0].Type)
}

func TestDecideEscalatesCriticalBottlenecks(t *testing.T) {
	coordinator := newTestCoordinator()

	bottlenecks := []entities.Bottleneck{
		{ID: "BN_001", Type: entities.InventoryShortage, Severity: entities.SeverityHigh, RecommendedAction: entities.ActionReorderImmediately},
		{ID: "BN_002", Type: entities.AtRiskShipment, Severity: entities.SeverityMedium},
		{ID: "BN_003", Type: entities.DelayedShipment, Severity: entities.SeverityHigh},
	}
	recommendations := []entities.Recommendation{
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
	}

	decisions := coordinator.Decide(bottlenecks, recommendations)
	require.Len(t, decisions, 3)

	// Escalations come after recommendation-derived decisions and continue
	// the same id counter.
	assert.Equal(t, "DEC_002", decisions[1].DecisionID)
	assert.Equal(t, entities.CriticalBottleneckResolution, decisions[1].Type)
	assert.Equal(t, entities.PriorityCritical, decisions[1].Priority)
	assert.Equal(t, entities.DecisionUrgent, decisions[1].Status)
	assert.Equal(t, "BN_001", decisions[1].BottleneckID)
	assert.Equal(t, entities.ActionReorderImmediately, decisions[1].Action)
	require.NotNil(t, decisions[1].Bottleneck)

	// No recommended action on the bottleneck falls back to INVESTIGATE.
	assert.Equal(t, "DEC_003", decisions[2].DecisionID)
	assert.Equal(t, agents.ActionInvestigate, decisions[2].Action)
	assert.Equal(t, "BN_003", decisions[2].BottleneckID)
}

func TestDecideSkipsInventoryRecommendationWithoutProduct(t *testing.T) {
	coordinator := newTestCoordinator()

	recommendations := []entities.Recommendation{
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, Agent: entities.InventoryAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	assert.Empty(t, decisions)
}

func TestDecideTimestampsShareOneClockReading(t *testing.T) {
	coordinator := newTestCoordinator()

	recommendations := []entities.Recommendation{
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, ProductID: "PROD_001", Agent: entities.InventoryAgentName},
		{Type: entities.ExpediteDelayedShipment, Priority: entities.PriorityHigh, ShipmentID: "SHIP_001", Agent: entities.LogisticsAgentName},
	}

	decisions := coordinator.Decide(nil, recommendations)
	require.Len(t, decisions, 2)
	for _, d := range decisions {
		assert.Equal(t, testNow, d.Timestamp)
	}
}
