package orchestration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	fixtures "github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/testing"
)

func newTestAssembler() *ReportAssembler {
	return NewReportAssemblerWithClock(config.DefaultConfig(), fixtureClock)
}

func highBottlenecks(n int) []entities.Bottleneck {
	var out []entities.Bottleneck
	for i := 0; i < n; i++ {
		out = append(out, entities.Bottleneck{
			Type:              entities.InventoryShortage,
			Severity:          entities.SeverityHigh,
			Message:           "Product is below minimum threshold",
			RecommendedAction: entities.ActionReorderImmediately,
		})
	}
	return out
}

func TestAssembleStatusThresholds(t *testing.T) {
	assembler := newTestAssembler()

	tests := []struct {
		name     string
		critical int
		want     entities.OverallStatus
	}{
		{"no critical is normal", 0, entities.StatusNormal},
		{"at warning threshold stays normal", 2, entities.StatusNormal},
		{"above warning threshold", 3, entities.StatusWarning},
		{"at critical threshold stays warning", 5, entities.StatusWarning},
		{"above critical threshold", 6, entities.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewRunState(fixtures.FixtureTime)
			state.Bottlenecks = highBottlenecks(tt.critical)

			report := assembler.Assemble(state)
			assert.Equal(t, tt.want, report.Status)
			assert.Equal(t, tt.critical, report.Summary.CriticalBottlenecks)
		})
	}
}

func TestAssembleAlerts(t *testing.T) {
	assembler := newTestAssembler()

	state := NewRunState(fixtures.FixtureTime)
	state.Bottlenecks = []entities.Bottleneck{
		{Type: entities.InventoryShortage, Severity: entities.SeverityHigh, Message: "Widget A is below minimum threshold", RecommendedAction: entities.ActionReorderImmediately},
		{Type: entities.AtRiskShipment, Severity: entities.SeverityMedium, Message: "at risk"},
	}
	state.Recommendations = []entities.Recommendation{
		{Type: entities.EmergencyReorder, Priority: entities.PriorityHigh, Message: "Emergency reorder needed for Widget A"},
		// No message and no action: type and REVIEW stand in.
		{Type: entities.AddressDemandBottleneck, Priority: entities.PriorityHigh},
		{Type: entities.StandardReorder, Priority: entities.PriorityMedium, Message: "ignored"},
	}

	report := assembler.Assemble(state)
	require.Len(t, report.Alerts, 3)

	assert.Equal(t, entities.AlertCriticalBottleneck, report.Alerts[0].Type)
	assert.Equal(t, "Widget A is below minimum threshold", report.Alerts[0].Message)
	assert.Equal(t, entities.ActionReorderImmediately, report.Alerts[0].ActionRequired)
	assert.Equal(t, entities.SeverityHigh, report.Alerts[0].Severity)

	assert.Equal(t, entities.AlertHighPriorityRecommendation, report.Alerts[1].Type)
	assert.Equal(t, "Emergency reorder needed for Widget A", report.Alerts[1].Message)
	assert.Equal(t, entities.SeverityMedium, report.Alerts[1].Severity)

	assert.Equal(t, string(entities.AddressDemandBottleneck), report.Alerts[2].Message)
	assert.Equal(t, ActionReview, report.Alerts[2].ActionRequired)

	assert.Equal(t, 3, report.Summary.TotalAlerts)
	assert.Equal(t, 2, report.Summary.HighPriorityItems)
}

func TestAssembleEmptyState(t *testing.T) {
	assembler := newTestAssembler()

	state := NewRunState(fixtures.FixtureTime)
	state.Data = &entities.Datasets{}

	report := assembler.Assemble(state)
	assert.Equal(t, entities.StatusNormal, report.Status)
	require.NotNil(t, report.Alerts)
	assert.Empty(t, report.Alerts)
	assert.Equal(t, state.RunID, report.RunID)
	assert.Equal(t, fixtures.FixtureTime, report.Timestamp)
	assert.Zero(t, report.DataSummary["orders"])
}
