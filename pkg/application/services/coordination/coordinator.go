// Package coordination implements the decision coordinator: it merges the
// agents' recommendations into approved decisions and escalates critical
// bottlenecks. Decision ids come from one counter shared across all decision
// kinds within a run.
package coordination

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/agents"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// Coordinator turns recommendations and bottlenecks into final decisions.
type Coordinator struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewCoordinator creates a decision coordinator. A nil logger keeps it silent.
func NewCoordinator(logger *zap.Logger) *Coordinator {
	return NewCoordinatorWithClock(logger, time.Now)
}

// NewCoordinatorWithClock creates a coordinator with an injected clock used
// for decision timestamps.
func NewCoordinatorWithClock(logger *zap.Logger, now func() time.Time) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{logger: logger, now: now}
}

// Decide processes recommendations HIGH-priority first, then MEDIUM, stable
// within each tier, grouped by recommendation type in order of first
// appearance. Inventory-keyword recommendations share one product map across
// all their type groups: the first recommendation for a product wins unless a
// later one is HIGH and the kept one is not, in which case it is replaced
// outright (no field merging). The surviving entries emit as one
// INVENTORY_ACTION each at the position of the first inventory-keyword group.
// Logistics-keyword and other groups emit one decision per recommendation.
// After all groups, every HIGH-severity bottleneck is escalated to a
// CRITICAL_BOTTLENECK_RESOLUTION decision; these may duplicate
// recommendation-derived decisions for the same product or shipment.
func (c *Coordinator) Decide(bottlenecks []entities.Bottleneck, recommendations []entities.Recommendation) []entities.Decision {
	var combined []entities.Recommendation
	for _, r := range recommendations {
		if r.Priority == entities.PriorityHigh {
			combined = append(combined, r)
		}
	}
	for _, r := range recommendations {
		if r.Priority == entities.PriorityMedium {
			combined = append(combined, r)
		}
	}

	groups := make(map[entities.RecommendationType][]entities.Recommendation)
	var groupOrder []entities.RecommendationType
	for _, r := range combined {
		if _, seen := groups[r.Type]; !seen {
			groupOrder = append(groupOrder, r.Type)
		}
		groups[r.Type] = append(groups[r.Type], r)
	}

	isInventory := func(t entities.RecommendationType) bool {
		return t.Contains("REORDER") || t.Contains("INVENTORY")
	}

	// One product map spans every inventory-keyword group, so a standard and
	// an emergency reorder for the same product collapse into one decision.
	kept := make(map[entities.ProductID]entities.Recommendation)
	var productOrder []entities.ProductID
	for _, rec := range combined {
		if !isInventory(rec.Type) || rec.ProductID == "" {
			continue
		}
		existing, seen := kept[rec.ProductID]
		if !seen {
			kept[rec.ProductID] = rec
			productOrder = append(productOrder, rec.ProductID)
			continue
		}
		if rec.Priority == entities.PriorityHigh && existing.Priority != entities.PriorityHigh {
			kept[rec.ProductID] = rec
		}
	}

	var decisions []entities.Decision
	timestamp := c.now()

	nextID := func() string {
		return fmt.Sprintf("DEC_%03d", len(decisions)+1)
	}

	inventoryEmitted := false
	for _, recType := range groupOrder {
		recs := groups[recType]

		switch {
		case isInventory(recType):
			if inventoryEmitted {
				continue
			}
			inventoryEmitted = true

			for _, productID := range productOrder {
				rec := kept[productID]
				decisions = append(decisions, entities.Decision{
					DecisionID:        nextID(),
					Type:              entities.InventoryAction,
					Action:            string(rec.Type),
					ProductID:         productID,
					Priority:          rec.Priority,
					Status:            entities.DecisionApproved,
					CoordinatingAgent: entities.CoordinatorName,
					Timestamp:         timestamp,
					Recommendation:    &rec,
				})
			}

		case recType.Contains("LOGISTICS") || recType.Contains("SHIPMENT"):
			for _, rec := range recs {
				decisions = append(decisions, entities.Decision{
					DecisionID:        nextID(),
					Type:              entities.LogisticsAction,
					Action:            string(rec.Type),
					ShipmentID:        rec.ShipmentID,
					Carrier:           rec.Carrier,
					Priority:          rec.Priority,
					Status:            entities.DecisionApproved,
					CoordinatingAgent: entities.CoordinatorName,
					Timestamp:         timestamp,
					Recommendation:    &rec,
				})
			}

		default:
			for _, rec := range recs {
				decisions = append(decisions, entities.Decision{
					DecisionID:        nextID(),
					Type:              entities.GeneralAction,
					Action:            string(rec.Type),
					Priority:          rec.Priority,
					Status:            entities.DecisionApproved,
					CoordinatingAgent: entities.CoordinatorName,
					Timestamp:         timestamp,
					Recommendation:    &rec,
				})
			}
		}
	}

	for _, b := range bottlenecks {
		if !b.IsHigh() {
			continue
		}
		action := b.RecommendedAction
		if action == "" {
			action = agents.ActionInvestigate
		}
		decisions = append(decisions, entities.Decision{
			DecisionID:        nextID(),
			Type:              entities.CriticalBottleneckResolution,
			Action:            action,
			BottleneckID:      b.ID,
			Priority:          entities.PriorityCritical,
			Status:            entities.DecisionUrgent,
			CoordinatingAgent: entities.CoordinatorName,
			Timestamp:         timestamp,
			Bottleneck:        &b,
		})
	}

	critical := 0
	for _, d := range decisions {
		if d.Priority == entities.PriorityCritical {
			critical++
		}
	}
	c.logger.Info("final decisions completed",
		zap.Int("total_decisions", len(decisions)),
		zap.Int("critical_decisions", critical))

	return decisions
}
