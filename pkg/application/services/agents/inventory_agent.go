package agents

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// InventoryAgent proposes reorders based on each item's stock-to-threshold
// ratio and addresses inventory-related bottlenecks.
type InventoryAgent struct {
	cfg    config.AnalysisConfig
	logger *zap.Logger
}

// NewInventoryAgent creates an inventory agent. A nil logger keeps it silent.
func NewInventoryAgent(cfg config.AnalysisConfig, logger *zap.Logger) *InventoryAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryAgent{cfg: cfg, logger: logger}
}

// Analyze emits an emergency or standard reorder per item depending on its
// stock ratio, then one RESOLVE_INVENTORY_BOTTLENECK recommendation per
// inventory-related bottleneck. Items with no positive minimum threshold are
// skipped: the ratio is undefined and that is not an anomaly.
func (a *InventoryAgent) Analyze(data *entities.Datasets, bottlenecks []entities.Bottleneck) []entities.Recommendation {
	var recommendations []entities.Recommendation

	for _, item := range data.Inventory {
		if item.MinThreshold <= 0 {
			continue
		}
		stockRatio := float64(item.CurrentStock) / float64(item.MinThreshold)

		switch {
		case stockRatio < a.cfg.EmergencyStockRatio:
			recommendations = append(recommendations, entities.Recommendation{
				Type:                entities.EmergencyReorder,
				Priority:            entities.PriorityHigh,
				Agent:               entities.InventoryAgentName,
				ProductID:           item.ProductID,
				ProductName:         item.ProductName,
				CurrentStock:        item.CurrentStock,
				MinThreshold:        item.MinThreshold,
				RecommendedQuantity: float64(item.MinThreshold) * a.cfg.EmergencyReorderFactor,
				WarehouseID:         item.WarehouseID,
				SupplierID:          item.SupplierID,
				Message:             fmt.Sprintf("Emergency reorder needed for %s", item.ProductName),
			})
		case stockRatio < 1.0:
			recommendations = append(recommendations, entities.Recommendation{
				Type:                entities.StandardReorder,
				Priority:            entities.PriorityMedium,
				Agent:               entities.InventoryAgentName,
				ProductID:           item.ProductID,
				ProductName:         item.ProductName,
				CurrentStock:        item.CurrentStock,
				MinThreshold:        item.MinThreshold,
				RecommendedQuantity: float64(item.MinThreshold) * a.cfg.StandardReorderFactor,
				WarehouseID:         item.WarehouseID,
				SupplierID:          item.SupplierID,
				Message:             fmt.Sprintf("Standard reorder recommended for %s", item.ProductName),
			})
		}
	}

	for _, b := range bottlenecks {
		if !b.Type.Contains("INVENTORY") {
			continue
		}
		action := b.RecommendedAction
		if action == "" {
			action = ActionReorder
		}
		recommendations = append(recommendations, entities.Recommendation{
			Type:         entities.ResolveInventoryBottleneck,
			Priority:     entities.PriorityHigh,
			Agent:        entities.InventoryAgentName,
			Action:       action,
			BottleneckID: b.ID,
			ProductID:    b.ProductID,
			WarehouseID:  b.WarehouseID,
			Message:      fmt.Sprintf("Resolve inventory bottleneck: %s", b.Message),
		})
	}

	a.logger.Info("inventory optimization completed", zap.Int("recommendations", len(recommendations)))
	return recommendations
}
