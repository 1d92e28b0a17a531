// Package agents implements the three domain rule agents. Each agent
// consumes the dataset snapshot plus the detected bottlenecks and emits
// recommendations for its domain. Emission order is load-bearing: the
// decision coordinator breaks ties on it.
package agents

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// Agent actions attached to bottleneck-resolution recommendations.
const (
	ActionForecastAdjustment = "FORECAST_ADJUSTMENT"
	ActionReorder            = "REORDER"
	ActionInvestigate        = "INVESTIGATE"
)

// DemandAgent watches demand fluctuations: recent order volume against the
// historical mean per product.
type DemandAgent struct {
	cfg    config.AnalysisConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewDemandAgent creates a demand monitoring agent. A nil logger keeps it silent.
func NewDemandAgent(cfg config.AnalysisConfig, logger *zap.Logger) *DemandAgent {
	return NewDemandAgentWithClock(cfg, logger, time.Now)
}

// NewDemandAgentWithClock creates a demand agent with an injected clock used
// for the recent-order window.
func NewDemandAgentWithClock(cfg config.AnalysisConfig, logger *zap.Logger, now func() time.Time) *DemandAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemandAgent{cfg: cfg, logger: logger, now: now}
}

// Analyze compares recent order volume per product against the historical
// mean demand and emits increase/reduce recommendations, then one
// ADDRESS_DEMAND_BOTTLENECK recommendation per demand-related bottleneck.
//
// Products are merged outer-style: all products with recent orders first, in
// lexicographic id order, then products only present in the demand history,
// also sorted. Missing sides count as zero, so a product with history but no
// recent orders has ratio 0 and receives a reduce recommendation.
func (a *DemandAgent) Analyze(data *entities.Datasets, bottlenecks []entities.Bottleneck) []entities.Recommendation {
	var recommendations []entities.Recommendation

	cutoff := a.now().Add(-time.Duration(a.cfg.RecentOrderWindowDays) * 24 * time.Hour)
	recent := make(map[entities.ProductID]entities.Quantity)
	var productOrder []entities.ProductID
	for _, order := range data.Orders {
		if order.OrderDate.Before(cutoff) {
			continue
		}
		if _, seen := recent[order.ProductID]; !seen {
			productOrder = append(productOrder, order.ProductID)
		}
		recent[order.ProductID] += order.Quantity
	}

	historicalSum := make(map[entities.ProductID]entities.Quantity)
	historicalCount := make(map[entities.ProductID]int)
	var historyOrder []entities.ProductID
	for _, rec := range data.DemandHistory {
		if _, seen := historicalCount[rec.ProductID]; !seen {
			historyOrder = append(historyOrder, rec.ProductID)
		}
		historicalSum[rec.ProductID] += rec.DemandQuantity
		historicalCount[rec.ProductID]++
	}

	sort.Slice(productOrder, func(i, j int) bool { return productOrder[i] < productOrder[j] })
	sort.Slice(historyOrder, func(i, j int) bool { return historyOrder[i] < historyOrder[j] })

	merged := productOrder
	for _, productID := range historyOrder {
		if _, seen := recent[productID]; !seen {
			merged = append(merged, productID)
		}
	}

	for _, productID := range merged {
		recentQty := float64(recent[productID])
		historicalAvg := 0.0
		if n := historicalCount[productID]; n > 0 {
			historicalAvg = float64(historicalSum[productID]) / float64(n)
		}

		ratio := recentQty / (historicalAvg + 1)
		switch {
		case ratio > a.cfg.DemandIncreaseRatio:
			recommendations = append(recommendations, entities.Recommendation{
				Type:                entities.IncreaseInventoryForDemandSpike,
				Priority:            entities.PriorityHigh,
				Agent:               entities.DemandAgentName,
				ProductID:           productID,
				CurrentDemand:       recentQty,
				HistoricalAverage:   historicalAvg,
				RecommendedIncrease: recentQty * a.cfg.DemandIncreaseFraction,
				Message:             fmt.Sprintf("Demand spike detected for product %s", productID),
			})
		case ratio < a.cfg.DemandDecreaseRatio:
			recommendations = append(recommendations, entities.Recommendation{
				Type:              entities.ReduceInventoryForLowDemand,
				Priority:          entities.PriorityMedium,
				Agent:             entities.DemandAgentName,
				ProductID:         productID,
				CurrentDemand:     recentQty,
				HistoricalAverage: historicalAvg,
				Message:           fmt.Sprintf("Low demand detected for product %s", productID),
			})
		}
	}

	for _, b := range bottlenecks {
		if !b.Type.Contains("DEMAND") {
			continue
		}
		recommendations = append(recommendations, entities.Recommendation{
			Type:         entities.AddressDemandBottleneck,
			Priority:     entities.PriorityHigh,
			Agent:        entities.DemandAgentName,
			Action:       ActionForecastAdjustment,
			BottleneckID: b.ID,
			ProductID:    b.ProductID,
			Message:      fmt.Sprintf("Address demand bottleneck: %s", b.Message),
		})
	}

	a.logger.Info("demand analysis completed", zap.Int("recommendations", len(recommendations)))
	return recommendations
}
