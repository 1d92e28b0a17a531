package agents

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// LogisticsAgent expedites overdue shipments, proposes carrier cost
// optimization, and addresses logistics-related bottlenecks.
type LogisticsAgent struct {
	cfg    config.AnalysisConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewLogisticsAgent creates a logistics agent. A nil logger keeps it silent.
func NewLogisticsAgent(cfg config.AnalysisConfig, logger *zap.Logger) *LogisticsAgent {
	return NewLogisticsAgentWithClock(cfg, logger, time.Now)
}

// NewLogisticsAgentWithClock creates a logistics agent with an injected clock
// used for the overdue predicate.
func NewLogisticsAgentWithClock(cfg config.AnalysisConfig, logger *zap.Logger, now func() time.Time) *LogisticsAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogisticsAgent{cfg: cfg, logger: logger, now: now}
}

// carrierStats accumulates per-carrier shipment cost and count.
type carrierStats struct {
	total decimal.Decimal
	count int64
}

// Analyze emits an EXPEDITE_DELAYED_SHIPMENT recommendation per overdue
// shipment, a single OPTIMIZE_CARRIER_SELECTION naming the cheapest carrier
// when more than one carrier exists, and one RESOLVE_LOGISTICS_BOTTLENECK
// per shipment- or delay-related bottleneck. An exact mean-cost tie keeps
// the carrier that appears first in the shipment table.
func (a *LogisticsAgent) Analyze(data *entities.Datasets, bottlenecks []entities.Bottleneck) []entities.Recommendation {
	var recommendations []entities.Recommendation
	now := a.now()

	for _, s := range data.Shipments {
		if !s.EstimatedArrival.Before(now) || s.Status == entities.ShipmentDelivered {
			continue
		}
		recommendations = append(recommendations, entities.Recommendation{
			Type:             entities.ExpediteDelayedShipment,
			Priority:         entities.PriorityHigh,
			Agent:            entities.LogisticsAgentName,
			Action:           entities.ActionContactCarrier,
			ShipmentID:       s.ShipmentID,
			OrderID:          s.OrderID,
			Carrier:          s.Carrier,
			EstimatedArrival: s.EstimatedArrival,
			Message:          fmt.Sprintf("Expedite delayed shipment %s", s.ShipmentID),
		})
	}

	stats := make(map[string]*carrierStats)
	var carrierOrder []string
	for _, s := range data.Shipments {
		cs, seen := stats[s.Carrier]
		if !seen {
			cs = &carrierStats{}
			stats[s.Carrier] = cs
			carrierOrder = append(carrierOrder, s.Carrier)
		}
		cs.total = cs.total.Add(s.Cost)
		cs.count++
	}

	if len(carrierOrder) > 1 {
		var cheapest string
		var cheapestAvg decimal.Decimal
		for _, carrier := range carrierOrder {
			cs := stats[carrier]
			avg := cs.total.Div(decimal.NewFromInt(cs.count))
			if cheapest == "" || avg.LessThan(cheapestAvg) {
				cheapest = carrier
				cheapestAvg = avg
			}
		}
		recommendations = append(recommendations, entities.Recommendation{
			Type:        entities.OptimizeCarrierSelection,
			Priority:    entities.PriorityMedium,
			Agent:       entities.LogisticsAgentName,
			Carrier:     cheapest,
			AverageCost: cheapestAvg,
			Message:     fmt.Sprintf("Consider using %s for cost optimization", cheapest),
		})
	}

	for _, b := range bottlenecks {
		if !b.Type.Contains("SHIPMENT") && !b.Type.Contains("DELAYED") {
			continue
		}
		action := b.RecommendedAction
		if action == "" {
			action = ActionInvestigate
		}
		recommendations = append(recommendations, entities.Recommendation{
			Type:         entities.ResolveLogisticsBottleneck,
			Priority:     entities.PriorityHigh,
			Agent:        entities.LogisticsAgentName,
			Action:       action,
			BottleneckID: b.ID,
			ShipmentID:   b.ShipmentID,
			Carrier:      b.Carrier,
			Message:      fmt.Sprintf("Resolve logistics bottleneck: %s", b.Message),
		})
	}

	a.logger.Info("logistics optimization completed", zap.Int("recommendations", len(recommendations)))
	return recommendations
}
