// Package detection implements the bottleneck detection engine: five
// independent rule detectors evaluated over the dataset snapshot. The
// detectors are pure; the engine owns the fixed concatenation order and the
// sequential id assignment that callers depend on.
package detection

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/config"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// Engine runs the five bottleneck detectors over a dataset snapshot.
type Engine struct {
	cfg    config.AnalysisConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates a detection engine with the given thresholds. A nil
// logger keeps the engine silent.
func NewEngine(cfg config.AnalysisConfig, logger *zap.Logger) *Engine {
	return NewEngineWithClock(cfg, logger, time.Now)
}

// NewEngineWithClock creates a detection engine with an injected clock.
// Detector predicates that compare against "now" use this clock.
func NewEngineWithClock(cfg config.AnalysisConfig, logger *zap.Logger, now func() time.Time) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger, now: now}
}

// RunFullAnalysis evaluates all five detectors and returns the concatenated
// bottleneck list. The detectors are mutually independent and run
// concurrently; results are re-serialized into the fixed order
// (inventory-shortage, delayed-shipment, capacity, demand-spike, supplier)
// before ids and detection timestamps are assigned. That order is an
// external contract: BN_001... ids must be stable for identical input.
func (e *Engine) RunFullAnalysis(data *entities.Datasets) []entities.Bottleneck {
	results := make([][]entities.Bottleneck, 5)

	var wg sync.WaitGroup
	run := func(slot int, detect func() []entities.Bottleneck) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[slot] = detect()
		}()
	}

	run(0, func() []entities.Bottleneck { return e.DetectInventoryShortages(data.Inventory, data.Orders) })
	run(1, func() []entities.Bottleneck { return e.DetectDelayedShipments(data.Shipments) })
	run(2, func() []entities.Bottleneck { return e.DetectCapacityConstraints(data.Warehouses, data.Inventory) })
	run(3, func() []entities.Bottleneck { return e.DetectDemandSpikes(data.DemandHistory) })
	run(4, func() []entities.Bottleneck { return e.DetectSupplierIssues(data.Suppliers, data.Inventory) })
	wg.Wait()

	var all []entities.Bottleneck
	for _, r := range results {
		all = append(all, r...)
	}

	detectedAt := e.now()
	for i := range all {
		all[i].ID = fmt.Sprintf("BN_%03d", i+1)
		all[i].DetectedAt = detectedAt
	}

	e.logger.Info("bottleneck analysis completed", zap.Int("total", len(all)))
	return all
}

// DetectInventoryShortages flags items at or below their minimum threshold,
// then items whose open order demand exceeds current stock. An item sitting
// exactly at its threshold is a shortage (MEDIUM), not exempt.
func (e *Engine) DetectInventoryShortages(inventory []entities.InventoryItem, orders []entities.Order) []entities.Bottleneck {
	var shortages []entities.Bottleneck

	for _, item := range inventory {
		if item.CurrentStock > item.MinThreshold {
			continue
		}
		severity := entities.SeverityMedium
		if float64(item.CurrentStock) < float64(item.MinThreshold)*e.cfg.ShortageSeverityFactor {
			severity = entities.SeverityHigh
		}
		shortages = append(shortages, entities.NewInventoryShortageBottleneck(item, severity))
	}

	// Open demand per product; a product with no open orders counts as zero
	// demand and is never flagged here.
	openDemand := make(map[entities.ProductID]entities.Quantity)
	for _, order := range orders {
		if order.Status.Open() {
			openDemand[order.ProductID] += order.Quantity
		}
	}

	for _, item := range inventory {
		required := openDemand[item.ProductID]
		if item.CurrentStock < required {
			shortages = append(shortages, entities.NewInsufficientStockBottleneck(item, required))
		}
	}

	e.logger.Debug("detected inventory bottlenecks", zap.Int("count", len(shortages)))
	return shortages
}

// DetectDelayedShipments flags overdue shipments (past their estimated
// arrival and not delivered), then shipments due within the at-risk window
// that are still in transit.
func (e *Engine) DetectDelayedShipments(shipments []entities.Shipment) []entities.Bottleneck {
	var delays []entities.Bottleneck
	now := e.now()

	for _, s := range shipments {
		if !s.EstimatedArrival.Before(now) || s.Status == entities.ShipmentDelivered {
			continue
		}
		daysOverdue := int(now.Sub(s.EstimatedArrival).Hours() / 24)
		severity := entities.SeverityMedium
		if daysOverdue > e.cfg.OverdueHighDays {
			severity = entities.SeverityHigh
		}
		delays = append(delays, entities.NewDelayedShipmentBottleneck(s, daysOverdue, severity))
	}

	horizon := now.Add(time.Duration(e.cfg.AtRiskWindowDays) * 24 * time.Hour)
	for _, s := range shipments {
		if s.Status != entities.ShipmentInTransit {
			continue
		}
		if s.EstimatedArrival.Before(now) || s.EstimatedArrival.After(horizon) {
			continue
		}
		delays = append(delays, entities.NewAtRiskShipmentBottleneck(s))
	}

	e.logger.Debug("detected shipping bottlenecks", zap.Int("count", len(delays)))
	return delays
}

// DetectCapacityConstraints flags warehouses whose stock utilization exceeds
// the warning threshold. Warehouses without inventory rows count as empty;
// warehouses with no declared capacity are never flagged.
func (e *Engine) DetectCapacityConstraints(warehouses []entities.Warehouse, inventory []entities.InventoryItem) []entities.Bottleneck {
	stockByWarehouse := make(map[entities.WarehouseID]entities.Quantity)
	for _, item := range inventory {
		stockByWarehouse[item.WarehouseID] += item.CurrentStock
	}

	var constraints []entities.Bottleneck
	for _, w := range warehouses {
		if w.Capacity <= 0 {
			continue
		}
		utilization := float64(stockByWarehouse[w.WarehouseID]) / float64(w.Capacity)
		if utilization <= e.cfg.UtilizationWarning {
			continue
		}
		severity := entities.SeverityMedium
		if utilization > e.cfg.UtilizationHigh {
			severity = entities.SeverityHigh
		}
		constraints = append(constraints, entities.NewCapacityConstraintBottleneck(w, utilization, severity))
	}

	e.logger.Debug("detected capacity bottlenecks", zap.Int("count", len(constraints)))
	return constraints
}

// DetectDemandSpikes flags products whose most recent demand observation
// exceeds the trailing moving average by the spike factor. Products with
// fewer observations than the window are skipped, never flagged.
func (e *Engine) DetectDemandSpikes(history []entities.DemandRecord) []entities.Bottleneck {
	byProduct := make(map[entities.ProductID][]entities.DemandRecord)
	var productOrder []entities.ProductID
	for _, rec := range history {
		if _, seen := byProduct[rec.ProductID]; !seen {
			productOrder = append(productOrder, rec.ProductID)
		}
		byProduct[rec.ProductID] = append(byProduct[rec.ProductID], rec)
	}

	var spikes []entities.Bottleneck
	for _, productID := range productOrder {
		records := byProduct[productID]
		if len(records) < e.cfg.SpikeWindow {
			continue
		}

		sorted := make([]entities.DemandRecord, len(records))
		copy(sorted, records)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		// Trailing window including the most recent observation.
		latest := sorted[len(sorted)-1]
		window := sorted[len(sorted)-e.cfg.SpikeWindow:]
		var sum entities.Quantity
		for _, rec := range window {
			sum += rec.DemandQuantity
		}
		movingAvg := float64(sum) / float64(len(window))

		if float64(latest.DemandQuantity) > movingAvg*e.cfg.SpikeFactor {
			spikes = append(spikes, entities.NewDemandSpikeBottleneck(productID, latest, movingAvg))
		}
	}

	e.logger.Debug("detected demand bottlenecks", zap.Int("count", len(spikes)))
	return spikes
}

// DetectSupplierIssues flags suppliers below the reliability warning score.
// The report includes how many inventory items reference the supplier; zero
// is a valid count.
func (e *Engine) DetectSupplierIssues(suppliers []entities.Supplier, inventory []entities.InventoryItem) []entities.Bottleneck {
	var issues []entities.Bottleneck
	for _, s := range suppliers {
		if s.ReliabilityScore >= e.cfg.ReliabilityWarning {
			continue
		}
		severity := entities.SeverityMedium
		if s.ReliabilityScore < e.cfg.ReliabilityHigh {
			severity = entities.SeverityHigh
		}

		affected := 0
		for _, item := range inventory {
			if item.SupplierID == s.SupplierID {
				affected++
			}
		}
		issues = append(issues, entities.NewSupplierReliabilityBottleneck(s, affected, severity))
	}

	e.logger.Debug("detected supplier bottlenecks", zap.Int("count", len(issues)))
	return issues
}

// Summarize aggregates bottlenecks by type and severity.
func Summarize(bottlenecks []entities.Bottleneck) entities.BottleneckSummary {
	summary := entities.BottleneckSummary{
		Total:      len(bottlenecks),
		ByType:     make(map[entities.BottleneckType]int),
		BySeverity: make(map[entities.Severity]int),
	}
	for _, b := range bottlenecks {
		summary.ByType[b.Type]++
		summary.BySeverity[b.Severity]++
	}
	return summary
}

// Critical returns only the HIGH-severity bottlenecks, in detection order.
func Critical(bottlenecks []entities.Bottleneck) []entities.Bottleneck {
	var critical []entities.Bottleneck
	for _, b := range bottlenecks {
		if b.IsHigh() {
			critical = append(critical, b)
		}
	}
	return critical
}
