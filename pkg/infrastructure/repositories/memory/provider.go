// Package memory provides an in-memory dataset provider for tests and
// embedded use.
package memory

import (
	"context"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
)

// Provider serves a fixed dataset snapshot held in memory. Each load returns
// shallow copies of the table slices so callers cannot disturb the source.
type Provider struct {
	data entities.Datasets
}

// NewProvider creates a provider over the given snapshot.
func NewProvider(data entities.Datasets) *Provider {
	return &Provider{data: data}
}

// Verify interface compliance
var _ repositories.DatasetProvider = (*Provider)(nil)

// LoadDatasets returns the held snapshot.
func (p *Provider) LoadDatasets(ctx context.Context) (*entities.Datasets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &entities.Datasets{
		Inventory:     append([]entities.InventoryItem(nil), p.data.Inventory...),
		Orders:        append([]entities.Order(nil), p.data.Orders...),
		Shipments:     append([]entities.Shipment(nil), p.data.Shipments...),
		Suppliers:     append([]entities.Supplier(nil), p.data.Suppliers...),
		DemandHistory: append([]entities.DemandRecord(nil), p.data.DemandHistory...),
		Warehouses:    append([]entities.Warehouse(nil), p.data.Warehouses...),
	}, nil
}
