package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeValidDataset(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, InventoryFile,
		"product_id,product_name,current_stock,min_threshold,warehouse_id,supplier_id\n"+
			"PROD_001,Widget A,10,50,WH_001,SUP_001\n")
	writeFile(t, dir, OrdersFile,
		"order_id,product_id,quantity,order_date,status\n"+
			"ORD_001,PROD_001,30,2025-06-13,PENDING\n")
	writeFile(t, dir, ShipmentsFile,
		"shipment_id,order_id,carrier,cost,ship_date,estimated_arrival,status\n"+
			"SHIP_001,ORD_001,FastShip,120.50,2025-06-05,2025-06-10,IN_TRANSIT\n")
	writeFile(t, dir, SuppliersFile,
		"supplier_id,supplier_name,reliability_score,lead_time_days\n"+
			"SUP_001,Acme Components,0.80,7\n")
	writeFile(t, dir, DemandHistoryFile,
		"product_id,date,demand_quantity\n"+
			"PROD_001,2025-06-14,25\n")
	writeFile(t, dir, WarehousesFile,
		"warehouse_id,warehouse_name,capacity\n"+
			"WH_001,Central,5000\n")
}

func TestLoadDatasets(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)

	data, err := NewProvider(dir).LoadDatasets(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Inventory, 1)
	item := data.Inventory[0]
	assert.Equal(t, entities.ProductID("PROD_001"), item.ProductID)
	assert.Equal(t, "Widget A", item.ProductName)
	assert.Equal(t, entities.Quantity(10), item.CurrentStock)
	assert.Equal(t, entities.Quantity(50), item.MinThreshold)

	require.Len(t, data.Orders, 1)
	assert.Equal(t, entities.OrderPending, data.Orders[0].Status)
	assert.Equal(t, "2025-06-13", data.Orders[0].OrderDate.Format("2006-01-02"))

	require.Len(t, data.Shipments, 1)
	assert.True(t, data.Shipments[0].Cost.Equal(decimal.NewFromFloat(120.50)))
	assert.Equal(t, entities.ShipmentInTransit, data.Shipments[0].Status)

	require.Len(t, data.Suppliers, 1)
	assert.InDelta(t, 0.80, data.Suppliers[0].ReliabilityScore, 0.001)
	assert.Equal(t, 7, data.Suppliers[0].LeadTimeDays)

	require.Len(t, data.DemandHistory, 1)
	require.Len(t, data.Warehouses, 1)
	assert.Equal(t, entities.Quantity(5000), data.Warehouses[0].Capacity)
}

func TestLoadDatasetsReordersAndExtraColumns(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)
	// Shuffled column order plus an unknown column.
	writeFile(t, dir, InventoryFile,
		"supplier_id,warehouse_id,min_threshold,current_stock,product_name,product_id,notes\n"+
			"SUP_001,WH_001,50,10,Widget A,PROD_001,whatever\n")

	data, err := NewProvider(dir).LoadDatasets(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Inventory, 1)
	assert.Equal(t, entities.ProductID("PROD_001"), data.Inventory[0].ProductID)
	assert.Equal(t, entities.Quantity(10), data.Inventory[0].CurrentStock)
}

func TestLoadDatasetsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)
	writeFile(t, dir, InventoryFile,
		"product_id,current_stock\nPROD_001,10\n")

	_, err := NewProvider(dir).LoadDatasets(context.Background())
	require.Error(t, err)

	var schemaErr *repositories.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "inventory", schemaErr.Dataset)
	assert.Equal(t, []string{"product_name", "min_threshold", "warehouse_id", "supplier_id"}, schemaErr.MissingColumns)
}

func TestLoadDatasetsMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, OrdersFile)))

	_, err := NewProvider(dir).LoadDatasets(context.Background())
	assert.Error(t, err)
}

func TestLoadDatasetsBadDate(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)
	writeFile(t, dir, OrdersFile,
		"product_id,quantity,order_date,status\n"+
			"PROD_001,30,13/06/2025,PENDING\n")

	_, err := NewProvider(dir).LoadDatasets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_date")
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadDatasetsBadStatus(t *testing.T) {
	dir := t.TempDir()
	writeValidDataset(t, dir)
	writeFile(t, dir, OrdersFile,
		"product_id,quantity,order_date,status\n"+
			"PROD_001,30,2025-06-13,UNKNOWN\n")

	_, err := NewProvider(dir).LoadDatasets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}
