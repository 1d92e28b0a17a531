// Package csv loads the six supply-chain tables from CSV files in a single
// data directory.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
)

const dateLayout = "2006-01-02"

// File names expected inside the data directory.
const (
	InventoryFile     = "inventory.csv"
	OrdersFile        = "orders.csv"
	ShipmentsFile     = "shipments.csv"
	SuppliersFile     = "suppliers.csv"
	DemandHistoryFile = "demand_history.csv"
	WarehousesFile    = "warehouses.csv"
)

// Provider loads datasets from CSV files. Columns may appear in any order
// and unknown columns are ignored; absent required columns fail the load
// with a schema error.
type Provider struct {
	dir string
}

// NewProvider creates a provider over the given data directory.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

var _ repositories.DatasetProvider = (*Provider)(nil)

// LoadDatasets reads all six tables. The load is all-or-nothing; any parse
// or schema failure aborts the snapshot.
func (p *Provider) LoadDatasets(ctx context.Context) (*entities.Datasets, error) {
	data := &entities.Datasets{}

	if err := p.loadTable(ctx, InventoryFile, "inventory",
		[]string{"product_id", "product_name", "current_stock", "min_threshold", "warehouse_id", "supplier_id"},
		func(row rowReader) error {
			item, err := parseInventoryItem(row)
			if err != nil {
				return err
			}
			data.Inventory = append(data.Inventory, item)
			return nil
		}); err != nil {
		return nil, err
	}

	if err := p.loadTable(ctx, OrdersFile, "orders",
		[]string{"product_id", "quantity", "order_date", "status"},
		func(row rowReader) error {
			order, err := parseOrder(row)
			if err != nil {
				return err
			}
			data.Orders = append(data.Orders, order)
			return nil
		}); err != nil {
		return nil, err
	}

	if err := p.loadTable(ctx, ShipmentsFile, "shipments",
		[]string{"shipment_id", "order_id", "carrier", "cost", "ship_date", "estimated_arrival", "status"},
		func(row rowReader) error {
			shipment, err := parseShipment(row)
			if err != nil {
				return err
			}
			data.Shipments = append(data.Shipments, shipment)
			return nil
		}); err != nil {
		return nil, err
	}

	if err := p.loadTable(ctx, SuppliersFile, "suppliers",
		[]string{"supplier_id", "supplier_name", "reliability_score", "lead_time_days"},
		func(row rowReader) error {
			supplier, err := parseSupplier(row)
			if err != nil {
				return err
			}
			data.Suppliers = append(data.Suppliers, supplier)
			return nil
		}); err != nil {
		return nil, err
	}

	if err := p.loadTable(ctx, DemandHistoryFile, "demand_history",
		[]string{"product_id", "date", "demand_quantity"},
		func(row rowReader) error {
			record, err := parseDemandRecord(row)
			if err != nil {
				return err
			}
			data.DemandHistory = append(data.DemandHistory, record)
			return nil
		}); err != nil {
		return nil, err
	}

	if err := p.loadTable(ctx, WarehousesFile, "warehouses",
		[]string{"warehouse_id", "warehouse_name", "capacity"},
		func(row rowReader) error {
			warehouse, err := parseWarehouse(row)
			if err != nil {
				return err
			}
			data.Warehouses = append(data.Warehouses, warehouse)
			return nil
		}); err != nil {
		return nil, err
	}

	return data, nil
}

// rowReader resolves a named column on the current record.
type rowReader func(column string) string

func (p *Provider) loadTable(ctx context.Context, filename, dataset string, required []string, consume func(rowReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(p.dir, filename)
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s file %s: %w", dataset, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read %s CSV: %w", dataset, err)
	}

	if len(records) == 0 {
		return fmt.Errorf("%s CSV is empty, expected a header row", dataset)
	}

	index, missing := headerIndex(records[0], required)
	if len(missing) > 0 {
		return &repositories.SchemaError{Dataset: dataset, MissingColumns: missing}
	}

	for i, record := range records[1:] {
		row := func(column string) string {
			col := index[column]
			if col >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[col])
		}
		if err := consume(row); err != nil {
			return fmt.Errorf("%s CSV row %d: %w", dataset, i+2, err)
		}
	}

	return nil
}

// headerIndex maps required column names to their positions, tolerating
// extra columns, and reports the ones that are absent.
func headerIndex(header, required []string) (map[string]int, []string) {
	positions := make(map[string]int, len(header))
	for i, col := range header {
		positions[strings.ToLower(strings.TrimSpace(col))] = i
	}

	index := make(map[string]int, len(required))
	var missing []string
	for _, col := range required {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = pos
	}
	return index, missing
}

func parseInventoryItem(row rowReader) (entities.InventoryItem, error) {
	stock, err := parseQuantity(row("current_stock"), "current_stock")
	if err != nil {
		return entities.InventoryItem{}, err
	}
	threshold, err := parseQuantity(row("min_threshold"), "min_threshold")
	if err != nil {
		return entities.InventoryItem{}, err
	}

	return entities.InventoryItem{
		ProductID:    entities.ProductID(row("product_id")),
		ProductName:  row("product_name"),
		CurrentStock: stock,
		MinThreshold: threshold,
		WarehouseID:  entities.WarehouseID(row("warehouse_id")),
		SupplierID:   entities.SupplierID(row("supplier_id")),
	}, nil
}

func parseOrder(row rowReader) (entities.Order, error) {
	quantity, err := parseQuantity(row("quantity"), "quantity")
	if err != nil {
		return entities.Order{}, err
	}
	orderDate, err := parseDate(row("order_date"), "order_date")
	if err != nil {
		return entities.Order{}, err
	}
	status, err := parseOrderStatus(row("status"))
	if err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		ProductID: entities.ProductID(row("product_id")),
		Quantity:  quantity,
		OrderDate: orderDate,
		Status:    status,
	}, nil
}

func parseShipment(row rowReader) (entities.Shipment, error) {
	cost, err := decimal.NewFromString(row("cost"))
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("invalid cost: %s", row("cost"))
	}
	shipDate, err := parseDate(row("ship_date"), "ship_date")
	if err != nil {
		return entities.Shipment{}, err
	}
	eta, err := parseDate(row("estimated_arrival"), "estimated_arrival")
	if err != nil {
		return entities.Shipment{}, err
	}
	status, err := parseShipmentStatus(row("status"))
	if err != nil {
		return entities.Shipment{}, err
	}

	return entities.Shipment{
		ShipmentID:       entities.ShipmentID(row("shipment_id")),
		OrderID:          entities.OrderID(row("order_id")),
		Carrier:          row("carrier"),
		Cost:             cost,
		ShipDate:         shipDate,
		EstimatedArrival: eta,
		Status:           status,
	}, nil
}

func parseSupplier(row rowReader) (entities.Supplier, error) {
	reliability, err := strconv.ParseFloat(row("reliability_score"), 64)
	if err != nil {
		return entities.Supplier{}, fmt.Errorf("invalid reliability_score: %s", row("reliability_score"))
	}
	leadTime, err := strconv.Atoi(row("lead_time_days"))
	if err != nil {
		return entities.Supplier{}, fmt.Errorf("invalid lead_time_days: %s", row("lead_time_days"))
	}

	return entities.Supplier{
		SupplierID:       entities.SupplierID(row("supplier_id")),
		SupplierName:     row("supplier_name"),
		ReliabilityScore: reliability,
		LeadTimeDays:     leadTime,
	}, nil
}

func parseDemandRecord(row rowReader) (entities.DemandRecord, error) {
	date, err := parseDate(row("date"), "date")
	if err != nil {
		return entities.DemandRecord{}, err
	}
	quantity, err := parseQuantity(row("demand_quantity"), "demand_quantity")
	if err != nil {
		return entities.DemandRecord{}, err
	}

	return entities.DemandRecord{
		ProductID:      entities.ProductID(row("product_id")),
		Date:           date,
		DemandQuantity: quantity,
	}, nil
}

func parseWarehouse(row rowReader) (entities.Warehouse, error) {
	capacity, err := parseQuantity(row("capacity"), "capacity")
	if err != nil {
		return entities.Warehouse{}, err
	}

	return entities.Warehouse{
		WarehouseID:   entities.WarehouseID(row("warehouse_id")),
		WarehouseName: row("warehouse_name"),
		Capacity:      capacity,
	}, nil
}

func parseQuantity(s, column string) (entities.Quantity, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", column, s)
	}
	return entities.Quantity(v), nil
}

func parseDate(s, column string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format: %s (expected YYYY-MM-DD)", column, s)
	}
	return t, nil
}

func parseOrderStatus(s string) (entities.OrderStatus, error) {
	switch strings.ToUpper(s) {
	case "PENDING":
		return entities.OrderPending, nil
	case "PROCESSING":
		return entities.OrderProcessing, nil
	case "SHIPPED":
		return entities.OrderShipped, nil
	case "DELIVERED":
		return entities.OrderDelivered, nil
	case "CANCELLED":
		return entities.OrderCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status: %s", s)
	}
}

func parseShipmentStatus(s string) (entities.ShipmentStatus, error) {
	switch strings.ToUpper(s) {
	case "PREPARING":
		return entities.ShipmentPreparing, nil
	case "IN_TRANSIT":
		return entities.ShipmentInTransit, nil
	case "DELAYED":
		return entities.ShipmentDelayed, nil
	case "DELIVERED":
		return entities.ShipmentDelivered, nil
	default:
		return "", fmt.Errorf("invalid shipment status: %s", s)
	}
}
