// Package xlsx loads the six supply-chain tables from a single workbook,
// one sheet per table.
package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/repositories"
)

const dateLayout = "2006-01-02"

// Sheet names expected in the workbook.
const (
	InventorySheet     = "Inventory"
	OrdersSheet        = "Orders"
	ShipmentsSheet     = "Shipments"
	SuppliersSheet     = "Suppliers"
	DemandHistorySheet = "DemandHistory"
	WarehousesSheet    = "Warehouses"
)

// Provider loads datasets from an XLSX workbook. Sheet columns may appear
// in any order; absent required columns fail the load with a schema error.
type Provider struct {
	path string
}

// NewProvider creates a provider over the given workbook path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

var _ repositories.DatasetProvider = (*Provider)(nil)

// LoadDatasets reads all six sheets. The load is all-or-nothing.
func (p *Provider) LoadDatasets(ctx context.Context) (*entities.Datasets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := excelize.OpenFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", p.path, err)
	}
	defer file.Close()

	data := &entities.Datasets{}

	if err := loadSheet(file, InventorySheet, "inventory",
		[]string{"product_id", "product_name", "current_stock", "min_threshold", "warehouse_id", "supplier_id"},
		func(row rowReader) error {
			stock, err := parseQuantity(row("current_stock"), "current_stock")
			if err != nil {
				return err
			}
			threshold, err := parseQuantity(row("min_threshold"), "min_threshold")
			if err != nil {
				return err
			}
			data.Inventory = append(data.Inventory, entities.InventoryItem{
				ProductID:    entities.ProductID(row("product_id")),
				ProductName:  row("product_name"),
				CurrentStock: stock,
				MinThreshold: threshold,
				WarehouseID:  entities.WarehouseID(row("warehouse_id")),
				SupplierID:   entities.SupplierID(row("supplier_id")),
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadSheet(file, OrdersSheet, "orders",
		[]string{"product_id", "quantity", "order_date", "status"},
		func(row rowReader) error {
			quantity, err := parseQuantity(row("quantity"), "quantity")
			if err != nil {
				return err
			}
			orderDate, err := parseDate(row("order_date"), "order_date")
			if err != nil {
				return err
			}
			status, err := parseOrderStatus(row("status"))
			if err != nil {
				return err
			}
			data.Orders = append(data.Orders, entities.Order{
				ProductID: entities.ProductID(row("product_id")),
				Quantity:  quantity,
				OrderDate: orderDate,
				Status:    status,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadSheet(file, ShipmentsSheet, "shipments",
		[]string{"shipment_id", "order_id", "carrier", "cost", "ship_date", "estimated_arrival", "status"},
		func(row rowReader) error {
			cost, err := decimal.NewFromString(row("cost"))
			if err != nil {
				return fmt.Errorf("invalid cost: %s", row("cost"))
			}
			shipDate, err := parseDate(row("ship_date"), "ship_date")
			if err != nil {
				return err
			}
			eta, err := parseDate(row("estimated_arrival"), "estimated_arrival")
			if err != nil {
				return err
			}
			status, err := parseShipmentStatus(row("status"))
			if err != nil {
				return err
			}
			data.Shipments = append(data.Shipments, entities.Shipment{
				ShipmentID:       entities.ShipmentID(row("shipment_id")),
				OrderID:          entities.OrderID(row("order_id")),
				Carrier:          row("carrier"),
				Cost:             cost,
				ShipDate:         shipDate,
				EstimatedArrival: eta,
				Status:           status,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadSheet(file, SuppliersSheet, "suppliers",
		[]string{"supplier_id", "supplier_name", "reliability_score", "lead_time_days"},
		func(row rowReader) error {
			reliability, err := strconv.ParseFloat(row("reliability_score"), 64)
			if err != nil {
				return fmt.Errorf("invalid reliability_score: %s", row("reliability_score"))
			}
			leadTime, err := strconv.Atoi(row("lead_time_days"))
			if err != nil {
				return fmt.Errorf("invalid lead_time_days: %s", row("lead_time_days"))
			}
			data.Suppliers = append(data.Suppliers, entities.Supplier{
				SupplierID:       entities.SupplierID(row("supplier_id")),
				SupplierName:     row("supplier_name"),
				ReliabilityScore: reliability,
				LeadTimeDays:     leadTime,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadSheet(file, DemandHistorySheet, "demand_history",
		[]string{"product_id", "date", "demand_quantity"},
		func(row rowReader) error {
			date, err := parseDate(row("date"), "date")
			if err != nil {
				return err
			}
			quantity, err := parseQuantity(row("demand_quantity"), "demand_quantity")
			if err != nil {
				return err
			}
			data.DemandHistory = append(data.DemandHistory, entities.DemandRecord{
				ProductID:      entities.ProductID(row("product_id")),
				Date:           date,
				DemandQuantity: quantity,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadSheet(file, WarehousesSheet, "warehouses",
		[]string{"warehouse_id", "warehouse_name", "capacity"},
		func(row rowReader) error {
			capacity, err := parseQuantity(row("capacity"), "capacity")
			if err != nil {
				return err
			}
			data.Warehouses = append(data.Warehouses, entities.Warehouse{
				WarehouseID:   entities.WarehouseID(row("warehouse_id")),
				WarehouseName: row("warehouse_name"),
				Capacity:      capacity,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	return data, nil
}

// rowReader resolves a named column on the current row.
type rowReader func(column string) string

func loadSheet(file *excelize.File, sheet, dataset string, required []string, consume func(rowReader) error) error {
	rows, err := file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s sheet is empty, expected a header row", dataset)
	}

	positions := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
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
	if len(missing) > 0 {
		return &repositories.SchemaError{Dataset: dataset, MissingColumns: missing}
	}

	for i, record := range rows[1:] {
		row := func(column string) string {
			col := index[column]
			if col >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[col])
		}
		if err := consume(row); err != nil {
			return fmt.Errorf("%s sheet row %d: %w", dataset, i+2, err)
		}
	}

	return nil
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
