package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	csvrepo "github.com/jahangeer10/supply-chain-orchestration/pkg/infrastructure/repositories/csv"
)

var (
	genProducts   int
	genWarehouses int
	genSuppliers  int
	genOrders     int
	genShipments  int
	genDays       int
	genSeed       int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic dataset",
	Long: `Write a synthetic but internally consistent set of the six CSV tables
into the data directory. A fixed seed reproduces the same dataset.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genProducts, "products", 20, "Number of products")
	generateCmd.Flags().IntVar(&genWarehouses, "warehouses", 3, "Number of warehouses")
	generateCmd.Flags().IntVar(&genSuppliers, "suppliers", 5, "Number of suppliers")
	generateCmd.Flags().IntVar(&genOrders, "orders", 50, "Number of orders")
	generateCmd.Flags().IntVar(&genShipments, "shipments", 30, "Number of shipments")
	generateCmd.Flags().IntVar(&genDays, "days", 30, "Days of demand history per product")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 means time-based)")
	rootCmd.AddCommand(generateCmd)
}

var carriers = []string{"FastShip", "QuickLogistics", "ReliableTransport", "ExpressFreight"}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(seed)
	now := time.Now()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🔧 Generating dataset: %d products, %d warehouses, %d suppliers, %d orders\n",
		genProducts, genWarehouses, genSuppliers, genOrders)
	fmt.Fprintf(cmd.OutOrStdout(), "📁 Output directory: %s\n", dataDir)
	fmt.Fprintf(cmd.OutOrStdout(), "🎲 Random seed: %d\n", seed)

	warehouseIDs := make([]string, genWarehouses)
	warehouseRows := [][]string{{"warehouse_id", "warehouse_name", "capacity"}}
	for i := range warehouseIDs {
		warehouseIDs[i] = fmt.Sprintf("WH_%03d", i+1)
		warehouseRows = append(warehouseRows, []string{
			warehouseIDs[i],
			faker.City() + " Distribution Center",
			strconv.Itoa(faker.Number(5000, 20000)),
		})
	}

	supplierIDs := make([]string, genSuppliers)
	supplierRows := [][]string{{"supplier_id", "supplier_name", "reliability_score", "lead_time_days"}}
	for i := range supplierIDs {
		supplierIDs[i] = fmt.Sprintf("SUP_%03d", i+1)
		supplierRows = append(supplierRows, []string{
			supplierIDs[i],
			faker.Company(),
			fmt.Sprintf("%.2f", faker.Float64Range(0.70, 1.00)),
			strconv.Itoa(faker.Number(1, 14)),
		})
	}

	productIDs := make([]string, genProducts)
	inventoryRows := [][]string{{"product_id", "product_name", "current_stock", "min_threshold", "warehouse_id", "supplier_id"}}
	for i := range productIDs {
		productIDs[i] = fmt.Sprintf("PROD_%03d", i+1)
		inventoryRows = append(inventoryRows, []string{
			productIDs[i],
			faker.ProductName(),
			strconv.Itoa(faker.Number(0, 500)),
			strconv.Itoa(faker.Number(20, 100)),
			warehouseIDs[faker.Number(0, len(warehouseIDs)-1)],
			supplierIDs[faker.Number(0, len(supplierIDs)-1)],
		})
	}

	orderStatuses := []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"}
	orderRows := [][]string{{"order_id", "product_id", "quantity", "order_date", "status"}}
	for i := 0; i < genOrders; i++ {
		orderDate := now.AddDate(0, 0, -faker.Number(0, genDays))
		orderRows = append(orderRows, []string{
			fmt.Sprintf("ORD_%04d", i+1),
			productIDs[faker.Number(0, len(productIDs)-1)],
			strconv.Itoa(faker.Number(1, 50)),
			orderDate.Format("2006-01-02"),
			orderStatuses[faker.Number(0, len(orderStatuses)-1)],
		})
	}

	shipmentStatuses := []string{"PREPARING", "IN_TRANSIT", "DELAYED", "DELIVERED"}
	shipmentRows := [][]string{{"shipment_id", "order_id", "carrier", "cost", "ship_date", "estimated_arrival", "status"}}
	for i := 0; i < genShipments; i++ {
		shipDate := now.AddDate(0, 0, -faker.Number(0, 14))
		eta := shipDate.AddDate(0, 0, faker.Number(1, 10))
		shipmentRows = append(shipmentRows, []string{
			fmt.Sprintf("SHIP_%04d", i+1),
			fmt.Sprintf("ORD_%04d", faker.Number(1, genOrders)),
			carriers[faker.Number(0, len(carriers)-1)],
			fmt.Sprintf("%.2f", faker.Float64Range(50, 500)),
			shipDate.Format("2006-01-02"),
			eta.Format("2006-01-02"),
			shipmentStatuses[faker.Number(0, len(shipmentStatuses)-1)],
		})
	}

	demandRows := [][]string{{"product_id", "date", "demand_quantity"}}
	for _, productID := range productIDs {
		base := faker.Number(5, 40)
		for day := genDays; day >= 1; day-- {
			qty := base + faker.Number(-5, 15)
			if qty < 0 {
				qty = 0
			}
			demandRows = append(demandRows, []string{
				productID,
				now.AddDate(0, 0, -day).Format("2006-01-02"),
				strconv.Itoa(qty),
			})
		}
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{csvrepo.WarehousesFile, warehouseRows},
		{csvrepo.SuppliersFile, supplierRows},
		{csvrepo.InventoryFile, inventoryRows},
		{csvrepo.OrdersFile, orderRows},
		{csvrepo.ShipmentsFile, shipmentRows},
		{csvrepo.DemandHistoryFile, demandRows},
	}
	for _, f := range files {
		if err := writeCSV(filepath.Join(dataDir, f.name), f.rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📦 Wrote %s (%d rows)\n", f.name, len(f.rows)-1)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✅ Dataset generated")
	return nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
