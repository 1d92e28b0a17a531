package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

// DatasetProvider supplies the six supply-chain tables for one analysis run.
// Implementations own parsing and validation; the core assumes correctly
// typed columns on the returned snapshot.
type DatasetProvider interface {
	LoadDatasets(ctx context.Context) (*entities.Datasets, error)
}

// SchemaError reports a dataset whose required columns are absent.
type SchemaError struct {
	Dataset        string
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: missing required columns: %s",
		e.Dataset, strings.Join(e.MissingColumns, ", "))
}
