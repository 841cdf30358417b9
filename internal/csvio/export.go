package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rogerio-castellano/inventory-cli/internal/codec"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

// ExportBackup writes every product to a headerless CSV at path, one record
// per product: id, name, price, quantity, date. An existing file is
// truncated. Returns the number of records written.
func ExportBackup(products repo.ProductRepository, path string) (int, error) {
	all, err := products.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read products: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	for _, p := range all {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			codec.FormatPrice(p.PriceCents),
			strconv.Itoa(p.Quantity),
			codec.FormatDate(p.UpdatedAt),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write backup record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush backup file: %w", err)
	}
	return len(all), nil
}
