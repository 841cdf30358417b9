// Package csvio moves inventory between the products table and CSV files on
// disk: a seed import at startup and a full backup export on demand.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-cli/internal/codec"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

var seedColumns = []string{"product_name", "product_price", "product_quantity", "date_updated"}

// ImportSummary reports what a seed import did.
type ImportSummary struct {
	Created     int
	Updated     int
	SeedMissing bool
}

// ImportSeed upserts every row of the seed CSV at path into products. A
// missing file is not an error: the summary reports it and the table is left
// untouched. A malformed row fails the import with its row number; rows
// upserted before the failure remain.
func ImportSeed(products repo.ProductRepository, path string) (ImportSummary, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ImportSummary{SeedMissing: true}, nil
	}
	if err != nil {
		return ImportSummary{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	headers, err := reader.Read()
	if err != nil {
		return ImportSummary{}, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range seedColumns {
		if _, ok := index[col]; !ok {
			return ImportSummary{}, fmt.Errorf("missing column %q in CSV header", col)
		}
	}

	var summary ImportSummary
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("row %d: %v", rowNum, err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return summary, fmt.Errorf("row %d: %v", rowNum, err)
		}

		_, outcome, err := products.Upsert(p)
		if err != nil {
			return summary, fmt.Errorf("row %d: failed to import %q: %w", rowNum, p.Name, err)
		}
		if outcome == repo.OutcomeCreated {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	return summary, nil
}

func parseRow(record []string, index map[string]int) (models.Product, error) {
	name := record[index["product_name"]]
	if strings.TrimSpace(name) == "" {
		return models.Product{}, errors.New("missing product name")
	}

	priceCents, err := codec.ParsePrice(record[index["product_price"]])
	if err != nil {
		return models.Product{}, err
	}

	rawQty := record[index["product_quantity"]]
	quantity, err := strconv.Atoi(strings.TrimSpace(rawQty))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity %q", rawQty)
	}

	updatedAt, err := codec.ParseDate(record[index["date_updated"]])
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		Name:       name,
		Quantity:   quantity,
		PriceCents: priceCents,
		UpdatedAt:  updatedAt,
	}, nil
}
