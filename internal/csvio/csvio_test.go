package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestImportSeed_CreatesProducts(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Cushion,$12.50,3,3/4/2021\n"+
		"Lamp,$7,5,12/25/2021\n")

	summary, err := ImportSeed(products, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Created != 2 || summary.Updated != 0 {
		t.Errorf("expected 2 created, 0 updated, got %d/%d", summary.Created, summary.Updated)
	}
	if summary.SeedMissing {
		t.Error("seed file exists, summary must not report it missing")
	}

	all, err := products.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].Name != "Cushion" || all[0].PriceCents != 1250 || all[0].Quantity != 3 {
		t.Errorf("first product does not match seed row: %+v", all[0])
	}
	if !all[0].UpdatedAt.Equal(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date 3/4/2021, got %v", all[0].UpdatedAt)
	}
	if all[1].Name != "Lamp" || all[1].PriceCents != 700 || all[1].Quantity != 5 {
		t.Errorf("second product does not match seed row: %+v", all[1])
	}
}

func TestImportSeed_SecondRunUpdates(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Cushion,$12.50,3,3/4/2021\n")

	if _, err := ImportSeed(products, path); err != nil {
		t.Fatalf("unexpected error on first import: %v", err)
	}

	summary, err := ImportSeed(products, path)
	if err != nil {
		t.Fatalf("unexpected error on second import: %v", err)
	}
	if summary.Created != 0 || summary.Updated != 1 {
		t.Errorf("expected 0 created, 1 updated, got %d/%d", summary.Created, summary.Updated)
	}

	all, _ := products.GetAll()
	if len(all) != 1 {
		t.Errorf("expected the same row to be reused, got %d rows", len(all))
	}
}

func TestImportSeed_DuplicateNamesFoldIntoOneRow(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Cushion,$12.50,3,3/4/2021\n"+
		"Cushion,$14.00,8,5/6/2021\n")

	summary, err := ImportSeed(products, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Created != 1 || summary.Updated != 1 {
		t.Errorf("expected 1 created, 1 updated, got %d/%d", summary.Created, summary.Updated)
	}

	all, err := products.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one stored row, got %d", len(all))
	}
	if all[0].Quantity != 8 || all[0].PriceCents != 1400 {
		t.Errorf("expected the second row to win, got %+v", all[0])
	}
	if !all[0].UpdatedAt.Equal(time.Date(2021, 5, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date 5/6/2021, got %v", all[0].UpdatedAt)
	}
}

func TestImportSeed_MissingFile(t *testing.T) {
	products := repo.NewInMemoryProductRepository()

	summary, err := ImportSeed(products, filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("a missing seed file must not be an error, got: %v", err)
	}
	if !summary.SeedMissing {
		t.Error("expected summary to report the seed file missing")
	}

	all, _ := products.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no products, got %d", len(all))
	}
}

func TestImportSeed_HeaderCaseInsensitive(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "Product_Name,PRODUCT_PRICE,Product_Quantity,Date_Updated\n"+
		"Desk,$99.99,1,6/15/2023\n")

	summary, err := ImportSeed(products, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Created != 1 {
		t.Errorf("expected 1 created, got %d", summary.Created)
	}
}

func TestImportSeed_MissingColumn(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity\n"+
		"Desk,$99.99,1\n")

	_, err := ImportSeed(products, path)
	if err == nil {
		t.Fatal("expected an error for a missing header column")
	}
	if !strings.Contains(err.Error(), "date_updated") {
		t.Errorf("expected the error to name the missing column, got: %v", err)
	}
}

func TestImportSeed_MalformedRowAborts(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Good,$1.00,1,1/1/2021\n"+
		"Bad,abc,1,1/1/2021\n")

	_, err := ImportSeed(products, path)
	if err == nil {
		t.Fatal("expected an error for a malformed price")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("expected the error to carry the row number, got: %v", err)
	}

	// Rows before the malformed one stay imported.
	all, _ := products.GetAll()
	if len(all) != 1 || all[0].Name != "Good" {
		t.Errorf("expected only the row before the failure to remain, got %+v", all)
	}
}

func TestImportSeed_InvalidQuantity(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Desk,$99.99,many,6/15/2023\n")

	_, err := ImportSeed(products, path)
	if err == nil {
		t.Fatal("expected an error for a non-numeric quantity")
	}
	if !strings.Contains(err.Error(), "quantity") {
		t.Errorf("expected a quantity error, got: %v", err)
	}
}

func TestImportSeed_BlankDateDefaultsToNow(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	path := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Desk,$99.99,1,\n")

	if _, err := ImportSeed(products, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := products.GetByName("Desk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(p.UpdatedAt) > time.Minute {
		t.Errorf("expected a blank date to default to now, got %v", p.UpdatedAt)
	}
}

func TestExportBackup(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	seed := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Cushion,$12.50,3,3/4/2021\n"+
		"Lamp,$7,5,12/25/2021\n")
	if _, err := ImportSeed(products, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "backup.csv")
	count, err := ExportBackup(products, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 records written, got %d", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read backup file: %v", err)
	}
	want := "1,Cushion,$12.50,3,3/4/2021\n2,Lamp,$7.00,5,12/25/2021\n"
	if string(data) != want {
		t.Errorf("backup content mismatch:\n got: %q\nwant: %q", string(data), want)
	}
}

func TestExportBackup_EmptyTable(t *testing.T) {
	products := repo.NewInMemoryProductRepository()

	path := filepath.Join(t.TempDir(), "backup.csv")
	count, err := ExportBackup(products, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 records written, got %d", count)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected the backup file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected a zero-byte file, got %d bytes", info.Size())
	}
}

func TestExportBackup_TruncatesExistingFile(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	seed := writeSeed(t, "product_name,product_price,product_quantity,date_updated\n"+
		"Desk,$99.99,1,6/15/2023\n")
	if _, err := ImportSeed(products, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "backup.csv")
	stale := strings.Repeat("stale data that is longer than one fresh record\n", 10)
	if err := os.WriteFile(path, []byte(stale), 0o644); err != nil {
		t.Fatalf("failed to pre-fill backup file: %v", err)
	}

	if _, err := ExportBackup(products, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	want := "1,Desk,$99.99,1,6/15/2023\n"
	if string(data) != want {
		t.Errorf("expected the stale content to be replaced, got %q", string(data))
	}
}
