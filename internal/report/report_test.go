package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

type testRow struct {
	Market   string   `csv:"market"`
	Level    int      `csv:"level"`
	Price    float64  `csv:"price"`
	Optional *float64 `csv:"optional"`
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return records
}

func TestWriteHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	v := 1.5
	rows := []testRow{
		{Market: "BTC", Level: 1, Price: 100.25, Optional: &v},
		{Market: "ETH", Level: 2, Price: 3000},
	}

	path, err := Write(dir, "out.csv", &rows)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != filepath.Join(dir, "out.csv") {
		t.Errorf("Unexpected path %s", path)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"market", "level", "price", "optional"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("Expected column %d to be %s, got %s", i, col, header[i])
		}
	}

	if records[1][0] != "BTC" || records[2][0] != "ETH" {
		t.Errorf("Unexpected row order: %v", records[1:])
	}
	if records[2][3] != "" {
		t.Errorf("Expected blank for nil optional field, got %q", records[2][3])
	}
}

func TestWriteOverwritesPreviousFile(t *testing.T) {
	dir := t.TempDir()

	first := []testRow{{Market: "BTC", Level: 1, Price: 1}, {Market: "ETH", Level: 1, Price: 2}}
	if _, err := Write(dir, "out.csv", &first); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	second := []testRow{{Market: "SOL", Level: 1, Price: 3}}
	path, err := Write(dir, "out.csv", &second)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("Expected full overwrite (header + 1 row), got %d records", len(records))
	}
	if records[1][0] != "SOL" {
		t.Errorf("Expected SOL row, got %v", records[1])
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	rows := []testRow{{Market: "BTC", Level: 1, Price: 1}}

	if _, err := Write(dir, "out.csv", &rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.csv")); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}
