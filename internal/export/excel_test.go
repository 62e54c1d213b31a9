package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	if err := ExportExcel(path, buildTestResult()); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != placementsSheet || sheets[1] != binsSheet || sheets[2] != unfitSheet {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	cells := []struct {
		sheet, cell, want string
	}{
		{placementsSheet, "A1", "Bin"},
		{placementsSheet, "C2", "Cube"},
		{placementsSheet, "H2", "whd"},
		{placementsSheet, "C3", "Slab"},
		{placementsSheet, "E3", "5"},
		{placementsSheet, "H3", "dhw"},
		{placementsSheet, "I3", "2"},
		{placementsSheet, "K3", "5"},
		{binsSheet, "B2", "Carton"},
		{binsSheet, "F2", "2"},
		{binsSheet, "I2", "22.5"},
		{binsSheet, "B3", "Tote"},
		{binsSheet, "F3", "0"},
		{unfitSheet, "A2", "Pole"},
		{unfitSheet, "F2", "whd"},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Errorf("%s!%s: %v", c.sheet, c.cell, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}

	rows, err := f.GetRows(placementsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("expected a header and 2 placement rows, got %d", len(rows))
	}
}
