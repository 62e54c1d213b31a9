// Package importer reads item lists from CSV and Excel files. It detects
// the CSV delimiter, recognises headers case-insensitively and falls back to
// positional columns when there is no header.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation. Row problems are
// collected rather than aborting the import.
type ImportResult struct {
	Items    []model.ItemSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps column roles to their indices in the data. -1 means
// the column is absent.
type ColumnMapping struct {
	Name            int
	Width           int
	Height          int
	Depth           int
	Quantity        int
	Rotations       int
	Color           int
	BottomLoadOnly  int
	DisableStacking int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":             {"name", "label", "item", "item name", "description", "desc", "product", "sku"},
	"width":            {"width", "w", "length", "len", "x"},
	"height":           {"height", "h", "y"},
	"depth":            {"depth", "d", "z", "thickness"},
	"quantity":         {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"rotations":        {"rotations", "rotation", "orientations", "orientation"},
	"color":            {"color", "colour"},
	"bottom_load_only": {"bottom_load_only", "bottom load only", "bottom only", "floor only"},
	"disable_stacking": {"disable_stacking", "disable stacking", "no stacking", "no stack", "fragile"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// positionalMapping is used for files without a header:
// Name, Width, Height, Depth, Quantity, Rotations, Color.
var positionalMapping = ColumnMapping{
	Name:            0,
	Width:           1,
	Height:          2,
	Depth:           3,
	Quantity:        4,
	Rotations:       5,
	Color:           6,
	BottomLoadOnly:  -1,
	DisableStacking: -1,
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It returns the positional mapping and false when no cell is a known header.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{-1, -1, -1, -1, -1, -1, -1, -1, -1}
	slots := map[string]*int{
		"name":             &mapping.Name,
		"width":            &mapping.Width,
		"height":           &mapping.Height,
		"depth":            &mapping.Depth,
		"quantity":         &mapping.Quantity,
		"rotations":        &mapping.Rotations,
		"color":            &mapping.Color,
		"bottom_load_only": &mapping.BottomLoadOnly,
		"disable_stacking": &mapping.DisableStacking,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// parseFlag reads a yes/no cell. ok is false for unrecognised text.
func parseFlag(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "x":
		return true, true
	case "", "no", "n", "false", "0", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDimension(row []string, idx int, field, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, s)
	}
	if v <= 0 {
		return 0, fmt.Sprintf("%s: %s must be positive, got %s", rowLabel, strings.ToUpper(field[:1])+field[1:], s)
	}
	return v, ""
}

// parseRow extracts an ItemSpec from a row using the given column mapping.
// Returns the item, any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (model.ItemSpec, string, []string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Item %d", itemCount+1)
	}

	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}
	depth, errMsg := parseDimension(row, mapping.Depth, "depth", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.ItemSpec{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
		}
		if n <= 0 {
			return model.ItemSpec{}, fmt.Sprintf("%s: Quantity must be positive, got %d", rowLabel, n), nil
		}
		qty = n
	}

	item := model.NewItemSpec(name, width, height, depth, qty)
	item.Rotations = nil
	item.Color = getCell(row, mapping.Color)

	var warnings []string
	if rotStr := getCell(row, mapping.Rotations); rotStr != "" {
		rots, err := model.ParseRotationList(rotStr)
		if err != nil || len(rots) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown rotations '%s', using project defaults", rowLabel, rotStr))
		} else {
			item.Rotations = rots
		}
	}

	flags := []struct {
		idx   int
		field string
		dst   *bool
	}{
		{mapping.BottomLoadOnly, "bottom load only", &item.BottomLoadOnly},
		{mapping.DisableStacking, "disable stacking", &item.DisableStacking},
	}
	for _, f := range flags {
		s := getCell(row, f.idx)
		v, ok := parseFlag(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown %s value '%s', defaulting to no", rowLabel, f.field, s))
		}
		*f.dst = v
	}

	return item, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports items from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports items from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	records, err := readCSV(reader, delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports items from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension: .xlsx/.xlsm go to
// ImportExcel, everything else to ImportCSV.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// An unrecognised header still has text where the width should be.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		item, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Items = append(result.Items, item)
	}

	return result
}
