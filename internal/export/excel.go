package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	placementsSheet = "Placements"
	binsSheet       = "Bins"
	unfitSheet      = "Unfit"
)

var (
	placementHeaders = []interface{}{"Bin", "Bin Name", "Item", "Item ID", "X", "Y", "Z", "Rotation", "Width", "Height", "Depth", "Volume"}
	binHeaders       = []interface{}{"Bin", "Name", "Width", "Height", "Depth", "Items", "Used Volume", "Bin Volume", "Efficiency %"}
	unfitHeaders     = []interface{}{"Item", "Item ID", "Width", "Height", "Depth", "Rotations"}
)

// ExportExcel writes the result as a workbook with one sheet of placements,
// one of per-bin statistics and one of unfit items.
func ExportExcel(path string, result model.PackResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), placementsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{binsSheet, unfitSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	var placementRows, binRows, unfitRows [][]interface{}
	for i, br := range result.Bins {
		for _, p := range br.Placements {
			d := p.Dimension()
			placementRows = append(placementRows, []interface{}{
				i + 1, br.Bin.Name, p.Item.Name, p.Item.ID,
				p.Position.X, p.Position.Y, p.Position.Z, p.Rotation.Tag(),
				d.Width, d.Height, d.Depth, d.Volume(),
			})
		}
		binRows = append(binRows, []interface{}{
			i + 1, br.Bin.Name, br.Bin.Width, br.Bin.Height, br.Bin.Depth,
			len(br.Placements), br.UsedVolume(), br.TotalVolume(), roundTo(br.Efficiency(), 2),
		})
	}
	for _, it := range result.UnfitItems {
		unfitRows = append(unfitRows, []interface{}{
			it.Name, it.ID, it.Width, it.Height, it.Depth, rotationTags(it.Rotations),
		})
	}

	sheets := []struct {
		name    string
		headers []interface{}
		rows    [][]interface{}
	}{
		{placementsSheet, placementHeaders, placementRows},
		{binsSheet, binHeaders, binRows},
		{unfitSheet, unfitHeaders, unfitRows},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.headers, s.rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func rotationTags(rots []model.RotationType) string {
	tags := make([]string, len(rots))
	for i, r := range rots {
		tags[i] = r.Tag()
	}
	return strings.Join(tags, ",")
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
