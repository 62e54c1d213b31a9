// Package export renders packing results as PDF layout sheets, QR-coded
// item labels, Excel reports and plain-text summaries.
package export

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CratePack/internal/model"
)

// itemColor represents an RGB fill color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors is used for items without a usable color of their own.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 30.0
	viewGap      = 12.0
	drawAreaTop  = marginTop + headerHeight + 12.0
)

// ExportPDF writes one page per non-empty bin, showing a top view (x/y) and
// a front view (x/z) of the load, followed by a summary page.
func ExportPDF(path string, result model.PackResult, settings model.PackSettings) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, br := range result.Bins {
		if len(br.Placements) == 0 {
			continue
		}
		pdf.AddPage()
		renderBinPage(pdf, br, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// view is one orthographic projection of a bin.
type view struct {
	title string
	// horizontal and vertical axis indices into Dimensions / Point3D
	hAxis, vAxis int
	// depthAxis orders drawing: items further away are painted first
	depthAxis int
	// nearIsLow is true when the viewer sits at the low end of depthAxis
	nearIsLow bool
	// flipV puts the origin of the vertical axis at the bottom
	flipV bool
}

var (
	topView   = view{title: "Top view (width x height)", hAxis: 0, vAxis: 1, depthAxis: 2}
	frontView = view{title: "Front view (width x depth)", hAxis: 0, vAxis: 2, depthAxis: 1, nearIsLow: true, flipV: true}
)

// renderBinPage draws a single bin result on the current PDF page.
func renderBinPage(pdf *fpdf.Fpdf, br model.BinResult, binNum int) {
	capacity := br.Bin.Dimensions()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Bin %d: %s (%s)", binNum, br.Bin.Name, capacity)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used volume: %g | Bin volume: %g | Efficiency: %.1f%%",
		len(br.Placements), br.UsedVolume(), br.TotalVolume(), br.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := (pageWidth - marginLeft - marginRight - viewGap) / 2
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	renderView(pdf, br, topView, marginLeft, drawAreaTop, drawWidth, drawHeight)
	renderView(pdf, br, frontView, marginLeft+drawWidth+viewGap, drawAreaTop, drawWidth, drawHeight)

	drawItemsLegend(pdf, br, pageHeight-marginBottom-legendHeight+4)
}

// renderView draws one projection of the bin inside the given area.
func renderView(pdf *fpdf.Fpdf, br model.BinResult, v view, areaX, areaY, areaW, areaH float64) {
	capacity := br.Bin.Dimensions()
	binW := capacity.Axis(v.hAxis)
	binH := capacity.Axis(v.vAxis)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(areaX, areaY-6)
	pdf.CellFormat(areaW, 5, v.title, "", 0, "L", false, 0, "")

	scale := math.Min(areaW/binW, areaH/binH)
	canvasW := binW * scale
	canvasH := binH * scale
	offsetX := areaX + (areaW-canvasW)/2
	offsetY := areaY

	pdf.SetFillColor(235, 222, 200)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	order := make([]int, len(br.Placements))
	for i := range order {
		order[i] = i
	}
	// Far items first so nearer ones are painted over them.
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := br.Placements[order[a]], br.Placements[order[b]]
		da, db := pa.Position.Axis(v.depthAxis), pb.Position.Axis(v.depthAxis)
		if v.nearIsLow {
			return da > db
		}
		return da < db
	})

	for _, idx := range order {
		p := br.Placements[idx]
		dims := p.Dimension()
		pw := dims.Axis(v.hAxis) * scale
		ph := dims.Axis(v.vAxis) * scale
		px := offsetX + p.Position.Axis(v.hAxis)*scale
		py := offsetY + p.Position.Axis(v.vAxis)*scale
		if v.flipV {
			py = offsetY + canvasH - (p.Position.Axis(v.vAxis)+dims.Axis(v.vAxis))*scale
		}

		col := colorFor(p.Item.Color, idx)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 12 && ph > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			label := p.Item.Name
			if labelW := pdf.GetStringWidth(label); labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, binW, binH, offsetX, offsetY, canvasW, canvasH)
}

// colorFor parses a #rrggbb color, falling back to the palette for empty,
// black or malformed values.
func colorFor(hex string, idx int) itemColor {
	if c, ok := parseHexColor(hex); ok && (c.R|c.G|c.B) != 0 {
		return c
	}
	return itemColors[idx%len(itemColors)]
}

func parseHexColor(s string) (itemColor, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return itemColor{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return itemColor{}, false
	}
	return itemColor{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}

// drawDimensionAnnotations labels the bin edges of a view.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, binW, binH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%g", binW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%g", binH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders a compact legend of placed items at the bottom of the bin page.
func drawItemsLegend(pdf *fpdf.Fpdf, br model.BinResult, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range br.Placements {
		col := colorFor(p.Item.Color, i)
		label := fmt.Sprintf("%s %s %s", p.Item.Name, p.Position, p.Rotation.Tag())
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, settings model.PackSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Bins Used", fmt.Sprintf("%d of %d", result.UsedBins(), len(result.Bins))},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
		{"Items Placed", fmt.Sprintf("%d", result.PlacedCount())},
		{"Unfit Items", fmt.Sprintf("%d", len(result.UnfitItems))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Bin Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 70, 60, 30, 35, 52}
	headers := []string{"Bin", "Name", "Dimensions", "Items", "Efficiency", "Used / Total Volume"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, br := range result.Bins {
		if y > pageHeight-marginBottom-20 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			br.Bin.Name,
			br.Bin.Dimensions().String(),
			fmt.Sprintf("%d", len(br.Placements)),
			fmt.Sprintf("%.1f%%", br.Efficiency()),
			fmt.Sprintf("%g / %g", br.UsedVolume(), br.TotalVolume()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.UnfitItems) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unfit Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, item := range result.UnfitItems {
			if y > pageHeight-marginBottom-10 {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %s", item.Name, item.Dimensions())
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pack Settings", "", 0, "L", false, 0, "")
	y += 9

	tags := make([]string, len(settings.DefaultRotations))
	for i, r := range settings.DefaultRotations {
		tags[i] = r.Tag()
	}
	settingsItems := []struct {
		label string
		value string
	}{
		{"Default Rotations", strings.Join(tags, ", ")},
		{"Verification", fmt.Sprintf("%t", settings.Verify)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CratePack - 3D Bin Packing", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
