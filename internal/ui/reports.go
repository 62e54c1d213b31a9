package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/CratePack/internal/engine"
	"github.com/piwi3910/CratePack/internal/model"
)

// RenderComparison renders one line per scenario, marking the best one:
// fewest unfit items, then fewest bins, then least waste.
func RenderComparison(results []engine.ComparisonResult) string {
	best := bestScenario(results)

	t := NewTable("", "Scenario", "Bins", "Placed", "Unfit", "Waste %")
	for i, r := range results {
		mark := ""
		if i == best {
			mark = "*"
		}
		if r.Err != nil {
			t.Row(mark, r.Scenario.Name, "-", "-", "-", Error(r.Err.Error()))
			continue
		}
		t.Row(mark, r.Scenario.Name,
			strconv.Itoa(r.BinsUsed),
			strconv.Itoa(r.PlacedCount),
			strconv.Itoa(r.UnfitCount),
			fmt.Sprintf("%.1f", r.WastePercent),
		)
	}
	return t.String()
}

func bestScenario(results []engine.ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := results[best]
		switch {
		case r.UnfitCount != b.UnfitCount:
			if r.UnfitCount < b.UnfitCount {
				best = i
			}
		case r.BinsUsed != b.BinsUsed:
			if r.BinsUsed < b.BinsUsed {
				best = i
			}
		case r.WastePercent < b.WastePercent:
			best = i
		}
	}
	return best
}

// RenderEstimates renders one line per bin type with its volume lower bound.
func RenderEstimates(bins []model.BinSpec, estimates []model.BinEstimate) string {
	t := NewTable("Bin", "Size", "Exact", "Min", "With waste", "Oversized")
	for i, est := range estimates {
		oversized := strings.Join(est.Oversized, ", ")
		if oversized != "" {
			oversized = Warn(oversized)
		}
		t.Row(bins[i].Name, bins[i].Dimensions().String(),
			fmt.Sprintf("%.2f", est.BinsNeededExact),
			strconv.Itoa(est.BinsNeededMin),
			strconv.Itoa(est.BinsWithWaste),
			oversized,
		)
	}
	return t.String()
}

// RenderCatalog lists bin and item presets.
func RenderCatalog(c model.Catalog) string {
	var b strings.Builder

	b.WriteString(Title("Bins"))
	b.WriteByte('\n')
	bins := NewTable("ID", "Name", "Size", "Description")
	for _, bp := range c.Bins {
		bins.Row(bp.ID, bp.Name, fmt.Sprintf("%g x %g x %g", bp.Width, bp.Height, bp.Depth), bp.Description)
	}
	b.WriteString(bins.String())

	b.WriteByte('\n')
	b.WriteString(Title("Items"))
	b.WriteByte('\n')
	items := NewTable("ID", "Name", "Size", "Rotations")
	for _, ip := range c.Items {
		items.Row(ip.ID, ip.Name, fmt.Sprintf("%g x %g x %g", ip.Width, ip.Height, ip.Depth), rotationTags(ip.Rotations))
	}
	b.WriteString(items.String())
	return b.String()
}

// RenderTemplates lists saved project templates.
func RenderTemplates(store model.TemplateStore) string {
	t := NewTable("ID", "Name", "Bins", "Items", "Description")
	for _, tpl := range store.Templates {
		t.Row(tpl.ID, tpl.Name, strconv.Itoa(len(tpl.Bins)), strconv.Itoa(len(tpl.Items)), tpl.Description)
	}
	if t.Len() == 0 {
		return Muted("no templates saved") + "\n"
	}
	return t.String()
}

// RenderViolations renders verification findings, one per line.
func RenderViolations(vs []engine.Violation) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(Error("  ! " + v.String()))
		b.WriteByte('\n')
	}
	return b.String()
}

func rotationTags(rots []model.RotationType) string {
	if len(rots) == 0 {
		return "all"
	}
	tags := make([]string, len(rots))
	for i, r := range rots {
		tags[i] = r.Tag()
	}
	return strings.Join(tags, ",")
}
