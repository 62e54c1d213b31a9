package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/piwi3910/CratePack/internal/model"
)

// WriteSummary prints a plain-text report of the result: totals, every bin
// in order with its placements, then the unfit items.
func WriteSummary(w io.Writer, result model.PackResult) error {
	p := &printer{w: w}

	p.printf("Bins used: %d of %d\n", result.UsedBins(), len(result.Bins))
	p.printf("Items placed: %d\n", result.PlacedCount())
	p.printf("Items unfit: %d\n", len(result.UnfitItems))
	p.printf("Efficiency: %.1f%%\n", result.TotalEfficiency())

	for i, br := range result.Bins {
		p.printf("\nBin %d: %s (%s)\n", i+1, br.Bin.Name, br.Bin.Dimensions())
		if len(br.Placements) == 0 {
			p.printf("  empty\n")
			continue
		}
		p.printf("  %d items, %.1f%% full\n", len(br.Placements), br.Efficiency())
		for _, pl := range br.Placements {
			p.printf("  - %s at %s %s -> %s\n", pl.Item.Name, pl.Position, pl.Rotation.Tag(), pl.Dimension())
		}
	}

	if len(result.UnfitItems) > 0 {
		p.printf("\nUnfit items:\n")
		for _, it := range result.UnfitItems {
			p.printf("  - %s (%s)\n", it.Name, it.Dimensions())
		}
	}
	return p.err
}

// WriteJSON encodes the result as indented JSON.
func WriteJSON(w io.Writer, result model.PackResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
