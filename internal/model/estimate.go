package model

import "math"

// BinEstimate is a volume-only lower bound on how many bins of one size a
// set of items needs. It ignores geometry, so the real packing can need more.
type BinEstimate struct {
	TotalItemVolume float64  `json:"total_item_volume"`
	BinVolume       float64  `json:"bin_volume"`
	BinsNeededExact float64  `json:"bins_needed_exact"` // fractional bins
	BinsNeededMin   int      `json:"bins_needed_min"`   // ceiling of exact
	BinsWithWaste   int      `json:"bins_with_waste"`   // including the waste factor
	WastePercent    float64  `json:"waste_percent"`
	Oversized       []string `json:"oversized,omitempty"` // items no rotation of which fits an empty bin
}

// EstimateBins computes how many bins of the given size the items need.
func EstimateBins(items []ItemSpec, bin BinSpec, wastePercent float64) BinEstimate {
	var total float64
	var oversized []string
	binDims := bin.Dimensions()
	for _, it := range items {
		total += it.Volume() * float64(it.Quantity)
		if !fitsEmpty(it, binDims) {
			oversized = append(oversized, it.Name)
		}
	}

	binVolume := bin.Volume()
	if binVolume <= 0 {
		return BinEstimate{
			TotalItemVolume: total,
			WastePercent:    wastePercent,
			Oversized:       oversized,
		}
	}

	exact := total / binVolume
	minBins := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minBins {
		withWaste = minBins
	}

	return BinEstimate{
		TotalItemVolume: total,
		BinVolume:       binVolume,
		BinsNeededExact: exact,
		BinsNeededMin:   minBins,
		BinsWithWaste:   withWaste,
		WastePercent:    wastePercent,
		Oversized:       oversized,
	}
}

func fitsEmpty(it ItemSpec, bin Dimensions) bool {
	rots := it.Rotations
	if len(rots) == 0 {
		rots = AllRotations()
	}
	for _, r := range rots {
		box := Box{Size: r.Apply(it.Dimensions())}
		if box.Within(bin) {
			return true
		}
	}
	return false
}
