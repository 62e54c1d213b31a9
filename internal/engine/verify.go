package engine

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
)

// ViolationKind names a broken packing invariant.
type ViolationKind string

const (
	ViolationContainment  ViolationKind = "containment"
	ViolationOverlap      ViolationKind = "overlap"
	ViolationConservation ViolationKind = "conservation"
)

// Violation is one broken invariant found by Verify.
type Violation struct {
	Kind     ViolationKind
	BinIndex int
	Detail   string
}

func (v Violation) String() string {
	if v.BinIndex < 0 {
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
	return fmt.Sprintf("%s in bin %d: %s", v.Kind, v.BinIndex, v.Detail)
}

// Verify checks a result against the packing invariants: every placement
// lies inside its bin, no two placements in a bin share volume, and placed
// plus unfit units add up to itemCount.
func Verify(result model.PackResult, itemCount int) []Violation {
	var out []Violation

	for bi, br := range result.Bins {
		capacity := br.Bin.Dimensions()
		for _, p := range br.Placements {
			if !p.Box().Within(capacity) {
				out = append(out, Violation{
					Kind:     ViolationContainment,
					BinIndex: bi,
					Detail:   fmt.Sprintf("%s at %s with %s exceeds %s", p.Item.Name, p.Position, p.Dimension(), capacity),
				})
			}
		}
		for i := 0; i < len(br.Placements); i++ {
			for j := i + 1; j < len(br.Placements); j++ {
				a, b := br.Placements[i], br.Placements[j]
				if v := a.Box().IntersectionVolume(b.Box()); v > 0 {
					out = append(out, Violation{
						Kind:     ViolationOverlap,
						BinIndex: bi,
						Detail:   fmt.Sprintf("%s and %s share volume %g", a.Item.Name, b.Item.Name, v),
					})
				}
			}
		}
	}

	if got := result.PlacedCount() + len(result.UnfitItems); got != itemCount {
		out = append(out, Violation{
			Kind:     ViolationConservation,
			BinIndex: -1,
			Detail:   fmt.Sprintf("%d placed + %d unfit != %d items", result.PlacedCount(), len(result.UnfitItems), itemCount),
		})
	}
	return out
}
