package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/CratePack/internal/model"
)

// Bin is a container. During a pack run it keeps the placed items and a set
// of candidate anchor points derived from them (extreme points).
type Bin struct {
	name     string
	capacity model.Dimensions

	index   int
	items   []*Item
	anchors []model.Point3D
}

// NewBin validates its input and returns an empty bin.
func NewBin(name string, dims model.Dimensions) (*Bin, error) {
	if err := dims.Validate(); err != nil {
		if ve, ok := err.(*model.ValidationError); ok {
			ve.Entity = "bin"
			ve.Name = name
		}
		return nil, err
	}
	return &Bin{
		name:     name,
		capacity: dims,
		index:    -1,
		anchors:  []model.Point3D{{}},
	}, nil
}

// Name returns the bin's label.
func (b *Bin) Name() string { return b.name }

// Capacity returns the inner dimensions available for placement.
func (b *Bin) Capacity() model.Dimensions { return b.capacity }

// Volume returns the capacity volume.
func (b *Bin) Volume() float64 { return b.capacity.Volume() }

// Items returns the placed items in placement order.
func (b *Bin) Items() []*Item {
	return append([]*Item(nil), b.items...)
}

// Anchors returns the current candidate anchors in search order.
func (b *Bin) Anchors() []model.Point3D {
	out := append([]model.Point3D(nil), b.anchors...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// UsedVolume returns the summed volume of the placed items.
func (b *Bin) UsedVolume() float64 {
	var v float64
	for _, it := range b.items {
		v += it.Volume()
	}
	return v
}

// Efficiency returns the fill percentage.
func (b *Bin) Efficiency() float64 {
	if b.Volume() == 0 {
		return 0
	}
	return b.UsedVolume() / b.Volume() * 100.0
}

// Fits reports whether a box of the given dimensions anchored at anchor lies
// inside the bin. It does not look at other items.
func (b *Bin) Fits(dims model.Dimensions, anchor model.Point3D) bool {
	return model.Box{Min: anchor, Size: dims}.Within(b.capacity)
}

func (b *Bin) String() string {
	return fmt.Sprintf("Bin: %s (W x H x D = %g x %g x %g)", b.name, b.capacity.Width, b.capacity.Height, b.capacity.Depth)
}

// reset prepares the bin for a pack run.
func (b *Bin) reset(index int) {
	b.index = index
	b.items = nil
	b.anchors = []model.Point3D{{}}
}

// blocked reports whether box collides with a placed item, either by
// intersecting it or by breaking a no-stacking constraint.
func (b *Bin) blocked(it *Item, box model.Box) bool {
	for _, other := range b.items {
		ob := other.Box()
		if box.Intersects(ob) {
			return true
		}
		if (it.disableStacking || other.disableStacking) && box.FootprintOverlaps(ob) {
			return true
		}
	}
	return false
}

// accept records the placement and replaces the consumed anchor with the
// three extreme points of the new item.
func (b *Bin) accept(it *Item, anchor model.Point3D, rot model.RotationType) {
	it.place(b.index, anchor, rot)
	b.items = append(b.items, it)

	b.removeAnchor(anchor)
	d := rot.Apply(it.base)
	b.addAnchor(model.Point3D{X: anchor.X + d.Width, Y: anchor.Y, Z: anchor.Z})
	b.addAnchor(model.Point3D{X: anchor.X, Y: anchor.Y + d.Height, Z: anchor.Z})
	b.addAnchor(model.Point3D{X: anchor.X, Y: anchor.Y, Z: anchor.Z + d.Depth})
}

func (b *Bin) addAnchor(p model.Point3D) {
	for _, a := range b.anchors {
		if samePoint(a, p) {
			return
		}
	}
	b.anchors = append(b.anchors, p)
}

func (b *Bin) removeAnchor(p model.Point3D) {
	kept := b.anchors[:0]
	for _, a := range b.anchors {
		if !samePoint(a, p) {
			kept = append(kept, a)
		}
	}
	b.anchors = kept
}

func samePoint(a, b model.Point3D) bool {
	return abs(a.X-b.X) <= model.Epsilon &&
		abs(a.Y-b.Y) <= model.Epsilon &&
		abs(a.Z-b.Z) <= model.Epsilon
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
