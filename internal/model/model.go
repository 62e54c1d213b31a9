package model

import "github.com/google/uuid"

// ItemSpec describes one kind of item to pack.
type ItemSpec struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Width     float64        `json:"width" yaml:"width"`
	Height    float64        `json:"height" yaml:"height"`
	Depth     float64        `json:"depth" yaml:"depth"`
	Quantity  int            `json:"quantity" yaml:"quantity"`
	Rotations []RotationType `json:"rotations,omitempty" yaml:"rotations,omitempty"` // trial order; empty = settings default
	Color     string         `json:"color,omitempty" yaml:"color,omitempty"`

	BottomLoadOnly  bool `json:"bottom_load_only,omitempty" yaml:"bottom_load_only,omitempty"` // must rest on the bin floor
	DisableStacking bool `json:"disable_stacking,omitempty" yaml:"disable_stacking,omitempty"` // nothing above, not above anything
}

func NewItemSpec(name string, w, h, d float64, qty int) ItemSpec {
	return ItemSpec{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		Depth:     d,
		Quantity:  qty,
		Rotations: AllRotations(),
	}
}

// Dimensions returns the base dimension triple.
func (s ItemSpec) Dimensions() Dimensions {
	return Dimensions{Width: s.Width, Height: s.Height, Depth: s.Depth}
}

// Volume returns the volume of one unit.
func (s ItemSpec) Volume() float64 {
	return s.Dimensions().Volume()
}

// BinSpec describes one kind of container.
type BinSpec struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Depth    float64 `json:"depth" yaml:"depth"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

func NewBinSpec(name string, w, h, d float64, qty int) BinSpec {
	return BinSpec{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    w,
		Height:   h,
		Depth:    d,
		Quantity: qty,
	}
}

// Dimensions returns the capacity triple.
func (s BinSpec) Dimensions() Dimensions {
	return Dimensions{Width: s.Width, Height: s.Height, Depth: s.Depth}
}

// Volume returns the capacity volume of one bin.
func (s BinSpec) Volume() float64 {
	return s.Dimensions().Volume()
}

// PackSettings holds job-level options.
type PackSettings struct {
	// DefaultRotations fill an ItemSpec that declares no rotations.
	DefaultRotations []RotationType `json:"default_rotations" yaml:"default_rotations"`
	// Verify re-checks containment, overlap and conservation after packing.
	Verify bool `json:"verify" yaml:"verify"`
}

func DefaultSettings() PackSettings {
	return PackSettings{
		DefaultRotations: AllRotations(),
		Verify:           false,
	}
}

// RotationsFor returns the rotations to use for spec.
func (s PackSettings) RotationsFor(spec ItemSpec) []RotationType {
	if len(spec.Rotations) > 0 {
		return spec.Rotations
	}
	return s.DefaultRotations
}

// Placement is a single item unit placed in a bin.
type Placement struct {
	Item     ItemSpec     `json:"item"`
	Position Point3D      `json:"position"`
	Rotation RotationType `json:"rotation"`
}

// Dimension returns the effective dimensions under the chosen rotation.
func (p Placement) Dimension() Dimensions {
	return p.Rotation.Apply(p.Item.Dimensions())
}

// Box returns the placed bounding box.
func (p Placement) Box() Box {
	return Box{Min: p.Position, Size: p.Dimension()}
}

// BinResult is one bin with the items placed in it, in placement order.
type BinResult struct {
	Bin        BinSpec     `json:"bin"`
	Placements []Placement `json:"placements"`
}

// UsedVolume returns the total volume of placed items.
func (br BinResult) UsedVolume() float64 {
	var total float64
	for _, p := range br.Placements {
		total += p.Item.Volume()
	}
	return total
}

// TotalVolume returns the bin capacity volume.
func (br BinResult) TotalVolume() float64 {
	return br.Bin.Volume()
}

// Efficiency returns the fill percentage.
func (br BinResult) Efficiency() float64 {
	tv := br.TotalVolume()
	if tv == 0 {
		return 0
	}
	return (br.UsedVolume() / tv) * 100.0
}

// PackResult holds the full partition. Bins are reported in insertion
// order, including empty ones.
type PackResult struct {
	Bins       []BinResult `json:"bins"`
	UnfitItems []ItemSpec  `json:"unfit_items"`
}

// PlacedCount returns the number of placed item units.
func (pr PackResult) PlacedCount() int {
	n := 0
	for _, b := range pr.Bins {
		n += len(b.Placements)
	}
	return n
}

// UsedBins returns the number of bins holding at least one item.
func (pr PackResult) UsedBins() int {
	n := 0
	for _, b := range pr.Bins {
		if len(b.Placements) > 0 {
			n++
		}
	}
	return n
}

// TotalEfficiency returns the fill percentage across used bins.
func (pr PackResult) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range pr.Bins {
		if len(b.Placements) == 0 {
			continue
		}
		used += b.UsedVolume()
		total += b.TotalVolume()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}

// Project is a packing job as saved on disk. Results are not stored.
type Project struct {
	Name     string       `json:"name" yaml:"name"`
	Bins     []BinSpec    `json:"bins" yaml:"bins"`
	Items    []ItemSpec   `json:"items" yaml:"items"`
	Settings PackSettings `json:"settings" yaml:"settings"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Bins:     []BinSpec{},
		Items:    []ItemSpec{},
		Settings: DefaultSettings(),
	}
}
