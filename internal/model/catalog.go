package model

import "github.com/google/uuid"

// BinPreset is a reusable container definition, e.g. a shipping carton.
type BinPreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Depth       float64 `json:"depth"`
	Description string  `json:"description,omitempty"`
}

// NewBinPreset creates a new BinPreset with a generated ID.
func NewBinPreset(name string, w, h, d float64, description string) BinPreset {
	return BinPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Width:       w,
		Height:      h,
		Depth:       d,
		Description: description,
	}
}

// ToBinSpec converts the preset into a BinSpec with the given quantity.
func (bp BinPreset) ToBinSpec(qty int) BinSpec {
	return NewBinSpec(bp.Name, bp.Width, bp.Height, bp.Depth, qty)
}

// ItemPreset is a reusable item definition with its allowed rotations.
type ItemPreset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Depth     float64        `json:"depth"`
	Rotations []RotationType `json:"rotations,omitempty"`
	Color     string         `json:"color,omitempty"`
}

// NewItemPreset creates a new ItemPreset with a generated ID.
func NewItemPreset(name string, w, h, d float64, rotations []RotationType, color string) ItemPreset {
	return ItemPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		Depth:     d,
		Rotations: rotations,
		Color:     color,
	}
}

// ToItemSpec converts the preset into an ItemSpec with the given quantity.
func (ip ItemPreset) ToItemSpec(qty int) ItemSpec {
	spec := NewItemSpec(ip.Name, ip.Width, ip.Height, ip.Depth, qty)
	if len(ip.Rotations) > 0 {
		spec.Rotations = append([]RotationType(nil), ip.Rotations...)
	}
	spec.Color = ip.Color
	return spec
}

// Catalog holds the user's saved bin and item presets.
type Catalog struct {
	Bins  []BinPreset  `json:"bins"`
	Items []ItemPreset `json:"items"`
}

// DefaultCatalog returns a catalog populated with common shipping cartons.
func DefaultCatalog() Catalog {
	return Catalog{
		Bins: []BinPreset{
			NewBinPreset("USPS Small Flat Rate Box", 8.625, 5.375, 1.625, "inches"),
			NewBinPreset("USPS Medium Flat Rate Box (Top Loading)", 11, 8.5, 5.5, "inches"),
			NewBinPreset("USPS Medium Flat Rate Box (Side Loading)", 13.625, 11.875, 3.375, "inches"),
			NewBinPreset("USPS Large Flat Rate Box", 12, 12, 5.5, "inches"),
			NewBinPreset("EUR Pallet Load 1200x800x1500", 1200, 800, 1500, "mm"),
			NewBinPreset("20ft Container", 5898, 2352, 2393, "mm, interior"),
		},
		Items: []ItemPreset{
			NewItemPreset("Shoe Box", 330, 190, 115, AllRotations(), "#8d6e63"),
			NewItemPreset("Banana Box", 500, 400, 250, UprightRotations(), "#fdd835"),
			NewItemPreset("A4 Ream", 297, 210, 50, AllRotations(), "#eceff1"),
		},
	}
}

// FindBinByID returns a pointer to the bin preset with the given ID, or nil.
func (c *Catalog) FindBinByID(id string) *BinPreset {
	for i := range c.Bins {
		if c.Bins[i].ID == id {
			return &c.Bins[i]
		}
	}
	return nil
}

// FindItemByID returns a pointer to the item preset with the given ID, or nil.
func (c *Catalog) FindItemByID(id string) *ItemPreset {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// FindBinByName returns a pointer to the first bin preset with the given name, or nil.
func (c *Catalog) FindBinByName(name string) *BinPreset {
	for i := range c.Bins {
		if c.Bins[i].Name == name {
			return &c.Bins[i]
		}
	}
	return nil
}

// FindItemByName returns a pointer to the first item preset with the given name, or nil.
func (c *Catalog) FindItemByName(name string) *ItemPreset {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return &c.Items[i]
		}
	}
	return nil
}

// BinNames returns the bin preset names in catalog order.
func (c *Catalog) BinNames() []string {
	names := make([]string, len(c.Bins))
	for i, b := range c.Bins {
		names[i] = b.Name
	}
	return names
}

// ItemNames returns the item preset names in catalog order.
func (c *Catalog) ItemNames() []string {
	names := make([]string, len(c.Items))
	for i, it := range c.Items {
		names[i] = it.Name
	}
	return names
}

// Merge appends presets from other whose IDs are not already present.
// It returns the number of presets added.
func (c *Catalog) Merge(other Catalog) int {
	binIDs := make(map[string]bool, len(c.Bins))
	for _, b := range c.Bins {
		binIDs[b.ID] = true
	}
	itemIDs := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		itemIDs[it.ID] = true
	}

	added := 0
	for _, b := range other.Bins {
		if !binIDs[b.ID] {
			c.Bins = append(c.Bins, b)
			binIDs[b.ID] = true
			added++
		}
	}
	for _, it := range other.Items {
		if !itemIDs[it.ID] {
			c.Items = append(c.Items, it)
			itemIDs[it.ID] = true
			added++
		}
	}
	return added
}
