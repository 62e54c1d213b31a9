package engine

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
)

const defaultColor = "#000000"

// Item is a box to be packed. Its placement fields are written by the
// Packer only; callers read them back after Pack.
type Item struct {
	name      string
	color     string
	base      model.Dimensions
	rotations []model.RotationType

	bottomLoadOnly  bool
	disableStacking bool

	// placement outcome
	rotation model.RotationType
	position model.Point3D
	binIndex int
}

// ItemOption configures optional item constraints.
type ItemOption func(*Item)

// WithBottomLoadOnly restricts the item to anchors on the bin floor (z = 0).
func WithBottomLoadOnly() ItemOption {
	return func(it *Item) { it.bottomLoadOnly = true }
}

// WithDisableStacking forbids placing anything above the item and placing
// the item above anything else.
func WithDisableStacking() ItemOption {
	return func(it *Item) { it.disableStacking = true }
}

// NewItem validates its input and returns an unplaced item. rotations is
// both the candidate set and the trial order.
func NewItem(name string, dims model.Dimensions, rotations []model.RotationType, color string, opts ...ItemOption) (*Item, error) {
	if err := dims.Validate(); err != nil {
		return nil, itemError(name, err)
	}
	if len(rotations) == 0 {
		return nil, &model.ValidationError{Entity: "item", Name: name, Field: "rotations", Reason: "must not be empty"}
	}
	for _, r := range rotations {
		if !r.Valid() {
			return nil, &model.ValidationError{Entity: "item", Name: name, Field: "rotations", Reason: fmt.Sprintf("contains unknown rotation %d", int(r))}
		}
	}
	if color == "" {
		color = defaultColor
	}

	it := &Item{
		name:      name,
		color:     color,
		base:      dims,
		rotations: append([]model.RotationType(nil), rotations...),
		rotation:  rotations[0],
		binIndex:  -1,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it, nil
}

func itemError(name string, err error) error {
	if ve, ok := err.(*model.ValidationError); ok {
		ve.Entity = "item"
		ve.Name = name
		return ve
	}
	return err
}

// Name returns the item's label. Names need not be unique.
func (it *Item) Name() string { return it.name }

// Color returns the display color, "#000000" when none was given.
func (it *Item) Color() string { return it.color }

// Base returns the dimensions the item was declared with.
func (it *Item) Base() model.Dimensions { return it.base }

// Volume returns the base volume; rotation never changes it.
func (it *Item) Volume() float64 { return it.base.Volume() }

// AllowedRotations returns a copy of the declared rotations in trial order.
func (it *Item) AllowedRotations() []model.RotationType {
	return append([]model.RotationType(nil), it.rotations...)
}

// BottomLoadOnly reports whether the item may only rest on the bin floor (z = 0).
func (it *Item) BottomLoadOnly() bool { return it.bottomLoadOnly }

// DisableStacking reports whether other items are kept off the item's top face.
func (it *Item) DisableStacking() bool { return it.disableStacking }

// Placed reports whether the last Pack run placed the item.
func (it *Item) Placed() bool { return it.binIndex >= 0 }

// BinIndex returns the index of the bin holding the item in the packer's
// bin list, or -1 when unplaced.
func (it *Item) BinIndex() int { return it.binIndex }

// Position returns the min corner of the placed item. ok is false when the
// item is unplaced.
func (it *Item) Position() (pos model.Point3D, ok bool) {
	if !it.Placed() {
		return model.Point3D{}, false
	}
	return it.position, true
}

// RotationType returns the chosen rotation. ok is false when unplaced.
func (it *Item) RotationType() (rot model.RotationType, ok bool) {
	if !it.Placed() {
		return 0, false
	}
	return it.rotation, true
}

// Dimension returns the effective dimensions once placed, the base
// dimensions otherwise.
func (it *Item) Dimension() model.Dimensions {
	if !it.Placed() {
		return it.base
	}
	return it.rotation.Apply(it.base)
}

// Box returns the effective bounding box at the item's position.
func (it *Item) Box() model.Box {
	return model.Box{Min: it.position, Size: it.Dimension()}
}

func (it *Item) String() string {
	rot := it.rotations[0]
	if it.Placed() {
		rot = it.rotation
	}
	d := rot.Apply(it.base)
	return fmt.Sprintf("Item: %s (%s = %g x %g x %g)", it.name, rot, d.Width, d.Height, d.Depth)
}

func (it *Item) place(binIndex int, pos model.Point3D, rot model.RotationType) {
	it.binIndex = binIndex
	it.position = pos
	it.rotation = rot
}

func (it *Item) unplace() {
	it.binIndex = -1
	it.position = model.Point3D{}
	it.rotation = it.rotations[0]
}
