package model

import (
	"fmt"
	"strings"
)

// RotationType selects one of the six axis permutations of an item.
// The tag letters name the base axis that lands on the placement x, y
// and z axes: RotationDHW puts the item's depth along the bin width.
type RotationType int

const (
	RotationWHD RotationType = iota // identity
	RotationHWD
	RotationHDW
	RotationDHW
	RotationDWH
	RotationWDH
)

// RotationIdentity leaves the base dimensions unchanged.
const RotationIdentity = RotationWHD

// axis indices into a Dimensions triple for each placement axis.
var rotationTable = [...][3]int{
	RotationWHD: {0, 1, 2},
	RotationHWD: {1, 0, 2},
	RotationHDW: {1, 2, 0},
	RotationDHW: {2, 1, 0},
	RotationDWH: {2, 0, 1},
	RotationWDH: {0, 2, 1},
}

var rotationTags = [...]string{
	RotationWHD: "whd",
	RotationHWD: "hwd",
	RotationHDW: "hdw",
	RotationDHW: "dhw",
	RotationDWH: "dwh",
	RotationWDH: "wdh",
}

// AllRotations returns the six rotations in declaration order.
func AllRotations() []RotationType {
	return []RotationType{RotationWHD, RotationHWD, RotationHDW, RotationDHW, RotationDWH, RotationWDH}
}

// UprightRotations returns the rotations that keep the base depth on the
// vertical z axis, turning the item only about z.
func UprightRotations() []RotationType {
	return []RotationType{RotationWHD, RotationHWD}
}

// Valid reports whether r is one of the six known rotations.
func (r RotationType) Valid() bool {
	return r >= RotationWHD && r <= RotationWDH
}

// Apply returns the effective dimensions of base under this rotation.
// Unknown values fall back to the identity.
func (r RotationType) Apply(base Dimensions) Dimensions {
	if !r.Valid() {
		return base
	}
	perm := rotationTable[r]
	return Dimensions{
		Width:  base.Axis(perm[0]),
		Height: base.Axis(perm[1]),
		Depth:  base.Axis(perm[2]),
	}
}

// Tag returns the short form, e.g. "whd".
func (r RotationType) Tag() string {
	if !r.Valid() {
		return fmt.Sprintf("rotation(%d)", int(r))
	}
	return rotationTags[r]
}

// String returns the display form, e.g. "(w, h, d)".
func (r RotationType) String() string {
	if !r.Valid() {
		return r.Tag()
	}
	t := rotationTags[r]
	return fmt.Sprintf("(%c, %c, %c)", t[0], t[1], t[2])
}

// ParseRotationType accepts a tag ("dhw") or display form ("(d, h, w)"),
// case-insensitively.
func ParseRotationType(s string) (RotationType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("(", "", ")", "", ",", "", " ", "").Replace(norm)
	for i, tag := range rotationTags {
		if tag == norm {
			return RotationType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotation %q", s)
}

// ParseRotationList parses a comma, space or semicolon separated list.
// The keyword "all" expands to every rotation and "upright" to
// UprightRotations.
func ParseRotationList(s string) ([]RotationType, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '|'
	})
	var out []RotationType
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "all", "*":
			out = append(out, AllRotations()...)
			continue
		case "upright":
			out = append(out, UprightRotations()...)
			continue
		}
		r, err := ParseRotationType(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// MarshalText encodes the rotation as its tag.
func (r RotationType) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rotation %d", int(r))
	}
	return []byte(r.Tag()), nil
}

// UnmarshalText decodes a rotation tag.
func (r *RotationType) UnmarshalText(text []byte) error {
	parsed, err := ParseRotationType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
