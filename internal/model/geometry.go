package model

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used when comparing coordinates.
// Touching faces computed through float sums (3.3+2.2, 0.005+0.005) must not
// be reported as overflow or overlap.
const Epsilon = 1e-9

// Dimensions is a width/height/depth triple. Items and bins share it.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth" yaml:"depth"`
}

// NewDimensions returns a validated dimension triple.
func NewDimensions(w, h, d float64) (Dimensions, error) {
	dims := Dimensions{Width: w, Height: h, Depth: d}
	if err := dims.Validate(); err != nil {
		return Dimensions{}, err
	}
	return dims, nil
}

// Validate reports the first non-positive component.
func (d Dimensions) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"width", d.Width}, {"height", d.Height}, {"depth", d.Depth}} {
		switch {
		case !(f.v > 0):
			return &ValidationError{Field: f.name, Reason: fmt.Sprintf("must be > 0, got %g", f.v)}
		case math.IsInf(f.v, 0):
			return &ValidationError{Field: f.name, Reason: fmt.Sprintf("must be finite, got %g", f.v)}
		}
	}
	return nil
}

// Volume returns width * height * depth.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// Axis returns the component along the given axis index (0=x, 1=y, 2=z).
func (d Dimensions) Axis(i int) float64 {
	switch i {
	case 0:
		return d.Width
	case 1:
		return d.Height
	default:
		return d.Depth
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%g x %g x %g", d.Width, d.Height, d.Depth)
}

// Point3D is a coordinate inside a bin. X runs along the width,
// Y along the height and Z along the depth.
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Axis returns the coordinate along the given axis index (0=x, 1=y, 2=z).
func (p Point3D) Axis(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Less orders points by (z, y, x), floor first then back-left corner.
func (p Point3D) Less(o Point3D) bool {
	if p.Z != o.Z {
		return p.Z < o.Z
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Box is an axis-aligned bounding box anchored at its minimum corner.
type Box struct {
	Min  Point3D    `json:"min"`
	Size Dimensions `json:"size"`
}

// Max returns the far corner of the box.
func (b Box) Max() Point3D {
	return Point3D{
		X: b.Min.X + b.Size.Width,
		Y: b.Min.Y + b.Size.Height,
		Z: b.Min.Z + b.Size.Depth,
	}
}

// Volume returns the box volume.
func (b Box) Volume() float64 {
	return b.Size.Volume()
}

// Within reports whether the box lies inside [0,c.Width]x[0,c.Height]x[0,c.Depth].
func (b Box) Within(c Dimensions) bool {
	max := b.Max()
	for i := 0; i < 3; i++ {
		if b.Min.Axis(i) < -Epsilon {
			return false
		}
		if max.Axis(i) > c.Axis(i)+Epsilon {
			return false
		}
	}
	return true
}

// Intersects reports whether two boxes share a positive volume.
// Boxes that only touch at a face, edge or corner do not intersect.
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if !b.overlapsOn(o, i) {
			return false
		}
	}
	return true
}

// FootprintOverlaps reports whether the x/y projections of two boxes overlap.
func (b Box) FootprintOverlaps(o Box) bool {
	return b.overlapsOn(o, 0) && b.overlapsOn(o, 1)
}

// IntersectionVolume returns the volume shared by two boxes (0 when disjoint).
func (b Box) IntersectionVolume(o Box) float64 {
	bm, om := b.Max(), o.Max()
	vol := 1.0
	for i := 0; i < 3; i++ {
		lo := maxf(b.Min.Axis(i), o.Min.Axis(i))
		hi := minf(bm.Axis(i), om.Axis(i))
		if hi-lo <= Epsilon {
			return 0
		}
		vol *= hi - lo
	}
	return vol
}

func (b Box) overlapsOn(o Box, axis int) bool {
	bLo, bHi := b.Min.Axis(axis), b.Min.Axis(axis)+b.Size.Axis(axis)
	oLo, oHi := o.Min.Axis(axis), o.Min.Axis(axis)+o.Size.Axis(axis)
	return bLo < oHi-Epsilon && oLo < bHi-Epsilon
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
