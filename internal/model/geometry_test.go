package model

import (
	"errors"
	"math"
	"testing"
)

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h, d float64
		wantErr string
	}{
		{"valid", 1, 2, 3, ""},
		{"zero width", 0, 2, 3, "invalid width: must be > 0, got 0"},
		{"negative height", 1, -2, 3, "invalid height: must be > 0, got -2"},
		{"zero depth", 1, 2, 0, "invalid depth: must be > 0, got 0"},
		{"infinite height", 1, math.Inf(1), 3, "invalid height: must be finite, got +Inf"},
		{"NaN width", math.NaN(), 2, 3, "invalid width: must be > 0, got NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDimensions(tt.w, tt.h, tt.d)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if d.Volume() != tt.w*tt.h*tt.d {
					t.Errorf("unexpected volume %g", d.Volume())
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected error %q, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("expected errors.Is(err, ErrValidation)")
			}
		})
	}
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Entity: "item", Name: "Book", Field: "rotations", Reason: "must not be empty"}
	if got := err.Error(); got != `invalid item "Book": rotations must not be empty` {
		t.Errorf("unexpected message %q", got)
	}

	err = &ValidationError{Entity: "bin", Field: "width", Reason: "must be > 0, got 0"}
	if got := err.Error(); got != "invalid bin: width must be > 0, got 0" {
		t.Errorf("unexpected message %q", got)
	}

	var ve *ValidationError
	if !errors.As(error(err), &ve) || ve.Field != "width" {
		t.Error("expected errors.As to recover the ValidationError")
	}
}

func TestPoint3D_Less(t *testing.T) {
	tests := []struct {
		a, b Point3D
		want bool
	}{
		{Point3D{X: 9, Y: 9, Z: 0}, Point3D{Z: 1}, true},
		{Point3D{X: 9, Y: 0, Z: 1}, Point3D{X: 0, Y: 1, Z: 1}, true},
		{Point3D{X: 1}, Point3D{X: 2}, true},
		{Point3D{X: 2}, Point3D{X: 1}, false},
		{Point3D{}, Point3D{}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%s.Less(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBox_Intersects(t *testing.T) {
	unit := Dimensions{Width: 1, Height: 1, Depth: 1}
	origin := Box{Size: unit}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"same box", Box{Size: unit}, true},
		{"face touch", Box{Min: Point3D{X: 1}, Size: unit}, false},
		{"edge touch", Box{Min: Point3D{X: 1, Y: 1}, Size: unit}, false},
		{"corner touch", Box{Min: Point3D{X: 1, Y: 1, Z: 1}, Size: unit}, false},
		{"partial overlap", Box{Min: Point3D{X: 0.5, Y: 0.5, Z: 0.5}, Size: unit}, true},
		{"float touch", Box{Min: Point3D{Z: 0.1 + 0.2 + 0.7 - 1e-12}, Size: unit}, false},
		{"apart", Box{Min: Point3D{X: 5}, Size: unit}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(origin); got != tt.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestBox_FootprintOverlaps(t *testing.T) {
	floor := Box{Size: Dimensions{Width: 10, Height: 10, Depth: 1}}
	above := Box{Min: Point3D{X: 2, Y: 2, Z: 5}, Size: Dimensions{Width: 1, Height: 1, Depth: 1}}
	beside := Box{Min: Point3D{X: 10}, Size: Dimensions{Width: 1, Height: 1, Depth: 1}}

	if !floor.FootprintOverlaps(above) {
		t.Error("a box above the floor should overlap its footprint")
	}
	if floor.Intersects(above) {
		t.Error("a box above the floor should not intersect it")
	}
	if floor.FootprintOverlaps(beside) {
		t.Error("a box beside the floor should not overlap its footprint")
	}
}

func TestBox_WithinAndIntersectionVolume(t *testing.T) {
	bin := Dimensions{Width: 11, Height: 8.5, Depth: 5.5}
	top := Box{Min: Point3D{Z: 3.3}, Size: Dimensions{Width: 8.1, Height: 5.2, Depth: 2.2}}
	if !top.Within(bin) {
		t.Error("3.3 + 2.2 should fit a 5.5 lid within tolerance")
	}
	out := Box{Min: Point3D{X: -1}, Size: Dimensions{Width: 1, Height: 1, Depth: 1}}
	if out.Within(bin) {
		t.Error("negative coordinates are outside the bin")
	}

	a := Box{Size: Dimensions{Width: 4, Height: 4, Depth: 4}}
	b := Box{Min: Point3D{X: 2, Y: 2, Z: 2}, Size: Dimensions{Width: 4, Height: 4, Depth: 4}}
	if v := a.IntersectionVolume(b); v != 8 {
		t.Errorf("expected shared volume 8, got %g", v)
	}
	c := Box{Min: Point3D{X: 4}, Size: Dimensions{Width: 4, Height: 4, Depth: 4}}
	if v := a.IntersectionVolume(c); v != 0 {
		t.Errorf("touching boxes share no volume, got %g", v)
	}
}
