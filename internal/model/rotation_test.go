package model

import (
	"encoding/json"
	"testing"
)

func TestRotationType_Apply(t *testing.T) {
	base := Dimensions{Width: 1, Height: 2, Depth: 3}
	tests := []struct {
		rot  RotationType
		want Dimensions
	}{
		{RotationWHD, Dimensions{Width: 1, Height: 2, Depth: 3}},
		{RotationHWD, Dimensions{Width: 2, Height: 1, Depth: 3}},
		{RotationHDW, Dimensions{Width: 2, Height: 3, Depth: 1}},
		{RotationDHW, Dimensions{Width: 3, Height: 2, Depth: 1}},
		{RotationDWH, Dimensions{Width: 3, Height: 1, Depth: 2}},
		{RotationWDH, Dimensions{Width: 1, Height: 3, Depth: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.rot.Tag(), func(t *testing.T) {
			got := tt.rot.Apply(base)
			if got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
			if got.Volume() != base.Volume() {
				t.Errorf("rotation changed the volume: %g", got.Volume())
			}
		})
	}
}

func TestRotationType_Names(t *testing.T) {
	if RotationIdentity != RotationWHD {
		t.Error("identity should be whd")
	}
	if got := RotationDHW.String(); got != "(d, h, w)" {
		t.Errorf("unexpected String %q", got)
	}
	if got := RotationType(42).Tag(); got != "rotation(42)" {
		t.Errorf("unexpected tag for unknown rotation %q", got)
	}
	if RotationType(-1).Valid() || RotationType(6).Valid() {
		t.Error("out of range values should be invalid")
	}
}

func TestUprightRotations_KeepDepthVertical(t *testing.T) {
	base := Dimensions{Width: 20, Height: 5, Depth: 3}
	up := UprightRotations()
	if len(up) != 2 || up[0] != RotationIdentity {
		t.Fatalf("expected identity first and two rotations, got %v", up)
	}
	for _, r := range up {
		if got := r.Apply(base).Depth; got != base.Depth {
			t.Errorf("%s moves depth %g off the z axis (got %g)", r.Tag(), base.Depth, got)
		}
	}
}

func TestParseRotationType(t *testing.T) {
	for _, in := range []string{"dhw", "DHW", " (d, h, w) ", "d,h,w"} {
		got, err := ParseRotationType(in)
		if err != nil {
			t.Errorf("ParseRotationType(%q): %v", in, err)
			continue
		}
		if got != RotationDHW {
			t.Errorf("ParseRotationType(%q) = %v", in, got)
		}
	}
	if _, err := ParseRotationType("xyz"); err == nil {
		t.Error("expected an error for an unknown tag")
	}
}

func TestParseRotationList(t *testing.T) {
	got, err := ParseRotationList("whd, dhw;wdh")
	if err != nil {
		t.Fatal(err)
	}
	want := []RotationType{RotationWHD, RotationDHW, RotationWDH}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	all, err := ParseRotationList("all")
	if err != nil || len(all) != 6 {
		t.Errorf("expected 6 rotations for 'all', got %v (%v)", all, err)
	}
	up, err := ParseRotationList("upright")
	if err != nil || len(up) != 2 {
		t.Errorf("expected 2 rotations for 'upright', got %v (%v)", up, err)
	}
	empty, err := ParseRotationList("")
	if err != nil || len(empty) != 0 {
		t.Errorf("expected an empty list, got %v (%v)", empty, err)
	}
	if _, err := ParseRotationList("whd,bogus"); err == nil {
		t.Error("expected an error for an unknown entry")
	}
}

func TestRotationType_JSON(t *testing.T) {
	spec := ItemSpec{Name: "A", Width: 1, Height: 1, Depth: 1, Rotations: []RotationType{RotationWHD, RotationHDW}}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	rots, ok := raw["rotations"].([]any)
	if !ok || len(rots) != 2 || rots[0] != "whd" || rots[1] != "hdw" {
		t.Errorf("expected rotations as tags, got %v", raw["rotations"])
	}

	var back ItemSpec
	if err := json.Unmarshal([]byte(`{"rotations":["DWH","(w, d, h)"]}`), &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Rotations) != 2 || back.Rotations[0] != RotationDWH || back.Rotations[1] != RotationWDH {
		t.Errorf("unexpected decoded rotations %v", back.Rotations)
	}
	if err := json.Unmarshal([]byte(`{"rotations":["nope"]}`), &back); err == nil {
		t.Error("expected an error for an unknown tag")
	}
}
