package model

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if len(c.Bins) == 0 || len(c.Items) == 0 {
		t.Fatal("expected a populated default catalog")
	}
	bp := c.FindBinByName("USPS Medium Flat Rate Box (Top Loading)")
	if bp == nil {
		t.Fatal("expected the USPS medium box")
	}
	if bp.Width != 11 || bp.Height != 8.5 || bp.Depth != 5.5 {
		t.Errorf("unexpected dimensions %g x %g x %g", bp.Width, bp.Height, bp.Depth)
	}
	if c.FindBinByID(bp.ID) != bp {
		t.Error("FindBinByID should return the same preset")
	}
	if c.FindItemByName("Banana Box") == nil {
		t.Error("expected the banana box item preset")
	}
	if c.FindItemByName("missing") != nil || c.FindBinByID("missing") != nil {
		t.Error("expected nil for unknown presets")
	}
}

func TestPresetConversion(t *testing.T) {
	bp := NewBinPreset("Carton", 40, 30, 20, "cm")
	spec := bp.ToBinSpec(3)
	if spec.Name != "Carton" || spec.Quantity != 3 || spec.Volume() != 24000 {
		t.Errorf("unexpected bin spec %+v", spec)
	}
	if spec.ID == bp.ID {
		t.Error("bin spec should get its own ID")
	}

	ip := NewItemPreset("Jar", 8, 12, 8, UprightRotations(), "#ffffff")
	item := ip.ToItemSpec(6)
	if item.Quantity != 6 || item.Color != "#ffffff" {
		t.Errorf("unexpected item spec %+v", item)
	}
	if len(item.Rotations) != 2 || item.Rotations[1] != RotationHWD {
		t.Errorf("unexpected rotations %v", item.Rotations)
	}

	bare := NewItemPreset("Any", 1, 1, 1, nil, "")
	if got := bare.ToItemSpec(1).Rotations; len(got) != 6 {
		t.Errorf("presets without rotations should allow all, got %v", got)
	}
}

func TestCatalog_Merge(t *testing.T) {
	c := Catalog{}
	shared := NewBinPreset("Shared", 1, 1, 1, "")
	c.Bins = append(c.Bins, shared)

	other := Catalog{
		Bins:  []BinPreset{shared, NewBinPreset("New", 2, 2, 2, "")},
		Items: []ItemPreset{NewItemPreset("Item", 1, 1, 1, nil, "")},
	}

	added := c.Merge(other)

	if added != 2 {
		t.Errorf("expected 2 presets added, got %d", added)
	}
	if names := c.BinNames(); len(names) != 2 || names[1] != "New" {
		t.Errorf("unexpected bin names %v", names)
	}
	if names := c.ItemNames(); len(names) != 1 || names[0] != "Item" {
		t.Errorf("unexpected item names %v", names)
	}
	if c.Merge(other) != 0 {
		t.Error("merging twice should add nothing")
	}
}

func TestPackResult_Stats(t *testing.T) {
	bin := BinSpec{Name: "b", Width: 10, Height: 10, Depth: 10}
	item := ItemSpec{Name: "i", Width: 5, Height: 10, Depth: 10}
	result := PackResult{
		Bins: []BinResult{
			{Bin: bin, Placements: []Placement{{Item: item}}},
			{Bin: bin},
			{Bin: bin, Placements: []Placement{{Item: item}, {Item: item, Position: Point3D{X: 5}}}},
		},
		UnfitItems: []ItemSpec{item},
	}

	if result.PlacedCount() != 3 {
		t.Errorf("expected 3 placed, got %d", result.PlacedCount())
	}
	if result.UsedBins() != 2 {
		t.Errorf("expected 2 used bins, got %d", result.UsedBins())
	}
	if eff := result.TotalEfficiency(); eff != 75 {
		t.Errorf("expected 75%% across used bins, got %g", eff)
	}
	if eff := result.Bins[1].Efficiency(); eff != 0 {
		t.Errorf("expected an empty bin at 0%%, got %g", eff)
	}
}
