package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportLabels(path, model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_placements.pdf")

	result := model.PackResult{
		Bins: []model.BinResult{{Bin: model.BinSpec{ID: "b1", Name: "Carton", Width: 10, Height: 10, Depth: 10}}},
	}
	if err := ExportLabels(path, result); err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	if labels[0].ItemName != "Cube" || labels[0].ItemID != "i1" {
		t.Errorf("unexpected first label %+v", labels[0])
	}
	if labels[0].BinIndex != 1 || labels[0].BinName != "Carton" {
		t.Errorf("expected bin 1 (Carton), got %d (%s)", labels[0].BinIndex, labels[0].BinName)
	}
	if labels[0].Rotation != "whd" {
		t.Errorf("expected whd, got %q", labels[0].Rotation)
	}

	// The slab is placed rotated; labels carry the placed dimensions.
	slab := labels[1]
	if slab.Rotation != "dhw" {
		t.Errorf("expected dhw, got %q", slab.Rotation)
	}
	if slab.Width != 2 || slab.Height != 10 || slab.Depth != 5 {
		t.Errorf("wrong dimensions: got %g x %g x %g, want 2 x 10 x 5", slab.Width, slab.Height, slab.Depth)
	}
	if slab.X != 5 || slab.Y != 0 || slab.Z != 0 {
		t.Errorf("wrong position: got (%g, %g, %g)", slab.X, slab.Y, slab.Z)
	}
}

func TestCollectLabelInfos_SkipsEmptyBins(t *testing.T) {
	result := buildTestResult()
	// Move the load into the second bin; the first stays empty.
	result.Bins[1].Placements = result.Bins[0].Placements
	result.Bins[0].Placements = nil

	labels := CollectLabelInfos(result)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	for _, l := range labels {
		if l.BinIndex != 2 || l.BinName != "Tote" {
			t.Errorf("expected bin 2 (Tote), got %d (%s)", l.BinIndex, l.BinName)
		}
	}
}

func TestExportLabels_ManyItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// More placements than fit on one label sheet
	placements := make([]model.Placement, 35)
	for i := range placements {
		placements[i] = model.Placement{
			Item: model.ItemSpec{
				ID:    fmt.Sprintf("i%d", i),
				Name:  fmt.Sprintf("A rather long item name number %d", i+1),
				Width: 1, Height: 1, Depth: 1,
			},
			Position: model.Point3D{X: float64(i)},
			Rotation: model.RotationType(i % 6),
		}
	}
	result := model.PackResult{
		Bins: []model.BinResult{{
			Bin:        model.BinSpec{ID: "b1", Name: "Rail", Width: 35, Height: 1, Depth: 1},
			Placements: placements,
		}},
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}
