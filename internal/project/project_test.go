package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
)

func sampleProject() model.Project {
	p := model.NewProject()
	p.Name = "Order 7"
	p.Bins = []model.BinSpec{model.NewBinSpec("Carton", 40, 30, 20, 2)}
	vase := model.NewItemSpec("Vase", 10, 30, 10, 3)
	vase.Rotations = model.UprightRotations()
	vase.BottomLoadOnly = true
	p.Items = []model.ItemSpec{vase, model.NewItemSpec("Book", 20, 15, 3, 5)}
	p.Settings.Verify = true
	return p
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"job.json": FormatJSON,
		"job.YAML": FormatYAML,
		"job.yml":  FormatYAML,
		"job":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSaveAndLoadProject(t *testing.T) {
	for _, name := range []string{"order.json", "order.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			p := sampleProject()

			if err := SaveProject(path, p); err != nil {
				t.Fatalf("SaveProject failed: %v", err)
			}
			loaded, err := LoadProject(path)
			if err != nil {
				t.Fatalf("LoadProject failed: %v", err)
			}

			if loaded.Name != "Order 7" {
				t.Errorf("expected name 'Order 7', got %q", loaded.Name)
			}
			if len(loaded.Bins) != 1 || loaded.Bins[0].Quantity != 2 {
				t.Errorf("unexpected bins %+v", loaded.Bins)
			}
			if len(loaded.Items) != 2 {
				t.Fatalf("expected 2 items, got %d", len(loaded.Items))
			}
			vase := loaded.Items[0]
			if !vase.BottomLoadOnly {
				t.Error("expected BottomLoadOnly to survive")
			}
			if len(vase.Rotations) != 2 || vase.Rotations[1] != model.RotationHWD {
				t.Errorf("unexpected rotations %v", vase.Rotations)
			}
			if !loaded.Settings.Verify {
				t.Error("expected Verify to survive")
			}
		})
	}
}

func TestSaveProjectYAMLUsesTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.yml")
	if err := SaveProject(path, sampleProject()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "- hwd") {
		t.Errorf("expected rotation tags in YAML output:\n%s", data)
	}
}

func TestDecodeProjectFillsDefaults(t *testing.T) {
	manifest := `
name: Minimal
bins:
  - name: Box
    width: 10
    height: 10
    depth: 10
items:
  - name: Cube
    width: 5
    height: 5
    depth: 5
    rotations: [whd]
`
	p, err := DecodeProject([]byte(manifest), FormatYAML)
	if err != nil {
		t.Fatalf("DecodeProject failed: %v", err)
	}
	if p.Bins[0].Quantity != 1 || p.Items[0].Quantity != 1 {
		t.Errorf("expected quantities to default to 1, got %d and %d", p.Bins[0].Quantity, p.Items[0].Quantity)
	}
	if len(p.Settings.DefaultRotations) != 6 {
		t.Errorf("expected default rotations, got %v", p.Settings.DefaultRotations)
	}
	if p.Items[0].Rotations[0] != model.RotationWHD {
		t.Errorf("unexpected rotations %v", p.Items[0].Rotations)
	}
}

func TestDecodeProjectKeepsExplicitDefaultRotations(t *testing.T) {
	p, err := DecodeProject([]byte(`{"settings":{"default_rotations":["dhw"]}}`), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Settings.DefaultRotations) != 1 || p.Settings.DefaultRotations[0] != model.RotationDHW {
		t.Errorf("unexpected default rotations %v", p.Settings.DefaultRotations)
	}
	if p.Name != "Untitled" {
		t.Errorf("expected default name, got %q", p.Name)
	}
	if p.Bins == nil || p.Items == nil {
		t.Error("expected empty, non-nil slices")
	}
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadProject(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("items:\n  - name: A\n    rotations: [nope]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil {
		t.Error("expected error for an unknown rotation")
	}
}
