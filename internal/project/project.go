package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk project encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the encoding from the file extension. Anything that
// is not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// SaveProject writes a project manifest as JSON or YAML depending on the
// file extension.
func SaveProject(path string, p model.Project) error {
	if FormatForPath(path) == FormatJSON {
		return writeJSON(path, p)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project manifest. Missing settings fall back to
// model.DefaultSettings and missing quantities to 1.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("read project: %w", err)
	}
	p, err := DecodeProject(data, FormatForPath(path))
	if err != nil {
		return model.Project{}, fmt.Errorf("parse project %s: %w", path, err)
	}
	return p, nil
}

// DecodeProject parses a manifest in the given format and fills defaults.
func DecodeProject(data []byte, format Format) (model.Project, error) {
	p := model.NewProject()
	p.Settings.DefaultRotations = nil

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return model.Project{}, err
	}

	if len(p.Settings.DefaultRotations) == 0 {
		p.Settings.DefaultRotations = model.AllRotations()
	}
	if p.Bins == nil {
		p.Bins = []model.BinSpec{}
	}
	if p.Items == nil {
		p.Items = []model.ItemSpec{}
	}
	for i := range p.Bins {
		if p.Bins[i].Quantity < 1 {
			p.Bins[i].Quantity = 1
		}
	}
	for i := range p.Items {
		if p.Items[i].Quantity < 1 {
			p.Items[i].Quantity = 1
		}
	}
	return p, nil
}
