package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/CratePack/internal/model"
)

// DefaultCatalogPath returns the default file path for the preset catalog.
// This is located at ~/.cratepack/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
func SaveCatalog(path string, c model.Catalog) error {
	return writeJSON(path, c)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, c); saveErr != nil {
				return c, saveErr
			}
			return c, nil
		}
		return model.Catalog{}, err
	}
	var c model.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadOrCreateCatalog loads the catalog from the default path, creating it
// with default presets on first use.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path := DefaultCatalogPath()
	c, err := LoadCatalog(path)
	return c, path, err
}

// ExportCatalog writes the catalog to a user-specified JSON file.
func ExportCatalog(path string, c model.Catalog) error {
	return SaveCatalog(path, c)
}

// ImportCatalog merges the presets stored in path into existing.
// Presets whose IDs are already present are skipped. The number of added
// presets is returned.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, 0, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, 0, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	added := existing.Merge(imported)
	return existing, added, nil
}
