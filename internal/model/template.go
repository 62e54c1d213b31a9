package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate is a reusable packing job: bins, items and settings.
type ProjectTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Bins        []BinSpec    `json:"bins"`
	Items       []ItemSpec   `json:"items"`
	Settings    PackSettings `json:"settings"`
}

// NewProjectTemplate creates a new template from the given job data.
func NewProjectTemplate(name, description string, bins []BinSpec, items []ItemSpec, settings PackSettings) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Bins:        copyBins(bins),
		Items:       copyItems(items),
		Settings:    settings,
	}
}

// ToProject creates a new Project from this template.
// Bins and items get fresh IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	bins := make([]BinSpec, len(t.Bins))
	for i, b := range t.Bins {
		bins[i] = NewBinSpec(b.Name, b.Width, b.Height, b.Depth, b.Quantity)
	}

	items := make([]ItemSpec, len(t.Items))
	for i, it := range t.Items {
		cp := it
		cp.ID = uuid.New().String()[:8]
		cp.Rotations = append([]RotationType(nil), it.Rotations...)
		items[i] = cp
	}

	return Project{
		Name:     projectName,
		Bins:     bins,
		Items:    items,
		Settings: t.Settings,
	}
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyBins(bins []BinSpec) []BinSpec {
	if bins == nil {
		return []BinSpec{}
	}
	cp := make([]BinSpec, len(bins))
	copy(cp, bins)
	return cp
}

func copyItems(items []ItemSpec) []ItemSpec {
	if items == nil {
		return []ItemSpec{}
	}
	cp := make([]ItemSpec, len(items))
	copy(cp, items)
	return cp
}
