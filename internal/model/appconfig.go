package model

// maxRecentProjects bounds AppConfig.RecentProjects.
const maxRecentProjects = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultRotations []RotationType `json:"default_rotations"`
	DefaultVerify    bool           `json:"default_verify"`

	// Application preferences
	LogLevel       string   `json:"log_level"`  // "debug", "info", "warn", "error"
	LogFormat      string   `json:"log_format"` // "text" or "json"
	OutputDir      string   `json:"output_dir"` // where reports go when no path is given
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with defaults
// matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultRotations: defaults.DefaultRotations,
		DefaultVerify:    defaults.Verify,
		LogLevel:         "warn",
		LogFormat:        "text",
		OutputDir:        ".",
		RecentProjects:   []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	if len(c.DefaultRotations) > 0 {
		s.DefaultRotations = append([]RotationType(nil), c.DefaultRotations...)
	}
	s.Verify = s.Verify || c.DefaultVerify
}

// AddRecentProject moves path to the front of RecentProjects.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
