package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"cropstudio/domain/export"
)

// Config holds runtime configuration for export behavior and the app.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Export settings
	FolderMode   string `json:"folder_mode"`
	Subfolder    string `json:"subfolder"`
	CustomFolder string `json:"custom_folder"`
	Pattern      string `json:"pattern"`
	Overwrite    bool   `json:"overwrite"`
	JPEGQuality  int    `json:"jpeg_quality"`

	// Session persistence
	LastFile string `json:"last_file"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		FolderMode:   string(export.FolderSubfolder),
		Subfolder:    export.DefaultSubfolder,
		CustomFolder: "",
		Pattern:      export.DefaultPattern,
		Overwrite:    false,
		JPEGQuality:  90,
		LastFile:     "",
	}
}

// DefaultPath returns the standard per-user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "cropstudio", "config.json")
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch export.FolderMode(c.FolderMode) {
	case export.FolderSubfolder, export.FolderSame, export.FolderCustom:
	default:
		c.FolderMode = string(export.FolderSubfolder)
	}
	if c.Subfolder == "" {
		c.Subfolder = export.DefaultSubfolder
	}
	if !export.ValidPattern(c.Pattern) {
		c.Pattern = export.DefaultPattern
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}
	return nil
}

// Policy returns the export policy snapshot described by the current
// settings. Presenters call this per save so settings edits take effect
// immediately.
func (c *Config) Policy() export.Policy {
	return export.Policy{
		FolderMode:   export.FolderMode(c.FolderMode),
		Subfolder:    c.Subfolder,
		CustomFolder: c.CustomFolder,
		Pattern:      c.Pattern,
		Overwrite:    c.Overwrite,
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
