package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Aggregator configures the RSS-to-news.json pipeline. The three keyword
// groups implement the editorial filter: an entry must hit at least one
// gender word AND at least one startup or business word.
type Aggregator struct {
	Feeds            []string `yaml:"feeds"`
	KeywordsGender   []string `yaml:"keywords_gender"`
	KeywordsStartup  []string `yaml:"keywords_startup"`
	KeywordsBusiness []string `yaml:"keywords_business"`
	ExportLimit      int      `yaml:"export_limit,omitempty"`
	Output           string   `yaml:"output,omitempty"`
}

type Config struct {
	Endpoint   string     `yaml:"endpoint"`
	PageSize   int        `yaml:"page_size,omitempty"`
	Aggregator Aggregator `yaml:"aggregator"`
}

// GetPageSize returns the card page size, defaulting to 30.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return 30
	}
	return c.PageSize
}

// GetExportLimit returns the aggregator output cap, defaulting to 200.
func (c *Config) GetExportLimit() int {
	if c.Aggregator.ExportLimit <= 0 {
		return 200
	}
	return c.Aggregator.ExportLimit
}

// GetOutput returns the aggregator output path, defaulting to ./news.json.
func (c *Config) GetOutput() string {
	if c.Aggregator.Output == "" {
		return "news.json"
	}
	return c.Aggregator.Output
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "fffeed", "config.yaml")
}

func PrefsPath() string {
	return filepath.Join(xdg.StateHome, "fffeed", "prefs.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if err := validateURL("endpoint", cfg.Endpoint); err != nil {
		return err
	}
	for _, f := range cfg.Aggregator.Feeds {
		if err := validateURL("feed", f); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(what, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s %q: invalid url: %w", what, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s %q: url scheme must be http or https, got %q", what, raw, u.Scheme)
	}
	return nil
}
