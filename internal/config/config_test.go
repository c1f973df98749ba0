package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Endpoint == "" {
		t.Error("expected endpoint to be set")
	}
	if len(cfg.Aggregator.Feeds) == 0 {
		t.Error("expected at least one default feed")
	}
	if len(cfg.Aggregator.KeywordsGender) == 0 || len(cfg.Aggregator.KeywordsStartup) == 0 {
		t.Error("expected default keyword groups")
	}
}

func TestGetPageSize(t *testing.T) {
	cfg := &Config{PageSize: 10}
	if got := cfg.GetPageSize(); got != 10 {
		t.Errorf("GetPageSize = %d, want 10", got)
	}
	cfg.PageSize = 0
	if got := cfg.GetPageSize(); got != 30 {
		t.Errorf("GetPageSize default = %d, want 30", got)
	}
}

func TestGetExportLimit(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetExportLimit(); got != 200 {
		t.Errorf("GetExportLimit default = %d, want 200", got)
	}
	cfg.Aggregator.ExportLimit = 50
	if got := cfg.GetExportLimit(); got != 50 {
		t.Errorf("GetExportLimit = %d, want 50", got)
	}
}

func TestGetOutput(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetOutput(); got != "news.json" {
		t.Errorf("GetOutput default = %q", got)
	}
	cfg.Aggregator.Output = "public/news.json"
	if got := cfg.GetOutput(); got != "public/news.json" {
		t.Errorf("GetOutput = %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
endpoint: https://example.com/news.json
page_size: 12
aggregator:
  feeds:
    - https://example.com/rss
  keywords_gender: [kvinde]
  keywords_startup: [startup]
  keywords_business: [kapital]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != "https://example.com/news.json" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.GetPageSize() != 12 {
		t.Errorf("page_size = %d, want 12", cfg.GetPageSize())
	}
	if len(cfg.Aggregator.Feeds) != 1 {
		t.Errorf("feeds = %v", cfg.Aggregator.Feeds)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint == "" {
		t.Error("expected defaults when config file is missing")
	}
	// First run writes the defaults out
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Endpoint: "https://example.com/news.json"}, false},
		{"missing endpoint", Config{}, true},
		{"bad scheme", Config{Endpoint: "ftp://example.com/news.json"}, true},
		{"bad feed", Config{
			Endpoint:   "https://example.com/news.json",
			Aggregator: Aggregator{Feeds: []string{"file:///etc/passwd"}},
		}, true},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validate err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
