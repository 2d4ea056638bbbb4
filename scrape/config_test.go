package scrape

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "https://npb.jp" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.DataDir != "data" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Logger == nil {
		t.Error("logger must default")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npb.yaml")
	src := `base_url: http://localhost:9000
data_dir: /var/lib/npb
timeout: 10s
browser:
  remote: ws://chrome:9222
  timeout: 90s
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.DataDir != "/var/lib/npb" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Browser.Remote != "ws://chrome:9222" {
		t.Errorf("browser remote = %q", cfg.Browser.Remote)
	}
	if cfg.Browser.Timeout != 90*time.Second {
		t.Errorf("browser timeout = %v", cfg.Browser.Timeout)
	}
	// Unset fields still get defaults.
	if cfg.PlayersURL != "https://npb.jp/bis/players/" {
		t.Errorf("players url = %q", cfg.PlayersURL)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
