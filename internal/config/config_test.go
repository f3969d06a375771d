package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Point UEMCP_CONFIG at a path that does not exist so a developer's real
// ~/.uemcp/config.toml cannot leak into the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("UEMCP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
}

func TestLoadDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.UnrealHost != "127.0.0.1" {
		t.Errorf("expected loopback host, got %q", cfg.UnrealHost)
	}
	if cfg.UnrealPort != 55557 {
		t.Errorf("expected default port 55557, got %d", cfg.UnrealPort)
	}
	if cfg.CommandTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.CommandTimeout)
	}
	if !cfg.HistoryEnabled {
		t.Error("expected history enabled by default")
	}
	if cfg.Addr() != "127.0.0.1:55557" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
unreal_host = "192.168.1.10"
unreal_port = 55600
timeout_seconds = 120
log_level = "debug"
history_enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UEMCP_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.UnrealHost != "192.168.1.10" {
		t.Errorf("expected host from file, got %q", cfg.UnrealHost)
	}
	if cfg.UnrealPort != 55600 {
		t.Errorf("expected port from file, got %d", cfg.UnrealPort)
	}
	if cfg.CommandTimeout != 2*time.Minute {
		t.Errorf("expected 2m timeout, got %v", cfg.CommandTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %q", cfg.LogLevel)
	}
	if cfg.HistoryEnabled {
		t.Error("expected history disabled by file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`unreal_port = 55600`), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UEMCP_CONFIG", path)
	t.Setenv("UEMCP_UNREAL_PORT", "55700")
	t.Setenv("UEMCP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.UnrealPort != 55700 {
		t.Errorf("expected env port to win, got %d", cfg.UnrealPort)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected env log level, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	isolateConfig(t)
	t.Setenv("UEMCP_UNREAL_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoadClampsTimeout(t *testing.T) {
	isolateConfig(t)
	t.Setenv("UEMCP_TIMEOUT_SECONDS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CommandTimeout != 30*time.Second {
		t.Errorf("expected default timeout for non-positive value, got %v", cfg.CommandTimeout)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`unreal_port = "not a number`), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UEMCP_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnsureDirectories(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	t.Setenv("UEMCP_LOG_FILE", filepath.Join(dir, "logs", "uemcp.log"))
	t.Setenv("UEMCP_HISTORY_DB", filepath.Join(dir, "state", "history.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories failed: %v", err)
	}

	for _, p := range []string{filepath.Join(dir, "logs"), filepath.Join(dir, "state")} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("expected directory %s: %v", p, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", p)
		}
	}
}
