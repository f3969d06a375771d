package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds everything the bridge and MCP server need at startup. Values
// are resolved in three layers: built-in defaults, then ~/.uemcp/config.toml
// if present, then UEMCP_* environment variables.
type Config struct {
	// Editor listener address. The plugin listens on loopback only; the
	// security boundary is "trusted local caller".
	UnrealHost string `toml:"unreal_host"`
	UnrealPort int    `toml:"unreal_port"`

	// Per-command deadline covering connect, send and receive. Editor
	// operations (asset loads, screenshots) routinely take many seconds.
	CommandTimeout time.Duration `toml:"-"`
	TimeoutSeconds int           `toml:"timeout_seconds"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Optional directory of snippet overrides. Files here shadow the
	// snippets embedded in the binary and are hot-reloaded on change.
	SnippetsDir string `toml:"snippets_dir"`

	HistoryEnabled bool   `toml:"history_enabled"`
	HistoryDBPath  string `toml:"history_db_path"`
}

const (
	defaultPort    = 55557
	defaultTimeout = 30
)

func defaults() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".uemcp")

	return &Config{
		UnrealHost:     "127.0.0.1",
		UnrealPort:     defaultPort,
		TimeoutSeconds: defaultTimeout,
		LogLevel:       "info",
		LogFile:        filepath.Join(baseDir, "uemcp.log"),
		SnippetsDir:    "",
		HistoryEnabled: true,
		HistoryDBPath:  filepath.Join(baseDir, "history.db"),
	}
}

// Load resolves the effective configuration.
func Load() (*Config, error) {
	cfg := defaults()

	path := configPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeout
	}
	cfg.CommandTimeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	if cfg.UnrealPort <= 0 || cfg.UnrealPort > 65535 {
		return nil, fmt.Errorf("invalid unreal_port: %d", cfg.UnrealPort)
	}

	return cfg, nil
}

func configPath() string {
	if p := os.Getenv("UEMCP_CONFIG"); p != "" {
		return p
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".uemcp", "config.toml")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("UEMCP_UNREAL_HOST"); v != "" {
		cfg.UnrealHost = v
	}
	if v := os.Getenv("UEMCP_UNREAL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.UnrealPort = port
		}
	}
	if v := os.Getenv("UEMCP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("UEMCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("UEMCP_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("UEMCP_SNIPPETS_DIR"); v != "" {
		cfg.SnippetsDir = v
	}
	if v := os.Getenv("UEMCP_HISTORY_DB"); v != "" {
		cfg.HistoryDBPath = v
	}
	if v := os.Getenv("UEMCP_HISTORY_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.HistoryEnabled = enabled
		}
	}
}

// Addr returns the editor listener address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.UnrealHost, c.UnrealPort)
}

// EnsureDirectories creates the directories config values point into.
func (c *Config) EnsureDirectories() error {
	for _, p := range []string{c.LogFile, c.HistoryDBPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return err
		}
	}
	return nil
}
