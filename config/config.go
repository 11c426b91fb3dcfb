package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "signal-dashboard.yaml"

const (
	defaultListenAddr      = ":5000"
	defaultDatabasePath    = "signals.db"
	defaultDataFile        = "data.csv"
	defaultImportBatchSize = 100
	defaultGinMode         = "release"
)

type Config struct {
	ListenAddr      string `yaml:"listen_addr" toml:"listen_addr"`
	DatabasePath    string `yaml:"database_path" toml:"database_path"`
	DataFile        string `yaml:"data_file" toml:"data_file"`
	APIBaseURL      string `yaml:"api_base_url" toml:"api_base_url"`
	ImportBatchSize int    `yaml:"import_batch_size" toml:"import_batch_size"`
	GinMode         string `yaml:"gin_mode" toml:"gin_mode"`
}

// Load reads the config file at path, applies environment overrides and
// fills defaults. A missing file is not an error. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.ImportBatchSize < 0 {
		return nil, fmt.Errorf("import_batch_size must not be negative, got %d", cfg.ImportBatchSize)
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SIGNAL_DASHBOARD_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SIGNAL_DASHBOARD_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SIGNAL_DASHBOARD_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("SIGNAL_DASHBOARD_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SIGNAL_DASHBOARD_IMPORT_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIGNAL_DASHBOARD_IMPORT_BATCH_SIZE: %w", err)
		}
		cfg.ImportBatchSize = n
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}
	if c.DataFile == "" {
		c.DataFile = defaultDataFile
	}
	if c.ImportBatchSize == 0 {
		c.ImportBatchSize = defaultImportBatchSize
	}
	if c.GinMode == "" {
		c.GinMode = defaultGinMode
	}
}

// APIURL returns the base URL the dashboard uses to reach the signal API.
// Without an explicit api_base_url it points back at this server.
func (c *Config) APIURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}
	host, port, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return "http://127.0.0.1" + defaultListenAddr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
