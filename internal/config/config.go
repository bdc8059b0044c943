package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for the residents sheet.
const (
	DefaultSheetID    = "1VHwKv2r_jDoGLT6nWFqCI8k-ZGmKNEJqDkkbo1wVygQ"
	DefaultSheetTitle = "residents"
	DefaultSheetRange = "A1:Z1000"
)

// Global configuration structure.
type Global struct {
	SheetID    string `mapstructure:"sheet_id" yaml:"sheet_id"`
	SheetTitle string `mapstructure:"sheet_title" yaml:"sheet_title"`
	SheetRange string `mapstructure:"sheet_range" yaml:"sheet_range"`
	BaseURL    string `mapstructure:"base_url" yaml:"base_url"`

	// HTTP timeout for the sheet fetch; 0 waits for as long as the request takes.
	HTTPTimeoutSec int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`

	// HostPage is an optional HTML file with #tables and #attributes mount points.
	HostPage   string `mapstructure:"host_page" yaml:"host_page"`
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`
}

// Source returns the sheet coordinates.
func (c *Global) Source() sheets.Source {
	return sheets.Source{SheetID: c.SheetID, SheetTitle: c.SheetTitle, Range: c.SheetRange}
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c *Global) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".seatboard"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.seatboard/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SEATBOARD")
	v.AutomaticEnv()

	v.SetDefault("sheet_id", DefaultSheetID)
	v.SetDefault("sheet_title", DefaultSheetTitle)
	v.SetDefault("sheet_range", DefaultSheetRange)
	v.SetDefault("base_url", sheets.DefaultBaseURL)
	v.SetDefault("http_timeout_sec", 0)
	v.SetDefault("host_page", "")
	v.SetDefault("listen_addr", ":8080")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
