package config

import "time"

// Config is the top-level site configuration, corresponding to portfolio.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Privacy PrivacyConfig `yaml:"privacy" koanf:"privacy"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	Mode            string        `yaml:"mode" koanf:"mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// LogConfig holds logger settings. File enables a rotated log file next to
// the console output.
type LogConfig struct {
	Level      string `yaml:"level" koanf:"level"`
	Format     string `yaml:"format" koanf:"format"`
	File       string `yaml:"file" koanf:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" koanf:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" koanf:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" koanf:"max_age_days"`
	Compress   bool   `yaml:"compress" koanf:"compress"`
}

// ContentConfig points at an optional YAML override of the page content.
type ContentConfig struct {
	File string `yaml:"file" koanf:"file"`
}

// SiteConfig holds static export settings.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	BaseURL   string `yaml:"base_url" koanf:"base_url"`
}

// PrivacyConfig holds the salt used to hash client IPs in request logs.
// An empty salt is replaced by a random one at start-up.
type PrivacyConfig struct {
	Salt string `yaml:"salt" koanf:"salt"`
}

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     FormatConsole,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Site: SiteConfig{
			OutputDir: "dist",
		},
	}
}
