package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema -o schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:vcaggregate.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Directory DirectoryConfig `yaml:"directory" json:"directory" jsonschema:"description=Firm directory configuration"`

	Bookmarks struct {
		StorageKey string `yaml:"storage_key" json:"storage_key" jsonschema:"default=vc-aggregate-bookmarks,description=Key the bookmark list is stored under"`
	} `yaml:"bookmarks" json:"bookmarks" jsonschema:"description=Bookmark storage configuration"`

	Submission struct {
		NoClipboard bool `yaml:"no_clipboard" json:"no_clipboard" jsonschema:"default=false,description=Do not copy submitted firms to the system clipboard"`
	} `yaml:"submission" json:"submission" jsonschema:"description=Firm submission configuration"`
}

// DirectoryConfig holds catalog and default filter settings
type DirectoryConfig struct {
	Catalog        string   `yaml:"catalog" json:"catalog" jsonschema:"description=Path to YAML catalog file (embedded sample catalog if empty)"`
	IntroEmail     string   `yaml:"intro_email" json:"intro_email" jsonschema:"default=intros@vcaggregate.xyz,description=Mailbox for intro requests"`
	DefaultRegions []string `yaml:"default_regions" json:"default_regions" jsonschema:"description=Regions preselected on first visit"`
	DefaultStages  []string `yaml:"default_stages" json:"default_stages" jsonschema:"description=Stages preselected on first visit"`
	DefaultSectors []string `yaml:"default_sectors" json:"default_sectors" jsonschema:"description=Sectors preselected on first visit"`
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:vcaggregate.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// directory, an explicit empty default_regions list ([]) turns the India preset off
	if cfg.Directory.IntroEmail == "" {
		cfg.Directory.IntroEmail = "intros@vcaggregate.xyz"
	}
	if cfg.Directory.DefaultRegions == nil {
		cfg.Directory.DefaultRegions = []string{"India"}
	}

	// bookmarks
	if cfg.Bookmarks.StorageKey == "" {
		cfg.Bookmarks.StorageKey = "vc-aggregate-bookmarks"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}
	if strings.TrimSpace(cfg.Bookmarks.StorageKey) == "" {
		return fmt.Errorf("bookmarks.storage_key can't be blank")
	}
	if !strings.Contains(cfg.Directory.IntroEmail, "@") {
		return fmt.Errorf("directory.intro_email %q is not an email address", cfg.Directory.IntroEmail)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDirectoryConfig returns directory configuration
func (c *Config) GetDirectoryConfig() DirectoryConfig {
	return c.Directory
}
