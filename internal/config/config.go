package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// StrictBoot aborts startup when migration or seeding fails.
		// With it off the process serves a degraded/empty dataset.
		StrictBoot bool `yaml:"strict_boot"`
		// BaseURL is used for absolute links in robots.txt/sitemap.xml when
		// the request host should not be trusted (behind a proxy).
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`

	Database DatabaseConfig `yaml:"database"`

	Email struct {
		SMTPHost       string `yaml:"smtp_host"`
		SMTPPort       int    `yaml:"smtp_port"`
		SMTPUsername   string `yaml:"smtp_user"`
		SMTPPassword   string `yaml:"smtp_password"`
		FromEmail      string `yaml:"from_email"`
		FromName       string `yaml:"from_name"`
		StudioEmail    string `yaml:"studio_email"` // inbox for booking notifications
		SendTimeoutSec int    `yaml:"send_timeout_sec"`
	} `yaml:"email"`

	Storage struct {
		BasePath string `yaml:"base_path"` // filesystem root for uploads
		BaseURL  string `yaml:"base_url"`  // public prefix, e.g. /images/portfolio
	} `yaml:"storage"`

	Admin struct {
		Token string `yaml:"token"` // bearer token for the admin surface
	} `yaml:"admin"`

	Log struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// DatabaseConfig is the resolved connection target. Driver is either
// "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// ResolveDatabaseConfig collapses the deployment-platform environment
// variants into one connection config. Precedence: DATABASE_URL (postgres
// URL, the Railway/Heroku convention), then DB_DRIVER + DB_DSN, then the
// value from the config file, then a local sqlite file.
func ResolveDatabaseConfig(fileCfg DatabaseConfig, getenv func(string) string) DatabaseConfig {
	if url := getenv("DATABASE_URL"); url != "" {
		return DatabaseConfig{Driver: "postgres", DSN: url}
	}
	if driver := getenv("DB_DRIVER"); driver != "" {
		return DatabaseConfig{Driver: driver, DSN: getenv("DB_DSN")}
	}
	if fileCfg.Driver != "" {
		return fileCfg
	}
	return DatabaseConfig{Driver: "sqlite", DSN: "klodtattoo.db"}
}

// Load reads the yaml config (CONFIG_PATH or config/config.yaml), then
// applies environment overrides and defaults. A missing file is fine as long
// as the environment provides what is needed.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}

	cfg.applyEnv(os.Getenv)
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	c.Database = ResolveDatabaseConfig(c.Database, getenv)

	if v := getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := getenv("SERVER_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := getenv("SITE_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}

	if v := getenv("SMTP_HOST"); v != "" {
		c.Email.SMTPHost = v
	}
	if v := getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Email.SMTPPort = port
		}
	}
	if v := getenv("SMTP_USER"); v != "" {
		c.Email.SMTPUsername = v
	}
	if v := getenv("SMTP_PASSWORD"); v != "" {
		c.Email.SMTPPassword = v
	}
	if v := getenv("EMAIL_FROM"); v != "" {
		c.Email.FromEmail = v
	}
	if v := getenv("STUDIO_EMAIL"); v != "" {
		c.Email.StudioEmail = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Email.SendTimeoutSec == 0 {
		c.Email.SendTimeoutSec = 10
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "KlodTattoo"
	}
	if c.Email.StudioEmail == "" {
		c.Email.StudioEmail = c.Email.FromEmail
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Storage.BaseURL == "" {
		c.Storage.BaseURL = "/images/portfolio"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 50
	}
}
