package config

import (
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Config holds runtime settings for the storefront CLI.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StoragePath    string
	LogFormat      string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 5 * time.Second
	c.StoragePath = "storefront.db"
	c.LogFormat = logging.FormatText
}

// LoadConfig applies defaults, then the optional config file, then flags
// found in args (usually os.Args[1:]). Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
