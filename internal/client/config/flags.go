package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags populates cfg from the short flags -a, -t, -s, -l and -d.
// Other arguments are filtered out first so unrelated flags do not fail the parse.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-l", "-d"})

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local storage database")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text or json)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -t only applies when given; otherwise a file value such as "1500ms" stays
	var timeoutSet bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			timeoutSet = true
		}
	})
	if !timeoutSet {
		return nil
	}
	if *timeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %d", *timeout)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
