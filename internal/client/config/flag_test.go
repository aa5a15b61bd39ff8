package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://shop:9090/api", "-t", "10", "-s", "/tmp/shop.db", "-l", "json", "-d"},
			expected: &Config{
				APIBaseURL:     "http://shop:9090/api",
				RequestTimeout: 10 * time.Second,
				StoragePath:    "/tmp/shop.db",
				LogFormat:      "json",
				Debug:          true,
			},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"-c", "x.json", "-t", "3", "-v"},
			expected: &Config{RequestTimeout: 3 * time.Second},
		},
		{
			name:     "timeout untouched without -t",
			args:     []string{"-a", "http://other/api"},
			expected: &Config{APIBaseURL: "http://other/api"},
		},
		{name: "non numeric timeout", args: []string{"-t", "abc"}, wantErr: true},
		{name: "zero timeout", args: []string{"-t", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
