// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config. The format is
//     picked from the file extension (.yaml/.yml, anything else is JSON).
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API, including the /api path
//	-t int      per-request timeout (seconds)
//	-s string   path of the local storage database
//	-l string   log format: text or json
//	-d          enable debug logging
//
// # File schema
//
// Durations accept strings like "5s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "5s",
//	  "storage_path": "storefront.db",
//	  "log_format": "text",
//	  "debug": false
//	}
//
// The same keys work in YAML. A -t flag replaces the file's timeout only
// when it is given.
package config
