// Package config loads, normalizes, and validates lrcembed configuration.
//
// Files are TOML by default; a ".yaml" or ".yml" extension selects YAML.
// Values from a ".env" file in the working directory and LRCEMBED_*
// environment variables are applied on top of the file.
package config
