package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/simonhull/lrcembed/internal/types"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateEmbed()
}

func (c *Config) validateEmbed() error {
	suffix := c.Embed.BackupSuffix
	if suffix == "" {
		return nil
	}
	if strings.ContainsAny(suffix, `/\`) {
		return fmt.Errorf("embed.backup_suffix must not contain path separators (got %q)", suffix)
	}
	// Backups must never be picked up as audio files or sidecars.
	name := "backup" + suffix
	if types.FormatFromPath(name) != types.FormatUnknown || strings.EqualFold(filepath.Ext(name), types.SidecarExt) {
		return fmt.Errorf("embed.backup_suffix must not end in an audio or sidecar extension (got %q)", suffix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return errors.New("logging.max_size_mb, max_backups and max_age_days must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always or never (got %q)", c.Output.Color)
	}
}
