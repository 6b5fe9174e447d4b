package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
	return nil
}

func (c *Config) applyEnv() error {
	bools := []struct {
		name string
		dst  *bool
	}{
		{"LRCEMBED_SKIP_EXISTING", &c.Embed.SkipExisting},
		{"LRCEMBED_DELETE_SIDECAR", &c.Embed.DeleteSidecar},
		{"LRCEMBED_VERIFY", &c.Embed.Verify},
		{"LRCEMBED_PRESERVE_MOD_TIME", &c.Embed.PreserveModTime},
		{"LRCEMBED_RECURSIVE", &c.Embed.Recursive},
		{"LRCEMBED_PROGRESS", &c.Output.Progress},
	}
	for _, b := range bools {
		value, ok := os.LookupEnv(b.name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = parsed
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"LRCEMBED_LOG_LEVEL", &c.Logging.Level},
		{"LRCEMBED_LOG_FORMAT", &c.Logging.Format},
		{"LRCEMBED_LOG_FILE", &c.Logging.File},
		{"LRCEMBED_BACKUP_SUFFIX", &c.Embed.BackupSuffix},
		{"LRCEMBED_COLOR", &c.Output.Color},
	}
	for _, s := range strs {
		if value, ok := os.LookupEnv(s.name); ok {
			*s.dst = strings.TrimSpace(value)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}

	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
