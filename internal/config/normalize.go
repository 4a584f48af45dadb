package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("TAGCLOUD_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() {
	c.Render.Preconnect = compactPreconnect(c.Render.Preconnect)
	c.Render.Stylesheets = compactStrings(c.Render.Stylesheets)
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("TAGCLOUD_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv("TAGCLOUD_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// compactPreconnect trims origins and drops blanks and repeated origins.
func compactPreconnect(values []Preconnect) []Preconnect {
	out := make([]Preconnect, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value.Origin = strings.TrimSpace(value.Origin)
		if value.Origin == "" {
			continue
		}
		if _, exists := seen[value.Origin]; exists {
			continue
		}
		seen[value.Origin] = struct{}{}
		out = append(out, value)
	}
	return out
}

// compactStrings trims entries and drops blanks and duplicates, keeping order.
func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
