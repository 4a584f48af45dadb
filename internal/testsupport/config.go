package testsupport

import (
	"path/filepath"
	"testing"

	"tagcloud/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output directory is a fresh temp dir.
// It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDefaultCount sets generate.default_count on the test config.
func WithDefaultCount(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generate.DefaultCount = n
	}
}

// WithStylesheets replaces the render stylesheets and drops preconnect hints.
func WithStylesheets(sheets ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.Preconnect = nil
		b.cfg.Render.Stylesheets = sheets
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
