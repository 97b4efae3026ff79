// Package config describes a perfsmoke run as read from a JSON5 file.
package config

import (
	"time"

	"go.skia.org/perfsmoke/go/config"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
)

// Backends that can run a benchmark.
const (
	// BackendCDP drives Chrome in-process over the DevTools protocol.
	BackendCDP = "cdp"
	// BackendTelemetry shells out to tools/perf/run_benchmark.
	BackendTelemetry = "telemetry"
)

// Defaults for unset fields.
const (
	DefaultBrowser           = "release"
	DefaultNavigationTimeout = 60 * time.Second
	DefaultCommandTimeout    = 30 * time.Minute
)

// RunConfig is the configuration of a perfsmoke run.
type RunConfig struct {
	// PlatformTags describe the machine, e.g. ["linux", "has tabs"]. They are
	// matched against benchmark annotations.
	PlatformTags []string `json:"platform_tags"`

	// Browser is the Telemetry browser type.
	Browser string `json:"browser" optional:"true"`

	// BrowserExecutable is the Chrome binary for the cdp backend. Empty means
	// the one found on PATH.
	BrowserExecutable string `json:"browser_executable" optional:"true"`

	Headless bool `json:"headless"`

	ExtraBrowserArgs []string `json:"extra_browser_args" optional:"true"`

	// Backend is BackendCDP or BackendTelemetry.
	Backend string `json:"backend"`

	// ChromiumSrcDir is required by the telemetry backend.
	ChromiumSrcDir string `json:"chromium_src_dir" optional:"true"`

	// ExcludedModules are added to the built-in smoke exclusions.
	ExcludedModules []string `json:"excluded_modules" optional:"true"`

	// ReservedPrefixes are added to the built-in reserved name prefixes.
	ReservedPrefixes []string `json:"reserved_prefixes" optional:"true"`

	// TemplateEnabled and TemplateDisabled are the annotations every smoke
	// test starts with. Absent means no annotation; [] means every platform.
	TemplateEnabled  []string `json:"template_enabled" optional:"true"`
	TemplateDisabled []string `json:"template_disabled" optional:"true"`

	OutputFormat string `json:"output_format" optional:"true"`

	NavigationTimeout config.Duration `json:"navigation_timeout" optional:"true"`
	CommandTimeout    config.Duration `json:"command_timeout" optional:"true"`

	// PromPort serves metrics if set, e.g. ":20000".
	PromPort string `json:"prom_port" optional:"true"`
}

// Default returns the configuration used when no file is given.
func Default() *RunConfig {
	rv := &RunConfig{
		Headless: true,
		Backend:  BackendCDP,
	}
	rv.applyDefaults()
	return rv
}

// Load reads and validates the config at path.
func Load(path string) (*RunConfig, error) {
	rv := &RunConfig{Backend: BackendCDP}
	if err := config.ParseConfigFile(path, rv); err != nil {
		return nil, skerr.Wrap(err)
	}
	if err := config.CheckRequired(rv); err != nil {
		return nil, skerr.Wrapf(err, "invalid config %s", path)
	}
	rv.applyDefaults()
	if err := rv.Validate(); err != nil {
		return nil, skerr.Wrapf(err, "invalid config %s", path)
	}
	return rv, nil
}

func (c *RunConfig) applyDefaults() {
	if c.Browser == "" {
		c.Browser = DefaultBrowser
	}
	if c.OutputFormat == "" {
		c.OutputFormat = measurement.OutputNone
	}
	if c.NavigationTimeout.Duration == 0 {
		c.NavigationTimeout.Duration = DefaultNavigationTimeout
	}
	if c.CommandTimeout.Duration == 0 {
		c.CommandTimeout.Duration = DefaultCommandTimeout
	}
}

// Validate returns an error if the config can't be run.
func (c *RunConfig) Validate() error {
	switch c.Backend {
	case BackendCDP:
	case BackendTelemetry:
		if c.ChromiumSrcDir == "" {
			return skerr.Fmt("backend %q requires chromium_src_dir", c.Backend)
		}
	default:
		return skerr.Fmt("unknown backend %q; want %q or %q", c.Backend, BackendCDP, BackendTelemetry)
	}
	if !measurement.ValidOutputFormat(c.OutputFormat) {
		return skerr.Fmt("unknown output_format %q; want one of %v", c.OutputFormat, measurement.OutputFormats)
	}
	if c.NavigationTimeout.Duration < 0 || c.CommandTimeout.Duration < 0 {
		return skerr.Fmt("timeouts must not be negative")
	}
	return nil
}

// Platform returns the platform tags as a set.
func (c *RunConfig) Platform() util.StringSet {
	return util.NewStringSet(c.PlatformTags)
}

// Template returns a template attribute from its config value. A nil slice
// means the attribute is absent.
func Template(tags []string) util.StringSet {
	if tags == nil {
		return nil
	}
	return util.NewStringSet(tags)
}
