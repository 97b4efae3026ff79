package main

import (
	"context"
	"io"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/olekukonko/tablewriter"
	cli "github.com/urfave/cli/v2"
	"go.skia.org/perfsmoke/go/metrics2"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/browser"
	"go.skia.org/perfsmoke/telemetry/go/config"
	"go.skia.org/perfsmoke/telemetry/go/run_benchmark"
	"go.skia.org/perfsmoke/telemetry/go/smoke"
)

// loadConfig reads --config if given and applies the global flags on top.
func loadConfig(c *cli.Context) (*config.RunConfig, error) {
	cfg := config.Default()
	if path := c.Path(configFlagName); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(platformFlagName) {
		cfg.PlatformTags = c.StringSlice(platformFlagName)
	}
	if c.IsSet(backendFlagName) {
		cfg.Backend = c.String(backendFlagName)
	}
	if c.IsSet(browserFlagName) {
		cfg.Browser = c.String(browserFlagName)
	}
	if c.IsSet(browserExecFlagName) {
		cfg.BrowserExecutable = c.Path(browserExecFlagName)
	}
	if c.IsSet(headfulFlagName) {
		cfg.Headless = !c.Bool(headfulFlagName)
	}
	if c.IsSet(chromiumSrcFlagName) {
		cfg.ChromiumSrcDir = c.Path(chromiumSrcFlagName)
	}
	if c.IsSet(promPortFlagName) {
		cfg.PromPort = c.String(promPortFlagName)
	}
	if c.IsSet(extraBrowserArgsFlagName) {
		args, err := shellquote.Split(c.String(extraBrowserArgsFlagName))
		if err != nil {
			return nil, skerr.Wrapf(err, "parsing --%s", extraBrowserArgsFlagName)
		}
		cfg.ExtraBrowserArgs = args
	}
	if err := cfg.Validate(); err != nil {
		return nil, skerr.Wrap(err)
	}
	return cfg, nil
}

// newGenerator returns the smoke generator with cfg's additions. The config's
// template is merged into the default one.
func newGenerator(cfg *config.RunConfig) *smoke.Generator {
	g := smoke.NewGenerator()
	for _, m := range cfg.ExcludedModules {
		g.ExcludedModules[m] = true
	}
	g.ReservedPrefixes = append(g.ReservedPrefixes, cfg.ReservedPrefixes...)
	g.Template = benchmark.MergeAnnotations(g.Template, benchmark.Annotations{
		Enabled:  config.Template(cfg.TemplateEnabled),
		Disabled: config.Template(cfg.TemplateDisabled),
	})
	return g
}

// baseOptions returns the run options every benchmark starts from.
func baseOptions(cfg *config.RunConfig, out io.Writer) *benchmark.Options {
	opts := &benchmark.Options{
		OutputFormat:    cfg.OutputFormat,
		Output:          out,
		Browser:         cfg.Browser,
		Platform:        cfg.Platform(),
		Extra:           map[string]string{},
		NavigateTimeout: cfg.NavigationTimeout.Duration,
		Launcher: &browser.Launcher{
			ExecPath:  cfg.BrowserExecutable,
			Headful:   !cfg.Headless,
			ExtraArgs: cfg.ExtraBrowserArgs,
		},
	}
	if cfg.Backend == config.BackendTelemetry {
		opts.Executor = run_benchmark.New(cfg.ChromiumSrcDir, cfg.CommandTimeout.Duration)
		opts.ExtraBrowserArgs = util.CopyStringSlice(cfg.ExtraBrowserArgs)
	}
	return opts
}

func list(w io.Writer, reg *benchmark.Registry, root string, all bool, cfg *config.RunConfig) error {
	g := newGenerator(cfg)
	platform := cfg.Platform()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Benchmark", "Module", "Enabled", "Disabled", "Smoke"})
	table.SetAutoWrapText(false)
	for _, b := range reg.Discover(root, all) {
		smokeStatus := g.Exclusion(b)
		if smokeStatus == "" {
			smokeStatus = "yes"
			merged := benchmark.MergeAnnotations(g.Template, b.Annotations)
			if reason := merged.SkipReason(platform); reason != "" {
				smokeStatus = "skipped: " + reason
			}
		}
		table.Append([]string{b.Name, b.Module, tagList(b.Annotations.Enabled), tagList(b.Annotations.Disabled), smokeStatus})
	}
	table.Render()
	return nil
}

func tagList(s util.StringSet) string {
	if s == nil {
		return ""
	}
	if len(s) == 0 {
		return "all"
	}
	return strings.Join(s.SortedKeys(), ", ")
}

func smokeTest(ctx context.Context, w io.Writer, reg *benchmark.Registry, root string, cfg *config.RunConfig) error {
	metrics2.InitPrometheus(cfg.PromPort)
	suite := smoke.LoadSuite(reg, root, newGenerator(cfg))
	sklog.Infof("Running %d smoke tests under %q", suite.Len(), root)
	report, err := suite.Run(ctx, baseOptions(cfg, w))
	report.Write(w)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func runOne(ctx context.Context, w io.Writer, reg *benchmark.Registry, name string, cfg *config.RunConfig, flags *benchmark.Options) (int, error) {
	b, ok := reg.Get(name)
	if !ok {
		return 0, skerr.Fmt("unknown benchmark %q", name)
	}
	metrics2.InitPrometheus(cfg.PromPort)
	opts := baseOptions(cfg, w)
	opts.PagesetRepeat = flags.PagesetRepeat
	opts.PageRepeat = flags.PageRepeat
	opts.StoryLabelFilter = flags.StoryLabelFilter
	if flags.OutputFormat != "" {
		opts.OutputFormat = flags.OutputFormat
	}
	for k, v := range flags.Extra {
		opts.Extra[k] = v
	}
	if reason := b.Annotations.SkipReason(opts.Platform); reason != "" {
		sklog.Warningf("%s is %s; running anyway", name, reason)
	}
	return b.Run(ctx, opts), nil
}

// declaredArgs returns every arg declared by a registered benchmark, first
// declaration of a name wins.
func declaredArgs(reg *benchmark.Registry) []benchmark.Arg {
	seen := util.StringSet{}
	var rv []benchmark.Arg
	for _, b := range reg.All() {
		for _, arg := range b.Args {
			if seen[arg.Name] {
				continue
			}
			seen[arg.Name] = true
			rv = append(rv, arg)
		}
	}
	return rv
}
