// perfsmoke lists, smoke tests and runs the declared perf benchmarks.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/urfavecli"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	_ "go.skia.org/perfsmoke/telemetry/go/benchmarks" // Registers the benchmarks.
)

// flag names
const (
	configFlagName           = "config"
	platformFlagName         = "platform"
	backendFlagName          = "backend"
	browserFlagName          = "browser"
	browserExecFlagName      = "browser-executable"
	headfulFlagName          = "headful"
	chromiumSrcFlagName      = "chromium-src"
	promPortFlagName         = "prom-port"
	extraBrowserArgsFlagName = "extra-browser-args"
	rootFlagName             = "root"
	allFlagName              = "all"
	pagesetRepeatFlagName    = "pageset-repeat"
	pageRepeatFlagName       = "page-repeat"
	storyLabelFilterFlagName = "story-label-filter"
	outputFormatFlagName     = "output-format"
)

var globalFlags = []cli.Flag{
	&cli.PathFlag{
		Name:  configFlagName,
		Usage: "JSON5 file describing the run. Flags override its values.",
	},
	&cli.StringSliceFlag{
		Name:  platformFlagName,
		Usage: "Platform tags of this machine, e.g. --platform=linux --platform='has tabs'.",
	},
	&cli.StringFlag{
		Name:  backendFlagName,
		Usage: "cdp to drive Chrome directly, telemetry to shell out to run_benchmark.",
	},
	&cli.StringFlag{
		Name:  browserFlagName,
		Usage: "Telemetry browser type.",
	},
	&cli.PathFlag{
		Name:  browserExecFlagName,
		Usage: "Chrome binary for the cdp backend.",
	},
	&cli.BoolFlag{
		Name:  headfulFlagName,
		Usage: "Show the browser window.",
	},
	&cli.PathFlag{
		Name:  chromiumSrcFlagName,
		Usage: "Chromium checkout for the telemetry backend.",
	},
	&cli.StringFlag{
		Name:  promPortFlagName,
		Usage: "Serve Prometheus metrics on this address, e.g. ':20000'.",
	},
	&cli.StringFlag{
		Name:  extraBrowserArgsFlagName,
		Usage: "Extra browser command line, shell quoted, e.g. \"--no-sandbox --lang='en US'\". Replaces extra_browser_args.",
	},
}

var rootFlag = &cli.StringFlag{
	Name:  rootFlagName,
	Value: "benchmarks",
	Usage: "Only consider benchmarks in modules under this root.",
}

func main() {
	app := &cli.App{
		Name:        "perfsmoke",
		Usage:       "perfsmoke [global flags] <command>",
		Description: "perfsmoke runs the first page of one benchmark from every benchmark module to catch breakages quickly.",
		Flags:       globalFlags,
		Commands: []*cli.Command{
			{
				Name:        "list",
				Description: "list prints the discovered benchmarks and whether they are smoke tested.",
				Flags: []cli.Flag{
					rootFlag,
					&cli.BoolFlag{
						Name:  allFlagName,
						Usage: "List every benchmark instead of the last one of each module.",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return list(os.Stdout, benchmark.Default(), c.String(rootFlagName), c.Bool(allFlagName), cfg)
				},
			},
			{
				Name:        "smoke",
				Description: "smoke builds the smoke suite and runs it one test at a time.",
				Flags:       []cli.Flag{rootFlag},
				Action: func(c *cli.Context) error {
					urfavecli.LogFlags(c)
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return smokeTest(c.Context, os.Stdout, benchmark.Default(), c.String(rootFlagName), cfg)
				},
			},
			{
				Name:        "run",
				Description: "run runs a single benchmark at full scope.",
				ArgsUsage:   "<benchmark>",
				Flags:       append(runFlags(), benchmarkArgFlags(benchmark.Default())...),
				Action: func(c *cli.Context) error {
					urfavecli.LogFlags(c)
					if c.NArg() != 1 {
						return cli.Exit("run takes exactly one benchmark name", 2)
					}
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					status, err := runOne(c.Context, os.Stdout, benchmark.Default(), c.Args().First(), cfg, runOptionsFromFlags(c))
					if err != nil {
						return err
					}
					if status != benchmark.StatusSuccess {
						return cli.Exit(fmt.Sprintf("%s exited with status %d", c.Args().First(), status), status)
					}
					return nil
				},
			},
		},
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		sklog.Error(err)
		sklog.Flush()
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: pagesetRepeatFlagName, Usage: "Times to run the whole page set."},
		&cli.IntFlag{Name: pageRepeatFlagName, Usage: "Times to run each page per page set repeat."},
		&cli.StringFlag{Name: storyLabelFilterFlagName, Usage: "Only run pages with this label."},
		&cli.StringFlag{Name: outputFormatFlagName, Usage: "none, json or table."},
	}
}

// benchmarkArgFlags exposes every benchmark-declared arg as a string flag.
func benchmarkArgFlags(reg *benchmark.Registry) []cli.Flag {
	var rv []cli.Flag
	for _, arg := range declaredArgs(reg) {
		rv = append(rv, &cli.StringFlag{Name: arg.Name, Usage: arg.Usage, Value: arg.Default})
	}
	return rv
}

func runOptionsFromFlags(c *cli.Context) *benchmark.Options {
	opts := &benchmark.Options{
		PagesetRepeat:    c.Int(pagesetRepeatFlagName),
		PageRepeat:       c.Int(pageRepeatFlagName),
		StoryLabelFilter: c.String(storyLabelFilterFlagName),
		OutputFormat:     c.String(outputFormatFlagName),
		Extra:            map[string]string{},
	}
	for _, arg := range declaredArgs(benchmark.Default()) {
		if c.IsSet(arg.Name) {
			opts.Extra[arg.Name] = c.String(arg.Name)
		}
	}
	return opts
}
