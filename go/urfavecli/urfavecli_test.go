package urfavecli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
	"go.skia.org/perfsmoke/go/sklog/memlogging"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
)

func TestLogFlags(t *testing.T) {
	logs, restore := memlogging.Install()
	defer restore()

	app := &cli.App{
		Name: "testapp",
		Commands: []*cli.Command{
			{
				Name: "my-command",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "boolNotPassedIn"},
					&cli.BoolFlag{Name: "bool"},
					&cli.DurationFlag{Name: "duration"},
					&cli.IntFlag{Name: "int"},
					&cli.StringFlag{Name: "string"},
				},
				Action: func(c *cli.Context) error {
					LogFlags(c)
					return nil
				},
			},
		},
	}

	// Don't print anything on stderr/stdout.
	oldHelpPrinter := cli.HelpPrinter
	cli.HelpPrinter = func(_ io.Writer, _ string, _ interface{}) {}
	defer func() {
		cli.HelpPrinter = oldHelpPrinter
	}()

	require.NoError(t, app.Run([]string{
		"testapp",
		"my-command",
		"--bool",
		"--duration=24s",
		"--int=65",
		"--string=string",
	}))

	var flagLines []string
	for _, m := range logs.Messages(sklogimpl.Info) {
		if strings.HasPrefix(m, "Flags:") {
			flagLines = append(flagLines, m)
		}
	}
	require.Subset(t, flagLines, []string{
		"Flags: --boolNotPassedIn=false",
		"Flags: --bool=true",
		"Flags: --duration=24s",
		"Flags: --int=65",
		"Flags: --string=string",
	})
}
