// Package urfavecli has helpers for programs built on github.com/urfave/cli/v2.
package urfavecli

import (
	cli "github.com/urfave/cli/v2"
	"go.skia.org/perfsmoke/go/sklog"
)

// LogFlags logs the value of every flag of the running command and of the
// commands above it, innermost first.
func LogFlags(c *cli.Context) {
	for _, ctx := range c.Lineage() {
		var flags []cli.Flag
		if ctx.Command != nil {
			flags = ctx.Command.Flags
		} else if ctx.App != nil {
			flags = ctx.App.Flags
		}
		for _, f := range flags {
			name := f.Names()[0]
			sklog.Infof("Flags: --%s=%v", name, ctx.Value(name))
		}
	}
}
