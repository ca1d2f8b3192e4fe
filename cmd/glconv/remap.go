package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gogpu/glcompat/rendertype"
)

func remapCommand() cli.Command {
	return cli.Command{
		Name:  "remap",
		Usage: "print the render-type remap table",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:   "unique-opaque",
				Usage:  "draw every opaque category in one layer",
				EnvVar: "GLCOMPAT_UNIQUE_OPAQUE",
			},
			cli.StringFlag{
				Name:  "mode",
				Usage: "explicit mode (separate-cutout, unique-opaque); overrides --unique-opaque",
			},
		},
		Action: runRemap,
	}
}

func runRemap(c *cli.Context) error {
	mode := rendertype.ModeFromFlag(c.Bool("unique-opaque"))
	if name := c.String("mode"); name != "" {
		m, err := rendertype.ParseMode(name)
		if err != nil {
			return err
		}
		mode = m
	}
	if err := rendertype.Configure(mode); err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "mode: %s\n", mode)
	for _, cat := range rendertype.Categories() {
		to, err := rendertype.Remap(cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-13s -> %s\n", cat, to)
	}
	return nil
}
