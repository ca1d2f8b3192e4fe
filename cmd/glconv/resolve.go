package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/gogpu/glcompat/format"
	"github.com/gogpu/glcompat/format/glenum"
)

func resolveCommand() cli.Command {
	return cli.Command{
		Name:      "resolve",
		Usage:     "translate a legacy (format, type) pair to a target format",
		ArgsUsage: "<format> [type]",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "gl", Usage: "arguments are numeric GL enumerants (0x1908)"},
			cli.BoolFlag{Name: "internal", Usage: "resolve a single internal format"},
			cli.StringFlag{Name: "depth", Value: "D24_UNORM_S8_UINT", Usage: "platform depth format"},
		},
		Action: runResolve,
	}
}

func runResolve(c *cli.Context) error {
	depth, err := format.ParseTargetFormat(c.String("depth"))
	if err != nil {
		return err
	}
	t := format.NewTranslator(format.FixedDepth(depth))

	internal := c.Bool("internal")
	want := 2
	if internal {
		want = 1
	}
	if c.NArg() != want {
		return fmt.Errorf("resolve: want %d arguments, got %d", want, c.NArg())
	}

	var target format.TargetFormat
	if c.Bool("gl") {
		target, err = resolveGL(t, c.Args(), internal)
	} else {
		target, err = resolveNames(t, c.Args(), internal)
	}
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "target:  %s\n", target)
	if tf, ok := target.TextureFormat(); ok {
		fmt.Fprintf(out, "texture: %s\n", tf)
	}
	if ext, err := format.Reverse(target); err == nil {
		fmt.Fprintf(out, "reverse: %s\n", ext)
	}
	return nil
}

func resolveNames(t *format.Translator, args cli.Args, internal bool) (format.TargetFormat, error) {
	ext, err := format.ParseExternalFormat(args.Get(0))
	if err != nil {
		return format.TargetUndefined, err
	}
	if internal {
		return t.ResolveInternal(ext)
	}
	typ, err := format.ParseComponentType(args.Get(1))
	if err != nil {
		return format.TargetUndefined, err
	}
	return t.Resolve(ext, typ)
}

func resolveGL(t *format.Translator, args cli.Args, internal bool) (format.TargetFormat, error) {
	f, err := parseEnum(args.Get(0))
	if err != nil {
		return format.TargetUndefined, err
	}
	if internal {
		return glenum.ResolveInternal(t, f)
	}
	typ, err := parseEnum(args.Get(1))
	if err != nil {
		return format.TargetUndefined, err
	}
	return glenum.Resolve(t, f, typ)
}

func parseEnum(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid GL enumerant %q: %w", s, err)
	}
	return uint32(v), nil
}
