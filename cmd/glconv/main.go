// Command glconv inspects and converts legacy texture data.
//
// Usage:
//
//	glconv convert --format RGB --width 64 --height 64 in.raw out.png
//	glconv resolve RGBA UNSIGNED_INT_8_8_8_8_REV
//	glconv resolve --gl 0x1907 0x1401
//	glconv remap --unique-opaque
//	glconv stage terrain.vsh terrain.fsh
//	glconv compile position.vsh
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/gogpu/glcompat"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		slog.Error("glconv failed", "error", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "glconv"
	app.Usage = "translate legacy GL texture formats and pixel data"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level: debug, info, warn, error (empty disables logging)",
			EnvVar: "GLCOMPAT_LOG_LEVEL",
		},
	}
	app.Before = func(c *cli.Context) error {
		return setupLogger(stderr, c.GlobalString("log-level"))
	}
	app.Commands = []cli.Command{
		convertCommand(),
		resolveCommand(),
		remapCommand(),
		stageCommand(),
		compileCommand(),
	}
	return app
}

// setupLogger installs a text logger on the library at the given level.
// An empty level keeps the silent default.
func setupLogger(w io.Writer, level string) error {
	if level == "" {
		glcompat.SetLogger(nil)
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	glcompat.SetLogger(logger)
	slog.SetDefault(logger)
	return nil
}
