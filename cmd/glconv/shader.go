package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/gogpu/glcompat/shader"
)

func stageCommand() cli.Command {
	return cli.Command{
		Name:      "stage",
		Usage:     "print the pipeline stage of shader files",
		ArgsUsage: "<file>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("stage: no files")
			}
			for _, name := range c.Args() {
				s, err := shader.StageForFile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%s: %s\n", name, s)
			}
			return nil
		},
	}
}

func compileCommand() cli.Command {
	return cli.Command{
		Name:      "compile",
		Usage:     "compile WGSL shader files to SPIR-V",
		ArgsUsage: "<file.vsh|file.fsh>...",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "out-dir, o", Usage: "write <name>.spv files into this directory"},
		},
		Action: runCompile,
	}
}

func runCompile(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("compile: no files")
	}
	outDir := c.String("out-dir")
	loader := shader.NewLoader()

	for _, name := range c.Args() {
		src, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		m, err := loader.Compile(filepath.Base(name), string(src))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: %s, %d words\n", name, m.Stage, len(m.SPIRV))

		if outDir == "" {
			continue
		}
		spv := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))+spvSuffix(m))
		if err := os.WriteFile(spv, spirvBytes(m.SPIRV), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// spvSuffix keeps vertex and fragment outputs of one program apart.
func spvSuffix(m *shader.Module) string {
	return "." + strings.TrimPrefix(filepath.Ext(m.Name), ".") + ".spv"
}

func spirvBytes(words []uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}
