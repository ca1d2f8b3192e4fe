package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/glcompat"
	"github.com/gogpu/glcompat/format"
	"github.com/gogpu/glcompat/pixel"
)

var errUnknownEncoder = errors.New("unknown output extension")

func convertCommand() cli.Command {
	return cli.Command{
		Name:      "convert",
		Usage:     "repack a raw pixel dump and write it as an image",
		ArgsUsage: "<input.raw> <output.{png,bmp,tif,tiff}>",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "format, f", Value: "RGBA", Usage: "legacy format tag of the input"},
			cli.StringFlag{Name: "type, t", Value: "UNSIGNED_BYTE", Usage: "legacy component type of the input"},
			cli.IntFlag{Name: "width, W", Usage: "image width in pixels"},
			cli.IntFlag{Name: "height, H", Usage: "image height in pixels"},
			cli.BoolFlag{Name: "swap-bgra", Usage: "reorder BGRA input to RGBA"},
			cli.BoolFlag{Name: "no-expand", Usage: "keep 3-channel input as is"},
		},
		Action: runConvert,
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("convert: want 2 arguments, got %d", c.NArg())
	}
	in, out := c.Args().Get(0), c.Args().Get(1)

	ext, err := format.ParseExternalFormat(c.String("format"))
	if err != nil {
		return err
	}
	typ, err := format.ParseComponentType(c.String("type"))
	if err != nil {
		return err
	}
	w, h := c.Int("width"), c.Int("height")
	if w <= 0 || h <= 0 {
		return fmt.Errorf("convert: --width and --height must be positive, got %dx%d", w, h)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	u, err := glcompat.Prepare(nil, data, ext, typ,
		glcompat.WithExpandRGB(!c.Bool("no-expand")),
		glcompat.WithSwapBGRA(c.Bool("swap-bgra")))
	if err != nil {
		return err
	}

	img, err := toImage(u, w, h)
	if err != nil {
		return err
	}
	if err := writeImage(out, img); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %s -> %s (%dx%d, converted=%t)\n",
		out, u.Source, u.Format, w, h, u.Converted)
	return nil
}

// toImage wraps upload data in an image for encoding.
func toImage(u *glcompat.Upload, w, h int) (image.Image, error) {
	l, ok := u.Format.Layout()
	if !ok {
		return nil, fmt.Errorf("%s has no pixel layout", u.Format)
	}
	n, ok := l.PixelCount(len(u.Data))
	if !ok || n != w*h {
		return nil, fmt.Errorf("%d bytes of %s do not make a %dx%d image", len(u.Data), l, w, h)
	}

	rect := image.Rect(0, 0, w, h)
	switch l {
	case pixel.LayoutRGBA8:
		return &image.NRGBA{Pix: u.Data, Stride: 4 * w, Rect: rect}, nil
	case pixel.LayoutR8:
		return &image.Gray{Pix: u.Data, Stride: w, Rect: rect}, nil
	case pixel.LayoutBGRA8, pixel.LayoutRGB8, pixel.LayoutBGR8:
		rgba, err := pixel.Convert(u.Data, l, pixel.LayoutRGBA8)
		if err != nil {
			return nil, err
		}
		return &image.NRGBA{Pix: rgba, Stride: 4 * w, Rect: rect}, nil
	case pixel.LayoutRG8:
		img := image.NewNRGBA(rect)
		for i := 0; i < n; i++ {
			img.Pix[4*i] = u.Data[2*i]
			img.Pix[4*i+1] = u.Data[2*i+1]
			img.Pix[4*i+3] = 0xFF
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%s cannot be encoded", l)
	}
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownEncoder, path)
	}
}

func writeImage(path string, img image.Image) (err error) {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f, img)
}
