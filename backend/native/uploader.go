// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native uploads prepared pixel buffers to HAL textures and reports
// the platform depth format to the format translator.
package native

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glcompat"
)

// Uploader creates textures from glcompat uploads.
// It is safe for concurrent use as far as the underlying queue is.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
}

// NewUploader creates an uploader for a HAL device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{device: device, queue: queue}, nil
}

// halProvider is implemented by device providers that expose HAL handles
// directly.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewUploaderFromProvider extracts HAL handles from a provider.
//
// Providers exposing HalDevice/HalQueue are preferred. Otherwise a
// gpucontext.DeviceProvider whose Device and Queue are HAL types is accepted.
func NewUploaderFromProvider(provider any) (*Uploader, error) {
	var dev, q any
	switch p := provider.(type) {
	case halProvider:
		dev, q = p.HalDevice(), p.HalQueue()
	case gpucontext.DeviceProvider:
		dev, q = p.Device(), p.Queue()
	default:
		return nil, ErrNoHALProvider
	}

	device, ok := dev.(hal.Device)
	if !ok {
		return nil, fmt.Errorf("%w: device is %T", ErrNoHALProvider, dev)
	}
	queue, ok := q.(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("%w: queue is %T", ErrNoHALProvider, q)
	}
	return NewUploader(device, queue)
}

// Upload creates a width x height texture in u's format and writes u.Data
// into it.
//
// Color uploads must carry exactly width*height pixels. Depth uploads create
// an empty render-attachment texture; their data must be empty.
func (up *Uploader) Upload(width, height uint32, u *glcompat.Upload) (*Texture, error) {
	if u == nil {
		return nil, ErrNilUpload
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	tf, ok := u.TextureFormat()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTextureFormat, u.Format)
	}

	bpp := uint64(u.BytesPerPixel())
	depth := u.Format.IsDepth()
	if depth {
		if len(u.Data) != 0 {
			return nil, fmt.Errorf("%w: %d bytes for depth format %s", ErrSizeMismatch, len(u.Data), u.Format)
		}
	} else if want := uint64(width) * uint64(height) * bpp; uint64(len(u.Data)) != want {
		return nil, fmt.Errorf("%w: %d bytes, want %d for %dx%d %s",
			ErrSizeMismatch, len(u.Data), want, width, height, u.Format)
	}

	raw, err := up.device.CreateTexture(textureDescriptor(width, height, tf, depth))
	if err != nil {
		return nil, fmt.Errorf("native: create texture: %w", err)
	}
	tex := &Texture{
		raw:       raw,
		device:    up.device,
		format:    u.Format,
		texFormat: tf,
		width:     width,
		height:    height,
	}

	if !depth {
		if err := up.write(tex, u.Data, uint32(bpp)); err != nil {
			tex.Destroy()
			return nil, err
		}
	}

	glcompat.Logger().Debug("native: texture uploaded",
		"format", u.Format.String(),
		"width", width,
		"height", height,
		"converted", u.Converted)
	return tex, nil
}

// Write replaces the contents of a color texture. data must hold exactly
// width*height pixels of the texture's format.
func (up *Uploader) Write(tex *Texture, data []byte) error {
	if tex == nil {
		return ErrNilTexture
	}
	l, ok := tex.Format().Layout()
	if !ok {
		return fmt.Errorf("%w: %s is not a color format", ErrNoTextureFormat, tex.Format())
	}
	bpp := uint32(l.BytesPerPixel())
	if want := uint64(tex.width) * uint64(tex.height) * uint64(bpp); uint64(len(data)) != want {
		return fmt.Errorf("%w: %d bytes, want %d", ErrSizeMismatch, len(data), want)
	}
	return up.write(tex, data, bpp)
}

func (up *Uploader) write(tex *Texture, data []byte, bpp uint32) error {
	raw := tex.Raw()
	if raw == nil {
		return ErrTextureDestroyed
	}
	err := up.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  raw,
			MipLevel: 0,
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  tex.width * bpp,
			RowsPerImage: tex.height,
		},
		&hal.Extent3D{Width: tex.width, Height: tex.height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("native: write texture: %w", err)
	}
	return nil
}

// textureDescriptor returns the descriptor for a single-level 2D texture.
func textureDescriptor(width, height uint32, tf gputypes.TextureFormat, depth bool) *hal.TextureDescriptor {
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	label := "glcompat-upload"
	if depth {
		usage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment
		label = "glcompat-depth"
	}
	return &hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        tf,
		Usage:         usage,
	}
}
