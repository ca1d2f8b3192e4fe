// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glcompat/format"
)

// Texture is a HAL texture created by an Uploader.
//
// Texture is safe for concurrent reads. Destroy releases the HAL texture and
// may be called more than once.
type Texture struct {
	mu        sync.RWMutex
	raw       hal.Texture
	device    hal.Device
	format    format.TargetFormat
	texFormat gputypes.TextureFormat
	width     uint32
	height    uint32
	destroyed bool
}

// Format returns the target format the texture was created with.
func (t *Texture) Format() format.TargetFormat { return t.format }

// TextureFormat returns the gputypes format of the texture.
func (t *Texture) TextureFormat() gputypes.TextureFormat { return t.texFormat }

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Raw returns the HAL texture, or nil after Destroy.
func (t *Texture) Raw() hal.Texture {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.raw
}

// IsDestroyed reports whether Destroy has been called.
func (t *Texture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// Destroy releases the HAL texture.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	if t.raw != nil && t.device != nil {
		t.device.DestroyTexture(t.raw)
	}
	t.raw = nil
}
