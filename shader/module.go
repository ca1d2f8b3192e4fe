package shader

import (
	"errors"

	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNilDevice is returned by CreateModule without a device.
	ErrNilDevice = errors.New("shader: nil device")

	// ErrNilModule is returned by CreateModule without a module.
	ErrNilModule = errors.New("shader: nil module")
)

// CreateModule creates a HAL shader module from m. The caller owns the
// result and releases it with device.DestroyShaderModule.
func CreateModule(device hal.Device, m *Module) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if m == nil {
		return nil, ErrNilModule
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: m.Name,
		Source: hal.ShaderSource{
			SPIRV: m.SPIRV,
		},
	})
}
