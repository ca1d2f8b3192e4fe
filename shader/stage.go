// Package shader maps legacy shader files to pipeline stages and compiles
// WGSL sources into SPIR-V modules for the HAL backend.
//
// Legacy shader programs are shipped as pairs of files whose extension
// names the stage: ".vsh" for vertex and ".fsh" for fragment shaders.
// The Loader compiles each source once and keeps the result in a bounded
// LRU cache.
package shader

import (
	"fmt"
	"path"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcompat/format"
)

// ErrUnknownExtension is returned for file extensions that do not name a
// shader stage. It wraps format.ErrUnsupportedFormat.
var ErrUnknownExtension = fmt.Errorf("%w: unknown shader extension", format.ErrUnsupportedFormat)

var stageByExt = map[string]gputypes.ShaderStage{
	".vsh": gputypes.ShaderStageVertex,
	".fsh": gputypes.ShaderStageFragment,
}

// StageForExtension returns the stage for a shader file extension,
// including the leading dot. The match is exact.
func StageForExtension(ext string) (gputypes.ShaderStage, error) {
	if s, ok := stageByExt[ext]; ok {
		return s, nil
	}
	return gputypes.ShaderStageNone, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// StageForFile returns the stage for a shader file name.
func StageForFile(name string) (gputypes.ShaderStage, error) {
	ext := path.Ext(name)
	if ext == "" {
		return gputypes.ShaderStageNone, fmt.Errorf("%w: %q has no extension", ErrUnknownExtension, name)
	}
	return StageForExtension(ext)
}
