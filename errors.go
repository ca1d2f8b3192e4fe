package glcompat

import (
	"github.com/gogpu/glcompat/format"
	"github.com/gogpu/glcompat/pixel"
	"github.com/gogpu/glcompat/rendertype"
)

// Error taxonomy shared by the sub-packages. Data-path errors wrap one of
// these, so callers can classify failures with errors.Is without importing
// each sub-package.
var (
	// ErrInvalidLayout reports a buffer whose length does not fit its layout.
	ErrInvalidLayout = pixel.ErrInvalidLayout

	// ErrOutOfMemory reports an output buffer that could not be allocated.
	ErrOutOfMemory = pixel.ErrOutOfMemory

	// ErrUnsupportedFormat reports an undocumented format/type combination
	// or a non-invertible reverse lookup.
	ErrUnsupportedFormat = format.ErrUnsupportedFormat

	// ErrNotConfigured reports use of the render-type remap table before it
	// was configured.
	ErrNotConfigured = rendertype.ErrNotConfigured
)
