package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// normalizeName upper-cases s, maps '-' and ' ' to '_' and strips a leading
// GL_ or VK_FORMAT_ prefix so "gl_rgba", "rgba" and "GL_RGBA" compare equal.
func normalizeName(s string) string {
	s = upper.String(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	s = strings.TrimPrefix(s, "GL_")
	s = strings.TrimPrefix(s, "VK_FORMAT_")
	return s
}

// ParseExternalFormat parses a legacy format name such as "RGBA",
// "gl_bgra" or "depth24-stencil8".
func ParseExternalFormat(name string) (ExternalFormat, error) {
	n := normalizeName(name)
	for f := ExternalUndefined + 1; f < externalFormatCount; f++ {
		if externalNames[f] == n {
			return f, nil
		}
	}
	return ExternalUndefined, fmt.Errorf("%w: unknown format name %q", ErrUnsupportedFormat, name)
}

// ParseComponentType parses a legacy component type name such as
// "UNSIGNED_BYTE" or "unsigned-int-8-8-8-8-rev".
func ParseComponentType(name string) (ComponentType, error) {
	n := normalizeName(name)
	for c := ComponentUndefined + 1; c < componentTypeCount; c++ {
		if componentNames[c] == n {
			return c, nil
		}
	}
	return ComponentUndefined, fmt.Errorf("%w: unknown component type %q", ErrUnsupportedFormat, name)
}

// ParseTargetFormat parses a target format name such as "R8G8B8A8_UNORM"
// or "vk_format_d32_sfloat".
func ParseTargetFormat(name string) (TargetFormat, error) {
	n := normalizeName(name)
	for f := TargetUndefined + 1; f < targetFormatCount; f++ {
		if targetTable[f].name == n {
			return f, nil
		}
	}
	return TargetUndefined, fmt.Errorf("%w: unknown target format %q", ErrUnsupportedFormat, name)
}
