// Package rendertype remaps terrain render categories onto the set of
// layers the renderer actually draws.
//
// The mapping is a small total function over a closed category set. It is
// rebuilt wholesale whenever the layer configuration changes and published
// behind an atomic pointer, so concurrent readers always see either the
// previous table or the new one, never a mix.
package rendertype

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a terrain render category.
type Category uint8

const (
	// Solid is fully opaque geometry.
	Solid Category = iota

	// Cutout is alpha-tested geometry without mipmaps.
	Cutout

	// CutoutMipped is alpha-tested geometry with mipmaps.
	CutoutMipped

	// Translucent is alpha-blended geometry.
	Translucent

	// Tripwire is the tripwire layer, blended like translucent geometry.
	Tripwire

	categoryCount
)

var categoryNames = [categoryCount]string{
	Solid:        "solid",
	Cutout:       "cutout",
	CutoutMipped: "cutout_mipped",
	Translucent:  "translucent",
	Tripwire:     "tripwire",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if c >= categoryCount {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// IsValid returns true for members of the closed category set.
func (c Category) IsValid() bool {
	return c < categoryCount
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

var lower = cases.Lower(language.Und)

// ParseCategory parses a category name such as "cutout_mipped". Case is
// ignored and '-' or ' ' may stand in for '_'.
func ParseCategory(name string) (Category, error) {
	n := lower.String(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for c := Category(0); c < categoryCount; c++ {
		if categoryNames[c] == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
