package rendertype

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/glcompat/internal/logging"
)

// Remap errors.
var (
	// ErrNotConfigured is returned by Remap before the first Configure.
	ErrNotConfigured = errors.New("rendertype: remap table not configured")

	// ErrUnknownCategory is returned for categories outside the closed set.
	ErrUnknownCategory = errors.New("rendertype: unknown category")

	// ErrUnknownMode is returned by Configure and ParseMode for unknown modes.
	ErrUnknownMode = errors.New("rendertype: unknown mode")
)

// Mode selects how categories collapse onto drawn layers.
type Mode uint8

const (
	// ModeSeparateCutout keeps cutout in its own layer: Solid and
	// CutoutMipped draw as CutoutMipped, Cutout stays Cutout, Translucent and
	// Tripwire draw as Translucent. This is the default.
	ModeSeparateCutout Mode = iota

	// ModeUniqueOpaque merges every opaque category into one layer: Solid,
	// Cutout and CutoutMipped draw as CutoutMipped, Translucent and Tripwire
	// draw as Translucent.
	ModeUniqueOpaque

	modeCount
)

// DefaultMode is the mode used when no configuration flag is set.
const DefaultMode = ModeSeparateCutout

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSeparateCutout:
		return "separate-cutout"
	case ModeUniqueOpaque:
		return "unique-opaque"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name as returned by Mode.String.
func ParseMode(name string) (Mode, error) {
	for m := Mode(0); m < modeCount; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ModeFromFlag maps the "unique opaque layer" configuration flag to a mode.
func ModeFromFlag(uniqueOpaqueLayer bool) Mode {
	if uniqueOpaqueLayer {
		return ModeUniqueOpaque
	}
	return ModeSeparateCutout
}

// Outputs returns the categories the mode can produce, in declaration order.
func (m Mode) Outputs() []Category {
	switch m {
	case ModeUniqueOpaque:
		return []Category{CutoutMipped, Translucent}
	case ModeSeparateCutout:
		return []Category{Cutout, CutoutMipped, Translucent}
	default:
		return nil
	}
}

// Table is an immutable Category to Category mapping.
type Table struct {
	mode Mode
	to   [categoryCount]Category
}

// NewTable builds the table for a mode.
func NewTable(m Mode) (*Table, error) {
	t := &Table{mode: m}
	switch m {
	case ModeUniqueOpaque:
		t.to = [categoryCount]Category{
			Solid:        CutoutMipped,
			Cutout:       CutoutMipped,
			CutoutMipped: CutoutMipped,
			Translucent:  Translucent,
			Tripwire:     Translucent,
		}
	case ModeSeparateCutout:
		t.to = [categoryCount]Category{
			Solid:        CutoutMipped,
			Cutout:       Cutout,
			CutoutMipped: CutoutMipped,
			Translucent:  Translucent,
			Tripwire:     Translucent,
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
	return t, nil
}

// Mode returns the mode the table was built for.
func (t *Table) Mode() Mode { return t.mode }

// Lookup maps c through the table.
func (t *Table) Lookup(c Category) (Category, error) {
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return t.to[c], nil
}

// Remapper holds the current table. The zero Remapper is unconfigured.
//
// Configure may be called concurrently with Remap. Writers are expected to
// be rare (configuration changes); readers never block.
type Remapper struct {
	table atomic.Pointer[Table]
}

// Configure builds the table for m and publishes it atomically.
func (r *Remapper) Configure(m Mode) error {
	t, err := NewTable(m)
	if err != nil {
		return err
	}
	r.table.Store(t)
	logging.Logger().Info("rendertype: remap table published", "mode", m.String())
	return nil
}

// Remap maps c through the current table.
func (r *Remapper) Remap(c Category) (Category, error) {
	t := r.table.Load()
	if t == nil {
		return 0, ErrNotConfigured
	}
	return t.Lookup(c)
}

// Current returns the published table, or nil before the first Configure.
func (r *Remapper) Current() *Table {
	return r.table.Load()
}

// process-wide remapper used by the package-level functions.
var defaultRemapper Remapper

// Configure rebuilds the process-wide table for m.
func Configure(m Mode) error {
	return defaultRemapper.Configure(m)
}

// Remap maps c through the process-wide table.
// It fails with ErrNotConfigured until Configure has been called.
func Remap(c Category) (Category, error) {
	return defaultRemapper.Remap(c)
}

// Current returns the process-wide table, or nil before the first Configure.
func Current() *Table {
	return defaultRemapper.Current()
}
