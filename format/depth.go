package format

// DepthSource reports the depth format the active backend has chosen.
//
// Implementations must be safe for concurrent use; the translator calls
// DepthFormat on every depth lookup.
type DepthSource interface {
	DepthFormat() TargetFormat
}

// DepthFunc adapts a function to DepthSource.
type DepthFunc func() TargetFormat

// DepthFormat calls f.
func (f DepthFunc) DepthFormat() TargetFormat { return f() }

// FixedDepth is a DepthSource that always reports the same format.
type FixedDepth TargetFormat

// DepthFormat returns d as a TargetFormat.
func (d FixedDepth) DepthFormat() TargetFormat { return TargetFormat(d) }
