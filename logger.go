package glcompat

import (
	"log/slog"

	"github.com/gogpu/glcompat/internal/logging"
)

// SetLogger configures the logger for glcompat and its sub-packages.
// By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-upload conversions (formats, byte counts)
//   - [slog.LevelInfo]: configuration changes (remap mode, depth format)
//   - [slog.LevelWarn]: recoverable backend problems
//
// Example:
//
//	glcompat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
// Sub-packages (rendertype, shader, backend/native) call this to share one
// logger configuration.
func Logger() *slog.Logger {
	return logging.Logger()
}
