package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.Session),
		slog.String("kind", event.Kind.String()),
	}

	if event.Kind != KindChange || event.ClusterID != 0 {
		attrs = append(attrs,
			slog.Uint64("endpoint", uint64(event.EndpointID)),
			slog.Uint64("cluster", uint64(event.ClusterID)),
		)
	}
	if event.Kind == KindRead || event.Kind == KindReport || event.Kind == KindError {
		attrs = append(attrs, slog.Uint64("attribute", uint64(event.AttributeID)))
	}
	if event.Kind == KindReport || event.Kind == KindChange {
		attrs = append(attrs, slog.Uint64("data_version", uint64(event.DataVersion)))
	}
	if event.Size > 0 {
		attrs = append(attrs, slog.Int("size", event.Size))
	}
	if event.Status != "" {
		attrs = append(attrs, slog.String("status", event.Status))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
