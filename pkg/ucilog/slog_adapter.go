package ucilog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("log_id", event.LogID),
		slog.String("chip", event.ChipID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Packet != nil:
		attrs = append(attrs,
			slog.String("kind", event.Packet.Kind.String()),
			slog.Uint64("gid", uint64(event.Packet.GID)),
			slog.Uint64("oid", uint64(event.Packet.OID)),
			slog.Int("size", event.Packet.Size),
			slog.Bool("truncated", event.Packet.Truncated),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Entity == StateEntitySession {
			attrs = append(attrs, slog.Uint64("session_id", uint64(event.StateChange.SessionID)))
		}
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "uci", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
