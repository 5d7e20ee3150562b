package ucilog

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown uci logger mode")

// Mode controls how much UCI traffic a ChipLogger records.
type Mode uint32

const (
	ModeDisabled Mode = iota
	ModeFiltered
	ModeUnfiltered
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeFiltered:
		return "filtered"
	case ModeUnfiltered:
		return "unfiltered"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name, ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled":
		return ModeDisabled, nil
	case "filtered":
		return ModeFiltered, nil
	case "unfiltered":
		return ModeUnfiltered, nil
	}
	return ModeDisabled, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsVendorGID reports whether gid is in the UCI vendor-reserved range.
func IsVendorGID(gid uint8) bool {
	return gid >= 0x09 && gid <= 0x0F
}

// ChipLogger records the UCI traffic of one chip. It stamps every event
// with its chip id, log id and timestamp and applies the current Mode
// before forwarding to the sink.
type ChipLogger struct {
	chipID string
	logID  string
	sink   Logger
	closer io.Closer
	mode   atomic.Uint32
	now    func() time.Time
}

// NewChipLogger wraps sink for chipID. A nil sink discards events.
func NewChipLogger(chipID string, sink Logger, mode Mode) *ChipLogger {
	if sink == nil {
		sink = NoopLogger{}
	}
	c := &ChipLogger{
		chipID: chipID,
		logID:  uuid.NewString(),
		sink:   sink,
		now:    time.Now,
	}
	if cl, ok := sink.(io.Closer); ok {
		c.closer = cl
	}
	c.mode.Store(uint32(mode))
	return c
}

// ChipID returns the chip this logger records.
func (c *ChipLogger) ChipID() string { return c.chipID }

// LogID returns the UUID identifying this logger instance.
func (c *ChipLogger) LogID() string { return c.logID }

// Mode returns the current mode.
func (c *ChipLogger) Mode() Mode { return Mode(c.mode.Load()) }

// SetMode switches the mode. It takes effect for the next event.
func (c *ChipLogger) SetMode(m Mode) { c.mode.Store(uint32(m)) }

// Log stamps, filters and forwards an event.
func (c *ChipLogger) Log(event Event) {
	mode := c.Mode()
	if mode == ModeDisabled {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = c.now()
	}
	event.LogID = c.logID
	event.ChipID = c.chipID

	if mode == ModeFiltered && event.Packet != nil && filtered(event.Packet) {
		p := *event.Packet
		p.Truncated = p.Truncated || len(p.Payload) > 0
		p.Payload = nil
		event.Packet = &p
	}
	c.sink.Log(event)
}

func filtered(p *PacketEvent) bool {
	return p.Kind == PacketKindData || IsVendorGID(p.GID)
}

// Packet records one UCI packet.
func (c *ChipLogger) Packet(dir Direction, kind PacketKind, gid, oid uint8, payload []byte) {
	c.Log(Event{
		Direction: dir,
		Category:  CategoryPacket,
		Packet: &PacketEvent{
			Kind:    kind,
			GID:     gid,
			OID:     oid,
			Size:    len(payload),
			Payload: payload,
		},
	})
}

// State records a device or session state change.
func (c *ChipLogger) State(entity StateEntity, sessionID uint32, oldState, newState, reason string) {
	c.Log(Event{
		Direction: DirectionIn,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:    entity,
			SessionID: sessionID,
			OldState:  oldState,
			NewState:  newState,
			Reason:    reason,
		},
	})
}

// Error records a failed exchange. code may be nil.
func (c *ChipLogger) Error(context string, code *int, err error) {
	c.Log(Event{
		Direction: DirectionIn,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Message: err.Error(),
			Code:    code,
			Context: context,
		},
	})
}

// Close closes the sink if it holds a file.
func (c *ChipLogger) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

var _ Logger = (*ChipLogger)(nil)
