package ucilog

import (
	"fmt"
	"time"
)

// Event represents a UCI capture event for one chip.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// LogID identifies the logger instance that recorded the event (UUID).
	LogID string `cbor:"2,keyasint"`

	// ChipID is the chip the traffic belongs to.
	ChipID string `cbor:"3,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Packet      *PacketEvent      `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates a packet received from the chip.
	DirectionIn Direction = 0
	// DirectionOut indicates a packet sent to the chip.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryPacket indicates a UCI packet.
	CategoryPacket Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPacket:
		return "PACKET"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// PacketKind is the UCI message type of a packet.
// Values match the MT field of the UCI packet header.
type PacketKind uint8

const (
	PacketKindData         PacketKind = 0
	PacketKindCommand      PacketKind = 1
	PacketKindResponse     PacketKind = 2
	PacketKindNotification PacketKind = 3
)

// String returns the packet kind name.
func (k PacketKind) String() string {
	switch k {
	case PacketKindData:
		return "DATA"
	case PacketKindCommand:
		return "COMMAND"
	case PacketKindResponse:
		return "RESPONSE"
	case PacketKindNotification:
		return "NOTIFICATION"
	default:
		return "UNKNOWN"
	}
}

// PacketEvent captures one UCI packet.
type PacketEvent struct {
	// Kind is the UCI message type.
	Kind PacketKind `cbor:"1,keyasint"`

	// GID and OID identify the command group and opcode.
	GID uint8 `cbor:"2,keyasint"`
	OID uint8 `cbor:"3,keyasint"`

	// Size is the original payload size in bytes.
	Size int `cbor:"4,keyasint"`

	// Payload is the packet payload (stripped in filtered mode).
	Payload []byte `cbor:"5,keyasint,omitempty"`

	// Truncated indicates if Payload was stripped or shortened.
	Truncated bool `cbor:"6,keyasint,omitempty"`
}

// Label returns a short "KIND gid/oid" description of the packet.
func (p *PacketEvent) Label() string {
	return fmt.Sprintf("%s %02X/%02X", p.Kind, p.GID, p.OID)
}

// StateChangeEvent captures chip and session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// SessionID is set for session state changes.
	SessionID uint32 `cbor:"2,keyasint,omitempty"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"3,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"4,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"5,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityDevice indicates a chip state change.
	StateEntityDevice StateEntity = 0
	// StateEntitySession indicates a ranging session state change.
	StateEntitySession StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityDevice:
		return "DEVICE"
	case StateEntitySession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures protocol errors.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Code is the UCI status code (if applicable).
	Code *int `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
