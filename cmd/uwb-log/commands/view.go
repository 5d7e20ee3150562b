// Package commands implements the uwb-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	ChipID    string
	Direction *ucilog.Direction
	Category  *ucilog.Category
	Kind      *ucilog.PacketKind
}

func (f ViewFilter) filter() ucilog.Filter {
	return ucilog.Filter{
		ChipID:    f.ChipID,
		Direction: f.Direction,
		Category:  f.Category,
		Kind:      f.Kind,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event ucilog.Event) {
	// Header line: timestamp [chip] DIRECTION Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	dir := event.Direction.String()

	var typeLabel string
	switch {
	case event.Packet != nil:
		typeLabel = event.Packet.Label()
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [chip:%s] %-3s %s\n", ts, event.ChipID, dir, typeLabel)

	switch {
	case event.Packet != nil:
		formatPacketDetails(w, event.Packet)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// formatPacketDetails writes packet-specific details.
func formatPacketDetails(w io.Writer, p *ucilog.PacketEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", p.Size)
	if ucilog.IsVendorGID(p.GID) {
		fmt.Fprintln(w, "  Group: vendor")
	}
	if p.Kind == ucilog.PacketKindResponse && len(p.Payload) > 0 {
		fmt.Fprintf(w, "  Status: %s\n", uci.StatusCode(p.Payload[0]))
	}
	switch {
	case len(p.Payload) > 0:
		fmt.Fprintf(w, "  Payload: %s", hex.EncodeToString(p.Payload))
		if p.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	case p.Truncated:
		fmt.Fprintln(w, "  Payload: (filtered)")
	}
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *ucilog.StateChangeEvent) {
	if sc.Entity == ucilog.StateEntitySession {
		fmt.Fprintf(w, "  Entity: %s %d\n", sc.Entity, sc.SessionID)
	} else {
		fmt.Fprintf(w, "  Entity: %s\n", sc.Entity)
	}
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *ucilog.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (ucilog.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return ucilog.DirectionIn, nil
	case "out":
		return ucilog.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (ucilog.Category, error) {
	switch strings.ToLower(s) {
	case "packet":
		return ucilog.CategoryPacket, nil
	case "state":
		return ucilog.CategoryState, nil
	case "error":
		return ucilog.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be packet, state, or error)", s)
	}
}

// ParseKindFlag parses a packet kind string from command-line flag (case-insensitive).
func ParseKindFlag(s string) (ucilog.PacketKind, error) {
	switch strings.ToLower(s) {
	case "command", "cmd":
		return ucilog.PacketKindCommand, nil
	case "response", "rsp":
		return ucilog.PacketKindResponse, nil
	case "notification", "ntf":
		return ucilog.PacketKindNotification, nil
	case "data":
		return ucilog.PacketKindData, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be command, response, notification, or data)", s)
	}
}

// ParseGIDFlag parses a group id, decimal or 0x-prefixed hex.
func ParseGIDFlag(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v > 0x0F {
		return 0, fmt.Errorf("invalid gid: %s (must be 0..0x0F)", s)
	}
	return uint8(v), nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := ucilog.NewFilteredReader(path, filter.filter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
