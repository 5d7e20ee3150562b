package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[ucilog.Category]int
	EventsByDirection map[ucilog.Direction]int
	PacketsByKind     map[ucilog.PacketKind]int
	Chips             map[string]*ChipStats
	VendorPackets     int
	FailedResponses   int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// ChipStats holds statistics for a single chip.
type ChipStats struct {
	FirstSeen    time.Time
	LastSeen     time.Time
	Events       int
	LogIDs       map[string]bool
	StateChanges int
}

// collectStats reads every event of the file.
func collectStats(path string) (*Stats, error) {
	reader, err := ucilog.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[ucilog.Category]int),
		EventsByDirection: make(map[ucilog.Direction]int),
		PacketsByKind:     make(map[ucilog.PacketKind]int),
		Chips:             make(map[string]*ChipStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		chip, ok := stats.Chips[event.ChipID]
		if !ok {
			chip = &ChipStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				LogIDs:    make(map[string]bool),
			}
			stats.Chips[event.ChipID] = chip
		}
		chip.Events++
		if event.Timestamp.After(chip.LastSeen) {
			chip.LastSeen = event.Timestamp
		}
		if event.LogID != "" {
			chip.LogIDs[event.LogID] = true
		}

		switch {
		case event.Packet != nil:
			p := event.Packet
			stats.PacketsByKind[p.Kind]++
			if ucilog.IsVendorGID(p.GID) {
				stats.VendorPackets++
			}
			if p.Kind == ucilog.PacketKindResponse && len(p.Payload) > 0 && !uci.StatusCode(p.Payload[0]).IsOk() {
				stats.FailedResponses++
			}
		case event.StateChange != nil:
			chip.StateChanges++
		case event.Error != nil:
			stats.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== UCI Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []ucilog.Category{ucilog.CategoryPacket, ucilog.CategoryState, ucilog.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Packets by Kind:")
	for _, k := range []ucilog.PacketKind{ucilog.PacketKindCommand, ucilog.PacketKindResponse, ucilog.PacketKindNotification, ucilog.PacketKindData} {
		if count := stats.PacketsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", k.String()+":", count)
		}
	}
	if stats.VendorPackets > 0 {
		fmt.Fprintf(w, "  %-14s %d\n", "VENDOR:", stats.VendorPackets)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []ucilog.Direction{ucilog.DirectionIn, ucilog.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Chips: %d\n", len(stats.Chips))
	if len(stats.Chips) > 0 {
		ids := make([]string, 0, len(stats.Chips))
		for id := range stats.Chips {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintln(w)
		for _, id := range ids {
			c := stats.Chips[id]
			duration := c.LastSeen.Sub(c.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", id, c.Events, duration)
			if len(c.LogIDs) > 1 {
				fmt.Fprintf(w, "           Loggers: %d\n", len(c.LogIDs))
			}
			if c.StateChanges > 0 {
				fmt.Fprintf(w, "           State changes: %d\n", c.StateChanges)
			}
		}
	}

	if stats.FailedResponses > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed Responses: %d\n", stats.FailedResponses)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
