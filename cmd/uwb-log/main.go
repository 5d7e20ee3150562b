// Command uwb-log is a tool for viewing and analyzing UCI capture files.
//
// Capture files are written by the per-chip UCI loggers when a log
// directory is configured, one file per chip.
//
// Usage:
//
//	uwb-log <command> [flags] <file.ucilog>
//
// Commands:
//
//	view     View capture file in human-readable format
//	export   Export capture file to JSONL or CSV format
//	filter   Filter capture file and write to new file
//	stats    Show statistics about the capture file
//
// Examples:
//
//	# View all events
//	uwb-log view uwb_uci_chip0.ucilog
//
//	# View only notifications
//	uwb-log view --kind notification uwb_uci_chip0.ucilog
//
//	# Export to CSV
//	uwb-log export --format csv -o chip0.csv uwb_uci_chip0.ucilog
//
//	# Keep only vendor traffic
//	uwb-log filter --gid 0x09 -o vendor.ucilog uwb_uci_chip0.ucilog
//
//	# Show statistics
//	uwb-log stats uwb_uci_chip0.ucilog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uwbcore/uwb-go/cmd/uwb-log/commands"
	"github.com/uwbcore/uwb-go/pkg/version"
)

const usage = `uwb-log - UCI Capture Analyzer

Usage:
  uwb-log <command> [flags] <file.ucilog>

Commands:
  view     View capture file in human-readable format
  export   Export capture file to JSONL or CSV format
  filter   Filter capture file and write to new file
  stats    Show statistics about the capture file
  version  Print the version

Use "uwb-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "version":
		fmt.Printf("uwb-log %s (callback layout %s)\n", version.Module, version.Current)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `uwb-log view - View capture file in human-readable format

Usage:
  uwb-log view [flags] <file.ucilog>

Flags:
`)
		fs.PrintDefaults()
	}

	chip := fs.String("chip", "", "Filter by chip ID")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (packet, state, error)")
	kind := fs.String("kind", "", "Filter by packet kind (command, response, notification, data)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{ChipID: *chip}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fail(err)
		}
		filter.Direction = &d
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fail(err)
		}
		filter.Kind = &k
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `uwb-log export - Export capture file to JSONL or CSV format

Usage:
  uwb-log export [flags] <file.ucilog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `uwb-log filter - Filter capture file and write to new file

Usage:
  uwb-log filter [flags] <file.ucilog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	chip := fs.String("chip", "", "Filter by chip ID")
	logID := fs.String("log-id", "", "Filter by logger instance ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (packet, state, error)")
	kind := fs.String("kind", "", "Filter by packet kind (command, response, notification, data)")
	gid := fs.String("gid", "", "Filter by UCI group id (e.g. 0x09)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		ChipID:    *chip,
		LogID:     *logID,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Direction: *direction,
		Category:  *category,
		Kind:      *kind,
		GID:       *gid,
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `uwb-log stats - Show statistics about the capture file

Usage:
  uwb-log stats <file.ucilog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
