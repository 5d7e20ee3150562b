package ucilog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPrefix is the file name prefix used when FactoryConfig.Prefix is empty.
const DefaultPrefix = "uwb_uci"

// FileExtension is appended to every capture file.
const FileExtension = ".ucilog"

// FactoryConfig configures a Factory.
type FactoryConfig struct {
	// Dir is the directory capture files are written to. Empty disables
	// file output.
	Dir string

	// Prefix is the file name prefix. Defaults to DefaultPrefix.
	Prefix string

	// Mode is the initial mode of every logger built by the factory.
	Mode Mode

	// Also receives every event in addition to the file, e.g. a SlogAdapter.
	Also Logger

	// Logger is used for operational logging.
	Logger *slog.Logger
}

// Factory builds one ChipLogger per chip.
type Factory struct {
	config FactoryConfig
	logger *slog.Logger
}

// NewFactory creates a Factory.
func NewFactory(cfg FactoryConfig) *Factory {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Factory{config: cfg, logger: logger}
}

// Mode returns the initial mode handed to new loggers.
func (f *Factory) Mode() Mode { return f.config.Mode }

// Path returns the capture file path for chipID, or "" when file output
// is disabled.
func (f *Factory) Path(chipID string) string {
	if f.config.Dir == "" {
		return ""
	}
	return filepath.Join(f.config.Dir, f.config.Prefix+"_"+sanitize(chipID)+FileExtension)
}

// Open builds the logger for chipID.
func (f *Factory) Open(chipID string) (*ChipLogger, error) {
	var sinks []Logger
	var file *FileLogger

	if path := f.Path(chipID); path != "" {
		if err := os.MkdirAll(f.config.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		fl, err := NewFileLogger(path)
		if err != nil {
			return nil, fmt.Errorf("open uci log for chip %q: %w", chipID, err)
		}
		file = fl
		sinks = append(sinks, fl)
	}
	if f.config.Also != nil {
		sinks = append(sinks, f.config.Also)
	}

	var sink Logger = NoopLogger{}
	switch len(sinks) {
	case 0:
	case 1:
		sink = sinks[0]
	default:
		sink = &closingMulti{MultiLogger: NewMultiLogger(sinks...), file: file}
	}

	cl := NewChipLogger(chipID, sink, f.config.Mode)
	f.logger.Debug("uci logger opened", "chip", chipID, "log_id", cl.LogID(), "path", f.Path(chipID), "mode", f.config.Mode)
	return cl, nil
}

// closingMulti closes the file it fans out to.
type closingMulti struct {
	*MultiLogger
	file *FileLogger
}

func (m *closingMulti) Close() error {
	if m.file == nil {
		return nil
	}
	return m.file.Close()
}

var _ io.Closer = (*closingMulti)(nil)

func sanitize(chipID string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, chipID)
}
