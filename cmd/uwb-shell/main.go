// Command uwb-shell drives simulated UWB chips through the native
// boundary layer from an interactive prompt.
//
// Usage:
//
//	uwb-shell [flags]
//
// Flags:
//
//	-config string          Configuration file path
//	-log-level string       Log level: debug, info, warn, error (default "info")
//	-range-interval string  Range data period for active sessions, 0 disables (default "0")
//
// Examples:
//
//	# Single default chip
//	uwb-shell
//
//	# Two chips with capture files and periodic range data
//	uwb-shell -config /etc/uwb/multichip.yaml -range-interval 200ms
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uwbcore/uwb-go/cmd/uwb-shell/interactive"
	"github.com/uwbcore/uwb-go/internal/uwbsim"
	"github.com/uwbcore/uwb-go/pkg/bridge"
	"github.com/uwbcore/uwb-go/pkg/config"
	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/native"
)

var (
	configFile    string
	logLevel      string
	rangeInterval time.Duration
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.DurationVar(&rangeInterval, "range-interval", 0, "Range data period for active sessions (0 disables)")
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	shell, err := interactive.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogging(shell.Stderr(), logLevel)

	rt := host.NewLocalRuntime()
	if err := bridge.RegisterClasses(rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	native.Init(rt)

	reg := dispatch.NewRegistry(dispatch.Config{
		Runtime: rt,
		Factory: &uwbsim.Factory{Options: uwbsim.Options{
			CommandTimeout: cfg.CommandTimeout,
			QueueLength:    cfg.QueueLength,
			RangeInterval:  rangeInterval,
		}},
		LogFactory:     cfg.LogFactory(logger),
		SingleInstance: cfg.Single(),
		Logger:         logger,
	})
	defer reg.Close()

	m, err := native.NewManager(native.Config{
		Registry:       reg,
		Chips:          cfg.ChipIDs(),
		LogMode:        cfg.LogMode(),
		CommandTimeout: cfg.CommandTimeout,
		Logger:         logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	logger.Info("uwb-shell started", "chips", cfg.ChipIDs(), "default", cfg.DefaultChip)
	shell.Attach(m)
	shell.Run(ctx, cancel)
}

func setupLogging(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
