package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// ManagerParams is what a ManagerFactory gets for one chip.
type ManagerParams struct {
	ChipID string

	// Notifications builds the chip's notification manager. It must be
	// called on the worker that will deliver notifications.
	Notifications uci.NotificationManagerBuilder

	// ProtocolLogger records the chip's UCI traffic. Never nil.
	ProtocolLogger *ucilog.ChipLogger

	// Executor runs the manager's worker.
	Executor *Executor

	Logger *slog.Logger
}

// ManagerFactory creates the protocol manager of one chip.
type ManagerFactory interface {
	NewManager(ctx context.Context, p ManagerParams) (uci.Manager, error)
}

// ManagerFactoryFunc adapts a function to ManagerFactory.
type ManagerFactoryFunc func(ctx context.Context, p ManagerParams) (uci.Manager, error)

// NewManager calls f.
func (f ManagerFactoryFunc) NewManager(ctx context.Context, p ManagerParams) (uci.Manager, error) {
	return f(ctx, p)
}

type chip struct {
	manager uci.Manager
	log     *ucilog.ChipLogger
}

// Dispatcher owns the managers of a fixed set of chips.
type Dispatcher struct {
	// mu is held shared by scoped accesses and exclusively by shutdown.
	mu sync.RWMutex

	handle Handle
	order  []string
	chips  map[string]*chip
	exec   *Executor
	logger *slog.Logger
}

// Handle returns the dispatcher's handle.
func (d *Dispatcher) Handle() Handle { return d.handle }

// ChipIDs returns the chip ids in creation order.
func (d *Dispatcher) ChipIDs() []string {
	return append([]string(nil), d.order...)
}

// Manager returns the manager of chipID.
func (d *Dispatcher) Manager(chipID string) (uci.Manager, error) {
	c, ok := d.chips[chipID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChip, chipID)
	}
	return c.manager, nil
}

// SetLoggerMode switches the UCI capture mode of every chip. All chips are
// attempted; the errors of those that failed are joined.
func (d *Dispatcher) SetLoggerMode(mode ucilog.Mode) error {
	var errs []error
	for _, id := range d.order {
		if err := d.chips[id].manager.SetLoggerMode(mode); err != nil {
			errs = append(errs, fmt.Errorf("chip %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// close waits for the scoped accesses holding d, then shuts it down.
func (d *Dispatcher) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shutdown()
}

// shutdown closes the managers in reverse creation order and releases the
// executor. It does not wait: chip loggers are closed once the last worker
// has returned.
func (d *Dispatcher) shutdown() {
	for i := len(d.order) - 1; i >= 0; i-- {
		id := d.order[i]
		if err := d.chips[id].manager.Close(); err != nil {
			d.logger.Warn("close manager failed", "chip", id, "error", err)
		}
	}
	d.exec.Release()

	logs := make([]*ucilog.ChipLogger, 0, len(d.order))
	for _, id := range d.order {
		logs = append(logs, d.chips[id].log)
	}
	go func() {
		<-d.exec.Done()
		for _, l := range logs {
			if err := l.Close(); err != nil {
				d.logger.Debug("close uci log failed", "chip", l.ChipID(), "error", err)
			}
		}
	}()
}
