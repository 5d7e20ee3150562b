package native

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// DefaultCommandTimeout bounds each boundary call when Config leaves
// CommandTimeout unset.
const DefaultCommandTimeout = 5 * time.Second

// DefaultChipID is the chip Initialize opens when no chips are configured.
const DefaultChipID = "default"

// ErrNoFactory is returned by NewManager when it has to build its own
// registry and no manager factory is configured.
var ErrNoFactory = errors.New("native: no manager factory configured")

// Config configures a Manager.
type Config struct {
	// Registry holds the dispatchers. When nil, NewManager builds a
	// single-instance registry from Runtime, Factory and LogFactory.
	Registry *dispatch.Registry

	// Runtime is the host runtime for a registry built by NewManager.
	// Defaults to the runtime recorded by Init.
	Runtime host.Runtime

	// Factory creates the protocol manager of each chip.
	Factory dispatch.ManagerFactory

	// LogFactory opens the per-chip UCI capture logs. Optional.
	LogFactory *ucilog.Factory

	// Chips are the chip ids Initialize creates and opens.
	Chips []string

	// LogMode is applied to every chip by Initialize until SetLogMode
	// changes it.
	LogMode ucilog.Mode

	// CommandTimeout bounds each boundary call.
	CommandTimeout time.Duration

	// Logger receives one entry per failed boundary call. Optional.
	Logger *slog.Logger
}

type listenerRef struct {
	l Listener
}

// Manager is the host object of one UWB service instance.
type Manager struct {
	mu     sync.RWMutex
	handle dispatch.Handle

	reg     *dispatch.Registry
	ownsReg bool
	chips   []string
	logMode atomic.Uint32
	timeout time.Duration
	logger  *slog.Logger

	listener atomic.Pointer[listenerRef]
}

var _ dispatch.HostObject = (*Manager)(nil)

// NewManager creates a Manager. Without a Registry in cfg it builds a
// single-instance one that Close releases.
func NewManager(cfg Config) (*Manager, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reg := cfg.Registry
	owns := false
	if reg == nil {
		if cfg.Factory == nil {
			return nil, ErrNoFactory
		}
		rt := cfg.Runtime
		if rt == nil {
			var err error
			if rt, err = Runtime(); err != nil {
				return nil, err
			}
		}
		reg = dispatch.NewRegistry(dispatch.Config{
			Runtime:        rt,
			Factory:        cfg.Factory,
			LogFactory:     cfg.LogFactory,
			SingleInstance: true,
			Logger:         logger,
		})
		owns = true
	}

	chips := slices.Clone(cfg.Chips)
	if len(chips) == 0 {
		chips = []string{DefaultChipID}
	}
	timeout := cfg.CommandTimeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	m := &Manager{
		reg:     reg,
		ownsReg: owns,
		chips:   chips,
		timeout: timeout,
		logger:  logger,
	}
	m.logMode.Store(uint32(cfg.LogMode))
	return m, nil
}

// Monitor implements dispatch.HostObject.
func (m *Manager) Monitor() dispatch.HostLock { return &m.mu }

// Handle implements dispatch.HostObject. The caller holds the monitor.
func (m *Manager) Handle() dispatch.Handle { return m.handle }

// SetHandle implements dispatch.HostObject. The caller holds the monitor
// exclusively.
func (m *Manager) SetHandle(h dispatch.Handle) { m.handle = h }

// CurrentHandle returns the stored dispatcher handle.
func (m *Manager) CurrentHandle() dispatch.Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handle
}

// Chips returns the chip ids Initialize opens.
func (m *Manager) Chips() []string { return slices.Clone(m.chips) }

// LogMode returns the stored UCI logger mode.
func (m *Manager) LogMode() ucilog.Mode { return ucilog.Mode(m.logMode.Load()) }

func (m *Manager) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

// DispatcherNew creates a dispatcher for chipIDs and returns its handle,
// or 0 on failure.
func (m *Manager) DispatcherNew(chipIDs []string) int64 {
	ctx, cancel := m.context()
	defer cancel()

	h, err := m.reg.CreateFor(ctx, m, chipIDs)
	if err != nil {
		m.fail("DispatcherNew", "", err)
		return int64(dispatch.InvalidHandle)
	}
	m.logger.Debug("dispatcher created", "handle", h, "chips", chipIDs)
	return int64(h)
}

// DispatcherDestroy destroys the stored dispatcher. It fails when no live
// dispatcher is stored.
func (m *Manager) DispatcherDestroy() bool {
	return m.boolResult("DispatcherDestroy", "", m.reg.DestroyFor(m))
}

// DoInitialize opens the HAL of one chip.
func (m *Manager) DoInitialize(chipID string) bool {
	return m.boolResult("DoInitialize", chipID, m.openChip(chipID))
}

// DoDeinitialize force-closes the HAL of one chip.
func (m *Manager) DoDeinitialize(chipID string) bool {
	return m.boolResult("DoDeinitialize", chipID, m.closeChip(chipID))
}

func (m *Manager) openChip(chipID string) error {
	return m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.OpenHal(ctx)
	})
}

func (m *Manager) closeChip(chipID string) error {
	return m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.CloseHal(ctx, true)
	})
}

// Initialize creates the dispatcher for the configured chips unless one
// is live, opens every chip and applies the stored log mode.
func (m *Manager) Initialize() bool {
	ctx, cancel := m.context()
	_, err := m.reg.CreateFor(ctx, m, m.chips)
	cancel()
	if err != nil && !errors.Is(err, dispatch.ErrAlreadyExists) {
		return m.boolResult("Initialize", "", err)
	}

	for _, id := range m.chips {
		if err := m.openChip(id); err != nil {
			return m.boolResult("Initialize", id, err)
		}
	}

	mode := m.LogMode()
	err = m.reg.WithDispatcher(m, func(d *dispatch.Dispatcher) error {
		return d.SetLoggerMode(mode)
	})
	return m.boolResult("Initialize", "", err)
}

// Deinitialize force-closes every chip and destroys the dispatcher. Chips
// that fail to close do not stop the others.
func (m *Manager) Deinitialize() bool {
	ok := true
	for _, id := range m.chips {
		if err := m.closeChip(id); err != nil {
			m.fail("Deinitialize", id, err)
			ok = false
		}
	}
	return m.boolResult("Deinitialize", "", m.reg.DestroyFor(m)) && ok
}

// SetLogMode parses mode, stores it for Initialize and applies it to every
// chip of the live dispatcher.
func (m *Manager) SetLogMode(mode string) bool {
	parsed, err := ucilog.ParseMode(mode)
	if err != nil {
		return m.boolResult("SetLogMode", "", err)
	}
	m.logMode.Store(uint32(parsed))

	err = m.reg.WithDispatcher(m, func(d *dispatch.Dispatcher) error {
		return d.SetLoggerMode(parsed)
	})
	return m.boolResult("SetLogMode", "", err)
}

// Close destroys the stored dispatcher, if any, and releases a registry
// built by NewManager.
func (m *Manager) Close() error {
	err := m.reg.DestroyFor(m)
	if errors.Is(err, dispatch.ErrInvalidHandle) {
		err = nil
	}
	if m.ownsReg {
		m.reg.Close()
	}
	return err
}
