package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uwbcore/uwb-go/pkg/bridge"
	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// Config configures a Registry.
type Config struct {
	// Runtime is the host runtime notification bridges attach to.
	Runtime host.Runtime

	// Factory creates the protocol manager of each chip.
	Factory ManagerFactory

	// LogFactory opens the per-chip UCI capture logs. Optional; without
	// it capture is disabled.
	LogFactory *ucilog.Factory

	// SingleInstance limits the registry to one live Dispatcher.
	SingleInstance bool

	// Logger is used for lifecycle events. Optional.
	Logger *slog.Logger
}

type slot struct {
	gen      uint32
	reserved bool
	d        *Dispatcher
}

// Registry maps Handles to Dispatchers.
type Registry struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int

	// closed is set by Close; reservations fail afterwards.
	closed bool

	config Config
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{config: cfg, logger: logger}
}

// Len returns the number of live dispatchers, creations in progress
// included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// Create builds a Dispatcher for chipIDs whose bridges deliver to target.
// If any chip fails, everything built so far is torn down and the error of
// that chip is returned.
func (r *Registry) Create(ctx context.Context, chipIDs []string, target host.Object) (Handle, error) {
	if err := validateChipIDs(chipIDs); err != nil {
		return InvalidHandle, err
	}
	if r.config.Factory == nil {
		return InvalidHandle, ErrNoFactory
	}

	h, err := r.reserve()
	if err != nil {
		return InvalidHandle, err
	}

	d, err := r.build(ctx, h, chipIDs, target)
	if err != nil {
		r.unreserve(h)
		r.logger.Warn("create dispatcher failed", "chips", chipIDs, "error", err)
		return InvalidHandle, err
	}

	r.mu.Lock()
	if r.closed {
		// Close ran while the chips were being built.
		r.retire(h.index())
		r.mu.Unlock()
		d.close()
		return InvalidHandle, ErrRegistryClosed
	}
	r.slots[h.index()].d = d
	r.mu.Unlock()

	r.logger.Info("dispatcher created", "handle", h, "chips", chipIDs)
	return h, nil
}

func validateChipIDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no chips", ErrInvalidChipSet)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty chip id", ErrInvalidChipSet)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate chip id %q", ErrInvalidChipSet, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// reserve claims a slot so that the single-instance check and the
// insertion are atomic.
func (r *Registry) reserve() (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return InvalidHandle, ErrRegistryClosed
	}
	if r.config.SingleInstance && r.live > 0 {
		return InvalidHandle, ErrAlreadyExists
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{gen: 1})
	}
	s := &r.slots[idx]
	s.reserved = true
	r.live++
	return makeHandle(idx, s.gen), nil
}

func (r *Registry) unreserve(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retire(h.index())
}

// retire frees a slot and bumps its generation. Callers hold mu.
func (r *Registry) retire(idx uint32) {
	s := &r.slots[idx]
	s.d = nil
	s.reserved = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	r.free = append(r.free, idx)
	r.live--
}

func (r *Registry) build(ctx context.Context, h Handle, chipIDs []string, target host.Object) (*Dispatcher, error) {
	d := &Dispatcher{
		handle: h,
		chips:  make(map[string]*chip, len(chipIDs)),
		exec:   NewExecutor(r.logger),
		logger: r.logger.With("handle", h),
	}

	for _, id := range chipIDs {
		c, err := r.buildChip(ctx, d, id, target)
		if err != nil {
			// Tear down the chips already built, in reverse order.
			d.shutdown()
			return nil, fmt.Errorf("chip %s: %w", id, err)
		}
		d.order = append(d.order, id)
		d.chips[id] = c
	}
	return d, nil
}

func (r *Registry) buildChip(ctx context.Context, d *Dispatcher, id string, target host.Object) (*chip, error) {
	var (
		log *ucilog.ChipLogger
		err error
	)
	if r.config.LogFactory != nil {
		log, err = r.config.LogFactory.Open(id)
		if err != nil {
			return nil, err
		}
	} else {
		log = ucilog.NewChipLogger(id, nil, ucilog.ModeDisabled)
	}

	m, err := r.config.Factory.NewManager(ctx, ManagerParams{
		ChipID: id,
		Notifications: bridge.Builder(bridge.Config{
			ChipID:  id,
			Runtime: r.config.Runtime,
			Target:  target,
			Logger:  r.logger,
		}),
		ProtocolLogger: log,
		Executor:       d.exec,
		Logger:         r.logger.With("chip", id),
	})
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	return &chip{manager: m, log: log}, nil
}

// get resolves a live dispatcher. Callers hold mu.
func (r *Registry) get(h Handle) (*Dispatcher, error) {
	if h.IsZero() || int(h.index()) >= len(r.slots) {
		return nil, ErrInvalidHandle
	}
	s := r.slots[h.index()]
	if s.gen != h.gen() || s.d == nil {
		return nil, ErrInvalidHandle
	}
	return s.d, nil
}

// Destroy removes the dispatcher and tears it down once the scoped accesses
// already inside it have returned. Other dispatchers are not blocked. No new
// call can reach the managers once Destroy returns.
func (r *Registry) Destroy(h Handle) error {
	r.mu.Lock()
	d, err := r.get(h)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.retire(h.index())
	r.mu.Unlock()

	d.close()
	r.logger.Info("dispatcher destroyed", "handle", h)
	return nil
}

// Close destroys every live dispatcher. Creations still in progress fail
// with ErrRegistryClosed, as does any later Create.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	var ds []*Dispatcher
	for i := range r.slots {
		if d := r.slots[i].d; d != nil {
			ds = append(ds, d)
			r.retire(uint32(i))
		}
	}
	r.mu.Unlock()

	for _, d := range ds {
		d.close()
	}
}
