package dispatch

import (
	"context"
	"sync"

	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

// HostLock is the advisory lock of a host object. *sync.RWMutex satisfies
// it.
type HostLock interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// HostObject is a host object that owns a dispatcher handle.
type HostObject interface {
	Monitor() HostLock
	Handle() Handle
	SetHandle(h Handle)
}

// noCopy may be embedded into structs which must not be copied after the
// first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard is a scoped reference to a value owned by the registry. The value
// must not be used after Release.
type Guard[T any] struct {
	_ noCopy

	value    T
	host     HostLock
	internal *sync.RWMutex
	once     sync.Once
}

// Value returns the guarded value.
func (g *Guard[T]) Value() T { return g.value }

// Release drops the dispatcher lock, then the host lock. Only the first
// call has an effect.
func (g *Guard[T]) Release() {
	g.once.Do(func() {
		g.internal.RUnlock()
		if g.host != nil {
			g.host.RUnlock()
		}
	})
}

// acquire takes lock shared and resolves the handle under the registry read
// lock. It returns with the host lock and the dispatcher's read lock held;
// the registry lock is dropped before returning. On error nothing is held.
func (r *Registry) acquire(lock HostLock, handle func() Handle) (*Dispatcher, error) {
	if lock != nil {
		lock.RLock()
	}
	r.mu.RLock()
	d, err := r.get(handle())
	if err != nil {
		r.mu.RUnlock()
		if lock != nil {
			lock.RUnlock()
		}
		return nil, err
	}
	d.mu.RLock()
	r.mu.RUnlock()
	return d, nil
}

// Dispatcher returns a guard for the dispatcher of h. lock may be nil.
func (r *Registry) Dispatcher(lock HostLock, h Handle) (*Guard[*Dispatcher], error) {
	return r.dispatcher(lock, func() Handle { return h })
}

func (r *Registry) dispatcher(lock HostLock, handle func() Handle) (*Guard[*Dispatcher], error) {
	d, err := r.acquire(lock, handle)
	if err != nil {
		return nil, err
	}
	return &Guard[*Dispatcher]{value: d, host: lock, internal: &d.mu}, nil
}

// Manager returns a guard for the manager of chipID. lock may be nil.
func (r *Registry) Manager(lock HostLock, h Handle, chipID string) (*Guard[uci.Manager], error) {
	return r.manager(lock, func() Handle { return h }, chipID)
}

func (r *Registry) manager(lock HostLock, handle func() Handle, chipID string) (*Guard[uci.Manager], error) {
	d, err := r.acquire(lock, handle)
	if err != nil {
		return nil, err
	}
	g := &Guard[uci.Manager]{host: lock, internal: &d.mu}
	m, err := d.Manager(chipID)
	if err != nil {
		g.Release()
		return nil, err
	}
	g.value = m
	return g, nil
}

// WithManager runs f with the manager of chipID while holding obj's lock
// and the dispatcher's read lock. Both are released when f returns or
// panics. Other dispatchers are not blocked by f.
func (r *Registry) WithManager(obj HostObject, chipID string, f func(uci.Manager) error) error {
	g, err := r.manager(obj.Monitor(), obj.Handle, chipID)
	if err != nil {
		return err
	}
	defer g.Release()
	return f(g.Value())
}

// WithDispatcher is WithManager for dispatcher-wide operations.
func (r *Registry) WithDispatcher(obj HostObject, f func(*Dispatcher) error) error {
	g, err := r.dispatcher(obj.Monitor(), obj.Handle)
	if err != nil {
		return err
	}
	defer g.Release()
	return f(g.Value())
}

// CreateFor creates a dispatcher delivering to obj and stores its handle in
// obj. obj's lock is held exclusively throughout.
func (r *Registry) CreateFor(ctx context.Context, obj HostObject, chipIDs []string) (Handle, error) {
	mon := obj.Monitor()
	mon.Lock()
	defer mon.Unlock()

	if cur := obj.Handle(); !cur.IsZero() {
		r.mu.RLock()
		_, err := r.get(cur)
		r.mu.RUnlock()
		if err == nil {
			return InvalidHandle, ErrAlreadyExists
		}
	}

	var target host.Object = obj
	h, err := r.Create(ctx, chipIDs, target)
	if err != nil {
		return InvalidHandle, err
	}
	obj.SetHandle(h)
	return h, nil
}

// DestroyFor destroys obj's dispatcher and clears its handle. obj's lock is
// held exclusively, so it waits for scoped accesses through obj to finish.
func (r *Registry) DestroyFor(obj HostObject) error {
	mon := obj.Monitor()
	mon.Lock()
	defer mon.Unlock()

	if err := r.Destroy(obj.Handle()); err != nil {
		return err
	}
	obj.SetHandle(InvalidHandle)
	return nil
}
