package host

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Constructors maps constructor descriptors to Go constructor functions.
// Every function must return exactly one value, and all constructors of a
// class must return the same type.
type Constructors map[string]any

// LocalRuntime is an in-process Runtime. Host classes are Go constructor
// sets registered with DefineClass; host callbacks are exported methods of
// the target object, resolved by name and checked against the descriptor.
// Attachment is tracked per OS thread, so callers must lock their goroutine
// to its thread for as long as they hold an Env.
type LocalRuntime struct {
	mu      sync.RWMutex
	threads map[int64]*localEnv
	classes map[string]*localClass

	threadID func() (int64, error)

	classLookups  atomic.Int64
	methodLookups atomic.Int64
	calls         atomic.Int64
}

// NewLocalRuntime creates an empty runtime with the String class defined.
func NewLocalRuntime() *LocalRuntime {
	r := &LocalRuntime{
		threads:  make(map[int64]*localEnv),
		classes:  make(map[string]*localClass),
		threadID: currentThreadID,
	}
	r.classes[StringClass] = &localClass{name: StringClass, instance: reflect.TypeOf("")}
	return r
}

// DefineClass registers a host class. Redefining a class replaces it.
func (r *LocalRuntime) DefineClass(name string, ctors Constructors) error {
	c := &localClass{name: name, ctors: make(map[string]localCtor, len(ctors))}
	for desc, fn := range ctors {
		sig, err := ParseSignature(desc)
		if err != nil {
			return err
		}
		if sig.Ret.Kind != KindVoid {
			return fmt.Errorf("%w: constructor %s of %s must return V", ErrBadSignature, desc, name)
		}
		fv := reflect.ValueOf(fn)
		ft := fv.Type()
		if ft.Kind() != reflect.Func || ft.NumOut() != 1 || ft.IsVariadic() {
			return fmt.Errorf("constructor %s of %s: want func returning one value, got %s", desc, name, ft)
		}
		if ft.NumIn() != len(sig.Args) {
			return fmt.Errorf("%w: constructor %s of %s takes %d arguments", ErrArgumentCount, desc, name, ft.NumIn())
		}
		if c.instance == nil {
			c.instance = ft.Out(0)
		} else if c.instance != ft.Out(0) {
			return fmt.Errorf("constructors of %s return both %s and %s", name, c.instance, ft.Out(0))
		}
		c.ctors[desc] = localCtor{sig: sig, fn: fv}
	}

	r.mu.Lock()
	r.classes[name] = c
	r.mu.Unlock()
	return nil
}

func (r *LocalRuntime) class(name string) *localClass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classes[name]
}

// AttachCurrentThread implements Runtime.
func (r *LocalRuntime) AttachCurrentThread() (Env, bool, error) {
	tid, err := r.threadID()
	if err != nil {
		return nil, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if env, ok := r.threads[tid]; ok {
		return env, true, nil
	}
	env := &localEnv{rt: r, tid: tid}
	r.threads[tid] = env
	return env, false, nil
}

// DetachCurrentThread implements Runtime.
func (r *LocalRuntime) DetachCurrentThread() error {
	tid, err := r.threadID()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.threads[tid]; !ok {
		return ErrNotAttached
	}
	delete(r.threads, tid)
	return nil
}

// AttachedThreads returns the number of currently attached threads.
func (r *LocalRuntime) AttachedThreads() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.threads)
}

// ClassLookups returns how many FindClass calls were made.
func (r *LocalRuntime) ClassLookups() int64 { return r.classLookups.Load() }

// MethodLookups returns how many GetMethodID calls were made.
func (r *LocalRuntime) MethodLookups() int64 { return r.methodLookups.Load() }

// Calls returns how many callbacks were invoked.
func (r *LocalRuntime) Calls() int64 { return r.calls.Load() }

type localCtor struct {
	sig Signature
	fn  reflect.Value
}

type localClass struct {
	name     string
	instance reflect.Type
	ctors    map[string]localCtor
}

func (c *localClass) Name() string { return c.name }

type localMethod struct {
	name   string
	desc   string
	sig    Signature
	recv   reflect.Type
	method reflect.Method
}

func (m *localMethod) Name() string      { return m.name }
func (m *localMethod) Signature() string { return m.desc }

var (
	_ Runtime  = (*LocalRuntime)(nil)
	_ Class    = (*localClass)(nil)
	_ MethodID = (*localMethod)(nil)
)
