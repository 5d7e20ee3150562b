package host

import (
	"fmt"
	"reflect"
)

// localEnv is the Env of one attached OS thread.
type localEnv struct {
	rt  *LocalRuntime
	tid int64
}

// check verifies that the env is used on its own, still attached, thread.
func (e *localEnv) check() error {
	tid, err := e.rt.threadID()
	if err != nil {
		return err
	}
	if tid != e.tid {
		return fmt.Errorf("%w: env of thread %d used on thread %d", ErrWrongThread, e.tid, tid)
	}
	e.rt.mu.RLock()
	cur := e.rt.threads[tid]
	e.rt.mu.RUnlock()
	if cur != e {
		return ErrNotAttached
	}
	return nil
}

func (e *localEnv) FindClass(name string) (Class, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	e.rt.classLookups.Add(1)
	c := e.rt.class(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	}
	return c, nil
}

func (e *localEnv) GetMethodID(target Object, name, desc string) (MethodID, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	e.rt.methodLookups.Add(1)
	if target == nil {
		return nil, ErrNilTarget
	}
	sig, err := ParseSignature(desc)
	if err != nil {
		return nil, err
	}

	recv := reflect.TypeOf(target)
	m, ok := recv.MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, recv, name)
	}
	// In(0) is the receiver.
	ft := m.Type
	if ft.NumIn()-1 != len(sig.Args) || ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %s%s has %d parameters", ErrMethodNotFound, name, desc, ft.NumIn()-1)
	}
	for i, a := range sig.Args {
		if !e.rt.assignable(a, ft.In(i+1)) {
			return nil, fmt.Errorf("%w: %s%s parameter %d is %s", ErrMethodNotFound, name, desc, i, ft.In(i+1))
		}
	}
	if sig.Ret.Kind == KindVoid {
		if ft.NumOut() > 1 || (ft.NumOut() == 1 && ft.Out(0) != errorType) {
			return nil, fmt.Errorf("%w: %s%s must return nothing or error", ErrMethodNotFound, name, desc)
		}
	}
	return &localMethod{name: name, desc: desc, sig: sig, recv: recv, method: m}, nil
}

func (e *localEnv) CallVoidMethod(target Object, mid MethodID, args ...Value) (err error) {
	if err := e.check(); err != nil {
		return err
	}
	m, ok := mid.(*localMethod)
	if !ok {
		return fmt.Errorf("%w: foreign method handle", ErrMethodNotFound)
	}
	if m.sig.Ret.Kind != KindVoid {
		return fmt.Errorf("%w: %s%s is not void", ErrBadSignature, m.name, m.desc)
	}
	if target == nil {
		return ErrNilTarget
	}
	if reflect.TypeOf(target) != m.recv {
		return fmt.Errorf("%w: %s is not a %s", ErrMethodNotFound, reflect.TypeOf(target), m.recv)
	}
	if len(args) != len(m.sig.Args) {
		return fmt.Errorf("%w: %s%s wants %d, got %d", ErrArgumentCount, m.name, m.desc, len(m.sig.Args), len(args))
	}
	for i, a := range m.sig.Args {
		if err := e.rt.checkValue(a, args[i]); err != nil {
			return fmt.Errorf("%s argument %d: %w", m.name, i, err)
		}
	}

	in := append([]reflect.Value{reflect.ValueOf(target)}, argValues(m.method.Type, 1, args)...)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s panicked: %v", ErrCallbackThrew, m.name, p)
		}
	}()
	e.rt.calls.Add(1)
	out := m.method.Func.Call(in)
	if len(out) == 1 && !out[0].IsNil() {
		return fmt.Errorf("%w: %s: %w", ErrCallbackThrew, m.name, out[0].Interface().(error))
	}
	return nil
}

func (e *localEnv) NewObject(cls Class, desc string, args ...Value) (obj Object, err error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	c, ok := cls.(*localClass)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: foreign class handle", ErrClassNotFound)
	}
	ctor, ok := c.ctors[desc]
	if !ok {
		return nil, fmt.Errorf("%w: %s.<init>%s", ErrMethodNotFound, c.name, desc)
	}
	if len(args) != len(ctor.sig.Args) {
		return nil, fmt.Errorf("%w: %s.<init>%s wants %d, got %d", ErrArgumentCount, c.name, desc, len(ctor.sig.Args), len(args))
	}
	ft := ctor.fn.Type()
	for i, a := range ctor.sig.Args {
		if !e.rt.assignable(a, ft.In(i)) {
			return nil, fmt.Errorf("%w: %s.<init>%s parameter %d is %s", ErrMethodNotFound, c.name, desc, i, ft.In(i))
		}
		if err := e.rt.checkValue(a, args[i]); err != nil {
			return nil, fmt.Errorf("%s.<init> argument %d: %w", c.name, i, err)
		}
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s.<init> panicked: %v", ErrCallbackThrew, c.name, p)
		}
	}()
	return ctor.fn.Call(argValues(ft, 0, args))[0].Interface(), nil
}

func (e *localEnv) NewObjectArray(cls Class, elems []Object) (*Array, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	c, ok := cls.(*localClass)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: foreign class handle", ErrClassNotFound)
	}
	out := make([]Object, len(elems))
	for i, el := range elems {
		if el == nil || reflect.TypeOf(el) != c.instance {
			return nil, fmt.Errorf("%w: element %d is not a %s", ErrArgumentType, i, c.name)
		}
		out[i] = el
	}
	return &Array{Class: c, Elems: out}, nil
}

var _ Env = (*localEnv)(nil)
