package host

import (
	"fmt"
	"reflect"
)

var (
	arrayPtrType = reflect.TypeOf((*Array)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// primitiveGoTypes maps descriptor kinds onto the Go types that carry them.
var primitiveGoTypes = map[Kind]reflect.Type{
	KindBoolean: reflect.TypeOf(false),
	KindByte:    reflect.TypeOf(int8(0)),
	KindChar:    reflect.TypeOf(uint16(0)),
	KindShort:   reflect.TypeOf(int16(0)),
	KindInt:     reflect.TypeOf(int32(0)),
	KindLong:    reflect.TypeOf(int64(0)),
	KindFloat:   reflect.TypeOf(float32(0)),
	KindDouble:  reflect.TypeOf(float64(0)),
}

// goType returns the fixed Go type for primitive, string and primitive
// array descriptors. ok is false for other object types.
func goType(t Type) (reflect.Type, bool) {
	switch t.Kind {
	case KindObject:
		if t.Class == StringClass {
			return reflect.TypeOf(""), true
		}
		return nil, false
	case KindArray:
		if t.Elem.Kind == KindByte {
			// Byte arrays travel as []byte rather than []int8.
			return reflect.TypeOf([]byte(nil)), true
		}
		if t.Elem.Kind == KindObject && t.Elem.Class == StringClass {
			return reflect.TypeOf([]string(nil)), true
		}
		if et, ok := primitiveGoTypes[t.Elem.Kind]; ok {
			return reflect.SliceOf(et), true
		}
		return arrayPtrType, true
	}
	rt, ok := primitiveGoTypes[t.Kind]
	return rt, ok
}

// assignable reports whether a Go parameter of type p can receive values
// of descriptor type t.
func (r *LocalRuntime) assignable(t Type, p reflect.Type) bool {
	if gt, ok := goType(t); ok {
		return gt == p
	}
	// Plain object reference.
	if c := r.class(t.Class); c != nil && c.instance != nil {
		return c.instance.AssignableTo(p)
	}
	return p.Kind() == reflect.Interface
}

// checkValue verifies that v is a valid argument for descriptor type t.
func (r *LocalRuntime) checkValue(t Type, v Value) error {
	if v == nil {
		if t.Kind == KindObject || t.Kind == KindArray {
			return nil
		}
		return fmt.Errorf("%w: nil for %s", ErrArgumentType, t)
	}
	vt := reflect.TypeOf(v)

	if t.Kind == KindArray && t.Elem.Kind == KindObject && t.Elem.Class != StringClass {
		arr, ok := v.(*Array)
		if !ok {
			return fmt.Errorf("%w: %s for %s", ErrArgumentType, vt, t)
		}
		if arr != nil && arr.Class != nil && arr.Class.Name() != t.Elem.Class {
			return fmt.Errorf("%w: array of %s for %s", ErrArgumentType, arr.Class.Name(), t)
		}
		return nil
	}
	if gt, ok := goType(t); ok {
		if vt != gt {
			return fmt.Errorf("%w: %s for %s", ErrArgumentType, vt, t)
		}
		return nil
	}
	c := r.class(t.Class)
	if c == nil {
		return fmt.Errorf("%w: unknown class %s", ErrArgumentType, t.Class)
	}
	if c.instance != nil && vt != c.instance {
		return fmt.Errorf("%w: %s for %s", ErrArgumentType, vt, t)
	}
	return nil
}

// argValues converts checked arguments for a reflective call on fn, whose
// first skip parameters are already supplied.
func argValues(fn reflect.Type, skip int, args []Value) []reflect.Value {
	out := make([]reflect.Value, len(args))
	for i, a := range args {
		p := fn.In(skip + i)
		if a == nil {
			out[i] = reflect.Zero(p)
			continue
		}
		out[i] = reflect.ValueOf(a)
	}
	return out
}
