package host

import "errors"

// Host runtime errors.
var (
	ErrNotAttached     = errors.New("thread not attached to host runtime")
	ErrWrongThread     = errors.New("env used from a thread it does not belong to")
	ErrClassNotFound   = errors.New("host class not found")
	ErrMethodNotFound  = errors.New("host method not found")
	ErrBadSignature    = errors.New("malformed type descriptor")
	ErrArgumentCount   = errors.New("argument count does not match signature")
	ErrArgumentType    = errors.New("argument does not match signature")
	ErrCallbackThrew   = errors.New("host callback threw")
	ErrNilTarget       = errors.New("nil host object")
	ErrThreadIdentity  = errors.New("thread identity unavailable on this platform")
	ErrRuntimeNotReady = errors.New("host runtime not initialized")
)

// StringClass is the class name of host strings.
const StringClass = "java/lang/String"

// Object is a reference to a host object.
type Object = any

// Value is a host call argument: a primitive of the Go type matching its
// descriptor, a string, a primitive array, an *Array, or an Object.
type Value = any

// Class is a resolved host class handle.
type Class interface {
	Name() string
}

// MethodID is a resolved host method handle.
type MethodID interface {
	Name() string
	Signature() string
}

// Array is a host object array.
type Array struct {
	Class Class
	Elems []Object
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elems)
}

// Env is a thread-bound view of the host runtime.
type Env interface {
	// FindClass resolves a class by its slash-separated name.
	FindClass(name string) (Class, error)

	// GetMethodID resolves an instance method of target's class.
	GetMethodID(target Object, name, sig string) (MethodID, error)

	// CallVoidMethod invokes a void method. args must match the method's
	// descriptor in number and type.
	CallVoidMethod(target Object, m MethodID, args ...Value) error

	// NewObject constructs an instance of cls using the constructor with
	// descriptor ctorSig.
	NewObject(cls Class, ctorSig string, args ...Value) (Object, error)

	// NewObjectArray builds an array of cls instances.
	NewObjectArray(cls Class, elems []Object) (*Array, error)
}

// Runtime is a host runtime native threads can attach to.
type Runtime interface {
	// AttachCurrentThread attaches the calling OS thread. Attaching an
	// already attached thread returns its existing Env with already=true.
	AttachCurrentThread() (env Env, already bool, err error)

	// DetachCurrentThread detaches the calling OS thread.
	DetachCurrentThread() error
}
