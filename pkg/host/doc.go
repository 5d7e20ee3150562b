// Package host abstracts the managed host runtime that native workers call
// back into.
//
// A Runtime hands out an Env to each OS thread attached to it. An Env is
// bound to its thread: it resolves classes and methods by name and type
// descriptor, constructs host objects, and invokes host callbacks. Method
// and class resolution is comparatively expensive, so callers are expected
// to cache the handles they get back.
//
// Type descriptors use the familiar field descriptor grammar:
//
//	Z boolean   B byte   C char   S short   I int   J long
//	F float     D double V void   Lpkg/Name; object   [T array of T
//
// and method descriptors are "(" args ")" ret, e.g. "(JII)V".
//
// LocalRuntime is an in-process implementation that maps host classes onto
// Go constructors and host callbacks onto exported Go methods. It is used by
// the simulator, the shell, and tests.
package host
