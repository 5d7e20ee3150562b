package host

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
}

type recorder struct {
	points   []*point
	statuses []string
	batches  []*Array
	fail     error
}

func (r *recorder) OnPoint(p *point) { r.points = append(r.points, p) }

func (r *recorder) OnStatus(code int32, msg string) error {
	r.statuses = append(r.statuses, msg)
	return r.fail
}

func (r *recorder) OnBatch(id int64, pts *Array, raw []byte) {
	r.batches = append(r.batches, pts)
}

func (r *recorder) OnPanic() { panic("boom") }

// onThread runs fn on a goroutine locked to its own OS thread.
func onThread(t *testing.T, fn func()) {
	t.Helper()
	if _, err := currentThreadID(); err != nil {
		t.Skip(err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		fn()
	}()
	<-done
}

func newTestRuntime(t *testing.T) *LocalRuntime {
	t.Helper()
	rt := NewLocalRuntime()
	require.NoError(t, rt.DefineClass("test/Point", Constructors{
		"(II)V": func(x, y int32) *point { return &point{X: x, Y: y} },
		"()V":   func() *point { return &point{} },
	}))
	return rt
}

func TestAttachDetach(t *testing.T) {
	rt := newTestRuntime(t)
	onThread(t, func() {
		env, already, err := rt.AttachCurrentThread()
		assert.NoError(t, err)
		assert.False(t, already)
		assert.NotNil(t, env)

		again, already, err := rt.AttachCurrentThread()
		assert.NoError(t, err)
		assert.True(t, already)
		assert.Same(t, env, again)
		assert.Equal(t, 1, rt.AttachedThreads())

		assert.NoError(t, rt.DetachCurrentThread())
		assert.ErrorIs(t, rt.DetachCurrentThread(), ErrNotAttached)
		assert.Equal(t, 0, rt.AttachedThreads())

		_, err = env.FindClass("test/Point")
		assert.ErrorIs(t, err, ErrNotAttached)
	})
}

func TestEnvBoundToThread(t *testing.T) {
	rt := newTestRuntime(t)
	envCh := make(chan Env)
	release := make(chan struct{})
	owner := make(chan struct{})

	go func() {
		defer close(owner)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		env, _, err := rt.AttachCurrentThread()
		if err != nil {
			close(envCh)
			return
		}
		envCh <- env
		// Hold the thread until the other goroutine is done with env.
		<-release
		_ = rt.DetachCurrentThread()
	}()

	env, ok := <-envCh
	if !ok {
		t.Skip("thread identity unavailable")
	}
	onThread(t, func() {
		_, err := env.FindClass("test/Point")
		assert.ErrorIs(t, err, ErrWrongThread)
	})
	close(release)
	<-owner
}

func TestCallVoidMethod(t *testing.T) {
	rt := newTestRuntime(t)
	rec := &recorder{}

	onThread(t, func() {
		env, _, err := rt.AttachCurrentThread()
		if !assert.NoError(t, err) {
			return
		}
		defer rt.DetachCurrentThread()

		cls, err := env.FindClass("test/Point")
		assert.NoError(t, err)
		p, err := env.NewObject(cls, "(II)V", int32(3), int32(4))
		assert.NoError(t, err)

		mid, err := env.GetMethodID(rec, "OnPoint", "(Ltest/Point;)V")
		if !assert.NoError(t, err) {
			return
		}
		assert.NoError(t, env.CallVoidMethod(rec, mid, p))

		status, err := env.GetMethodID(rec, "OnStatus", "(ILjava/lang/String;)V")
		if !assert.NoError(t, err) {
			return
		}
		assert.NoError(t, env.CallVoidMethod(rec, status, int32(1), "ready"))

		arr, err := env.NewObjectArray(cls, []Object{p, p})
		assert.NoError(t, err)
		batch, err := env.GetMethodID(rec, "OnBatch", "(J[Ltest/Point;[B)V")
		if !assert.NoError(t, err) {
			return
		}
		assert.NoError(t, env.CallVoidMethod(rec, batch, int64(9), arr, []byte{1}))
		// A nil object array is a valid argument.
		assert.NoError(t, env.CallVoidMethod(rec, batch, int64(9), nil, nil))
	})

	require.Len(t, rec.points, 1)
	assert.Equal(t, &point{X: 3, Y: 4}, rec.points[0])
	assert.Equal(t, []string{"ready"}, rec.statuses)
	require.Len(t, rec.batches, 2)
	assert.Equal(t, 2, rec.batches[0].Len())
	assert.Equal(t, 0, rec.batches[1].Len())
	assert.EqualValues(t, 4, rt.Calls())
}

func TestCallVoidMethodArgumentChecks(t *testing.T) {
	rt := newTestRuntime(t)
	rec := &recorder{}

	onThread(t, func() {
		env, _, err := rt.AttachCurrentThread()
		if !assert.NoError(t, err) {
			return
		}
		defer rt.DetachCurrentThread()

		status, err := env.GetMethodID(rec, "OnStatus", "(ILjava/lang/String;)V")
		if !assert.NoError(t, err) {
			return
		}
		assert.ErrorIs(t, env.CallVoidMethod(rec, status, int32(1)), ErrArgumentCount)
		assert.ErrorIs(t, env.CallVoidMethod(rec, status, 1, "x"), ErrArgumentType)
		assert.NoError(t, env.CallVoidMethod(rec, status, int32(1), nil))
		assert.ErrorIs(t, env.CallVoidMethod(nil, status, int32(1), "x"), ErrNilTarget)

		cls, _ := env.FindClass("test/Point")
		_, err = env.NewObjectArray(cls, []Object{"not a point"})
		assert.ErrorIs(t, err, ErrArgumentType)
		_, err = env.NewObject(cls, "(J)V", int64(1))
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})
	assert.Len(t, rec.statuses, 1)
}

func TestGetMethodIDResolution(t *testing.T) {
	rt := newTestRuntime(t)
	rec := &recorder{}

	onThread(t, func() {
		env, _, err := rt.AttachCurrentThread()
		if !assert.NoError(t, err) {
			return
		}
		defer rt.DetachCurrentThread()

		_, err = env.GetMethodID(rec, "OnMissing", "()V")
		assert.ErrorIs(t, err, ErrMethodNotFound)
		_, err = env.GetMethodID(rec, "OnStatus", "(JLjava/lang/String;)V")
		assert.ErrorIs(t, err, ErrMethodNotFound)
		_, err = env.GetMethodID(rec, "OnStatus", "(I)V")
		assert.ErrorIs(t, err, ErrMethodNotFound)
		_, err = env.GetMethodID(rec, "OnStatus", "(I")
		assert.ErrorIs(t, err, ErrBadSignature)
		_, err = env.GetMethodID(nil, "OnStatus", "(ILjava/lang/String;)V")
		assert.ErrorIs(t, err, ErrNilTarget)
		_, err = env.FindClass("test/Missing")
		assert.ErrorIs(t, err, ErrClassNotFound)
	})
	assert.EqualValues(t, 5, rt.MethodLookups())
	assert.EqualValues(t, 1, rt.ClassLookups())
}

func TestCallbackFailures(t *testing.T) {
	rt := newTestRuntime(t)
	boom := errors.New("listener failed")
	rec := &recorder{fail: boom}

	onThread(t, func() {
		env, _, err := rt.AttachCurrentThread()
		if !assert.NoError(t, err) {
			return
		}
		defer rt.DetachCurrentThread()

		status, _ := env.GetMethodID(rec, "OnStatus", "(ILjava/lang/String;)V")
		err = env.CallVoidMethod(rec, status, int32(2), "err")
		assert.ErrorIs(t, err, ErrCallbackThrew)
		assert.ErrorIs(t, err, boom)

		panicky, err := env.GetMethodID(rec, "OnPanic", "()V")
		if !assert.NoError(t, err) {
			return
		}
		assert.ErrorIs(t, env.CallVoidMethod(rec, panicky), ErrCallbackThrew)
	})
}

func TestDefineClassRejectsMismatchedConstructors(t *testing.T) {
	rt := NewLocalRuntime()
	err := rt.DefineClass("test/Bad", Constructors{
		"(I)V": func(int32) *point { return nil },
		"()V":  func() string { return "" },
	})
	assert.Error(t, err)

	err = rt.DefineClass("test/Bad", Constructors{"(II)V": func(int32) *point { return nil }})
	assert.ErrorIs(t, err, ErrArgumentCount)

	err = rt.DefineClass("test/Bad", Constructors{"(I)I": func(int32) *point { return nil }})
	assert.ErrorIs(t, err, ErrBadSignature)
}
