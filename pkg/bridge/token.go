package bridge

import (
	"sync"

	"github.com/uwbcore/uwb-go/pkg/host"
)

// AttachmentToken is a scoped attachment of the current OS thread to a host
// runtime. The goroutine holding it must stay locked to its thread.
type AttachmentToken struct {
	rt    host.Runtime
	env   host.Env
	owned bool

	once sync.Once
	err  error
}

// Attach attaches the calling thread. If the thread was already attached,
// by another token or by the host itself, the token borrows the existing
// attachment and Detach leaves it in place.
func Attach(rt host.Runtime) (*AttachmentToken, error) {
	if rt == nil {
		return nil, host.ErrRuntimeNotReady
	}
	env, already, err := rt.AttachCurrentThread()
	if err != nil {
		return nil, err
	}
	return &AttachmentToken{rt: rt, env: env, owned: !already}, nil
}

// Env returns the thread's environment.
func (t *AttachmentToken) Env() host.Env {
	return t.env
}

// Owned reports whether this token performed the attachment.
func (t *AttachmentToken) Owned() bool {
	return t.owned
}

// Detach releases the attachment. Only the first call has an effect.
func (t *AttachmentToken) Detach() error {
	t.once.Do(func() {
		if t.owned {
			t.err = t.rt.DetachCurrentThread()
		}
		t.env = nil
	})
	return t.err
}
