//go:build darwin

package host

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	threadIDOnce sync.Once
	threadIDErr  error

	pthreadThreadIDNP func(thread uintptr, id *uint64) int32
)

func loadThreadID() {
	lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		threadIDErr = fmt.Errorf("%w: %w", ErrThreadIdentity, err)
		return
	}
	purego.RegisterLibFunc(&pthreadThreadIDNP, lib, "pthread_threadid_np")
}

func currentThreadID() (int64, error) {
	threadIDOnce.Do(loadThreadID)
	if threadIDErr != nil {
		return 0, threadIDErr
	}
	var id uint64
	// A zero thread argument selects the calling thread.
	if rc := pthreadThreadIDNP(0, &id); rc != 0 {
		return 0, fmt.Errorf("%w: pthread_threadid_np returned %d", ErrThreadIdentity, rc)
	}
	return int64(id), nil
}
