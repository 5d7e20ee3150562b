package native

import (
	"sync"

	"github.com/uwbcore/uwb-go/pkg/host"
)

var (
	runtimeMu   sync.RWMutex
	hostRuntime host.Runtime
)

// Init records the process host runtime. Only the first non-nil runtime is
// kept; later calls are no-ops.
func Init(rt host.Runtime) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	if hostRuntime == nil {
		hostRuntime = rt
	}
}

// Runtime returns the runtime recorded by Init.
func Runtime() (host.Runtime, error) {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	if hostRuntime == nil {
		return nil, host.ErrRuntimeNotReady
	}
	return hostRuntime, nil
}
