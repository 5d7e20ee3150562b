package interactive

import (
	"bytes"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwbcore/uwb-go/internal/uwbsim"
	"github.com/uwbcore/uwb-go/pkg/bridge"
	"github.com/uwbcore/uwb-go/pkg/config"
	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/native"
)

// syncBuffer is shared by the shell and the notification printer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func newTestShell(t *testing.T, cfg *config.Config) (*Shell, *syncBuffer) {
	t.Helper()
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("host runtime needs OS thread identity")
	}

	rt := host.NewLocalRuntime()
	require.NoError(t, bridge.RegisterClasses(rt))
	reg := dispatch.NewRegistry(dispatch.Config{Runtime: rt, Factory: &uwbsim.Factory{}})
	t.Cleanup(reg.Close)

	m, err := native.NewManager(native.Config{
		Registry:       reg,
		Chips:          cfg.ChipIDs(),
		CommandTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	out := &syncBuffer{}
	s := newShell(cfg, out)
	s.Attach(m)
	return s, out
}

// run executes line and returns the shell's output for it.
func run(t *testing.T, s *Shell, out *syncBuffer, line string) string {
	t.Helper()
	out.Reset()
	require.True(t, s.Exec(line))
	return out.String()
}

func TestShellSessionFlow(t *testing.T) {
	s, out := newTestShell(t, config.Default())

	assert.Contains(t, run(t, s, out, "init"), "initialize: ok")
	assert.Contains(t, run(t, s, out, "session-init 7"), "session-init: OK")
	assert.Contains(t, run(t, s, out, "state 7"), "session 7: INIT")
	assert.Contains(t, run(t, s, out, "set-config 7 04=09 11=01"), "set-config: OK")
	assert.Contains(t, run(t, s, out, "state 7"), "session 7: IDLE")

	output := run(t, s, out, "get-config 7 04")
	assert.Contains(t, output, "get-config: OK, 1 parameters")
	assert.Contains(t, output, "0x04 = 09")

	assert.Contains(t, run(t, s, out, "start 7"), "start: OK")
	assert.Contains(t, run(t, s, out, "count"), "sessions: 1 of 5")
	assert.Contains(t, run(t, s, out, "stop 7"), "stop: OK")
	assert.Contains(t, run(t, s, out, "session-deinit 7"), "session-deinit: OK")
	assert.Contains(t, run(t, s, out, "deinit"), "deinitialize: ok")
}

func TestShellStatusErrors(t *testing.T) {
	s, out := newTestShell(t, config.Default())

	assert.Contains(t, run(t, s, out, "count"), "count: failed")
	assert.Contains(t, run(t, s, out, "session-init 1"), "session-init: FAILED")

	run(t, s, out, "init")
	assert.Contains(t, run(t, s, out, "session-init 1 ff"), "session-init: INVALID_PARAM")
	assert.Contains(t, run(t, s, out, "start 9"), "start: FAILED")
	assert.Contains(t, run(t, s, out, "state 9"), "state: failed")
}

func TestShellDeviceCommands(t *testing.T) {
	s, out := newTestShell(t, config.Default())
	run(t, s, out, "init")

	assert.Contains(t, run(t, s, out, "country us"), "country: OK")
	assert.Contains(t, run(t, s, out, "country usa"), "country: INVALID_PARAM")
	assert.Contains(t, run(t, s, out, "vendor 0e 01 0102"), "vendor 0E/01: 000102")
	// The vendor echo is printed by the chip worker after the response.
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[NTF] vendor 0E/01: 0102")
	}, time.Second, 10*time.Millisecond)

	assert.Contains(t, run(t, s, out, "vendor 10 01"), "vendor: failed")
	assert.Contains(t, run(t, s, out, "power"), "wakes 1")
	assert.Contains(t, run(t, s, out, "caps"), "caps: OK")
}

func TestShellLifecycleCommands(t *testing.T) {
	cfg, err := config.Parse([]byte("chips:\n  - id: chip0\n  - id: chip1\n    position: {x: 1, y: 2, z: 0.5}\n"))
	require.NoError(t, err)
	s, out := newTestShell(t, cfg)

	output := run(t, s, out, "chips")
	assert.Contains(t, output, "* chip0")
	assert.Contains(t, output, "  chip1 (1.00, 2.00, 0.50)")

	assert.Contains(t, run(t, s, out, "create"), "create: handle 0x")
	assert.Contains(t, run(t, s, out, "create"), "create: failed")
	assert.Contains(t, run(t, s, out, "open chip1"), "open chip1: ok")
	assert.Contains(t, run(t, s, out, "chip chip1"), "Current chip: chip1")
	assert.Contains(t, run(t, s, out, "count"), "sessions: 0 of 5")
	assert.Contains(t, run(t, s, out, "close"), "close chip1: ok")
	assert.Contains(t, run(t, s, out, "destroy"), "destroy: ok")
	assert.Contains(t, run(t, s, out, "destroy"), "destroy: failed")
}

func TestShellLogMode(t *testing.T) {
	s, out := newTestShell(t, config.Default())

	assert.Contains(t, run(t, s, out, "logmode"), "Current log mode: disabled")
	assert.Contains(t, run(t, s, out, "logmode bogus"), "logmode bogus: failed")
	run(t, s, out, "init")
	assert.Contains(t, run(t, s, out, "logmode unfiltered"), "logmode unfiltered: ok")
	assert.Contains(t, run(t, s, out, "logmode"), "Current log mode: unfiltered")
}

func TestShellLayout(t *testing.T) {
	s, out := newTestShell(t, config.Default())

	output := run(t, s, out, "layout")
	assert.Contains(t, output, "Layout 1.0 (uwb-callbacks/1): valid")
	assert.NotContains(t, output, "error:")
}

func TestShellUsageAndQuit(t *testing.T) {
	s, out := newTestShell(t, config.Default())

	assert.Contains(t, run(t, s, out, "frobnicate"), "Unknown command: frobnicate")
	assert.Contains(t, run(t, s, out, "set-config 7"), "Usage: set-config")
	assert.Contains(t, run(t, s, out, "set-config 7 04"), "Invalid config")
	assert.Contains(t, run(t, s, out, "multicast 7 swap 0a01"), "Invalid action")
	assert.Contains(t, run(t, s, out, "state x"), "Invalid session id")
	assert.Empty(t, run(t, s, out, "   "))
	assert.False(t, s.Exec("quit"))
}

func TestParseAppConfigs(t *testing.T) {
	tlvs, err := parseAppConfigs([]string{"04=09", "06=0a01"})
	require.NoError(t, err)
	require.Len(t, tlvs, 2)
	assert.EqualValues(t, 0x04, tlvs[0].Type)
	assert.Equal(t, []byte{0x0a, 0x01}, tlvs[1].Value)

	for _, bad := range []string{"04", "zz=01", "04=0"} {
		_, err := parseAppConfigs([]string{bad})
		assert.Error(t, err, bad)
	}
}
