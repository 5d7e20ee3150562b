package uwbsim

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// recorder is a NotificationManager that forwards everything to a channel.
type recorder struct {
	events chan any
	closed chan struct{}
}

func newRecorder() *recorder {
	return &recorder{events: make(chan any, 256), closed: make(chan struct{})}
}

func (r *recorder) OnCoreNotification(n uci.CoreNotification) error {
	r.events <- n
	return nil
}

func (r *recorder) OnSessionNotification(n uci.SessionNotification) error {
	r.events <- n
	return nil
}

func (r *recorder) OnVendorNotification(n uci.RawMessage) error {
	r.events <- n
	return nil
}

func (r *recorder) OnDataRcvNotification(n uci.DataRcvNotification) error {
	r.events <- n
	return nil
}

func (r *recorder) Close() error {
	close(r.closed)
	return nil
}

func (r *recorder) next(t *testing.T) any {
	t.Helper()
	select {
	case ev := <-r.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no notification")
		return nil
	}
}

func (r *recorder) none(t *testing.T) {
	t.Helper()
	select {
	case ev := <-r.events:
		t.Fatalf("unexpected notification %#v", ev)
	default:
	}
}

// captureLog collects protocol capture events.
type captureLog struct {
	mu     sync.Mutex
	events []ucilog.Event
}

func (c *captureLog) Log(ev ucilog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureLog) snapshot() []ucilog.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ucilog.Event(nil), c.events...)
}

type fixture struct {
	chip *Chip
	rec  *recorder
	log  *captureLog
	exec *dispatch.Executor
}

func newChip(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{rec: newRecorder(), log: &captureLog{}, exec: dispatch.NewExecutor(nil)}
	c, err := New(context.Background(), dispatch.ManagerParams{
		ChipID: "chip0",
		Notifications: uci.NotificationManagerBuilderFunc(func() (uci.NotificationManager, error) {
			return f.rec, nil
		}),
		ProtocolLogger: ucilog.NewChipLogger("chip0", f.log, ucilog.ModeUnfiltered),
		Executor:       f.exec,
	}, opts)
	require.NoError(t, err)
	f.chip = c
	t.Cleanup(func() {
		c.Close()
		f.exec.Release()
	})
	return f
}

func (f *fixture) open(t *testing.T) {
	t.Helper()
	require.NoError(t, f.chip.OpenHal(context.Background()))
	assert.Equal(t, uci.DeviceStatus{State: uci.DeviceStateReady}, f.rec.next(t))
}

func TestSessionLifecycle(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)

	require.NoError(t, f.chip.SessionInit(ctx, 7, uci.SessionTypeFiraRanging))
	state, err := f.chip.SessionGetState(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uci.SessionStateInit, state)

	resp, err := f.chip.SessionSetAppConfig(ctx, 7, []uci.AppConfigTlv{
		{Type: uci.AppConfigChannelNumber, Value: []byte{9}},
		{Type: uci.AppConfigDeviceRole, Value: []byte{1}},
	})
	require.NoError(t, err)
	assert.Equal(t, uci.StatusOk, resp.Status)

	require.NoError(t, f.chip.RangeStart(ctx, 7))
	require.NoError(t, f.chip.RangeStop(ctx, 7))
	require.NoError(t, f.chip.SessionDeinit(ctx, 7))

	for _, want := range []uci.SessionState{
		uci.SessionStateInit,
		uci.SessionStateIdle,
		uci.SessionStateActive,
		uci.SessionStateIdle,
		uci.SessionStateDeinit,
	} {
		ev := f.rec.next(t)
		status, ok := ev.(uci.SessionStatus)
		require.True(t, ok, "got %#v", ev)
		assert.EqualValues(t, 7, status.Session)
		assert.Equal(t, want, status.State)
	}
	f.rec.none(t)

	_, err = f.chip.SessionGetState(ctx, 7)
	assert.Equal(t, uci.StatusFailed, uci.StatusFromError(err))
	var se *uci.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, uci.StatusSessionNotExist, se.Status)
}

func TestAppConfigRoundTrip(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 1, uci.SessionTypeFiraRanging))

	_, err := f.chip.SessionSetAppConfig(ctx, 1, []uci.AppConfigTlv{
		{Type: uci.AppConfigSlotDuration, Value: []byte{0x60, 0x09}},
		{Type: uci.AppConfigChannelNumber, Value: []byte{5}},
	})
	require.NoError(t, err)

	all, err := f.chip.SessionGetAppConfig(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []uci.AppConfigTlv{
		{Type: uci.AppConfigChannelNumber, Value: []byte{5}},
		{Type: uci.AppConfigSlotDuration, Value: []byte{0x60, 0x09}},
	}, all)

	some, err := f.chip.SessionGetAppConfig(ctx, 1, []uci.AppConfigTlvType{uci.AppConfigSlotDuration, uci.AppConfigDeviceRole})
	require.NoError(t, err)
	assert.Len(t, some, 1)
}

func TestSessionErrors(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()

	err := f.chip.SessionInit(ctx, 1, uci.SessionTypeFiraRanging)
	assert.Equal(t, uci.StatusFailed, uci.StatusFromError(err), "chip not open")

	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 1, uci.SessionTypeFiraRanging))
	assert.ErrorIs(t, f.chip.SessionInit(ctx, 1, uci.SessionTypeFiraRanging), uci.ErrDuplicatedSessionID)

	for id := uint32(2); id <= MaxSessions; id++ {
		require.NoError(t, f.chip.SessionInit(ctx, id, uci.SessionTypeFiraRanging))
	}
	err = f.chip.SessionInit(ctx, 99, uci.SessionTypeFiraRanging)
	assert.ErrorIs(t, err, uci.ErrMaxSessionsExceeded)
	assert.Equal(t, uci.StatusMaxSessionsExceeded, uci.StatusFromError(err))

	n, err := f.chip.SessionGetCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, MaxSessions, n)

	// Not configured yet.
	assert.Error(t, f.chip.RangeStart(ctx, 1))
	assert.ErrorIs(t, f.chip.DeviceReset(ctx, 7), uci.ErrBadParameters)
	require.NoError(t, f.chip.DeviceReset(ctx, uci.ResetConfigUwbsReset))
	n, err = f.chip.SessionGetCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNotificationOrderingPerChip(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 3, uci.SessionTypeFiraRanging))
	_, err := f.chip.SessionSetAppConfig(ctx, 3, nil)
	require.NoError(t, err)
	require.NoError(t, f.chip.RangeStart(ctx, 3))
	for range 3 {
		f.rec.next(t)
	}

	for range 10 {
		require.NoError(t, f.chip.TriggerRanging(ctx))
	}
	var last uint32
	for range 10 {
		ev := f.rec.next(t)
		rd, ok := ev.(uci.SessionRangeData)
		require.True(t, ok, "got %#v", ev)
		assert.Greater(t, rd.SequenceNumber, last)
		last = rd.SequenceNumber
		assert.Equal(t, 1, rd.MeasurementCount())
	}
}

func TestPeriodicRangeData(t *testing.T) {
	f := newChip(t, Options{RangeInterval: 5 * time.Millisecond})
	ctx := context.Background()
	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 3, uci.SessionTypeFiraRanging))
	_, err := f.chip.SessionSetAppConfig(ctx, 3, nil)
	require.NoError(t, err)
	require.NoError(t, f.chip.RangeStart(ctx, 3))

	deadline := time.After(time.Second)
	for seen := 0; seen < 2; {
		select {
		case ev := <-f.rec.events:
			if rd, ok := ev.(uci.SessionRangeData); ok {
				assert.EqualValues(t, 5, rd.CurrentRangingIntervalMs)
				seen++
			}
		case <-deadline:
			t.Fatal("no periodic range data")
		}
	}
}

func TestCommandsSerializedPerChip(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	f := newChip(t, Options{OnCommand: func(_, op string) {
		if op != "SessionGetCount" {
			return
		}
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
	}})
	f.open(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.chip.SessionGetCount(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, maxInFlight.Load())
}

func TestCommandTimeout(t *testing.T) {
	release := make(chan struct{})
	f := newChip(t, Options{
		CommandTimeout: 20 * time.Millisecond,
		OnCommand: func(_, op string) {
			if op == "GetPowerStats" {
				<-release
			}
		},
	})
	defer close(release)
	f.open(t)

	_, err := f.chip.GetPowerStats(context.Background())
	assert.ErrorIs(t, err, uci.ErrTimeout)
	assert.Equal(t, uci.StatusFailed, uci.StatusFromError(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.chip.SessionGetCount(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCloseStopsWorker(t *testing.T) {
	f := newChip(t, Options{})
	require.NoError(t, f.chip.Close())
	require.NoError(t, f.chip.Close())

	select {
	case <-f.rec.closed:
	case <-time.After(time.Second):
		t.Fatal("notification manager not closed")
	}
	assert.ErrorIs(t, f.chip.OpenHal(context.Background()), uci.ErrManagerClosed)
	assert.ErrorIs(t, f.chip.SetLoggerMode(ucilog.ModeFiltered), uci.ErrManagerClosed)

	f.exec.Release()
	select {
	case <-f.exec.Done():
	case <-time.After(time.Second):
		t.Fatal("worker still running")
	}
}

func TestNewFailsWhenBuildFails(t *testing.T) {
	boom := errors.New("attach failed")
	exec := dispatch.NewExecutor(nil)
	defer exec.Release()

	_, err := New(context.Background(), dispatch.ManagerParams{
		ChipID: "chip0",
		Notifications: uci.NotificationManagerBuilderFunc(func() (uci.NotificationManager, error) {
			return nil, boom
		}),
		Executor: exec,
	}, Options{})
	assert.ErrorIs(t, err, boom)
}

func TestSendDataLoopback(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)

	addr := uci.ShortMacAddress(0x1234)
	err := f.chip.SendData(ctx, 4, addr, 1, 9, []byte("ping"))
	assert.Error(t, err, "no session")

	require.NoError(t, f.chip.SessionInit(ctx, 4, uci.SessionTypeFiraRangingAndInBandData))
	_, err = f.chip.SessionSetAppConfig(ctx, 4, nil)
	require.NoError(t, err)
	require.NoError(t, f.chip.RangeStart(ctx, 4))
	for range 3 {
		f.rec.next(t)
	}

	require.NoError(t, f.chip.SendData(ctx, 4, addr, 1, 9, []byte("ping")))
	assert.Equal(t, uci.DataCredit{Session: 4, CreditAvailability: 1}, f.rec.next(t))
	assert.Equal(t, uci.DataTransferStatus{Session: 4, UciSequenceNumber: 9}, f.rec.next(t))
	rcv, ok := f.rec.next(t).(uci.DataRcvNotification)
	require.True(t, ok)
	assert.Equal(t, addr, rcv.SourceAddress)
	assert.Equal(t, []byte("ping"), rcv.Payload)
	assert.EqualValues(t, 9, rcv.UciSequenceNum)
}

func TestMulticastListUpdate(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 2, uci.SessionTypeFiraRanging))
	f.rec.next(t)

	add, err := uci.BuildControlees(uci.MulticastActionAddWithShortKey, 2,
		[]uint16{0xA1, 0xA2}, []uint32{10, 11}, make([]byte, 32))
	require.NoError(t, err)
	require.NoError(t, f.chip.SessionUpdateControllerMulticastList(ctx, 2, uci.MulticastActionAddWithShortKey, add))

	mu, ok := f.rec.next(t).(uci.MulticastListUpdate)
	require.True(t, ok)
	assert.Equal(t, 2, mu.RemainingListSize)
	require.Len(t, mu.StatusList, 2)
	assert.Equal(t, uci.ControleeStatus{MacAddress: 0xA2, SubSessionID: 11}, mu.StatusList[1])

	remove := uci.NoKeyControlees{{ShortAddress: 0xA1}, {ShortAddress: 0xFF}}
	require.NoError(t, f.chip.SessionUpdateControllerMulticastList(ctx, 2, uci.MulticastActionRemove, remove))
	mu = f.rec.next(t).(uci.MulticastListUpdate)
	assert.Equal(t, 1, mu.RemainingListSize)
	assert.EqualValues(t, uci.StatusOk, mu.StatusList[0].Status)
	assert.EqualValues(t, uci.StatusInvalidParam, mu.StatusList[1].Status)
}

func TestRawVendorCommand(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)

	resp, err := f.chip.RawUciCmd(ctx, 1, 0x0E, 0x02, []byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, uci.RawMessage{GID: 0x0E, OID: 0x02, Payload: []byte{0x00, 0xAA}}, resp)
	assert.Equal(t, uci.RawMessage{GID: 0x0E, OID: 0x02, Payload: []byte{0xAA}}, f.rec.next(t))

	_, err = f.chip.RawUciCmd(ctx, 1, 0x10, 0x02, nil)
	assert.ErrorIs(t, err, uci.ErrBadParameters)

	_, err = f.chip.RawUciCmd(ctx, 1, uint32(uci.GroupCore), 0x02, nil)
	require.NoError(t, err)
	f.rec.none(t)
}

func TestInject(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()

	require.NoError(t, f.chip.Inject(ctx, uci.GenericError{Status: uci.StatusFailed}))
	assert.Equal(t, uci.GenericError{Status: uci.StatusFailed}, f.rec.next(t))
	assert.ErrorIs(t, f.chip.Inject(ctx, "bogus"), uci.ErrBadParameters)
}

func TestCountryCodeAndPowerStats(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)

	cc, err := uci.NewCountryCode([]byte("US"))
	require.NoError(t, err)
	require.NoError(t, f.chip.SetCountryCode(ctx, cc))
	got, err := f.chip.CountryCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, cc, got)

	stats, err := f.chip.GetPowerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uci.StatusOk, stats.Status)
	assert.EqualValues(t, 1, stats.TotalWakeCount)

	caps, err := f.chip.CoreGetCapsInfo(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, caps)
}

func TestProtocolCapture(t *testing.T) {
	f := newChip(t, Options{})
	ctx := context.Background()
	f.open(t)
	require.NoError(t, f.chip.SessionInit(ctx, 5, uci.SessionTypeFiraRanging))
	// Notification packets are recorded before delivery.
	f.rec.next(t)

	var commands, responses, notifications, states int
	for _, ev := range f.log.snapshot() {
		assert.Equal(t, "chip0", ev.ChipID)
		switch {
		case ev.Packet != nil && ev.Packet.Kind == ucilog.PacketKindCommand:
			commands++
		case ev.Packet != nil && ev.Packet.Kind == ucilog.PacketKindResponse:
			responses++
		case ev.Packet != nil && ev.Packet.Kind == ucilog.PacketKindNotification:
			notifications++
		case ev.StateChange != nil:
			states++
		}
	}
	assert.Equal(t, 2, commands)
	assert.Equal(t, 2, responses)
	assert.Equal(t, 2, notifications)
	assert.Equal(t, 2, states)

	require.NoError(t, f.chip.SetLoggerMode(ucilog.ModeDisabled))
	before := len(f.log.snapshot())
	_, err := f.chip.SessionGetCount(ctx)
	require.NoError(t, err)
	assert.Len(t, f.log.snapshot(), before)
}
