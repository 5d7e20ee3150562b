package bridge

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

type deviceStatus struct {
	state  int32
	chipID string
}

type sessionStatus struct {
	session int64
	state   int32
	reason  int32
}

type vendorNotification struct {
	gid, oid int32
	payload  []byte
}

type dataReceived struct {
	session  int64
	status   int32
	sequence int64
	address  []byte
	src, dst int32
	payload  []byte
}

// recorder is a host notification target.
type recorder struct {
	devices    []deviceStatus
	errors     []deviceStatus
	sessions   []sessionStatus
	multicasts []*MulticastListUpdateStatus
	ranges     []*RangingData
	vendors    []vendorNotification
	data       []dataReceived

	fail error
}

var _ Callbacks = (*recorder)(nil)

func (r *recorder) OnDeviceStatusNotificationReceived(state int32, chipID string) error {
	r.devices = append(r.devices, deviceStatus{state, chipID})
	return r.fail
}

func (r *recorder) OnCoreGenericErrorNotificationReceived(status int32, chipID string) error {
	r.errors = append(r.errors, deviceStatus{status, chipID})
	return r.fail
}

func (r *recorder) OnSessionStatusNotificationReceived(session int64, state, reason int32) error {
	r.sessions = append(r.sessions, sessionStatus{session, state, reason})
	return r.fail
}

func (r *recorder) OnMulticastListUpdateNotificationReceived(s *MulticastListUpdateStatus) error {
	r.multicasts = append(r.multicasts, s)
	return r.fail
}

func (r *recorder) OnRangeDataNotificationReceived(d *RangingData) error {
	r.ranges = append(r.ranges, d)
	return r.fail
}

func (r *recorder) OnVendorUciNotificationReceived(gid, oid int32, payload []byte) error {
	r.vendors = append(r.vendors, vendorNotification{gid, oid, payload})
	return r.fail
}

func (r *recorder) OnDataReceived(session int64, status int32, seq int64, addr []byte, src, dst int32, payload []byte) error {
	r.data = append(r.data, dataReceived{session, status, seq, addr, src, dst, payload})
	return r.fail
}

// statusOnly only knows about session status.
type statusOnly struct {
	count int
}

func (s *statusOnly) OnSessionStatusNotificationReceived(int64, int32, int32) {
	s.count++
}

func newRuntime(t *testing.T) *host.LocalRuntime {
	t.Helper()
	rt := host.NewLocalRuntime()
	require.NoError(t, RegisterClasses(rt))
	return rt
}

// onWorker runs fn on a goroutine locked to its own OS thread, the way a
// manager worker runs.
func onWorker(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		fn()
	}()
	<-done
}

func TestBridgeAttachesOnceAndDetachesOnClose(t *testing.T) {
	rt := newRuntime(t)
	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: &recorder{}})
		if errors.Is(err, host.ErrThreadIdentity) {
			return
		}
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 1, rt.AttachedThreads())
		assert.NoError(t, b.Close())
		assert.NoError(t, b.Close())
		assert.Equal(t, 0, rt.AttachedThreads())

		err = b.OnVendorNotification(uci.RawMessage{GID: 9})
		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestBridgeSharesThreadAttachment(t *testing.T) {
	rt := newRuntime(t)
	onWorker(t, func() {
		first, err := New(Config{ChipID: "chip0", Runtime: rt, Target: &recorder{}})
		if err != nil {
			return
		}
		second, err := New(Config{ChipID: "chip1", Runtime: rt, Target: &recorder{}})
		if !assert.NoError(t, err) {
			return
		}
		assert.False(t, second.token.Owned())

		assert.NoError(t, second.Close())
		assert.Equal(t, 1, rt.AttachedThreads(), "borrowed attachment must survive")
		assert.NoError(t, first.Close())
		assert.Equal(t, 0, rt.AttachedThreads())
	})
}

func TestNewDetachesOnError(t *testing.T) {
	rt := newRuntime(t)
	onWorker(t, func() {
		_, err := New(Config{ChipID: "chip0", Runtime: rt})
		if errors.Is(err, host.ErrThreadIdentity) {
			return
		}
		assert.ErrorIs(t, err, ErrNilTarget)
		assert.Equal(t, 0, rt.AttachedThreads())
	})

	_, err := New(Config{ChipID: "chip0", Target: &recorder{}})
	assert.ErrorIs(t, err, host.ErrRuntimeNotReady)
}

func TestBridgeDeliversEveryKind(t *testing.T) {
	rt := newRuntime(t)
	rec := &recorder{}
	var b *Bridge

	onWorker(t, func() {
		var err error
		b, err = New(Config{ChipID: "chip0", Runtime: rt, Target: rec})
		if !assert.NoError(t, err) {
			return
		}
		defer b.Close()

		assert.NoError(t, b.Deliver(uci.DeviceStatus{State: uci.DeviceStateReady}))
		assert.NoError(t, b.Deliver(uci.GenericError{Status: uci.StatusFailed}))
		assert.NoError(t, b.Deliver(uci.SessionStatus{Session: 7, State: uci.SessionStateIdle, ReasonCode: 1}))
		assert.NoError(t, b.Deliver(uci.MulticastListUpdate{
			Session:           7,
			RemainingListSize: 2,
			StatusList: []uci.ControleeStatus{
				{MacAddress: 0x0102, SubSessionID: 11, Status: 0},
				{MacAddress: 0x0304, SubSessionID: 12, Status: 1},
			},
		}))
		assert.NoError(t, b.Deliver(uci.RawMessage{GID: 0x0E, OID: 0x01, Payload: []byte{1, 2}}))
		assert.NoError(t, b.Deliver(uci.DataRcvNotification{
			Session:             7,
			Status:              uci.StatusOk,
			UciSequenceNum:      3,
			SourceAddress:       uci.ShortMacAddress(0xBEEF),
			SourceFiraComponent: 1,
			DestFiraComponent:   2,
			Payload:             []byte("hi"),
		}))
	})

	require.NotNil(t, b)
	assert.Equal(t, []deviceStatus{{int32(uci.DeviceStateReady), "chip0"}}, rec.devices)
	assert.Equal(t, []deviceStatus{{int32(uci.StatusFailed), "chip0"}}, rec.errors)
	assert.Equal(t, []sessionStatus{{7, int32(uci.SessionStateIdle), 1}}, rec.sessions)

	require.Len(t, rec.multicasts, 1)
	m := rec.multicasts[0]
	assert.EqualValues(t, 7, m.SessionID)
	assert.EqualValues(t, 2, m.RemainingListSize)
	assert.EqualValues(t, 2, m.NumControlees)
	assert.Equal(t, []int32{0x0102, 0x0304}, m.ControleeMacAddresses)
	assert.Equal(t, []int64{11, 12}, m.SubSessionIDs)
	assert.Equal(t, []int32{0, 1}, m.Status)

	assert.Equal(t, []vendorNotification{{0x0E, 0x01, []byte{1, 2}}}, rec.vendors)
	require.Len(t, rec.data, 1)
	assert.Equal(t, []byte{0xEF, 0xBE}, rec.data[0].address)
	assert.EqualValues(t, 3, rec.data[0].sequence)
	assert.Equal(t, []byte("hi"), rec.data[0].payload)

	assert.EqualValues(t, 6, b.Delivered())
	assert.Zero(t, b.Dropped())
}

func TestBridgeEncodesRangeData(t *testing.T) {
	rt := newRuntime(t)
	rec := &recorder{}

	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: rec})
		if err != nil {
			return
		}
		defer b.Close()

		assert.NoError(t, b.OnSessionNotification(uci.SessionRangeData{
			SequenceNumber:           1,
			Session:                  7,
			CurrentRangingIntervalMs: 200,
			MeasurementType:          uci.RangingMeasurementTypeTwoWay,
			AddressIndicator:         uci.MacAddressShort,
			TwoWay: []uci.TwoWayMeasurement{
				{MacAddress: uci.ShortMacAddress(0x0A0B), Distance: 120, Rssi: 50},
				{MacAddress: uci.ShortMacAddress(0x0C0D), Distance: 240},
			},
			Raw: []byte{0xFF},
		}))
		assert.NoError(t, b.OnSessionNotification(uci.SessionRangeData{
			SequenceNumber:   2,
			Session:          7,
			MeasurementType:  uci.RangingMeasurementTypeOwrAoa,
			AddressIndicator: uci.MacAddressExtended,
			OwrAoa: &uci.OwrAoaMeasurement{
				MacAddress: uci.ExtendedMacAddress(0x0102030405060708),
				AoaAzimuth: 90,
			},
		}))
		assert.NoError(t, b.OnSessionNotification(uci.SessionRangeData{
			SequenceNumber:  3,
			Session:         7,
			MeasurementType: uci.RangingMeasurementTypeDlTdoa,
			DlTdoa: []uci.DlTdoaMeasurement{{
				MacAddress:     uci.ShortMacAddress(1),
				TxTimestamp:    1 << 40,
				AnchorLocation: []byte{1, 2, 3},
			}},
		}))

		err = b.OnSessionNotification(uci.SessionRangeData{
			Session:         7,
			MeasurementType: uci.RangingMeasurementTypeOneWay,
		})
		assert.ErrorIs(t, err, ErrUnsupportedMeasurement)
		err = b.OnSessionNotification(uci.SessionRangeData{
			Session:         7,
			MeasurementType: uci.RangingMeasurementTypeOwrAoa,
		})
		assert.ErrorIs(t, err, ErrUnsupportedMeasurement)
	})

	require.Len(t, rec.ranges, 3)

	twoWay := rec.ranges[0]
	assert.EqualValues(t, 1, twoWay.SequenceCounter)
	assert.EqualValues(t, 200, twoWay.CurrentRangingIntervalMs)
	assert.EqualValues(t, 2, twoWay.NumMeasurements)
	require.Equal(t, 2, twoWay.Measurements.Len())
	first := twoWay.Measurements.Elems[0].(*TwoWayMeasurement)
	assert.Equal(t, []byte{0x0B, 0x0A}, first.MacAddress)
	assert.EqualValues(t, 120, first.Distance)
	assert.EqualValues(t, 50, first.Rssi)
	assert.Equal(t, []byte{0xFF}, twoWay.Raw)

	owr := rec.ranges[1]
	assert.Nil(t, owr.Measurements)
	require.NotNil(t, owr.OwrAoa)
	assert.EqualValues(t, 1, owr.NumMeasurements)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, owr.OwrAoa.MacAddress)
	assert.EqualValues(t, 90, owr.OwrAoa.AoaAzimuth)

	tdoa := rec.ranges[2]
	require.Equal(t, 1, tdoa.Measurements.Len())
	dl := tdoa.Measurements.Elems[0].(*DlTdoaMeasurement)
	assert.EqualValues(t, 1<<40, dl.TxTimestamp)
	assert.Equal(t, []byte{1, 2, 3}, dl.AnchorLocation)
}

func TestBridgeMemoizesLookups(t *testing.T) {
	rt := newRuntime(t)
	rec := &recorder{}

	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: rec})
		if err != nil {
			return
		}
		defer b.Close()

		for i := 0; i < 5; i++ {
			assert.NoError(t, b.OnSessionNotification(uci.SessionStatus{Session: uint32(i)}))
		}
		for i := 0; i < 3; i++ {
			assert.NoError(t, b.OnSessionNotification(uci.SessionRangeData{
				MeasurementType: uci.RangingMeasurementTypeTwoWay,
				TwoWay:          []uci.TwoWayMeasurement{{}},
			}))
		}
	})

	assert.Len(t, rec.sessions, 5)
	assert.Len(t, rec.ranges, 3)
	// One lookup per callback, two classes for range data.
	assert.EqualValues(t, 2, rt.MethodLookups())
	assert.EqualValues(t, 2, rt.ClassLookups())
}

func TestBridgeDropsFailedDeliveries(t *testing.T) {
	rt := newRuntime(t)
	target := &statusOnly{}

	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: target})
		if err != nil {
			return
		}
		defer b.Close()

		err = b.OnVendorNotification(uci.RawMessage{GID: 9})
		var ie *InteropError
		if assert.ErrorAs(t, err, &ie) {
			assert.Equal(t, MethodVendorNotification, ie.Method)
		}
		assert.ErrorIs(t, err, host.ErrMethodNotFound)

		// Later notifications are unaffected.
		assert.NoError(t, b.OnSessionNotification(uci.SessionStatus{Session: 1}))
		assert.EqualValues(t, 1, b.Dropped())
		assert.EqualValues(t, 1, b.Delivered())
	})
	assert.Equal(t, 1, target.count)
}

func TestBridgeCallbackThrows(t *testing.T) {
	rt := newRuntime(t)
	boom := errors.New("listener gone")
	rec := &recorder{fail: boom}

	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: rec})
		if err != nil {
			return
		}
		defer b.Close()

		err = b.OnCoreNotification(uci.DeviceStatus{State: uci.DeviceStateError})
		assert.ErrorIs(t, err, host.ErrCallbackThrew)
		assert.ErrorIs(t, err, boom)
		assert.EqualValues(t, 1, b.Dropped())
	})
	assert.Len(t, rec.devices, 1)
}

func TestBridgeSkipsDataNotifications(t *testing.T) {
	rt := newRuntime(t)
	rec := &recorder{}

	onWorker(t, func() {
		b, err := New(Config{ChipID: "chip0", Runtime: rt, Target: rec})
		if err != nil {
			return
		}
		defer b.Close()

		assert.NoError(t, b.OnSessionNotification(uci.DataCredit{Session: 1}))
		assert.NoError(t, b.OnSessionNotification(uci.DataTransferStatus{Session: 1}))
		assert.Zero(t, b.Delivered())
	})
	assert.Zero(t, rt.Calls())
}
