package bridge

import (
	"fmt"

	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

// OnCoreNotification implements uci.NotificationManager.
func (b *Bridge) OnCoreNotification(n uci.CoreNotification) error {
	switch n := n.(type) {
	case uci.DeviceStatus:
		return b.deliver(MethodDeviceStatus, func(env host.Env) error {
			return b.call(env, MethodDeviceStatus, SigDeviceStatus, int32(n.State), b.chipID)
		})
	case uci.GenericError:
		return b.deliver(MethodCoreGenericError, func(env host.Env) error {
			return b.call(env, MethodCoreGenericError, SigCoreGenericError, int32(n.Status), b.chipID)
		})
	}
	return fmt.Errorf("bridge: unknown core notification %T", n)
}

// OnSessionNotification implements uci.NotificationManager. Data credit
// and data transfer status notifications are not forwarded.
func (b *Bridge) OnSessionNotification(n uci.SessionNotification) error {
	switch n := n.(type) {
	case uci.SessionStatus:
		return b.deliver(MethodSessionStatus, func(env host.Env) error {
			return b.call(env, MethodSessionStatus, SigSessionStatus,
				int64(n.Session), int32(n.State), int32(n.ReasonCode))
		})
	case uci.MulticastListUpdate:
		return b.deliver(MethodMulticastListUpdate, func(env host.Env) error {
			return b.encodeMulticastListUpdate(env, n)
		})
	case uci.SessionRangeData:
		return b.deliver(MethodRangeData, func(env host.Env) error {
			return b.encodeRangeData(env, &n)
		})
	case uci.DataCredit, uci.DataTransferStatus:
		b.logger.Warn("unexpected session notification",
			"type", fmt.Sprintf("%T", n),
			"session", n.SessionID())
		return nil
	}
	return fmt.Errorf("bridge: unknown session notification %T", n)
}

// OnVendorNotification implements uci.NotificationManager.
func (b *Bridge) OnVendorNotification(n uci.RawMessage) error {
	return b.deliver(MethodVendorNotification, func(env host.Env) error {
		return b.call(env, MethodVendorNotification, SigVendorNotification,
			int32(n.GID), int32(n.OID), n.Payload)
	})
}

// OnDataRcvNotification implements uci.NotificationManager.
func (b *Bridge) OnDataRcvNotification(n uci.DataRcvNotification) error {
	return b.deliver(MethodDataReceived, func(env host.Env) error {
		return b.call(env, MethodDataReceived, SigDataReceived,
			int64(n.Session),
			int32(n.Status),
			int64(n.UciSequenceNum),
			n.SourceAddress.Bytes(),
			int32(n.SourceFiraComponent),
			int32(n.DestFiraComponent),
			n.Payload)
	})
}

func (b *Bridge) encodeMulticastListUpdate(env host.Env, n uci.MulticastListUpdate) error {
	count := len(n.StatusList)
	macs := make([]int32, count)
	subs := make([]int64, count)
	status := make([]int32, count)
	for i, c := range n.StatusList {
		macs[i] = int32(c.MacAddress)
		subs[i] = int64(c.SubSessionID)
		status[i] = int32(c.Status)
	}

	obj, err := b.newObject(env, ClassMulticastListUpdateStatus, CtorMulticastListUpdateStatus,
		int64(n.Session), int32(n.RemainingListSize), int32(count), macs, subs, status)
	if err != nil {
		return &InteropError{Method: MethodMulticastListUpdate, Class: ClassMulticastListUpdateStatus, Err: err}
	}
	return b.call(env, MethodMulticastListUpdate, SigMulticastListUpdate, obj)
}

func (b *Bridge) encodeRangeData(env host.Env, d *uci.SessionRangeData) error {
	var (
		ctor         string
		measurements host.Value
		err          error
	)
	switch d.MeasurementType {
	case uci.RangingMeasurementTypeTwoWay:
		ctor = CtorRangingDataTwoWay
		measurements, err = b.encodeTwoWay(env, d.TwoWay)
	case uci.RangingMeasurementTypeDlTdoa:
		ctor = CtorRangingDataDlTdoa
		measurements, err = b.encodeDlTdoa(env, d.DlTdoa)
	case uci.RangingMeasurementTypeOwrAoa:
		ctor = CtorRangingDataOwrAoa
		if d.OwrAoa == nil {
			return fmt.Errorf("%w: OWR-AoA batch without measurement", ErrUnsupportedMeasurement)
		}
		measurements, err = b.encodeOwrAoa(env, d.OwrAoa)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMeasurement, d.MeasurementType)
	}
	if err != nil {
		return err
	}

	obj, err := b.newObject(env, ClassRangingData, ctor,
		int64(d.SequenceNumber),
		int64(d.Session),
		int32(d.RcrIndicator),
		int64(d.CurrentRangingIntervalMs),
		int32(d.MeasurementType),
		int32(d.AddressIndicator),
		int32(d.MeasurementCount()),
		measurements,
		d.Raw)
	if err != nil {
		return &InteropError{Method: MethodRangeData, Class: ClassRangingData, Err: err}
	}
	return b.call(env, MethodRangeData, SigRangeData, obj)
}

func (b *Bridge) encodeTwoWay(env host.Env, ms []uci.TwoWayMeasurement) (*host.Array, error) {
	objs := make([]host.Object, 0, len(ms))
	for _, m := range ms {
		obj, err := b.newObject(env, ClassTwoWayMeasurement, CtorTwoWayMeasurement,
			m.MacAddress.Bytes(),
			int32(m.Status),
			int32(m.Nlos),
			int32(m.Distance),
			int32(m.AoaAzimuth),
			int32(m.AoaAzimuthFom),
			int32(m.AoaElevation),
			int32(m.AoaElevationFom),
			int32(m.AoaDestinationAzimuth),
			int32(m.AoaDestinationAzimuthFom),
			int32(m.AoaDestinationElevation),
			int32(m.AoaDestinationElevationFom),
			int32(m.SlotIndex),
			int32(m.Rssi))
		if err != nil {
			return nil, &InteropError{Method: MethodRangeData, Class: ClassTwoWayMeasurement, Err: err}
		}
		objs = append(objs, obj)
	}
	return b.array(env, ClassTwoWayMeasurement, objs)
}

func (b *Bridge) encodeOwrAoa(env host.Env, m *uci.OwrAoaMeasurement) (host.Object, error) {
	obj, err := b.newObject(env, ClassOwrAoaMeasurement, CtorOwrAoaMeasurement,
		m.MacAddress.Bytes(),
		int32(m.Status),
		int32(m.Nlos),
		int32(m.FrameSequenceNumber),
		int32(m.BlockIndex),
		int32(m.AoaAzimuth),
		int32(m.AoaAzimuthFom),
		int32(m.AoaElevation),
		int32(m.AoaElevationFom))
	if err != nil {
		return nil, &InteropError{Method: MethodRangeData, Class: ClassOwrAoaMeasurement, Err: err}
	}
	return obj, nil
}

func (b *Bridge) encodeDlTdoa(env host.Env, ms []uci.DlTdoaMeasurement) (*host.Array, error) {
	objs := make([]host.Object, 0, len(ms))
	for _, m := range ms {
		obj, err := b.newObject(env, ClassDlTdoaMeasurement, CtorDlTdoaMeasurement,
			m.MacAddress.Bytes(),
			int32(m.Status),
			int32(m.MessageType),
			int32(m.MessageControl),
			int32(m.BlockIndex),
			int32(m.RoundIndex),
			int32(m.Nlos),
			int32(m.AoaAzimuth),
			int32(m.AoaAzimuthFom),
			int32(m.AoaElevation),
			int32(m.AoaElevationFom),
			int32(m.Rssi),
			int64(m.TxTimestamp),
			int64(m.RxTimestamp),
			int32(m.AnchorCfo),
			int32(m.Cfo),
			int64(m.InitiatorReplyTime),
			int64(m.ResponderReplyTime),
			int32(m.InitiatorResponderTof),
			m.AnchorLocation,
			m.ActiveRangingRounds)
		if err != nil {
			return nil, &InteropError{Method: MethodRangeData, Class: ClassDlTdoaMeasurement, Err: err}
		}
		objs = append(objs, obj)
	}
	return b.array(env, ClassDlTdoaMeasurement, objs)
}

func (b *Bridge) array(env host.Env, cls string, objs []host.Object) (*host.Array, error) {
	c, err := b.class(env, cls)
	if err != nil {
		return nil, &InteropError{Method: MethodRangeData, Class: cls, Err: err}
	}
	arr, err := env.NewObjectArray(c, objs)
	if err != nil {
		return nil, &InteropError{Method: MethodRangeData, Class: cls, Err: err}
	}
	return arr, nil
}
