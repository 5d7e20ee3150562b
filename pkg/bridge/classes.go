package bridge

import "github.com/uwbcore/uwb-go/pkg/host"

// MulticastListUpdateStatus is the host-side multicast list update result.
type MulticastListUpdateStatus struct {
	SessionID             int64
	RemainingListSize     int32
	NumControlees         int32
	ControleeMacAddresses []int32
	SubSessionIDs         []int64
	Status                []int32
}

// RangingData is the host-side ranging batch. Measurements holds the
// two-way or DL-TDoA measurements; OwrAoa is set for OWR-AoA batches.
type RangingData struct {
	SequenceCounter          int64
	SessionID                int64
	RcrIndicator             int32
	CurrentRangingIntervalMs int64
	MeasurementType          int32
	MacAddressMode           int32
	NumMeasurements          int32
	Measurements             *host.Array
	OwrAoa                   *OwrAoaMeasurement
	Raw                      []byte
}

// TwoWayMeasurement is the host-side two-way ranging measurement.
type TwoWayMeasurement struct {
	MacAddress                 []byte
	Status                     int32
	Nlos                       int32
	Distance                   int32
	AoaAzimuth                 int32
	AoaAzimuthFom              int32
	AoaElevation               int32
	AoaElevationFom            int32
	AoaDestinationAzimuth      int32
	AoaDestinationAzimuthFom   int32
	AoaDestinationElevation    int32
	AoaDestinationElevationFom int32
	SlotIndex                  int32
	Rssi                       int32
}

// OwrAoaMeasurement is the host-side OWR-AoA measurement.
type OwrAoaMeasurement struct {
	MacAddress          []byte
	Status              int32
	Nlos                int32
	FrameSequenceNumber int32
	BlockIndex          int32
	AoaAzimuth          int32
	AoaAzimuthFom       int32
	AoaElevation        int32
	AoaElevationFom     int32
}

// DlTdoaMeasurement is the host-side DL-TDoA measurement.
type DlTdoaMeasurement struct {
	MacAddress            []byte
	Status                int32
	MessageType           int32
	MessageControl        int32
	BlockIndex            int32
	RoundIndex            int32
	Nlos                  int32
	AoaAzimuth            int32
	AoaAzimuthFom         int32
	AoaElevation          int32
	AoaElevationFom       int32
	Rssi                  int32
	TxTimestamp           int64
	RxTimestamp           int64
	AnchorCfo             int32
	Cfo                   int32
	InitiatorReplyTime    int64
	ResponderReplyTime    int64
	InitiatorResponderTof int32
	AnchorLocation        []byte
	ActiveRangingRounds   []byte
}

// Callbacks is the method set a notification target exposes to a
// LocalRuntime. Returning an error counts as the callback throwing.
type Callbacks interface {
	OnDeviceStatusNotificationReceived(state int32, chipID string) error
	OnCoreGenericErrorNotificationReceived(status int32, chipID string) error
	OnSessionStatusNotificationReceived(sessionID int64, state, reasonCode int32) error
	OnMulticastListUpdateNotificationReceived(status *MulticastListUpdateStatus) error
	OnRangeDataNotificationReceived(data *RangingData) error
	OnVendorUciNotificationReceived(gid, oid int32, payload []byte) error
	OnDataReceived(sessionID int64, status int32, sequence int64, address []byte, srcEndpoint, dstEndpoint int32, payload []byte) error
}

// RegisterClasses defines the classes the encoders construct on a
// LocalRuntime.
func RegisterClasses(rt *host.LocalRuntime) error {
	defs := []struct {
		name  string
		ctors host.Constructors
	}{
		{ClassMulticastListUpdateStatus, host.Constructors{
			CtorMulticastListUpdateStatus: func(session int64, remaining, n int32, macs []int32, subs []int64, status []int32) *MulticastListUpdateStatus {
				return &MulticastListUpdateStatus{
					SessionID:             session,
					RemainingListSize:     remaining,
					NumControlees:         n,
					ControleeMacAddresses: macs,
					SubSessionIDs:         subs,
					Status:                status,
				}
			},
		}},
		{ClassTwoWayMeasurement, host.Constructors{
			CtorTwoWayMeasurement: func(mac []byte, status, nlos, distance, az, azFom, el, elFom, dAz, dAzFom, dEl, dElFom, slot, rssi int32) *TwoWayMeasurement {
				return &TwoWayMeasurement{
					MacAddress:                 mac,
					Status:                     status,
					Nlos:                       nlos,
					Distance:                   distance,
					AoaAzimuth:                 az,
					AoaAzimuthFom:              azFom,
					AoaElevation:               el,
					AoaElevationFom:            elFom,
					AoaDestinationAzimuth:      dAz,
					AoaDestinationAzimuthFom:   dAzFom,
					AoaDestinationElevation:    dEl,
					AoaDestinationElevationFom: dElFom,
					SlotIndex:                  slot,
					Rssi:                       rssi,
				}
			},
		}},
		{ClassOwrAoaMeasurement, host.Constructors{
			CtorOwrAoaMeasurement: func(mac []byte, status, nlos, seq, block, az, azFom, el, elFom int32) *OwrAoaMeasurement {
				return &OwrAoaMeasurement{
					MacAddress:          mac,
					Status:              status,
					Nlos:                nlos,
					FrameSequenceNumber: seq,
					BlockIndex:          block,
					AoaAzimuth:          az,
					AoaAzimuthFom:       azFom,
					AoaElevation:        el,
					AoaElevationFom:     elFom,
				}
			},
		}},
		{ClassDlTdoaMeasurement, host.Constructors{
			CtorDlTdoaMeasurement: func(mac []byte, status, msgType, msgControl, block, round, nlos, az, azFom, el, elFom, rssi int32,
				tx, rx int64, anchorCfo, cfo int32, initReply, respReply int64, tof int32, location, rounds []byte) *DlTdoaMeasurement {
				return &DlTdoaMeasurement{
					MacAddress:            mac,
					Status:                status,
					MessageType:           msgType,
					MessageControl:        msgControl,
					BlockIndex:            block,
					RoundIndex:            round,
					Nlos:                  nlos,
					AoaAzimuth:            az,
					AoaAzimuthFom:         azFom,
					AoaElevation:          el,
					AoaElevationFom:       elFom,
					Rssi:                  rssi,
					TxTimestamp:           tx,
					RxTimestamp:           rx,
					AnchorCfo:             anchorCfo,
					Cfo:                   cfo,
					InitiatorReplyTime:    initReply,
					ResponderReplyTime:    respReply,
					InitiatorResponderTof: tof,
					AnchorLocation:        location,
					ActiveRangingRounds:   rounds,
				}
			},
		}},
		{ClassRangingData, host.Constructors{
			CtorRangingDataTwoWay: newRangingData,
			CtorRangingDataDlTdoa: newRangingData,
			CtorRangingDataOwrAoa: func(seq, session int64, rcr int32, interval int64, mt, mode, n int32, m *OwrAoaMeasurement, raw []byte) *RangingData {
				return &RangingData{
					SequenceCounter:          seq,
					SessionID:                session,
					RcrIndicator:             rcr,
					CurrentRangingIntervalMs: interval,
					MeasurementType:          mt,
					MacAddressMode:           mode,
					NumMeasurements:          n,
					OwrAoa:                   m,
					Raw:                      raw,
				}
			},
		}},
	}
	for _, d := range defs {
		if err := rt.DefineClass(d.name, d.ctors); err != nil {
			return err
		}
	}
	return nil
}

func newRangingData(seq, session int64, rcr int32, interval int64, mt, mode, n int32, m *host.Array, raw []byte) *RangingData {
	return &RangingData{
		SequenceCounter:          seq,
		SessionID:                session,
		RcrIndicator:             rcr,
		CurrentRangingIntervalMs: interval,
		MeasurementType:          mt,
		MacAddressMode:           mode,
		NumMeasurements:          n,
		Measurements:             m,
		Raw:                      raw,
	}
}
