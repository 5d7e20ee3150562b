package uci

// CoreNotification is a core group notification: DeviceStatus or GenericError.
type CoreNotification interface {
	coreNotification()
}

// DeviceStatus reports a chip state change.
type DeviceStatus struct {
	State DeviceState
}

// GenericError reports an asynchronous chip error.
type GenericError struct {
	Status StatusCode
}

func (DeviceStatus) coreNotification() {}
func (GenericError) coreNotification() {}

// SessionNotification is a session notification. It is one of SessionStatus,
// MulticastListUpdate, SessionRangeData, DataCredit or DataTransferStatus.
type SessionNotification interface {
	SessionID() uint32
	sessionNotification()
}

// SessionStatus reports a session state change.
type SessionStatus struct {
	Session    uint32
	State      SessionState
	ReasonCode uint8
}

// ControleeStatus is the per-controlee result of a multicast list update.
type ControleeStatus struct {
	MacAddress   uint16
	SubSessionID uint32
	Status       uint8
}

// MulticastListUpdate reports the result of a multicast list update.
type MulticastListUpdate struct {
	Session           uint32
	RemainingListSize int
	StatusList        []ControleeStatus
}

// SessionRangeData is one batch of ranging results. Which measurement field
// is populated depends on MeasurementType; OWR-AoA batches carry exactly
// one measurement.
type SessionRangeData struct {
	SequenceNumber           uint32
	Session                  uint32
	RcrIndicator             uint8
	CurrentRangingIntervalMs uint32
	MeasurementType          RangingMeasurementType
	AddressIndicator         MacAddressIndicator

	TwoWay []TwoWayMeasurement
	OwrAoa *OwrAoaMeasurement
	DlTdoa []DlTdoaMeasurement

	// Raw is the undecoded notification payload.
	Raw []byte
}

// MeasurementCount returns the number of measurements in the batch.
func (d *SessionRangeData) MeasurementCount() int {
	switch d.MeasurementType {
	case RangingMeasurementTypeTwoWay:
		return len(d.TwoWay)
	case RangingMeasurementTypeDlTdoa:
		return len(d.DlTdoa)
	case RangingMeasurementTypeOwrAoa:
		if d.OwrAoa != nil {
			return 1
		}
	}
	return 0
}

// TwoWayMeasurement is a two-way ranging result.
type TwoWayMeasurement struct {
	MacAddress                 MacAddress
	Status                     StatusCode
	Nlos                       uint8
	Distance                   uint16
	AoaAzimuth                 uint16
	AoaAzimuthFom              uint8
	AoaElevation               uint16
	AoaElevationFom            uint8
	AoaDestinationAzimuth      uint16
	AoaDestinationAzimuthFom   uint8
	AoaDestinationElevation    uint16
	AoaDestinationElevationFom uint8
	SlotIndex                  uint8
	Rssi                       uint8
}

// OwrAoaMeasurement is a one-way-ranging angle-of-arrival result.
type OwrAoaMeasurement struct {
	MacAddress          MacAddress
	Status              uint8
	Nlos                uint8
	FrameSequenceNumber uint8
	BlockIndex          uint16
	AoaAzimuth          uint16
	AoaAzimuthFom       uint8
	AoaElevation        uint16
	AoaElevationFom     uint8
}

// DlTdoaMeasurement is a downlink time-difference-of-arrival result.
type DlTdoaMeasurement struct {
	MacAddress            MacAddress
	Status                uint8
	MessageType           uint8
	MessageControl        uint16
	BlockIndex            uint16
	RoundIndex            uint8
	Nlos                  uint8
	AoaAzimuth            uint16
	AoaAzimuthFom         uint8
	AoaElevation          uint16
	AoaElevationFom       uint8
	Rssi                  uint8
	TxTimestamp           uint64
	RxTimestamp           uint64
	AnchorCfo             uint16
	Cfo                   uint16
	InitiatorReplyTime    uint32
	ResponderReplyTime    uint32
	InitiatorResponderTof uint16
	AnchorLocation        []byte
	ActiveRangingRounds   []byte
}

// DataCredit reports data transfer credit availability.
type DataCredit struct {
	Session            uint32
	CreditAvailability uint8
}

// DataTransferStatus reports the outcome of a data transfer.
type DataTransferStatus struct {
	Session           uint32
	UciSequenceNumber uint8
	Status            uint8
}

func (n SessionStatus) SessionID() uint32       { return n.Session }
func (n MulticastListUpdate) SessionID() uint32 { return n.Session }
func (n SessionRangeData) SessionID() uint32    { return n.Session }
func (n DataCredit) SessionID() uint32          { return n.Session }
func (n DataTransferStatus) SessionID() uint32  { return n.Session }

func (SessionStatus) sessionNotification()       {}
func (MulticastListUpdate) sessionNotification() {}
func (SessionRangeData) sessionNotification()    {}
func (DataCredit) sessionNotification()          {}
func (DataTransferStatus) sessionNotification()  {}

// DataRcvNotification carries application data received from a peer.
type DataRcvNotification struct {
	Session             uint32
	Status              StatusCode
	UciSequenceNum      uint32
	SourceAddress       MacAddress
	SourceFiraComponent uint8
	DestFiraComponent   uint8
	Payload             []byte
}
