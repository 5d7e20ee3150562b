package uci

import "fmt"

// SessionType is the UCI session type passed to SessionInit.
type SessionType uint8

const (
	SessionTypeFiraRanging              SessionType = 0x00
	SessionTypeFiraRangingAndInBandData SessionType = 0x01
	SessionTypeFiraDataTransfer         SessionType = 0x02
	SessionTypeFiraRangingOnly          SessionType = 0x03
	SessionTypeFiraInBandDataPhase      SessionType = 0x04
	SessionTypeFiraRangingWithDataPhase SessionType = 0x05
	SessionTypeCcc                      SessionType = 0xA0
	SessionTypeRadarSession             SessionType = 0xA1
	SessionTypeAliroSession             SessionType = 0xA2
	SessionTypeDeviceTestMode           SessionType = 0xD0
)

// ParseSessionType validates a raw session type byte.
func ParseSessionType(b uint8) (SessionType, error) {
	t := SessionType(b)
	switch t {
	case SessionTypeFiraRanging, SessionTypeFiraRangingAndInBandData,
		SessionTypeFiraDataTransfer, SessionTypeFiraRangingOnly,
		SessionTypeFiraInBandDataPhase, SessionTypeFiraRangingWithDataPhase,
		SessionTypeCcc, SessionTypeRadarSession, SessionTypeAliroSession,
		SessionTypeDeviceTestMode:
		return t, nil
	}
	return 0, fmt.Errorf("%w: session type 0x%02X", ErrBadParameters, b)
}

// String returns the session type name.
func (t SessionType) String() string {
	switch t {
	case SessionTypeFiraRanging:
		return "FIRA_RANGING"
	case SessionTypeFiraRangingAndInBandData:
		return "FIRA_RANGING_AND_IN_BAND_DATA"
	case SessionTypeFiraDataTransfer:
		return "FIRA_DATA_TRANSFER"
	case SessionTypeFiraRangingOnly:
		return "FIRA_RANGING_ONLY"
	case SessionTypeFiraInBandDataPhase:
		return "FIRA_IN_BAND_DATA_PHASE"
	case SessionTypeFiraRangingWithDataPhase:
		return "FIRA_RANGING_WITH_DATA_PHASE"
	case SessionTypeCcc:
		return "CCC"
	case SessionTypeRadarSession:
		return "RADAR"
	case SessionTypeAliroSession:
		return "ALIRO"
	case SessionTypeDeviceTestMode:
		return "DEVICE_TEST_MODE"
	default:
		return fmt.Sprintf("SESSION_TYPE_0x%02X", uint8(t))
	}
}

// SessionState is the state of a ranging session.
type SessionState uint8

const (
	SessionStateInit   SessionState = 0x00
	SessionStateDeinit SessionState = 0x01
	SessionStateActive SessionState = 0x02
	SessionStateIdle   SessionState = 0x03
)

// String returns the session state name.
func (s SessionState) String() string {
	switch s {
	case SessionStateInit:
		return "INIT"
	case SessionStateDeinit:
		return "DEINIT"
	case SessionStateActive:
		return "ACTIVE"
	case SessionStateIdle:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}

// Reason codes carried by session status notifications.
const (
	ReasonStateChangeWithSessionManagementCommands uint8 = 0x00
	ReasonMaxRangingRoundRetryCountReached         uint8 = 0x01
	ReasonMaxNumberOfMeasurementsReached           uint8 = 0x02
	ReasonErrorSlotLengthNotSupported              uint8 = 0x20
)

// DeviceState is the chip state reported by device status notifications.
type DeviceState uint8

const (
	DeviceStateReady  DeviceState = 0x01
	DeviceStateActive DeviceState = 0x02
	DeviceStateError  DeviceState = 0xFF
)

// String returns the device state name.
func (s DeviceState) String() string {
	switch s {
	case DeviceStateReady:
		return "READY"
	case DeviceStateActive:
		return "ACTIVE"
	case DeviceStateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ResetConfig selects the kind of device reset.
type ResetConfig uint8

const (
	ResetConfigUwbsReset ResetConfig = 0x00
)

// MulticastAction is the controller multicast list update action.
type MulticastAction uint8

const (
	MulticastActionAdd             MulticastAction = 0x00
	MulticastActionRemove          MulticastAction = 0x01
	MulticastActionAddWithShortKey MulticastAction = 0x02
	MulticastActionAddWithLongKey  MulticastAction = 0x03
)

// ParseMulticastAction validates a raw action byte.
func ParseMulticastAction(b uint8) (MulticastAction, error) {
	if b > uint8(MulticastActionAddWithLongKey) {
		return 0, fmt.Errorf("%w: multicast action 0x%02X", ErrBadParameters, b)
	}
	return MulticastAction(b), nil
}

// String returns the action name.
func (a MulticastAction) String() string {
	switch a {
	case MulticastActionAdd:
		return "ADD"
	case MulticastActionRemove:
		return "REMOVE"
	case MulticastActionAddWithShortKey:
		return "ADD_WITH_SHORT_KEY"
	case MulticastActionAddWithLongKey:
		return "ADD_WITH_LONG_KEY"
	default:
		return "UNKNOWN"
	}
}

// RangingMeasurementType identifies the measurement layout of range data.
type RangingMeasurementType uint8

const (
	RangingMeasurementTypeOneWay RangingMeasurementType = 0x00
	RangingMeasurementTypeTwoWay RangingMeasurementType = 0x01
	RangingMeasurementTypeDlTdoa RangingMeasurementType = 0x02
	RangingMeasurementTypeOwrAoa RangingMeasurementType = 0x03
)

// String returns the measurement type name.
func (t RangingMeasurementType) String() string {
	switch t {
	case RangingMeasurementTypeOneWay:
		return "ONE_WAY"
	case RangingMeasurementTypeTwoWay:
		return "TWO_WAY"
	case RangingMeasurementTypeDlTdoa:
		return "DL_TDOA"
	case RangingMeasurementTypeOwrAoa:
		return "OWR_AOA"
	default:
		return "UNKNOWN"
	}
}

// MacAddressIndicator tells whether measurements carry short or extended
// MAC addresses.
type MacAddressIndicator uint8

const (
	MacAddressShort    MacAddressIndicator = 0x00
	MacAddressExtended MacAddressIndicator = 0x01
)

// AppConfigTlvType is the type byte of an application configuration TLV.
type AppConfigTlvType uint8

// A few well-known application configuration parameters.
const (
	AppConfigDeviceType        AppConfigTlvType = 0x00
	AppConfigRangingRoundUsage AppConfigTlvType = 0x01
	AppConfigStsConfig         AppConfigTlvType = 0x02
	AppConfigMultiNodeMode     AppConfigTlvType = 0x03
	AppConfigChannelNumber     AppConfigTlvType = 0x04
	AppConfigNoOfControlee     AppConfigTlvType = 0x05
	AppConfigDeviceMacAddress  AppConfigTlvType = 0x06
	AppConfigDstMacAddress     AppConfigTlvType = 0x07
	AppConfigSlotDuration      AppConfigTlvType = 0x08
	AppConfigRangingDuration   AppConfigTlvType = 0x09
	AppConfigDeviceRole        AppConfigTlvType = 0x11
)

// CapTlvType is the type byte of a capability TLV.
type CapTlvType uint8
