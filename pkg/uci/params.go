package uci

import (
	"encoding/binary"
	"fmt"
)

// CountryCode is an ISO 3166-1 alpha-2 regulatory domain, or "00" for the
// world-safe default.
type CountryCode [2]byte

// NewCountryCode validates a raw two-byte country code.
func NewCountryCode(b []byte) (CountryCode, error) {
	if len(b) != 2 {
		return CountryCode{}, fmt.Errorf("%w: country code must be 2 bytes, got %d", ErrBadParameters, len(b))
	}
	if b[0] == '0' && b[1] == '0' {
		return CountryCode{b[0], b[1]}, nil
	}
	for _, c := range b {
		if c < 'A' || c > 'Z' {
			return CountryCode{}, fmt.Errorf("%w: country code %q", ErrBadParameters, string(b))
		}
	}
	return CountryCode{b[0], b[1]}, nil
}

func (c CountryCode) String() string {
	return string(c[:])
}

// AppConfigTlv is one application configuration parameter.
type AppConfigTlv struct {
	Type  AppConfigTlvType
	Value []byte
}

// CapTlv is one capability parameter reported by CoreGetCapsInfo.
type CapTlv struct {
	Type  CapTlvType
	Value []byte
}

// AppConfigStatus is the per-parameter result of SessionSetAppConfig.
type AppConfigStatus struct {
	CfgID  AppConfigTlvType
	Status StatusCode
}

// SetAppConfigResponse is returned by SessionSetAppConfig.
type SetAppConfigResponse struct {
	Status       StatusCode
	ConfigStatus []AppConfigStatus
}

// PowerStats reports chip power usage counters.
type PowerStats struct {
	Status         StatusCode
	IdleTimeMs     uint32
	TxTimeMs       uint32
	RxTimeMs       uint32
	TotalWakeCount uint32
}

// RawMessage is a vendor UCI command, response or notification.
type RawMessage struct {
	GID     uint32
	OID     uint32
	Payload []byte
}

// DtTagRoundsResponse is returned by SessionUpdateActiveRoundsDtTag.
// RangingRoundIndexes lists the rounds the chip could not activate.
type DtTagRoundsResponse struct {
	Status              StatusCode
	RangingRoundIndexes []uint8
}

// MacAddress is a short (2 byte) or extended (8 byte) UWB MAC address.
type MacAddress struct {
	Extended bool
	Value    uint64
}

// ShortMacAddress returns a 2-byte address.
func ShortMacAddress(v uint16) MacAddress {
	return MacAddress{Value: uint64(v)}
}

// ExtendedMacAddress returns an 8-byte address.
func ExtendedMacAddress(v uint64) MacAddress {
	return MacAddress{Extended: true, Value: v}
}

// Indicator returns the address size indicator.
func (a MacAddress) Indicator() MacAddressIndicator {
	if a.Extended {
		return MacAddressExtended
	}
	return MacAddressShort
}

// Bytes returns the little-endian encoding of the address.
func (a MacAddress) Bytes() []byte {
	if a.Extended {
		return binary.LittleEndian.AppendUint64(nil, a.Value)
	}
	return binary.LittleEndian.AppendUint16(nil, uint16(a.Value))
}

func (a MacAddress) String() string {
	if a.Extended {
		return fmt.Sprintf("%016X", a.Value)
	}
	return fmt.Sprintf("%04X", uint16(a.Value))
}
