package native

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/uwbcore/uwb-go/pkg/uci"
)

// GetMaxSessionNumber returns MaxSessionNumber.
func (m *Manager) GetMaxSessionNumber() int32 { return MaxSessionNumber }

// GetTimestampResolutionNanos returns 0: timestamps carry no resolution
// guarantee.
func (m *Manager) GetTimestampResolutionNanos() int64 { return 0 }

// DeviceReset resets the chip.
func (m *Manager) DeviceReset(resetConfig int8, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.DeviceReset(ctx, uci.ResetConfig(uint8(resetConfig)))
	})
	return m.byteResult("DeviceReset", chipID, err)
}

// SessionInit creates a session of sessionType.
func (m *Manager) SessionInit(sessionID int32, sessionType int8, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		t, err := uci.ParseSessionType(uint8(sessionType))
		if err != nil {
			return err
		}
		return um.SessionInit(ctx, uint32(sessionID), t)
	})
	return m.byteResult("SessionInit", chipID, err)
}

// SessionDeinit removes a session.
func (m *Manager) SessionDeinit(sessionID int32, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.SessionDeinit(ctx, uint32(sessionID))
	})
	return m.byteResult("SessionDeinit", chipID, err)
}

// GetSessionCount returns the number of sessions, or -1 on failure.
func (m *Manager) GetSessionCount(chipID string) int8 {
	var count uint8
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		var err error
		count, err = um.SessionGetCount(ctx)
		return err
	})
	if v := optionResult(m, "GetSessionCount", chipID, count, err); v != nil {
		return int8(*v)
	}
	return -1
}

// GetSessionState returns the session state, or -1 on failure.
func (m *Manager) GetSessionState(sessionID int32, chipID string) int8 {
	var state uci.SessionState
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		var err error
		state, err = um.SessionGetState(ctx, uint32(sessionID))
		return err
	})
	if v := optionResult(m, "GetSessionState", chipID, state, err); v != nil {
		return int8(*v)
	}
	return -1
}

// RangingStart starts ranging on a configured session.
func (m *Manager) RangingStart(sessionID int32, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.RangeStart(ctx, uint32(sessionID))
	})
	return m.byteResult("RangingStart", chipID, err)
}

// RangingStop stops ranging.
func (m *Manager) RangingStop(sessionID int32, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		return um.RangeStop(ctx, uint32(sessionID))
	})
	return m.byteResult("RangingStop", chipID, err)
}

// SetAppConfigurations applies noOfParams TLV records from params. The
// blob must hold exactly that many records.
func (m *Manager) SetAppConfigurations(sessionID, noOfParams int32, params []byte, chipID string) *ConfigStatusData {
	var out ConfigStatusData
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		tlvs, err := uci.ParseAppConfigTlvs(int(noOfParams), params)
		if err != nil {
			return err
		}
		resp, err := um.SessionSetAppConfig(ctx, uint32(sessionID), tlvs)
		if err != nil {
			return err
		}
		out = ConfigStatusData{
			Status: int32(resp.Status),
			Count:  int32(len(resp.ConfigStatus)),
			Data:   uci.EncodeConfigStatus(resp.ConfigStatus),
		}
		return nil
	})
	return optionResult(m, "SetAppConfigurations", chipID, out, err)
}

// GetAppConfigurations reads the parameters whose type bytes are listed in
// params.
func (m *Manager) GetAppConfigurations(sessionID int32, params []byte, chipID string) *TlvData {
	var out TlvData
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		types := make([]uci.AppConfigTlvType, len(params))
		for i, b := range params {
			types[i] = uci.AppConfigTlvType(b)
		}
		tlvs, err := um.SessionGetAppConfig(ctx, uint32(sessionID), types)
		if err != nil {
			return err
		}
		data, err := uci.EncodeAppConfigTlvs(tlvs)
		if err != nil {
			return err
		}
		out = TlvData{Status: int32(uci.StatusOk), Count: int32(len(tlvs)), Data: data}
		return nil
	})
	return optionResult(m, "GetAppConfigurations", chipID, out, err)
}

// GetCapsInfo returns the chip capabilities as TLV records.
func (m *Manager) GetCapsInfo(chipID string) *TlvData {
	var out TlvData
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		caps, err := um.CoreGetCapsInfo(ctx)
		if err != nil {
			return err
		}
		data, err := uci.EncodeCapTlvs(caps)
		if err != nil {
			return err
		}
		out = TlvData{Status: int32(uci.StatusOk), Count: int32(len(caps)), Data: data}
		return nil
	})
	return optionResult(m, "GetCapsInfo", chipID, out, err)
}

// ControllerMulticastListUpdate adds or removes controlees. addresses and
// subSessionIDs must hold noOfControlee entries each; keyed add actions
// take noOfControlee 16 or 32 byte keys from subSessionKeys.
func (m *Manager) ControllerMulticastListUpdate(sessionID int32, action, noOfControlee int8,
	addresses []int16, subSessionIDs []int32, subSessionKeys []byte, chipID string,
) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		a, err := uci.ParseMulticastAction(uint8(action))
		if err != nil {
			return err
		}
		addrs := make([]uint16, len(addresses))
		for i, v := range addresses {
			addrs[i] = uint16(v)
		}
		ids := make([]uint32, len(subSessionIDs))
		for i, v := range subSessionIDs {
			ids[i] = uint32(v)
		}
		controlees, err := uci.BuildControlees(a, int(noOfControlee), addrs, ids, subSessionKeys)
		if err != nil {
			return err
		}
		return um.SessionUpdateControllerMulticastList(ctx, uint32(sessionID), a, controlees)
	})
	return m.byteResult("ControllerMulticastListUpdate", chipID, err)
}

// SetCountryCode sets the regulatory domain. code must be two bytes.
func (m *Manager) SetCountryCode(code []byte, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		cc, err := uci.NewCountryCode(code)
		if err != nil {
			return err
		}
		return um.SetCountryCode(ctx, cc)
	})
	return m.byteResult("SetCountryCode", chipID, err)
}

// SendRawVendorCmd sends a raw UCI command. Failures yield a response with
// status Failed and gid/oid -1, never nil.
func (m *Manager) SendRawVendorCmd(mt, gid, oid int32, payload []byte, chipID string) *VendorResponse {
	var resp uci.RawMessage
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		if mt < 0 || gid < 0 || oid < 0 {
			return fmt.Errorf("%w: mt %d gid %d oid %d", uci.ErrBadParameters, mt, gid, oid)
		}
		var err error
		resp, err = um.RawUciCmd(ctx, uint32(mt), uint32(gid), uint32(oid), payload)
		return err
	})
	if err != nil {
		m.fail("SendRawVendorCmd", chipID, err)
		return invalidVendorResponse()
	}
	return &VendorResponse{
		Status:  int8(uci.StatusOk),
		GID:     int32(resp.GID),
		OID:     int32(resp.OID),
		Payload: resp.Payload,
	}
}

// GetPowerStats returns the chip power counters.
func (m *Manager) GetPowerStats(chipID string) *PowerStats {
	var out PowerStats
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		ps, err := um.GetPowerStats(ctx)
		if err != nil {
			return err
		}
		if err := uci.NewStatusError(ps.Status); err != nil {
			return err
		}
		out = PowerStats{
			IdleTimeMs:     int32(ps.IdleTimeMs),
			TxTimeMs:       int32(ps.TxTimeMs),
			RxTimeMs:       int32(ps.RxTimeMs),
			TotalWakeCount: int32(ps.TotalWakeCount),
		}
		return nil
	})
	return optionResult(m, "GetPowerStats", chipID, out, err)
}

// SessionUpdateActiveRoundsDtTag activates the DL-TDoA tag ranging rounds
// listed in indexes.
func (m *Manager) SessionUpdateActiveRoundsDtTag(sessionID int32, indexes []byte, chipID string) *DtTagRoundsStatus {
	var out DtTagRoundsStatus
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		resp, err := um.SessionUpdateActiveRoundsDtTag(ctx, uint32(sessionID), indexes)
		if err != nil {
			return err
		}
		out = DtTagRoundsStatus{
			Status:  int32(resp.Status),
			Count:   int32(len(resp.RangingRoundIndexes)),
			Indexes: resp.RangingRoundIndexes,
		}
		return nil
	})
	return optionResult(m, "SessionUpdateActiveRoundsDtTag", chipID, out, err)
}

// SendData sends payload to a peer of an active session. address is a
// little-endian short (2 byte) or extended (8 byte) MAC address.
func (m *Manager) SendData(sessionID int32, address []byte, dstEndpoint int8, sequence int32, payload []byte, chipID string) int8 {
	err := m.withManager(chipID, func(ctx context.Context, um uci.Manager) error {
		addr, err := macAddress(address)
		if err != nil {
			return err
		}
		if sequence < 0 || sequence > 0xFFFF {
			return fmt.Errorf("%w: sequence number %d", uci.ErrBadParameters, sequence)
		}
		return um.SendData(ctx, uint32(sessionID), addr, uint8(dstEndpoint), uint16(sequence), payload)
	})
	return m.byteResult("SendData", chipID, err)
}

func macAddress(b []byte) (uci.MacAddress, error) {
	switch len(b) {
	case 2:
		return uci.ShortMacAddress(binary.LittleEndian.Uint16(b)), nil
	case 8:
		return uci.ExtendedMacAddress(binary.LittleEndian.Uint64(b)), nil
	}
	return uci.MacAddress{}, fmt.Errorf("%w: mac address of %d bytes", uci.ErrBadParameters, len(b))
}
