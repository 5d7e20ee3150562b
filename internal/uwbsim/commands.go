package uwbsim

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"time"

	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// Capabilities reported by CoreGetCapsInfo.
var capabilities = []uci.CapTlv{
	{Type: 0x00, Value: []byte{0x01, 0x03}}, // FiRa PHY version
	{Type: 0x01, Value: []byte{0x01, 0x01}}, // FiRa MAC version
	{Type: 0x02, Value: []byte{0x03}},       // device roles
	{Type: 0x03, Value: []byte{0x1F}},       // ranging methods
}

func u32(v uint32) []byte { return binary.LittleEndian.AppendUint32(nil, v) }

// requireOpen is called on the worker.
func (c *Chip) requireOpen() error {
	if !c.open {
		return uci.NewStatusError(uci.StatusRejected)
	}
	return nil
}

func (c *Chip) session(id uint32) (*session, error) {
	if err := c.requireOpen(); err != nil {
		return nil, err
	}
	s, ok := c.sessions[id]
	if !ok {
		return nil, uci.NewStatusError(uci.StatusSessionNotExist)
	}
	return s, nil
}

func (c *Chip) setDeviceState(state uci.DeviceState) {
	c.plog.State(ucilog.StateEntityDevice, 0, "", state.String(), "")
	c.notify(uci.DeviceStatus{State: state})
}

func (c *Chip) setSessionState(s *session, state uci.SessionState, reason uint8) {
	old := s.state
	s.state = state
	c.plog.State(ucilog.StateEntitySession, s.id, old.String(), state.String(), fmt.Sprintf("0x%02X", reason))
	c.notify(uci.SessionStatus{Session: s.id, State: state, ReasonCode: reason})
}

// OpenHal implements uci.Manager.
func (c *Chip) OpenHal(ctx context.Context) error {
	_, err := c.call(ctx, "OpenHal", uci.GroupCore, uci.OidCoreGetDeviceInfo, nil, func() (any, error) {
		if !c.open {
			c.open = true
			c.openedAt = time.Now()
			c.wakeCount++
		}
		c.setDeviceState(uci.DeviceStateReady)
		return nil, nil
	})
	return err
}

// CloseHal implements uci.Manager. Open sessions are dropped.
func (c *Chip) CloseHal(ctx context.Context, force bool) error {
	_, err := c.call(ctx, "CloseHal", uci.GroupCore, uci.OidCoreDeviceReset, nil, func() (any, error) {
		if !c.open && !force {
			return nil, uci.NewStatusError(uci.StatusRejected)
		}
		c.open = false
		clear(c.sessions)
		return nil, nil
	})
	return err
}

// DeviceReset implements uci.Manager.
func (c *Chip) DeviceReset(ctx context.Context, cfg uci.ResetConfig) error {
	_, err := c.call(ctx, "DeviceReset", uci.GroupCore, uci.OidCoreDeviceReset, []byte{byte(cfg)}, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		if cfg != uci.ResetConfigUwbsReset {
			return nil, fmt.Errorf("%w: reset config %d", uci.ErrBadParameters, cfg)
		}
		clear(c.sessions)
		c.setDeviceState(uci.DeviceStateReady)
		return nil, nil
	})
	return err
}

// CoreGetCapsInfo implements uci.Manager.
func (c *Chip) CoreGetCapsInfo(ctx context.Context) ([]uci.CapTlv, error) {
	v, err := c.call(ctx, "CoreGetCapsInfo", uci.GroupCore, uci.OidCoreGetCapsInfo, nil, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		return slices.Clone(capabilities), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uci.CapTlv), nil
}

// SessionInit implements uci.Manager.
func (c *Chip) SessionInit(ctx context.Context, sessionID uint32, sessionType uci.SessionType) error {
	payload := append(u32(sessionID), byte(sessionType))
	_, err := c.call(ctx, "SessionInit", uci.GroupSessionConfig, uci.OidSessionInit, payload, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		if _, ok := c.sessions[sessionID]; ok {
			return nil, uci.NewStatusError(uci.StatusSessionDuplicate)
		}
		if len(c.sessions) >= MaxSessions {
			return nil, uci.NewStatusError(uci.StatusMaxSessionsExceeded)
		}
		s := &session{
			id:     sessionID,
			typ:    sessionType,
			state:  uci.SessionStateDeinit,
			config: make(map[uci.AppConfigTlvType][]byte),
		}
		c.sessions[sessionID] = s
		c.setSessionState(s, uci.SessionStateInit, uci.ReasonStateChangeWithSessionManagementCommands)
		return nil, nil
	})
	return err
}

// SessionDeinit implements uci.Manager.
func (c *Chip) SessionDeinit(ctx context.Context, sessionID uint32) error {
	_, err := c.call(ctx, "SessionDeinit", uci.GroupSessionConfig, uci.OidSessionDeinit, u32(sessionID), func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		delete(c.sessions, sessionID)
		c.setSessionState(s, uci.SessionStateDeinit, uci.ReasonStateChangeWithSessionManagementCommands)
		return nil, nil
	})
	return err
}

// SessionGetCount implements uci.Manager.
func (c *Chip) SessionGetCount(ctx context.Context) (uint8, error) {
	v, err := c.call(ctx, "SessionGetCount", uci.GroupSessionConfig, uci.OidSessionGetCount, nil, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		return uint8(len(c.sessions)), nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uint8), nil
}

// SessionGetState implements uci.Manager.
func (c *Chip) SessionGetState(ctx context.Context, sessionID uint32) (uci.SessionState, error) {
	v, err := c.call(ctx, "SessionGetState", uci.GroupSessionConfig, uci.OidSessionGetState, u32(sessionID), func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		return s.state, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uci.SessionState), nil
}

// SessionSetAppConfig implements uci.Manager. The first successful call
// moves the session from Init to Idle.
func (c *Chip) SessionSetAppConfig(ctx context.Context, sessionID uint32, tlvs []uci.AppConfigTlv) (uci.SetAppConfigResponse, error) {
	payload, err := uci.EncodeAppConfigTlvs(tlvs)
	if err != nil {
		return uci.SetAppConfigResponse{}, err
	}
	v, err := c.call(ctx, "SessionSetAppConfig", uci.GroupSessionConfig, uci.OidSessionSetAppConfig, payload, func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		if s.state == uci.SessionStateActive {
			return nil, uci.NewStatusError(uci.StatusSessionActive)
		}
		for _, t := range tlvs {
			s.config[t.Type] = slices.Clone(t.Value)
		}
		if s.state == uci.SessionStateInit {
			c.setSessionState(s, uci.SessionStateIdle, uci.ReasonStateChangeWithSessionManagementCommands)
		}
		return uci.SetAppConfigResponse{Status: uci.StatusOk}, nil
	})
	if err != nil {
		return uci.SetAppConfigResponse{}, err
	}
	return v.(uci.SetAppConfigResponse), nil
}

// SessionGetAppConfig implements uci.Manager. An empty type list returns
// every stored parameter; unknown types are skipped.
func (c *Chip) SessionGetAppConfig(ctx context.Context, sessionID uint32, types []uci.AppConfigTlvType) ([]uci.AppConfigTlv, error) {
	payload := u32(sessionID)
	for _, t := range types {
		payload = append(payload, byte(t))
	}
	v, err := c.call(ctx, "SessionGetAppConfig", uci.GroupSessionConfig, uci.OidSessionGetAppConfig, payload, func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		want := types
		if len(want) == 0 {
			for t := range s.config {
				want = append(want, t)
			}
			slices.Sort(want)
		}
		out := make([]uci.AppConfigTlv, 0, len(want))
		for _, t := range want {
			if val, ok := s.config[t]; ok {
				out = append(out, uci.AppConfigTlv{Type: t, Value: slices.Clone(val)})
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uci.AppConfigTlv), nil
}

func controleeList(cs uci.Controlees) []uci.Controlee {
	var out []uci.Controlee
	switch cs := cs.(type) {
	case uci.NoKeyControlees:
		out = append(out, cs...)
	case uci.ShortKeyControlees:
		for _, k := range cs {
			out = append(out, k.Controlee)
		}
	case uci.LongKeyControlees:
		for _, k := range cs {
			out = append(out, k.Controlee)
		}
	}
	return out
}

// SessionUpdateControllerMulticastList implements uci.Manager.
func (c *Chip) SessionUpdateControllerMulticastList(ctx context.Context, sessionID uint32, action uci.MulticastAction, controlees uci.Controlees) error {
	if controlees == nil {
		return fmt.Errorf("%w: nil controlee list", uci.ErrBadParameters)
	}
	payload := append(u32(sessionID), byte(action), byte(controlees.Len()))
	_, err := c.call(ctx, "SessionUpdateControllerMulticastList", uci.GroupSessionConfig, uci.OidSessionUpdateMulticastList, payload, func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		list := controleeList(controlees)
		statuses := make([]uci.ControleeStatus, 0, len(list))
		for _, ct := range list {
			idx := slices.IndexFunc(s.controlees, func(e uci.Controlee) bool { return e.ShortAddress == ct.ShortAddress })
			status := uci.StatusOk
			switch {
			case action == uci.MulticastActionRemove && idx < 0:
				status = uci.StatusInvalidParam
			case action == uci.MulticastActionRemove:
				s.controlees = slices.Delete(s.controlees, idx, idx+1)
			case idx >= 0:
				s.controlees[idx] = ct
			default:
				s.controlees = append(s.controlees, ct)
			}
			statuses = append(statuses, uci.ControleeStatus{
				MacAddress:   ct.ShortAddress,
				SubSessionID: ct.SubSessionID,
				Status:       uint8(status),
			})
		}
		c.notify(uci.MulticastListUpdate{
			Session:           sessionID,
			RemainingListSize: len(s.controlees),
			StatusList:        statuses,
		})
		return nil, nil
	})
	return err
}

// SessionUpdateActiveRoundsDtTag implements uci.Manager. Every round index
// is accepted.
func (c *Chip) SessionUpdateActiveRoundsDtTag(ctx context.Context, sessionID uint32, indexes []uint8) (uci.DtTagRoundsResponse, error) {
	payload := append(u32(sessionID), indexes...)
	v, err := c.call(ctx, "SessionUpdateActiveRoundsDtTag", uci.GroupSessionConfig, uci.OidSessionUpdateActiveRoundsDtTag, payload, func() (any, error) {
		if _, err := c.session(sessionID); err != nil {
			return nil, err
		}
		return uci.DtTagRoundsResponse{Status: uci.StatusOk}, nil
	})
	if err != nil {
		return uci.DtTagRoundsResponse{}, err
	}
	return v.(uci.DtTagRoundsResponse), nil
}

// RangeStart implements uci.Manager. The session must be Idle.
func (c *Chip) RangeStart(ctx context.Context, sessionID uint32) error {
	_, err := c.call(ctx, "RangeStart", uci.GroupSessionControl, uci.OidRangeStart, u32(sessionID), func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		switch s.state {
		case uci.SessionStateActive:
			return nil, uci.NewStatusError(uci.StatusSessionActive)
		case uci.SessionStateIdle:
		default:
			return nil, uci.NewStatusError(uci.StatusSessionNotConfigured)
		}
		c.setSessionState(s, uci.SessionStateActive, uci.ReasonStateChangeWithSessionManagementCommands)
		return nil, nil
	})
	return err
}

// RangeStop implements uci.Manager.
func (c *Chip) RangeStop(ctx context.Context, sessionID uint32) error {
	_, err := c.call(ctx, "RangeStop", uci.GroupSessionControl, uci.OidRangeStop, u32(sessionID), func() (any, error) {
		s, err := c.session(sessionID)
		if err != nil {
			return nil, err
		}
		if s.state != uci.SessionStateActive {
			return nil, uci.NewStatusError(uci.StatusRejected)
		}
		c.setSessionState(s, uci.SessionStateIdle, uci.ReasonStateChangeWithSessionManagementCommands)
		return nil, nil
	})
	return err
}

// SetCountryCode implements uci.Manager.
func (c *Chip) SetCountryCode(ctx context.Context, code uci.CountryCode) error {
	_, err := c.call(ctx, "SetCountryCode", uci.GroupAndroid, uci.OidAndroidSetCountryCode, code[:], func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		c.countryCode = code
		return nil, nil
	})
	return err
}

// CountryCode returns the last country code set. It is only meaningful
// when no command is in flight.
func (c *Chip) CountryCode(ctx context.Context) (uci.CountryCode, error) {
	v, err := c.call(ctx, "GetCountryCode", uci.GroupAndroid, uci.OidAndroidSetCountryCode, nil, func() (any, error) {
		return c.countryCode, nil
	})
	if err != nil {
		return uci.CountryCode{}, err
	}
	return v.(uci.CountryCode), nil
}

// GetPowerStats implements uci.Manager.
func (c *Chip) GetPowerStats(ctx context.Context) (uci.PowerStats, error) {
	v, err := c.call(ctx, "GetPowerStats", uci.GroupAndroid, uci.OidAndroidGetPowerStats, nil, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		tx := c.rangeRounds
		rx := 2 * c.rangeRounds
		up := uint32(time.Since(c.openedAt).Milliseconds())
		idle := uint32(0)
		if up > tx+rx {
			idle = up - tx - rx
		}
		return uci.PowerStats{
			Status:         uci.StatusOk,
			IdleTimeMs:     idle,
			TxTimeMs:       tx,
			RxTimeMs:       rx,
			TotalWakeCount: c.wakeCount,
		}, nil
	})
	if err != nil {
		return uci.PowerStats{}, err
	}
	return v.(uci.PowerStats), nil
}

// RawUciCmd implements uci.Manager. The response echoes the payload after
// an Ok status byte; vendor group commands are also echoed as a vendor
// notification.
func (c *Chip) RawUciCmd(ctx context.Context, mt, gid, oid uint32, payload []byte) (uci.RawMessage, error) {
	if gid > 0x0F || oid > 0x3F || mt == 0 || mt > 3 {
		return uci.RawMessage{}, fmt.Errorf("%w: mt %d gid 0x%X oid 0x%X", uci.ErrBadParameters, mt, gid, oid)
	}
	v, err := c.call(ctx, "RawUciCmd", uint8(gid), uint8(oid), payload, func() (any, error) {
		if err := c.requireOpen(); err != nil {
			return nil, err
		}
		if ucilog.IsVendorGID(uint8(gid)) {
			c.notify(uci.RawMessage{GID: gid, OID: oid, Payload: slices.Clone(payload)})
		}
		resp := append([]byte{byte(uci.StatusOk)}, payload...)
		return uci.RawMessage{GID: gid, OID: oid, Payload: resp}, nil
	})
	if err != nil {
		return uci.RawMessage{}, err
	}
	return v.(uci.RawMessage), nil
}

// SendData implements uci.Manager. The session must be active; the payload
// is looped back as a data receive notification from address.
func (c *Chip) SendData(ctx context.Context, sessionID uint32, address uci.MacAddress, dstEndpoint uint8, sequence uint16, payload []byte) error {
	_, err := c.submit(ctx, &command{
		op:      "SendData",
		kind:    ucilog.PacketKindData,
		gid:     uci.GroupDataControl,
		payload: payload,
		reply:   make(chan result, 1),
		fn: func() (any, error) {
			s, err := c.session(sessionID)
			if err != nil {
				return nil, err
			}
			if s.state != uci.SessionStateActive {
				return nil, uci.NewStatusError(uci.StatusRejected)
			}
			c.notify(uci.DataCredit{Session: sessionID, CreditAvailability: 1})
			c.notify(uci.DataTransferStatus{Session: sessionID, UciSequenceNumber: uint8(sequence)})
			c.notify(uci.DataRcvNotification{
				Session:             sessionID,
				Status:              uci.StatusOk,
				UciSequenceNum:      uint32(sequence),
				SourceAddress:       address,
				SourceFiraComponent: dstEndpoint,
				DestFiraComponent:   dstEndpoint,
				Payload:             slices.Clone(payload),
			})
			return nil, nil
		},
	})
	return err
}

// emitRangeData queues one two-way ranging batch per active session, in
// session id order.
func (c *Chip) emitRangeData() {
	ids := make([]uint32, 0, len(c.sessions))
	for id, s := range c.sessions {
		if s.state == uci.SessionStateActive {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, id := range ids {
		s := c.sessions[id]
		s.sequence++
		c.rangeRounds++

		peers := s.controlees
		if len(peers) == 0 {
			peers = []uci.Controlee{{ShortAddress: 0x0001}}
		}
		ms := make([]uci.TwoWayMeasurement, len(peers))
		for i, p := range peers {
			ms[i] = uci.TwoWayMeasurement{
				MacAddress: uci.ShortMacAddress(p.ShortAddress),
				Status:     uci.StatusOk,
				Distance:   uint16(100 + (s.sequence+uint32(i)*7)%50),
				AoaAzimuth: uint16((s.sequence * 3) % 360),
				SlotIndex:  uint8(i),
			}
		}
		interval := uint32(c.opts.RangeInterval.Milliseconds())
		c.notify(uci.SessionRangeData{
			SequenceNumber:           s.sequence,
			Session:                  id,
			CurrentRangingIntervalMs: interval,
			MeasurementType:          uci.RangingMeasurementTypeTwoWay,
			AddressIndicator:         uci.MacAddressShort,
			TwoWay:                   ms,
			Raw:                      append(u32(id), u32(s.sequence)...),
		})
	}
}

// TriggerRanging runs one ranging round for every active session
// immediately.
func (c *Chip) TriggerRanging(ctx context.Context) error {
	_, err := c.submit(ctx, &command{
		op:    "TriggerRanging",
		kind:  ucilog.PacketKindNotification,
		reply: make(chan result, 1),
		fn: func() (any, error) {
			c.emitRangeData()
			return nil, nil
		},
	})
	return err
}
