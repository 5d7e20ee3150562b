package native

import "github.com/uwbcore/uwb-go/pkg/bridge"

// Listener receives the notifications of every chip of a Manager. Methods
// are called on the chip workers; an error is logged by the bridge as a
// failed delivery.
type Listener = bridge.Callbacks

// SetListener replaces the notification listener. A nil listener drops
// notifications.
func (m *Manager) SetListener(l Listener) {
	if l == nil {
		m.listener.Store(nil)
		return
	}
	m.listener.Store(&listenerRef{l: l})
}

func (m *Manager) current() Listener {
	if ref := m.listener.Load(); ref != nil {
		return ref.l
	}
	return nil
}

// Manager forwards the bridge callbacks to the current listener; without
// one they return nil.
var _ bridge.Callbacks = (*Manager)(nil)

// OnDeviceStatusNotificationReceived forwards a chip state change to the
// listener.
func (m *Manager) OnDeviceStatusNotificationReceived(state int32, chipID string) error {
	if l := m.current(); l != nil {
		return l.OnDeviceStatusNotificationReceived(state, chipID)
	}
	return nil
}

// OnCoreGenericErrorNotificationReceived forwards an asynchronous chip
// error to the listener.
func (m *Manager) OnCoreGenericErrorNotificationReceived(status int32, chipID string) error {
	if l := m.current(); l != nil {
		return l.OnCoreGenericErrorNotificationReceived(status, chipID)
	}
	return nil
}

// OnSessionStatusNotificationReceived forwards a session state change.
func (m *Manager) OnSessionStatusNotificationReceived(sessionID int64, state, reasonCode int32) error {
	if l := m.current(); l != nil {
		return l.OnSessionStatusNotificationReceived(sessionID, state, reasonCode)
	}
	return nil
}

// OnMulticastListUpdateNotificationReceived forwards the per-controlee
// result of a multicast list update.
func (m *Manager) OnMulticastListUpdateNotificationReceived(status *bridge.MulticastListUpdateStatus) error {
	if l := m.current(); l != nil {
		return l.OnMulticastListUpdateNotificationReceived(status)
	}
	return nil
}

// OnRangeDataNotificationReceived forwards one batch of ranging results.
func (m *Manager) OnRangeDataNotificationReceived(data *bridge.RangingData) error {
	if l := m.current(); l != nil {
		return l.OnRangeDataNotificationReceived(data)
	}
	return nil
}

// OnVendorUciNotificationReceived forwards a vendor notification.
func (m *Manager) OnVendorUciNotificationReceived(gid, oid int32, payload []byte) error {
	if l := m.current(); l != nil {
		return l.OnVendorUciNotificationReceived(gid, oid, payload)
	}
	return nil
}

// OnDataReceived forwards an application data packet received in a
// session.
func (m *Manager) OnDataReceived(sessionID int64, status int32, sequence int64, address []byte, srcEndpoint, dstEndpoint int32, payload []byte) error {
	if l := m.current(); l != nil {
		return l.OnDataReceived(sessionID, status, sequence, address, srcEndpoint, dstEndpoint, payload)
	}
	return nil
}
