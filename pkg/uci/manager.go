package uci

import (
	"context"

	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// Manager is the per-chip UCI protocol manager. Calls block until the
// command/response exchange completes, ctx is done, or the manager's own
// command timeout expires. Calls on one Manager are serialized; different
// Managers are independent.
type Manager interface {
	OpenHal(ctx context.Context) error
	CloseHal(ctx context.Context, force bool) error
	DeviceReset(ctx context.Context, cfg ResetConfig) error
	CoreGetCapsInfo(ctx context.Context) ([]CapTlv, error)

	SessionInit(ctx context.Context, sessionID uint32, sessionType SessionType) error
	SessionDeinit(ctx context.Context, sessionID uint32) error
	SessionGetCount(ctx context.Context) (uint8, error)
	SessionGetState(ctx context.Context, sessionID uint32) (SessionState, error)
	SessionSetAppConfig(ctx context.Context, sessionID uint32, tlvs []AppConfigTlv) (SetAppConfigResponse, error)
	SessionGetAppConfig(ctx context.Context, sessionID uint32, types []AppConfigTlvType) ([]AppConfigTlv, error)
	SessionUpdateControllerMulticastList(ctx context.Context, sessionID uint32, action MulticastAction, controlees Controlees) error
	SessionUpdateActiveRoundsDtTag(ctx context.Context, sessionID uint32, indexes []uint8) (DtTagRoundsResponse, error)

	RangeStart(ctx context.Context, sessionID uint32) error
	RangeStop(ctx context.Context, sessionID uint32) error

	SetCountryCode(ctx context.Context, code CountryCode) error
	GetPowerStats(ctx context.Context) (PowerStats, error)
	RawUciCmd(ctx context.Context, mt, gid, oid uint32, payload []byte) (RawMessage, error)
	SendData(ctx context.Context, sessionID uint32, address MacAddress, dstEndpoint uint8, sequence uint16, payload []byte) error

	// SetLoggerMode switches the UCI capture mode of this chip.
	SetLoggerMode(mode ucilog.Mode) error

	// Close stops the manager's worker and releases its notification
	// manager. It does not wait for in-flight deliveries to finish.
	Close() error
}

// NotificationManager receives the notifications of one chip. All methods
// are called on the manager's worker, in the order the chip emitted the
// notifications.
type NotificationManager interface {
	OnCoreNotification(n CoreNotification) error
	OnSessionNotification(n SessionNotification) error
	OnVendorNotification(n RawMessage) error
	OnDataRcvNotification(n DataRcvNotification) error

	// Close is called once, on the worker, after the last notification.
	Close() error
}

// NotificationManagerBuilder builds a NotificationManager on the worker that
// will use it.
type NotificationManagerBuilder interface {
	Build() (NotificationManager, error)
}

// NotificationManagerBuilderFunc adapts a function to NotificationManagerBuilder.
type NotificationManagerBuilderFunc func() (NotificationManager, error)

// Build calls f.
func (f NotificationManagerBuilderFunc) Build() (NotificationManager, error) {
	return f()
}
