package interactive

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/uwbcore/uwb-go/pkg/bridge"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

// Printer writes every notification it receives as one line.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

var _ bridge.Callbacks = (*Printer)(nil)

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "[NTF] "+format+"\n", args...)
}

func (p *Printer) OnDeviceStatusNotificationReceived(state int32, chipID string) error {
	p.printf("device %s: %s", chipID, uci.DeviceState(state))
	return nil
}

func (p *Printer) OnCoreGenericErrorNotificationReceived(status int32, chipID string) error {
	p.printf("device %s: generic error %s", chipID, uci.StatusCode(status))
	return nil
}

func (p *Printer) OnSessionStatusNotificationReceived(sessionID int64, state, reasonCode int32) error {
	p.printf("session %d: %s (reason 0x%02X)", sessionID, uci.SessionState(state), reasonCode)
	return nil
}

func (p *Printer) OnMulticastListUpdateNotificationReceived(status *bridge.MulticastListUpdateStatus) error {
	p.printf("session %d: multicast list updated, %d controlees, %d remaining",
		status.SessionID, status.NumControlees, status.RemainingListSize)
	return nil
}

func (p *Printer) OnRangeDataNotificationReceived(data *bridge.RangingData) error {
	p.printf("session %d: range data #%d, %s, %d measurements",
		data.SessionID, data.SequenceCounter, uci.RangingMeasurementType(data.MeasurementType), data.NumMeasurements)
	return nil
}

func (p *Printer) OnVendorUciNotificationReceived(gid, oid int32, payload []byte) error {
	p.printf("vendor %02X/%02X: %s", gid, oid, hex.EncodeToString(payload))
	return nil
}

func (p *Printer) OnDataReceived(sessionID int64, status int32, sequence int64, address []byte, srcEndpoint, dstEndpoint int32, payload []byte) error {
	p.printf("session %d: data #%d from %s (%s): %s",
		sessionID, sequence, hex.EncodeToString(address), uci.StatusCode(status), hex.EncodeToString(payload))
	return nil
}
