package uwbsim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

type result struct {
	v   any
	err error
}

type command struct {
	op      string
	kind    ucilog.PacketKind
	gid     uint8
	oid     uint8
	payload []byte
	fn      func() (any, error)
	reply   chan result
}

type session struct {
	id         uint32
	typ        uci.SessionType
	state      uci.SessionState
	config     map[uci.AppConfigTlvType][]byte
	controlees []uci.Controlee
	sequence   uint32
}

// Chip is a simulated UWB chip.
type Chip struct {
	id     string
	opts   Options
	logger *slog.Logger
	plog   *ucilog.ChipLogger

	cmds      chan *command
	stop      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	// Worker state.
	nm          uci.NotificationManager
	pending     []any
	open        bool
	sessions    map[uint32]*session
	countryCode uci.CountryCode
	openedAt    time.Time
	wakeCount   uint32
	rangeRounds uint32
}

var _ uci.Manager = (*Chip)(nil)

// New starts a simulated chip on p.Executor and waits for its worker to
// build the notification manager.
func New(ctx context.Context, p dispatch.ManagerParams, opts Options) (*Chip, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	plog := p.ProtocolLogger
	if plog == nil {
		plog = ucilog.NewChipLogger(p.ChipID, nil, ucilog.ModeDisabled)
	}
	opts = opts.withDefaults()
	c := &Chip{
		id:       p.ChipID,
		opts:     opts,
		logger:   logger,
		plog:     plog,
		cmds:     make(chan *command, opts.QueueLength),
		stop:     make(chan struct{}),
		sessions: make(map[uint32]*session),
	}

	ready := make(chan error, 1)
	if err := p.Executor.Go(func() { c.run(p.Notifications, ready) }); err != nil {
		return nil, err
	}
	select {
	case err := <-ready:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		c.Close()
		return nil, ctx.Err()
	}
	logger.Debug("simulated chip started")
	return c, nil
}

// ChipID returns the chip id.
func (c *Chip) ChipID() string { return c.id }

func (c *Chip) run(builder uci.NotificationManagerBuilder, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	nm, err := builder.Build()
	if err != nil {
		ready <- fmt.Errorf("build notification manager: %w", err)
		return
	}
	c.nm = nm
	defer func() {
		if err := nm.Close(); err != nil {
			c.logger.Warn("close notification manager failed", "error", err)
		}
		c.logger.Debug("simulated chip stopped")
	}()
	ready <- nil

	var tick <-chan time.Time
	if c.opts.RangeInterval > 0 {
		t := time.NewTicker(c.opts.RangeInterval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-c.stop:
			return
		case cmd := <-c.cmds:
			c.execute(cmd)
		case <-tick:
			c.emitRangeData()
			c.flush()
		}
	}
}

func (c *Chip) execute(cmd *command) {
	if c.opts.OnCommand != nil {
		c.opts.OnCommand(c.id, cmd.op)
	}
	if cmd.kind != ucilog.PacketKindNotification {
		c.plog.Packet(ucilog.DirectionOut, cmd.kind, cmd.gid, cmd.oid, cmd.payload)
	}

	v, err := cmd.fn()
	status := uci.StatusFromError(err)
	if cmd.kind == ucilog.PacketKindCommand {
		c.plog.Packet(ucilog.DirectionIn, ucilog.PacketKindResponse, cmd.gid, cmd.oid, []byte{byte(status)})
	}
	if err != nil {
		code := int(status)
		c.plog.Error(cmd.op, &code, err)
	}
	cmd.reply <- result{v: v, err: err}
	c.flush()
}

// notify queues a notification for delivery after the current command.
func (c *Chip) notify(n any) {
	c.pending = append(c.pending, n)
}

// flush delivers queued notifications in order.
func (c *Chip) flush() {
	pending := c.pending
	c.pending = nil
	for _, n := range pending {
		gid, oid := notificationHeader(n)
		c.plog.Packet(ucilog.DirectionIn, ucilog.PacketKindNotification, gid, oid, nil)

		var err error
		switch n := n.(type) {
		case uci.CoreNotification:
			err = c.nm.OnCoreNotification(n)
		case uci.SessionNotification:
			err = c.nm.OnSessionNotification(n)
		case uci.RawMessage:
			err = c.nm.OnVendorNotification(n)
		case uci.DataRcvNotification:
			err = c.nm.OnDataRcvNotification(n)
		}
		if err != nil {
			c.logger.Debug("notification not delivered", "type", fmt.Sprintf("%T", n), "error", err)
		}
	}
}

func notificationHeader(n any) (gid, oid uint8) {
	switch n := n.(type) {
	case uci.DeviceStatus:
		return uci.GroupCore, uci.OidCoreDeviceStatus
	case uci.GenericError:
		return uci.GroupCore, uci.OidCoreGenericError
	case uci.SessionStatus:
		return uci.GroupSessionConfig, uci.OidSessionStatus
	case uci.MulticastListUpdate:
		return uci.GroupSessionConfig, uci.OidSessionUpdateMulticastList
	case uci.SessionRangeData:
		return uci.GroupSessionControl, uci.OidRangeData
	case uci.DataCredit:
		return uci.GroupSessionControl, uci.OidDataCredit
	case uci.DataTransferStatus:
		return uci.GroupSessionControl, uci.OidDataTransferStatus
	case uci.RawMessage:
		return uint8(n.GID), uint8(n.OID)
	}
	return uci.GroupDataControl, 0
}

// call runs fn on the worker and waits for its result.
func (c *Chip) call(ctx context.Context, op string, gid, oid uint8, payload []byte, fn func() (any, error)) (any, error) {
	return c.submit(ctx, &command{
		op:      op,
		kind:    ucilog.PacketKindCommand,
		gid:     gid,
		oid:     oid,
		payload: payload,
		fn:      fn,
		reply:   make(chan result, 1),
	})
}

func (c *Chip) submit(ctx context.Context, cmd *command) (any, error) {
	if c.closed.Load() {
		return nil, uci.ErrManagerClosed
	}
	timer := time.NewTimer(c.opts.CommandTimeout)
	defer timer.Stop()

	select {
	case c.cmds <- cmd:
	case <-c.stop:
		return nil, uci.ErrManagerClosed
	case <-ctx.Done():
		return nil, ctxErr(ctx)
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s queued for %s", uci.ErrTimeout, cmd.op, c.opts.CommandTimeout)
	}

	select {
	case r := <-cmd.reply:
		return r.v, r.err
	case <-c.stop:
		return nil, uci.ErrManagerClosed
	case <-ctx.Done():
		return nil, ctxErr(ctx)
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s", uci.ErrTimeout, cmd.op)
	}
}

func ctxErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", uci.ErrTimeout, ctx.Err())
	}
	return ctx.Err()
}

// Close stops the worker. It does not wait for it.
func (c *Chip) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.stop)
	})
	return nil
}

// SetLoggerMode implements uci.Manager.
func (c *Chip) SetLoggerMode(mode ucilog.Mode) error {
	if c.closed.Load() {
		return uci.ErrManagerClosed
	}
	c.plog.SetMode(mode)
	return nil
}

// Inject delivers n through the worker as if the chip had sent it.
func (c *Chip) Inject(ctx context.Context, n any) error {
	switch n.(type) {
	case uci.CoreNotification, uci.SessionNotification, uci.RawMessage, uci.DataRcvNotification:
	default:
		return fmt.Errorf("%w: cannot inject %T", uci.ErrBadParameters, n)
	}
	_, err := c.submit(ctx, &command{
		op:    "Inject",
		kind:  ucilog.PacketKindNotification,
		fn:    func() (any, error) { c.notify(n); return nil, nil },
		reply: make(chan result, 1),
	})
	return err
}
