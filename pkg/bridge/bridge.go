package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

// Config configures a Bridge.
type Config struct {
	// ChipID is passed to device status and generic error callbacks.
	ChipID string

	// Runtime is the host runtime to attach to.
	Runtime host.Runtime

	// Target is the host object whose callbacks are invoked.
	Target host.Object

	// Logger is used for dropped notifications. Optional.
	Logger *slog.Logger
}

type methodKey struct {
	name string
	sig  string
}

// Bridge is the NotificationManager of one chip. All methods, Close
// included, must be called on the thread that called New.
type Bridge struct {
	chipID string
	target host.Object
	token  *AttachmentToken
	logger *slog.Logger

	methods    map[methodKey]host.MethodID
	classes    map[string]host.Class
	signatures map[string]host.Signature

	closed    bool
	delivered atomic.Int64
	dropped   atomic.Int64
}

var _ uci.NotificationManager = (*Bridge)(nil)

// New attaches the calling thread and returns a Bridge delivering to
// cfg.Target. On error the thread is left as it was found.
func New(cfg Config) (*Bridge, error) {
	token, err := Attach(cfg.Runtime)
	if err != nil {
		return nil, fmt.Errorf("attach %s: %w", cfg.ChipID, err)
	}
	if cfg.Target == nil {
		_ = token.Detach()
		return nil, ErrNilTarget
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		chipID:     cfg.ChipID,
		target:     cfg.Target,
		token:      token,
		logger:     logger.With("chip", cfg.ChipID),
		methods:    make(map[methodKey]host.MethodID),
		classes:    make(map[string]host.Class),
		signatures: make(map[string]host.Signature),
	}, nil
}

// Builder returns a NotificationManagerBuilder that calls New with cfg on
// the building thread.
func Builder(cfg Config) uci.NotificationManagerBuilder {
	return uci.NotificationManagerBuilderFunc(func() (uci.NotificationManager, error) {
		return New(cfg)
	})
}

// ChipID returns the chip the bridge delivers for.
func (b *Bridge) ChipID() string { return b.chipID }

// Delivered returns the number of notifications the host accepted.
func (b *Bridge) Delivered() int64 { return b.delivered.Load() }

// Dropped returns the number of notifications that could not be delivered.
func (b *Bridge) Dropped() int64 { return b.dropped.Load() }

// Deliver routes any notification type to its encoder.
func (b *Bridge) Deliver(n any) error {
	switch n := n.(type) {
	case uci.CoreNotification:
		return b.OnCoreNotification(n)
	case uci.SessionNotification:
		return b.OnSessionNotification(n)
	case uci.RawMessage:
		return b.OnVendorNotification(n)
	case uci.DataRcvNotification:
		return b.OnDataRcvNotification(n)
	}
	return fmt.Errorf("bridge: unknown notification %T", n)
}

// Close releases the thread attachment. Deliveries after Close fail with
// ErrClosed.
func (b *Bridge) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.token.Detach(); err != nil {
		b.logger.Warn("detach failed", "error", err)
		return err
	}
	b.logger.Debug("bridge closed",
		"delivered", b.delivered.Load(),
		"dropped", b.dropped.Load())
	return nil
}

func (b *Bridge) env() (host.Env, error) {
	if b.closed {
		return nil, ErrClosed
	}
	return b.token.Env(), nil
}

func (b *Bridge) signature(desc string) (host.Signature, error) {
	if sig, ok := b.signatures[desc]; ok {
		return sig, nil
	}
	sig, err := host.ParseSignature(desc)
	if err != nil {
		return host.Signature{}, err
	}
	b.signatures[desc] = sig
	return sig, nil
}

func (b *Bridge) method(env host.Env, name, sig string) (host.MethodID, error) {
	key := methodKey{name: name, sig: sig}
	if m, ok := b.methods[key]; ok {
		return m, nil
	}
	m, err := env.GetMethodID(b.target, name, sig)
	if err != nil {
		return nil, err
	}
	b.methods[key] = m
	return m, nil
}

func (b *Bridge) class(env host.Env, name string) (host.Class, error) {
	if c, ok := b.classes[name]; ok {
		return c, nil
	}
	c, err := env.FindClass(name)
	if err != nil {
		return nil, err
	}
	b.classes[name] = c
	return c, nil
}

// newObject constructs an instance of the named class.
func (b *Bridge) newObject(env host.Env, cls, ctor string, args ...host.Value) (host.Object, error) {
	c, err := b.class(env, cls)
	if err != nil {
		return nil, err
	}
	sig, err := b.signature(ctor)
	if err != nil {
		return nil, err
	}
	if len(sig.Args) != len(args) {
		return nil, fmt.Errorf("%w: %s.<init>%s", host.ErrArgumentCount, cls, ctor)
	}
	return env.NewObject(c, ctor, args...)
}

// call invokes a void host callback.
func (b *Bridge) call(env host.Env, name, sig string, args ...host.Value) error {
	s, err := b.signature(sig)
	if err != nil {
		return err
	}
	if len(s.Args) != len(args) {
		return fmt.Errorf("%w: %s%s", host.ErrArgumentCount, name, sig)
	}
	m, err := b.method(env, name, sig)
	if err != nil {
		return err
	}
	return env.CallVoidMethod(b.target, m, args...)
}

// finish records the outcome of one delivery.
func (b *Bridge) finish(method, class string, err error) error {
	if err == nil {
		b.delivered.Add(1)
		return nil
	}
	b.dropped.Add(1)
	var ie *InteropError
	if !errors.As(err, &ie) {
		ie = &InteropError{Method: method, Class: class, Err: err}
	}
	b.logger.Warn("dropping notification",
		"callback", ie.Method,
		"class", ie.Class,
		"error", ie.Err)
	return ie
}

// deliver runs one encoder against an attached env.
func (b *Bridge) deliver(method string, encode func(env host.Env) error) error {
	env, err := b.env()
	if err != nil {
		return b.finish(method, "", err)
	}
	return b.finish(method, "", encode(env))
}
