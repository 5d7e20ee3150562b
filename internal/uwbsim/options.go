package uwbsim

import "time"

// Defaults.
const (
	DefaultCommandTimeout = time.Second
	DefaultQueueLength    = 32
	MaxSessions           = 5
)

// Options tunes a simulated chip.
type Options struct {
	// CommandTimeout bounds each command. Zero means DefaultCommandTimeout.
	CommandTimeout time.Duration

	// QueueLength is the command queue depth. Zero means
	// DefaultQueueLength.
	QueueLength int

	// RangeInterval is the period of range data notifications for active
	// sessions. Zero disables periodic range data.
	RangeInterval time.Duration

	// OnCommand, if set, runs on the worker before each command.
	OnCommand func(chipID, op string)
}

func (o Options) withDefaults() Options {
	if o.CommandTimeout <= 0 {
		o.CommandTimeout = DefaultCommandTimeout
	}
	if o.QueueLength <= 0 {
		o.QueueLength = DefaultQueueLength
	}
	return o
}
