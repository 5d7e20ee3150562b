package dispatch

import "errors"

var (
	// ErrInvalidHandle is returned for a zero, stale or destroyed handle.
	ErrInvalidHandle = errors.New("invalid dispatcher handle")

	// ErrUnknownChip is returned for a chip id the dispatcher does not own.
	ErrUnknownChip = errors.New("unknown chip id")

	// ErrAlreadyExists is returned by Create under the single-instance
	// policy while another dispatcher is live.
	ErrAlreadyExists = errors.New("dispatcher already exists")

	// ErrInvalidChipSet is returned for an empty chip list, an empty chip
	// id or a duplicated chip id.
	ErrInvalidChipSet = errors.New("invalid chip set")

	// ErrExecutorClosed is returned when work is submitted after Release.
	ErrExecutorClosed = errors.New("executor closed")

	// ErrNoFactory is returned when the registry has no ManagerFactory.
	ErrNoFactory = errors.New("no manager factory configured")

	// ErrRegistryClosed is returned by Create once Close has been called.
	ErrRegistryClosed = errors.New("registry closed")
)
