package uci

import (
	"errors"
	"fmt"
)

// Protocol errors returned by Manager implementations.
var (
	ErrBadParameters       = errors.New("bad parameters")
	ErrMaxSessionsExceeded = errors.New("max sessions exceeded")
	ErrCommandRetry        = errors.New("command retry")
	ErrTimeout             = errors.New("uci command timed out")
	ErrDuplicatedSessionID = errors.New("duplicated session id")
	ErrRegulationUwbOff    = errors.New("uwb disabled by regulation")
	ErrPacketTx            = errors.New("packet transmission failed")
	ErrForeignInterface    = errors.New("foreign function interface failure")
	ErrManagerClosed       = errors.New("uci manager closed")
	ErrUnknown             = errors.New("unknown uci error")
)

// StatusError carries a non-OK status code returned by the chip.
type StatusError struct {
	Status StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("uci status %s", e.Status)
}

// Is maps chip status codes onto the matching protocol sentinel so that
// errors.Is(err, ErrBadParameters) holds for an INVALID_PARAM response.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrBadParameters:
		return e.Status == StatusInvalidParam
	case ErrMaxSessionsExceeded:
		return e.Status == StatusMaxSessionsExceeded
	case ErrCommandRetry:
		return e.Status == StatusCommandRetry
	case ErrDuplicatedSessionID:
		return e.Status == StatusSessionDuplicate
	}
	return false
}

// NewStatusError returns nil for StatusOk and a *StatusError otherwise.
func NewStatusError(s StatusCode) error {
	if s.IsOk() {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusFromError maps an error onto the status code reported to the host.
// The mapping is many-to-one: bad parameters, too many sessions and command
// retry keep their own codes, everything else becomes StatusFailed.
func StatusFromError(err error) StatusCode {
	switch {
	case err == nil:
		return StatusOk
	case errors.Is(err, ErrBadParameters):
		return StatusInvalidParam
	case errors.Is(err, ErrMaxSessionsExceeded):
		return StatusMaxSessionsExceeded
	case errors.Is(err, ErrCommandRetry):
		return StatusCommandRetry
	default:
		return StatusFailed
	}
}
