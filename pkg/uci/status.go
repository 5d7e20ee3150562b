package uci

import "fmt"

// StatusCode is a UCI status code as carried in responses and notifications.
type StatusCode uint8

const (
	StatusOk                   StatusCode = 0x00
	StatusRejected             StatusCode = 0x01
	StatusFailed               StatusCode = 0x02
	StatusSyntaxError          StatusCode = 0x03
	StatusInvalidParam         StatusCode = 0x04
	StatusInvalidRange         StatusCode = 0x05
	StatusInvalidMsgSize       StatusCode = 0x06
	StatusUnknownGid           StatusCode = 0x07
	StatusUnknownOid           StatusCode = 0x08
	StatusReadOnly             StatusCode = 0x09
	StatusCommandRetry         StatusCode = 0x0A
	StatusSessionNotExist      StatusCode = 0x11
	StatusSessionDuplicate     StatusCode = 0x12
	StatusSessionActive        StatusCode = 0x13
	StatusMaxSessionsExceeded  StatusCode = 0x14
	StatusSessionNotConfigured StatusCode = 0x15
)

// String returns the status name.
func (s StatusCode) String() string {
	switch s {
	case StatusOk:
		return "OK"
	case StatusRejected:
		return "REJECTED"
	case StatusFailed:
		return "FAILED"
	case StatusSyntaxError:
		return "SYNTAX_ERROR"
	case StatusInvalidParam:
		return "INVALID_PARAM"
	case StatusInvalidRange:
		return "INVALID_RANGE"
	case StatusInvalidMsgSize:
		return "INVALID_MSG_SIZE"
	case StatusUnknownGid:
		return "UNKNOWN_GID"
	case StatusUnknownOid:
		return "UNKNOWN_OID"
	case StatusReadOnly:
		return "READ_ONLY"
	case StatusCommandRetry:
		return "COMMAND_RETRY"
	case StatusSessionNotExist:
		return "SESSION_NOT_EXIST"
	case StatusSessionDuplicate:
		return "SESSION_DUPLICATE"
	case StatusSessionActive:
		return "SESSION_ACTIVE"
	case StatusMaxSessionsExceeded:
		return "MAX_SESSIONS_EXCEEDED"
	case StatusSessionNotConfigured:
		return "SESSION_NOT_CONFIGURED"
	default:
		return fmt.Sprintf("STATUS_0x%02X", uint8(s))
	}
}

// IsOk returns true for StatusOk.
func (s StatusCode) IsOk() bool {
	return s == StatusOk
}
