package native

import (
	"context"

	"github.com/uwbcore/uwb-go/pkg/uci"
)

// fail logs a failed boundary call. chipID is empty for dispatcher-wide
// operations.
func (m *Manager) fail(op, chipID string, err error) {
	if chipID == "" {
		m.logger.Error("boundary call failed", "op", op, "error", err)
		return
	}
	m.logger.Error("boundary call failed", "op", op, "chip", chipID, "error", err)
}

func (m *Manager) boolResult(op, chipID string, err error) bool {
	if err != nil {
		m.fail(op, chipID, err)
		return false
	}
	return true
}

func (m *Manager) byteResult(op, chipID string, err error) int8 {
	if err != nil {
		m.fail(op, chipID, err)
	}
	return int8(uci.StatusFromError(err))
}

// optionResult returns &v, or nil when err is set.
func optionResult[T any](m *Manager, op, chipID string, v T, err error) *T {
	if err != nil {
		m.fail(op, chipID, err)
		return nil
	}
	return &v
}

// withManager runs f against the protocol manager of chipID under the
// dispatch guard, with the command timeout applied.
func (m *Manager) withManager(chipID string, f func(context.Context, uci.Manager) error) error {
	ctx, cancel := m.context()
	defer cancel()
	return m.reg.WithManager(m, chipID, func(um uci.Manager) error {
		return f(ctx, um)
	})
}
