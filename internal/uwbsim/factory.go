package uwbsim

import (
	"context"
	"fmt"

	"github.com/uwbcore/uwb-go/pkg/dispatch"
	"github.com/uwbcore/uwb-go/pkg/uci"
)

// Factory creates simulated chips. It implements dispatch.ManagerFactory.
type Factory struct {
	Options Options

	// Fail makes NewManager fail for the listed chip ids.
	Fail map[string]error
}

var _ dispatch.ManagerFactory = (*Factory)(nil)

// NewManager implements dispatch.ManagerFactory.
func (f *Factory) NewManager(ctx context.Context, p dispatch.ManagerParams) (uci.Manager, error) {
	if err := f.Fail[p.ChipID]; err != nil {
		return nil, fmt.Errorf("simulated failure: %w", err)
	}
	return New(ctx, p, f.Options)
}
