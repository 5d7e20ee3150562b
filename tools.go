//go:build tools

package tools

// mockery is used as an installed binary. Run mockery from the module root
// to regenerate pkg/uci/mocks from .mockery.yaml.
