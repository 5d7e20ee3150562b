package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwbcore/uwb-go/pkg/host"
	"github.com/uwbcore/uwb-go/pkg/version"
)

func TestLayoutMatchesCurrentManifest(t *testing.T) {
	manifest, err := version.LoadCurrentLayout()
	require.NoError(t, err)

	res := version.ValidateHost(manifest, Layout())
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestLayoutDescriptorsParse(t *testing.T) {
	for method, sig := range Layout().Methods {
		s, err := host.ParseSignature(sig)
		if assert.NoError(t, err, method) {
			assert.Equal(t, host.KindVoid, s.Ret.Kind, method)
		}
	}
	for class, ctors := range Layout().Classes {
		for _, c := range ctors {
			_, err := host.ParseSignature(c)
			assert.NoError(t, err, class)
		}
	}
}
