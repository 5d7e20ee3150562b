package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{DefaultChipID}, c.ChipIDs())
	assert.Equal(t, DefaultChipID, c.DefaultChip)
	assert.Equal(t, ucilog.DefaultPrefix, c.Log.Prefix)
	assert.Equal(t, ucilog.ModeFiltered, c.LogMode())
	assert.Equal(t, DefaultCommandTimeout, c.CommandTimeout)
	assert.Equal(t, DefaultQueueLength, c.QueueLength)
	assert.True(t, c.Single())
	require.NoError(t, c.Validate())
}

func TestParseEmptyDocument(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMultichip(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "multichip.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"chip0", "chip1"}, c.ChipIDs())
	assert.Equal(t, "chip1", c.DefaultChip)
	assert.Equal(t, "/var/log/uwb", c.Log.Dir)
	assert.Equal(t, ucilog.ModeUnfiltered, c.LogMode())
	assert.Equal(t, 750*time.Millisecond, c.CommandTimeout)
	assert.Equal(t, 64, c.QueueLength)
	assert.False(t, c.Single())

	pos, ok := c.Position("chip1")
	require.True(t, ok)
	assert.InDelta(t, 0.2, pos.X, 1e-9)

	_, ok = c.Position("chip9")
	assert.False(t, ok)
}

func TestDefaultChipIsFirst(t *testing.T) {
	c, err := Parse([]byte("chips:\n  - id: a\n  - id: b\n"))
	require.NoError(t, err)
	assert.Equal(t, "a", c.DefaultChip)
	_, ok := c.Position("a")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty id", "chips:\n  - id: \"\"\n", ErrEmptyChipID},
		{"duplicate id", "chips:\n  - id: a\n  - id: a\n", ErrDuplicateChipID},
		{"unknown default", "chips:\n  - id: a\ndefault_chip: b\n", ErrUnknownDefault},
		{"bad mode", "log:\n  mode: chatty\n", ucilog.ErrUnknownMode},
		{"negative timeout", "command_timeout: -1s\n", ErrNegativeValue},
		{"negative queue", "queue_length: -4\n", ErrNegativeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidationJoinsErrors(t *testing.T) {
	_, err := Parse([]byte("chips:\n  - id: a\n  - id: a\nlog:\n  mode: nope\n"))
	assert.ErrorIs(t, err, ErrDuplicateChipID)
	assert.ErrorIs(t, err, ucilog.ErrUnknownMode)
}

func TestUnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("chip:\n  - id: a\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogFactory(t *testing.T) {
	dir := t.TempDir()
	c, err := Parse([]byte("log:\n  dir: " + dir + "\n  prefix: bench\n  mode: unfiltered\n"))
	require.NoError(t, err)

	f := c.LogFactory(nil)
	assert.Equal(t, ucilog.ModeUnfiltered, f.Mode())
	assert.Equal(t, filepath.Join(dir, "bench_default"+ucilog.FileExtension), f.Path("default"))
}
