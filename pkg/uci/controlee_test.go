package uci

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildControleesNoKey(t *testing.T) {
	for _, action := range []MulticastAction{MulticastActionAdd, MulticastActionRemove} {
		c, err := BuildControlees(action, 2, []uint16{0x0A0B, 0x0C0D}, []uint32{1, 2}, []byte{0xFF})
		require.NoError(t, err, action.String())
		list, ok := c.(NoKeyControlees)
		require.True(t, ok)
		assert.Equal(t, NoKeyControlees{{0x0A0B, 1}, {0x0C0D, 2}}, list)
	}
}

func TestBuildControleesShortKey(t *testing.T) {
	keys := append(bytes.Repeat([]byte{0x11}, 16), bytes.Repeat([]byte{0x22}, 16)...)
	c, err := BuildControlees(MulticastActionAddWithShortKey, 2, []uint16{1, 2}, []uint32{10, 20}, keys)
	require.NoError(t, err)

	list, ok := c.(ShortKeyControlees)
	require.True(t, ok)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, uint32(20), list[1].SubSessionID)
	assert.Equal(t, byte(0x11), list[0].SubSessionKey[15])
	assert.Equal(t, byte(0x22), list[1].SubSessionKey[0])
}

func TestBuildControleesLongKey(t *testing.T) {
	keys := bytes.Repeat([]byte{0x33}, 32)
	c, err := BuildControlees(MulticastActionAddWithLongKey, 1, []uint16{7}, []uint32{70}, keys)
	require.NoError(t, err)

	list, ok := c.(LongKeyControlees)
	require.True(t, ok)
	assert.Equal(t, uint16(7), list[0].ShortAddress)
	assert.Equal(t, byte(0x33), list[0].SubSessionKey[31])
}

func TestBuildControleesRejects(t *testing.T) {
	tests := []struct {
		name   string
		action MulticastAction
		count  int
		addrs  []uint16
		ids    []uint32
		keys   []byte
	}{
		{"address count mismatch", MulticastActionAdd, 2, []uint16{1}, []uint32{1, 2}, nil},
		{"id count mismatch", MulticastActionAdd, 2, []uint16{1, 2}, []uint32{1}, nil},
		{"declared count mismatch", MulticastActionRemove, 3, []uint16{1, 2}, []uint32{1, 2}, nil},
		{"short key blob too small", MulticastActionAddWithShortKey, 2, []uint16{1, 2}, []uint32{1, 2}, make([]byte, 16)},
		{"short key blob partial", MulticastActionAddWithShortKey, 1, []uint16{1}, []uint32{1}, make([]byte, 20)},
		{"long key blob with short keys", MulticastActionAddWithLongKey, 2, []uint16{1, 2}, []uint32{1, 2}, make([]byte, 32)},
		{"unknown action", MulticastAction(9), 0, nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildControlees(tt.action, tt.count, tt.addrs, tt.ids, tt.keys)
			assert.ErrorIs(t, err, ErrBadParameters)
		})
	}
}

func TestParseMulticastAction(t *testing.T) {
	a, err := ParseMulticastAction(3)
	require.NoError(t, err)
	assert.Equal(t, MulticastActionAddWithLongKey, a)

	_, err = ParseMulticastAction(4)
	assert.ErrorIs(t, err, ErrBadParameters)
}
