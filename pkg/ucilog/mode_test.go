package ucilog

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureLogger) all() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"disabled", ModeDisabled},
		{"Filtered", ModeFiltered},
		{" UNFILTERED ", ModeUnfiltered},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseMode("verbose")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func mustParse(t *testing.T, s string) Mode {
	t.Helper()
	m, err := ParseMode(s)
	require.NoError(t, err)
	return m
}

func TestChipLoggerStampsEvents(t *testing.T) {
	sink := &captureLogger{}
	cl := NewChipLogger("chip0", sink, ModeUnfiltered)

	cl.Packet(DirectionOut, PacketKindCommand, 0x01, 0x00, []byte{1, 2})

	events := sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, "chip0", events[0].ChipID)
	assert.Equal(t, cl.LogID(), events[0].LogID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, []byte{1, 2}, events[0].Packet.Payload)
}

func TestChipLoggerLogIDsDiffer(t *testing.T) {
	a := NewChipLogger("chip0", nil, ModeFiltered)
	b := NewChipLogger("chip0", nil, ModeFiltered)
	assert.NotEqual(t, a.LogID(), b.LogID())
}

func TestChipLoggerDisabledDrops(t *testing.T) {
	sink := &captureLogger{}
	cl := NewChipLogger("chip0", sink, ModeDisabled)
	cl.Packet(DirectionOut, PacketKindCommand, 0x01, 0x00, nil)
	cl.State(StateEntityDevice, 0, "", "READY", "")
	assert.Empty(t, sink.all())

	cl.SetMode(ModeUnfiltered)
	cl.State(StateEntityDevice, 0, "", "READY", "")
	assert.Len(t, sink.all(), 1)
}

func TestChipLoggerFilteredStripsPayloads(t *testing.T) {
	sink := &captureLogger{}
	cl := NewChipLogger("chip0", sink, ModeFiltered)

	payload := []byte{0xAA, 0xBB, 0xCC}
	cl.Packet(DirectionOut, PacketKindData, 0x01, 0x00, payload)
	cl.Packet(DirectionIn, PacketKindNotification, 0x0E, 0x01, payload)
	cl.Packet(DirectionOut, PacketKindCommand, 0x01, 0x00, payload)

	events := sink.all()
	require.Len(t, events, 3)

	assert.Nil(t, events[0].Packet.Payload)
	assert.True(t, events[0].Packet.Truncated)
	assert.Equal(t, 3, events[0].Packet.Size)

	assert.Nil(t, events[1].Packet.Payload)
	assert.True(t, events[1].Packet.Truncated)

	assert.Equal(t, payload, events[2].Packet.Payload)
	assert.False(t, events[2].Packet.Truncated)
}

func TestChipLoggerFilteredDoesNotMutateCaller(t *testing.T) {
	cl := NewChipLogger("chip0", &captureLogger{}, ModeFiltered)
	p := &PacketEvent{Kind: PacketKindData, Payload: []byte{1}, Size: 1}
	cl.Log(Event{Category: CategoryPacket, Packet: p})
	assert.Equal(t, []byte{1}, p.Payload)
}

func TestChipLoggerError(t *testing.T) {
	sink := &captureLogger{}
	cl := NewChipLogger("chip1", sink, ModeFiltered)
	code := 2
	cl.Error("SessionInit", &code, errors.New("failed"))

	events := sink.all()
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Error)
	assert.Equal(t, "SessionInit", events[0].Error.Context)
	assert.Equal(t, 2, *events[0].Error.Code)
}
