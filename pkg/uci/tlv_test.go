package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfigTlvs(t *testing.T) {
	data := []byte{
		0x00, 0x01, 0x01, // device type: controller
		0x01, 0x01, 0x01, // ranging round usage: DS-TWR
	}
	tlvs, err := ParseAppConfigTlvs(2, data)
	require.NoError(t, err)
	require.Len(t, tlvs, 2)
	assert.Equal(t, AppConfigDeviceType, tlvs[0].Type)
	assert.Equal(t, []byte{0x01}, tlvs[0].Value)
	assert.Equal(t, AppConfigRangingRoundUsage, tlvs[1].Type)

	encoded, err := EncodeAppConfigTlvs(tlvs)
	require.NoError(t, err)
	assert.Equal(t, data, encoded)
}

func TestParseAppConfigTlvsZeroLength(t *testing.T) {
	tlvs, err := ParseAppConfigTlvs(1, []byte{0x04, 0x00})
	require.NoError(t, err)
	require.Len(t, tlvs, 1)
	assert.Empty(t, tlvs[0].Value)
}

func TestParseAppConfigTlvsRejects(t *testing.T) {
	tests := []struct {
		name  string
		count int
		data  []byte
	}{
		{"count too high", 3, []byte{0x00, 0x01, 0x01, 0x01, 0x01, 0x01}},
		{"count too low", 1, []byte{0x00, 0x01, 0x01, 0x01, 0x01, 0x01}},
		{"truncated header", 1, []byte{0x00}},
		{"truncated value", 1, []byte{0x00, 0x04, 0x01}},
		{"negative count", -1, nil},
		{"data without count", 0, []byte{0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppConfigTlvs(tt.count, tt.data)
			assert.ErrorIs(t, err, ErrBadParameters)
			assert.Equal(t, StatusInvalidParam, StatusFromError(err))
		})
	}
}

func TestParseAppConfigTlvsCopiesValues(t *testing.T) {
	data := []byte{0x04, 0x01, 0x09}
	tlvs, err := ParseAppConfigTlvs(1, data)
	require.NoError(t, err)
	data[2] = 0x05
	assert.Equal(t, []byte{0x09}, tlvs[0].Value)
}

func TestEncodeCapTlvs(t *testing.T) {
	buf, err := EncodeCapTlvs([]CapTlv{{Type: 0xA0, Value: []byte{1, 2}}, {Type: 0xA1}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA0, 0x02, 1, 2, 0xA1, 0x00}, buf)

	_, err = EncodeCapTlvs([]CapTlv{{Type: 0x01, Value: make([]byte, 256)}})
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestEncodeConfigStatus(t *testing.T) {
	buf := EncodeConfigStatus([]AppConfigStatus{
		{CfgID: AppConfigChannelNumber, Status: StatusOk},
		{CfgID: AppConfigSlotDuration, Status: StatusInvalidRange},
	})
	assert.Equal(t, []byte{0x04, 0x00, 0x08, 0x05}, buf)
}
