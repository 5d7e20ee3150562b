package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		desc string
		args int
		ret  Kind
	}{
		{"()V", 0, KindVoid},
		{"(JII)V", 3, KindVoid},
		{"(ILjava/lang/String;)V", 2, KindVoid},
		{"(JII[I[J[I)V", 6, KindVoid},
		{"([BIIIIIIIIIIIII)V", 14, KindVoid},
		{"(JJIJIII[Luwb/Measurement;[B)V", 9, KindVoid},
		{"([[I)I", 1, KindInt},
		{"()Luwb/Thing;", 0, KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			sig, err := ParseSignature(tt.desc)
			require.NoError(t, err)
			assert.Len(t, sig.Args, tt.args)
			assert.Equal(t, tt.ret, sig.Ret.Kind)
			assert.Equal(t, tt.desc, sig.String())
		})
	}
}

func TestParseSignatureRejects(t *testing.T) {
	for _, desc := range []string{
		"",
		"V",
		"(I",
		"(I)",
		"(V)V",
		"(Ljava/lang/String)V",
		"(L;)V",
		"(Q)V",
		"(I)VV",
		"([)V",
	} {
		t.Run(desc, func(t *testing.T) {
			_, err := ParseSignature(desc)
			assert.True(t, errors.Is(err, ErrBadSignature), "got %v", err)
		})
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("[Luwb/Point;")
	require.NoError(t, err)
	assert.Equal(t, KindArray, typ.Kind)
	assert.Equal(t, "uwb/Point", typ.Elem.Class)

	_, err = ParseType("V")
	assert.ErrorIs(t, err, ErrBadSignature)
	_, err = ParseType("II")
	assert.ErrorIs(t, err, ErrBadSignature)
}
