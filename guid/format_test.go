package guid

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexPadsInteriorWords(t *testing.T) {
	// leading word unpadded, interior zero words rendered in full
	g := FromUint128(0xab, 0)
	assert.Equal(t, "ab"+strings.Repeat("0", 16), g.Hex())

	g = FromUint128(1, 0xf)
	assert.Equal(t, "1"+strings.Repeat("0", 15)+"f", g.Hex())

	top := FromBytesBE(append([]byte{0x01}, make([]byte, Size-1)...))
	assert.Equal(t, "1"+strings.Repeat("0", 62), top.Hex())
	assert.Len(t, Max().Hex(), 2*Size)
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "0", Min().Binary())
	assert.Equal(t, "101", FromUint8(5).Binary())
	assert.Equal(t, "1"+strings.Repeat("0", 64), FromUint128(1, 0).Binary())
	assert.Equal(t, "11"+strings.Repeat("0", 63)+"1", FromUint128(3, 1).Binary())
	assert.Equal(t, strings.Repeat("1", Size*8), Max().Binary())
}

func TestFormatVerbs(t *testing.T) {
	g := FromUint32(0xbeef)

	cases := []struct {
		format string
		want   string
	}{
		{"%x", "beef"},
		{"%X", "BEEF"},
		{"%s", "beef"},
		{"%v", "beef"},
		{"%#x", "0xbeef"},
		{"%#X", "0XBEEF"},
		{"%b", "1011111011101111"},
		{"%#b", "0b1011111011101111"},
		{"%q", `"beef"`},
		{"%8x", "    beef"},
		{"%-8x|", "beef    |"},
		{"%08x", "0000beef"},
		{"%#08x", "0x00beef"},
		{"%d", "%!d(guid.GUID=beef)"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			assert.Equal(t, tc.want, fmt.Sprintf(tc.format, g))
		})
	}
}

func TestFormatZero(t *testing.T) {
	assert.Equal(t, "0", fmt.Sprintf("%x", Min()))
	assert.Equal(t, "0", fmt.Sprint(GUID{}))
	assert.Equal(t, "0x0", fmt.Sprintf("%#x", Min()))
}

func TestAppendHex(t *testing.T) {
	b := FromUint8(0x2a).AppendHex([]byte("id="))
	assert.Equal(t, "id=2a", string(b))
}

func TestTextMarshalling(t *testing.T) {
	type record struct {
		ID GUID `json:"id"`
	}

	in := record{ID: MustParseHex("0xC0FFEE")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c0ffee"}`, string(b))

	var out record
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"id":"nothex"}`), &out)
	require.ErrorIs(t, err, ErrHexFormatInvalid)

	var g GUID
	require.ErrorIs(t, g.UnmarshalText(nil), ErrHexFormatEmpty)
}
