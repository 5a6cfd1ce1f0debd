package guid

import (
	"encoding/binary"
	"fmt"
)

// FromBytesBE imports a big-endian magnitude. Missing leading bytes are zero.
//
// The caller must ensure len(b) <= Size; longer input panics.
func FromBytesBE(b []byte) GUID {
	checkLen(b)

	var g GUID
	offset := 0
	for i := range b {
		// i counts bytes from the least-significant end
		j := Words - 1 - i/WordBytes
		g.words[j] |= uint64(b[len(b)-1-i]) << offset
		offset = (offset + 8) % WordBits
	}
	return g
}

// FromBytesLE imports a little-endian magnitude. Missing trailing bytes are
// zero.
//
// The caller must ensure len(b) <= Size; longer input panics.
func FromBytesLE(b []byte) GUID {
	checkLen(b)

	var g GUID
	offset := 0
	for i, v := range b {
		j := Words - 1 - i/WordBytes
		g.words[j] |= uint64(v) << offset
		offset = (offset + 8) % WordBits
	}
	return g
}

func checkLen(b []byte) {
	if len(b) > Size {
		panic(fmt.Sprintf("guid: %d bytes exceeds the %d byte capacity", len(b), Size))
	}
}

// Bytes returns the full width big-endian encoding of g.
func (g GUID) Bytes() [Size]byte {
	var out [Size]byte
	for i, w := range g.words {
		binary.BigEndian.PutUint64(out[i*WordBytes:], w)
	}
	return out
}

// BytesLE returns the full width little-endian encoding of g.
func (g GUID) BytesLE() [Size]byte {
	var out [Size]byte
	for i, w := range g.words {
		binary.LittleEndian.PutUint64(out[(Words-1-i)*WordBytes:], w)
	}
	return out
}

func FromUint8(v uint8) GUID { return FromBytesBE([]byte{v}) }

func FromUint16(v uint16) GUID { return FromBytesBE(binary.BigEndian.AppendUint16(nil, v)) }

func FromUint32(v uint32) GUID { return FromBytesBE(binary.BigEndian.AppendUint32(nil, v)) }

func FromUint64(v uint64) GUID { return FromBytesBE(binary.BigEndian.AppendUint64(nil, v)) }

// FromUint128 imports the 128 bit integer hi<<64 | lo.
func FromUint128(hi, lo uint64) GUID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return FromBytesBE(b[:])
}
