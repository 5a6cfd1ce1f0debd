package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizingV1(t *testing.T) {
	mBits, err := MBitsV1(1, 10)
	require.NoError(t, err)
	require.Equal(t, uint32(10), mBits)
	require.Equal(t, uint32(2), BitsetBytesV1(mBits))
	require.Equal(t, uint64(HeaderBytesV1+2*2), RegionBytesV1(mBits))

	mBits, err = MBitsV1(8, 8) // mBits=64, bitsetBytes=8, total=32+16=48
	require.NoError(t, err)
	require.Equal(t, uint32(64), mBits)
	require.Equal(t, uint64(48), RegionBytesV1(mBits))
}

func TestSizingV1Limits(t *testing.T) {
	_, err := MBitsV1(0, 10)
	require.ErrorIs(t, err, ErrBadMBits)
	_, err = MBitsV1(10, 0)
	require.ErrorIs(t, err, ErrBadMBits)

	_, err = MBitsV1(1, math.MaxUint32+1)
	require.ErrorIs(t, err, ErrMBitsOverflow)
	_, err = MBitsV1(math.MaxUint32, 2)
	require.ErrorIs(t, err, ErrMBitsOverflow)

	mBits, err := MBitsV1(math.MaxUint32, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), mBits)
	require.Equal(t, uint32(1<<29), BitsetBytesV1(mBits))
}

func TestFilterBitsetOffset(t *testing.T) {
	off, err := filterBitsetOffV1(FilterPeers, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(HeaderBytesV1+8), off)

	_, err = filterBitsetOffV1(Filters, 8)
	require.ErrorIs(t, err, ErrBadFilterIndex)
}
