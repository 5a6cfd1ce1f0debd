package bloom

import "math"

// DefaultBitsPerElement and DefaultK give roughly a 1% false positive rate.
const (
	DefaultBitsPerElement = 10
	DefaultK              = 7
)

// MBitsV1 returns the bitset width for capacity elements at bitsPerElement,
// or ErrBadMBits / ErrMBitsOverflow if it can not be represented in the
// header.
func MBitsV1(capacity uint64, bitsPerElement uint64) (uint32, error) {
	if capacity == 0 || bitsPerElement == 0 {
		return 0, ErrBadMBits
	}
	if bitsPerElement > math.MaxUint32 || capacity > math.MaxUint32/bitsPerElement {
		return 0, ErrMBitsOverflow
	}
	return uint32(capacity * bitsPerElement), nil
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns the byte length of a region for mBits:
//
//	HeaderBytesV1 + Filters*ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(Filters)*uint64(BitsetBytesV1(mBits))
}

func filterBitsetOffV1(filterIdx uint8, bitsetBytes uint32) (uint64, error) {
	if filterIdx >= Filters {
		return 0, ErrBadFilterIndex
	}
	return uint64(HeaderBytesV1) + uint64(filterIdx)*uint64(bitsetBytes), nil
}
