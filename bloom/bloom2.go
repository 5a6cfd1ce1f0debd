package bloom

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

const bloomDomainV1 = 0xB1

// InitV1 initializes region with a HeaderV1 and clears both bitsets.
//
// The caller must allocate region with at least RegionBytesV1(mBits).
func InitV1(region []byte, capacity uint64, bitsPerElement uint64, k uint8) error {
	if k == 0 {
		return ErrBadK
	}
	mBits, err := MBitsV1(capacity, bitsPerElement)
	if err != nil {
		return err
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// the region may be reused
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder: BitOrderLSB0,
		K:        k,
		MBits:    mBits,
	})
}

// InsertV1 inserts elem into filterIdx and increments NInserted.
func InsertV1(region []byte, filterIdx uint8, elem []byte) error {
	h, bitset, err := bitsetV1(region, filterIdx, elem)
	if err != nil {
		return err
	}

	h1, h2 := hashPairV1(filterIdx, elem)
	setBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2)

	h.NInserted++
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for elem in filterIdx.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, filterIdx uint8, elem []byte) (bool, error) {
	h, bitset, err := bitsetV1(region, filterIdx, elem)
	if err != nil {
		return false, err
	}

	h1, h2 := hashPairV1(filterIdx, elem)
	return testBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2), nil
}

// bitsetV1 validates the arguments and returns the decoded header and the
// bitset for filterIdx.
func bitsetV1(region []byte, filterIdx uint8, elem []byte) (HeaderV1, []byte, error) {
	if filterIdx >= Filters {
		return HeaderV1{}, nil, ErrBadFilterIndex
	}
	if len(elem) != ValueBytes {
		return HeaderV1{}, nil, ErrBadElemSize
	}

	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	if !ok {
		return HeaderV1{}, nil, ErrNotInitialized
	}

	bitsetBytes := BitsetBytesV1(h.MBits)
	off, err := filterBitsetOffV1(filterIdx, bitsetBytes)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	end := off + uint64(bitsetBytes)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, ErrBadRegionSize
	}
	return h, region[off:end], nil
}

func hashPairV1(filterIdx uint8, elem []byte) (h1 uint64, h2 uint64) {
	var buf [2 + ValueBytes]byte
	buf[0] = bloomDomainV1
	buf[1] = filterIdx
	copy(buf[2:], elem)
	sum := blake2b.Sum256(buf[:])
	h1 = binary.BigEndian.Uint64(sum[0:8])
	h2 = binary.BigEndian.Uint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func setBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		bitset[j>>3] |= 1 << (j & 7)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		if bitset[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}
