package bloom

import "github.com/Trantorian1/p2p-simulator/guid"

// Filter owns a V1 region and indexes GUIDs directly. It is not safe for
// concurrent use; callers hold their own lock.
type Filter struct {
	region []byte
}

// New allocates and initializes a region sized for capacity elements per
// filter.
func New(capacity uint64, bitsPerElement uint64, k uint8) (*Filter, error) {
	mBits, err := MBitsV1(capacity, bitsPerElement)
	if err != nil {
		return nil, err
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, capacity, bitsPerElement, k); err != nil {
		return nil, err
	}
	return &Filter{region: region}, nil
}

// Insert adds id to filterIdx.
func (f *Filter) Insert(filterIdx uint8, id guid.GUID) error {
	elem := id.Bytes()
	return InsertV1(f.region, filterIdx, elem[:])
}

// MaybeContains reports false only if id was never inserted into filterIdx.
func (f *Filter) MaybeContains(filterIdx uint8, id guid.GUID) (bool, error) {
	elem := id.Bytes()
	return MaybeContainsV1(f.region, filterIdx, elem[:])
}

// Inserted returns the number of Insert calls since the last Reset.
func (f *Filter) Inserted() uint32 {
	h, _, _ := DecodeHeaderV1(f.region)
	return h.NInserted
}

// Reset clears both bitsets keeping the sizing.
func (f *Filter) Reset() error {
	h, ok, err := DecodeHeaderV1(f.region)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}
	clear(f.region[HeaderBytesV1:])
	h.NInserted = 0
	return EncodeHeaderV1(f.region, h)
}
