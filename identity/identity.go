// Package identity derives overlay identifiers.
//
// Node ids are a BLAKE2b-160 digest of a random salt followed by the node
// name, so two nodes sharing a name still land at unrelated points of the ID
// space. Content keys are the BLAKE2b-160 multihash of the content, which
// doubles as a CIDv1 for interchange with content addressed stores.
package identity

import (
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/blake2b"

	"github.com/Trantorian1/p2p-simulator/guid"
)

const (
	// DigestSize is the byte width of derived identifiers.
	DigestSize = guid.Bits / 8

	// DefaultSaltSize is the salt length used by DeriveRandom.
	DefaultSaltSize = DigestSize

	// ContentHash is the multihash code of blake2b-160.
	ContentHash = multihash.BLAKE2B_MIN + DigestSize - 1
)

var (
	ErrSaltSize      = errors.New("identity: salt size must be positive")
	ErrDigestTooLong = errors.New("identity: digest does not fit a guid")
)

// NewSalt reads n random bytes from r.
func NewSalt(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrSaltSize
	}
	salt := make([]byte, n)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("identity: reading salt: %w", err)
	}
	return salt, nil
}

// Derive returns BLAKE2b-160(salt || name) as a GUID.
func Derive(name string, salt []byte) guid.GUID {
	h, err := blake2b.New(DigestSize, nil)
	if err != nil {
		// only possible for a bad size or an oversized key
		panic(err)
	}
	_, _ = h.Write(salt)
	_, _ = h.Write([]byte(name))
	return guid.FromBytesBE(h.Sum(nil))
}

// DeriveRandom draws a DefaultSaltSize salt from r and derives the id for
// name. The salt is returned so the id can be reproduced.
func DeriveRandom(r io.Reader, name string) (guid.GUID, []byte, error) {
	salt, err := NewSalt(r, DefaultSaltSize)
	if err != nil {
		return guid.GUID{}, nil, err
	}
	return Derive(name, salt), salt, nil
}

// ContentKey returns the key under which data is stored along with the
// equivalent raw CIDv1.
func ContentKey(data []byte) (guid.GUID, cid.Cid, error) {
	mh, err := multihash.Sum(data, ContentHash, -1)
	if err != nil {
		return guid.GUID{}, cid.Undef, err
	}
	c := cid.NewCidV1(cid.Raw, mh)
	id, err := FromMultihash(mh)
	if err != nil {
		return guid.GUID{}, cid.Undef, err
	}
	return id, c, nil
}

// FromCID imports the digest of c's multihash.
func FromCID(c cid.Cid) (guid.GUID, error) {
	if !c.Defined() {
		return guid.GUID{}, fmt.Errorf("identity: undefined cid")
	}
	return FromMultihash(c.Hash())
}

// FromMultihash imports the digest of mh. Digests wider than guid.Size are
// rejected rather than truncated.
func FromMultihash(mh multihash.Multihash) (guid.GUID, error) {
	dm, err := multihash.Decode(mh)
	if err != nil {
		return guid.GUID{}, err
	}
	if len(dm.Digest) > guid.Size {
		return guid.GUID{}, fmt.Errorf("%w: %s is %d bytes", ErrDigestTooLong, dm.Name, len(dm.Digest))
	}
	return guid.FromBytesBE(dm.Digest), nil
}
