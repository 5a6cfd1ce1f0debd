package identity

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/Trantorian1/p2p-simulator/guid"
)

func blake160(parts ...[]byte) []byte {
	h, _ := blake2b.New(DigestSize, nil)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func TestDigestSize(t *testing.T) {
	require.Equal(t, 20, DigestSize)
	require.Equal(t, uint64(0xb214), uint64(ContentHash))
}

func TestDerive(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5a}, DefaultSaltSize)

	id := Derive("alice", salt)
	assert.Equal(t, guid.FromBytesBE(blake160(salt, []byte("alice"))), id)
	assert.Equal(t, id, Derive("alice", salt))

	assert.NotEqual(t, id, Derive("bob", salt))
	assert.NotEqual(t, id, Derive("alice", bytes.Repeat([]byte{0xa5}, DefaultSaltSize)))

	// a 160 bit digest never reaches the headroom words
	w := id.Uint64s()
	assert.Zero(t, w[0])
	assert.Less(t, w[1], uint64(1)<<32)
}

func TestDeriveRandom(t *testing.T) {
	seed := bytes.Repeat([]byte{1, 2, 3, 4}, DefaultSaltSize)

	id, salt, err := DeriveRandom(bytes.NewReader(seed), "node")
	require.NoError(t, err)
	require.Len(t, salt, DefaultSaltSize)
	assert.Equal(t, seed[:DefaultSaltSize], salt)
	assert.Equal(t, Derive("node", salt), id)

	a, _, err := DeriveRandom(rand.Reader, "node")
	require.NoError(t, err)
	b, _, err := DeriveRandom(rand.Reader, "node")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewSalt(t *testing.T) {
	_, err := NewSalt(rand.Reader, 0)
	require.ErrorIs(t, err, ErrSaltSize)

	_, err = NewSalt(bytes.NewReader([]byte{1, 2}), 4)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	salt, err := NewSalt(bytes.NewReader([]byte{9, 8, 7}), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, salt)
}

func TestContentKey(t *testing.T) {
	data := []byte("hello overlay")

	id, c, err := ContentKey(data)
	require.NoError(t, err)
	assert.Equal(t, guid.FromBytesBE(blake160(data)), id)

	assert.Equal(t, uint64(cid.Raw), c.Prefix().Codec)
	assert.Equal(t, uint64(ContentHash), c.Prefix().MhType)

	fromCID, err := FromCID(c)
	require.NoError(t, err)
	assert.Equal(t, id, fromCID)

	parsed, err := cid.Decode(c.String())
	require.NoError(t, err)
	fromText, err := FromCID(parsed)
	require.NoError(t, err)
	assert.Equal(t, id, fromText)

	other, _, err := ContentKey([]byte("hello overlay!"))
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestFromMultihash(t *testing.T) {
	data := []byte("payload")

	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	require.NoError(t, err)
	id, err := FromMultihash(mh)
	require.NoError(t, err)
	b := id.Bytes()
	dm, err := multihash.Decode(mh)
	require.NoError(t, err)
	assert.Equal(t, dm.Digest, b[:])

	wide, err := multihash.Sum(data, multihash.SHA2_512, -1)
	require.NoError(t, err)
	_, err = FromMultihash(wide)
	require.ErrorIs(t, err, ErrDigestTooLong)

	_, err = FromMultihash(multihash.Multihash{0xff})
	require.Error(t, err)

	_, err = FromCID(cid.Undef)
	require.Error(t, err)
}
