// Package contentstore is the node local content map keyed by guid.GUID.
//
// Contract:
//   - Put is idempotent.
//   - Stored values are immutable; a second Put of different bytes under the
//     same key fails with ErrImmutable.
//   - Get returns ErrNotFound when the key is absent.
//
// A bloom prefilter answers most misses without touching the map.
package contentstore

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ipfs/go-cid"

	"github.com/Trantorian1/p2p-simulator/bloom"
	"github.com/Trantorian1/p2p-simulator/guid"
	"github.com/Trantorian1/p2p-simulator/identity"
)

var (
	ErrNotFound  = errors.New("contentstore: not found")
	ErrImmutable = errors.New("contentstore: immutable value mismatch")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

type Options struct {
	// ExpectedItems sizes the prefilter. Exceeding it only raises the false
	// positive rate.
	ExpectedItems  uint64
	BitsPerElement uint64
	K              uint8
}

func DefaultOptions() Options {
	return Options{
		ExpectedItems:  4096,
		BitsPerElement: bloom.DefaultBitsPerElement,
		K:              bloom.DefaultK,
	}
}

type Option func(*Options)

func WithExpectedItems(n uint64) Option {
	return func(o *Options) { o.ExpectedItems = n }
}

func WithFilterParams(bitsPerElement uint64, k uint8) Option {
	return func(o *Options) {
		o.BitsPerElement = bitsPerElement
		o.K = k
	}
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[guid.GUID][]byte
	filter *bloom.Filter
}

func New(opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f, err := bloom.New(o.ExpectedItems, o.BitsPerElement, o.K)
	if err != nil {
		return nil, fmt.Errorf("contentstore: prefilter: %w", err)
	}
	return &Store{
		values: make(map[guid.GUID][]byte),
		filter: f,
	}, nil
}

// Put stores a copy of value under key.
func (s *Store) Put(key guid.GUID, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.values[key]; ok {
		if !bytes.Equal(existing, value) {
			return fmt.Errorf("%w: key %s", ErrImmutable, key)
		}
		return nil
	}
	if err := s.filter.Insert(bloom.FilterContent, key); err != nil {
		return err
	}
	s.values[key] = slices.Clone(value)
	return nil
}

// PutContent stores data under its content key and returns the key and the
// equivalent CID.
func (s *Store) PutContent(data []byte) (guid.GUID, cid.Cid, error) {
	key, c, err := identity.ContentKey(data)
	if err != nil {
		return guid.GUID{}, cid.Undef, err
	}
	if err := s.Put(key, data); err != nil {
		return guid.GUID{}, cid.Undef, err
	}
	return key, c, nil
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(key guid.GUID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.maybeHas(key) {
		return nil, ErrNotFound
	}
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Store) Has(key guid.GUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.maybeHas(key) {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// maybeHas expects s.mu held.
func (s *Store) maybeHas(key guid.GUID) bool {
	ok, err := s.filter.MaybeContains(bloom.FilterContent, key)
	// a broken filter must not hide stored values
	return ok || err != nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns the stored keys in ascending order.
func (s *Store) Keys() []guid.GUID {
	s.mu.RLock()
	keys := make([]guid.GUID, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	slices.SortFunc(keys, guid.Compare)
	return keys
}
