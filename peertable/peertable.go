// Package peertable keeps the peers a node knows about, ordered by id.
//
// The table is only an ordered, bounded map. Choosing which peers to keep or
// query (bucket selection, distance metric, liveness eviction) belongs to the
// routing layer built on top of it.
package peertable

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/Trantorian1/p2p-simulator/guid"
)

// DefaultCapacity bounds a table created with a non-positive capacity.
const DefaultCapacity = 160

var (
	ErrTableFull = errors.New("peertable: table is full")
	ErrSelf      = errors.New("peertable: refusing to add the table owner")
)

// Peer is a known remote node.
type Peer struct {
	ID       guid.GUID
	Address  string
	LastSeen time.Time
}

// Table is safe for concurrent use.
type Table struct {
	self     guid.GUID
	capacity int
	now      func() time.Time

	mu    sync.RWMutex
	peers []Peer // sorted by ID, unique
}

// New returns an empty table owned by self.
func New(self guid.GUID, capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		self:     self,
		capacity: capacity,
		now:      time.Now,
	}
}

func cmpPeer(p Peer, id guid.GUID) int { return guid.Compare(p.ID, id) }

// Add inserts a peer, or refreshes the address and LastSeen of a known one.
// It reports whether the peer was new.
func (t *Table) Add(id guid.GUID, address string) (bool, error) {
	if id == t.self {
		return false, ErrSelf
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i, found := slices.BinarySearchFunc(t.peers, id, cmpPeer)
	if found {
		t.peers[i].Address = address
		t.peers[i].LastSeen = t.now()
		return false, nil
	}
	if len(t.peers) >= t.capacity {
		return false, ErrTableFull
	}
	t.peers = slices.Insert(t.peers, i, Peer{ID: id, Address: address, LastSeen: t.now()})
	return true, nil
}

// Remove deletes id and reports whether it was present.
func (t *Table) Remove(id guid.GUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, found := slices.BinarySearchFunc(t.peers, id, cmpPeer)
	if !found {
		return false
	}
	t.peers = slices.Delete(t.peers, i, i+1)
	return true
}

func (t *Table) Get(id guid.GUID) (Peer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, found := slices.BinarySearchFunc(t.peers, id, cmpPeer)
	if !found {
		return Peer{}, false
	}
	return t.peers[i], true
}

func (t *Table) Contains(id guid.GUID) bool {
	_, ok := t.Get(id)
	return ok
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

func (t *Table) Capacity() int { return t.capacity }

// Self returns the id of the table owner.
func (t *Table) Self() guid.GUID { return t.self }

// Peers returns a snapshot in ascending id order.
func (t *Table) Peers() []Peer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.peers)
}

// Ascend calls fn for every peer with ID >= from in ascending order until fn
// returns false. fn runs on a snapshot, so it may call back into the table.
func (t *Table) Ascend(from guid.GUID, fn func(Peer) bool) {
	t.mu.RLock()
	i, _ := slices.BinarySearchFunc(t.peers, from, cmpPeer)
	tail := slices.Clone(t.peers[i:])
	t.mu.RUnlock()

	for _, p := range tail {
		if !fn(p) {
			return
		}
	}
}
