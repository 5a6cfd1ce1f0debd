// Package node assembles an overlay node: an identifier, a bounded peer table
// and a local content store.
//
// Nothing here talks to the network. Lookups and Ping only consult local
// state.
package node

import (
	"crypto/rand"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/Trantorian1/p2p-simulator/bloom"
	"github.com/Trantorian1/p2p-simulator/contentstore"
	"github.com/Trantorian1/p2p-simulator/guid"
	"github.com/Trantorian1/p2p-simulator/identity"
	"github.com/Trantorian1/p2p-simulator/peertable"
)

type Options struct {
	rand io.Reader
}

type Option func(*Options)

// WithRand sets the source of salt bytes and of generated names. The default
// is crypto/rand.
func WithRand(r io.Reader) Option {
	return func(o *Options) { o.rand = r }
}

type Node struct {
	log   logger.Logger
	name  string
	id    guid.GUID
	salt  []byte
	peers *peertable.Table
	store *contentstore.Store

	seenMu sync.Mutex
	seen   *bloom.Filter
}

func New(log logger.Logger, cfg Config, opts ...Option) (*Node, error) {
	o := Options{rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := &Node{log: log, name: cfg.Name}
	if n.name == "" {
		u, err := uuid.NewRandomFromReader(o.rand)
		if err != nil {
			return nil, fmt.Errorf("node: generating name: %w", err)
		}
		n.name = u.String()
	}

	if cfg.ID != nil {
		n.id = *cfg.ID
	} else {
		salt, err := identity.NewSalt(o.rand, cfg.SaltSize)
		if err != nil {
			return nil, err
		}
		n.salt = salt
		n.id = identity.Derive(n.name, salt)
	}

	store, err := contentstore.New(
		contentstore.WithExpectedItems(cfg.Store.ExpectedItems),
		contentstore.WithFilterParams(cfg.Store.BitsPerElement, cfg.Store.HashFunctions),
	)
	if err != nil {
		return nil, err
	}
	n.store = store

	seen, err := bloom.New(uint64(cfg.PeerCapacity), cfg.Store.BitsPerElement, cfg.Store.HashFunctions)
	if err != nil {
		return nil, fmt.Errorf("node: peer filter: %w", err)
	}
	n.seen = seen
	n.peers = peertable.New(n.id, cfg.PeerCapacity)

	n.log.Infof("node %s: id=%x peerCapacity=%d", n.name, n.id, cfg.PeerCapacity)
	return n, nil
}

func (n *Node) GUID() guid.GUID { return n.id }

func (n *Node) Name() string { return n.name }

// Salt returns a copy of the salt the id was derived with, nil when the id
// was configured.
func (n *Node) Salt() []byte { return slices.Clone(n.salt) }

// Peers returns a snapshot in ascending id order.
func (n *Node) Peers() []peertable.Peer { return n.peers.Peers() }

// AddPeer adds or refreshes a peer and reports whether it was new.
func (n *Node) AddPeer(id guid.GUID, address string) (bool, error) {
	added, err := n.peers.Add(id, address)
	if err != nil {
		n.log.Debugf("node %s: add peer %x: %v", n.name, id, err)
		return false, err
	}

	n.seenMu.Lock()
	err = n.seen.Insert(bloom.FilterPeers, id)
	n.seenMu.Unlock()
	if err != nil {
		return added, fmt.Errorf("node: peer filter: %w", err)
	}

	if added {
		n.log.Debugf("node %s: peer %x at %s", n.name, id, address)
	}
	return added, nil
}

func (n *Node) RemovePeer(id guid.GUID) bool {
	removed := n.peers.Remove(id)
	if removed {
		n.log.Debugf("node %s: dropped peer %x", n.name, id)
	}
	return removed
}

// Seen reports whether id may have been added as a peer at some point, even
// if it has since been removed. False positives are possible, false negatives
// are not.
func (n *Node) Seen(id guid.GUID) bool {
	n.seenMu.Lock()
	defer n.seenMu.Unlock()
	ok, err := n.seen.MaybeContains(bloom.FilterPeers, id)
	return ok || err != nil
}

// Store saves data under its content key and returns the key.
func (n *Node) Store(data []byte) (guid.GUID, error) {
	key, c, err := n.store.PutContent(data)
	if err != nil {
		return guid.GUID{}, err
	}
	n.log.Debugf("node %s: stored %d bytes at %x (%s)", n.name, len(data), key, c)
	return key, nil
}

// StoreAt saves data under a caller chosen key. Rewriting a key with
// different bytes fails with contentstore.ErrImmutable.
func (n *Node) StoreAt(key guid.GUID, data []byte) error {
	if err := n.store.Put(key, data); err != nil {
		return err
	}
	n.log.Debugf("node %s: stored %d bytes at %x", n.name, len(data), key)
	return nil
}

// Lookup returns locally stored data, or contentstore.ErrNotFound.
func (n *Node) Lookup(key guid.GUID) ([]byte, error) {
	return n.store.Get(key)
}

// Ping reports whether id names this node or an item it stores.
func (n *Node) Ping(id guid.GUID) bool {
	return id == n.id || n.store.Has(id)
}
