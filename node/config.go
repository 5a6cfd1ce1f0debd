package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"gopkg.in/yaml.v3"

	"github.com/Trantorian1/p2p-simulator/bloom"
	"github.com/Trantorian1/p2p-simulator/contentstore"
	"github.com/Trantorian1/p2p-simulator/guid"
	"github.com/Trantorian1/p2p-simulator/identity"
	"github.com/Trantorian1/p2p-simulator/peertable"
)

var (
	ErrSaltSize       = errors.New("node: salt size must be positive")
	ErrPeerCapacity   = errors.New("node: peer capacity must be positive")
	ErrExpectedItems  = errors.New("node: expected items must be positive")
	ErrBitsPerElement = errors.New("node: bits per element must be positive")
	ErrHashFunctions  = errors.New("node: hash function count must be positive")
)

// StoreConfig sizes the content store prefilter.
type StoreConfig struct {
	ExpectedItems  uint64 `yaml:"expectedItems"`
	BitsPerElement uint64 `yaml:"bitsPerElement"`
	HashFunctions  uint8  `yaml:"hashFunctions"`
}

// Config describes a single overlay node.
//
// When ID is set it is used verbatim and no salt is drawn. Otherwise the id is
// derived from Name and a fresh salt of SaltSize bytes. An empty Name is
// replaced with a random uuid.
type Config struct {
	Name         string      `yaml:"name,omitempty"`
	ID           *guid.GUID  `yaml:"id,omitempty"`
	SaltSize     int         `yaml:"saltSize"`
	PeerCapacity int         `yaml:"peerCapacity"`
	Store        StoreConfig `yaml:"store"`
}

func DefaultConfig() Config {
	store := contentstore.DefaultOptions()
	return Config{
		SaltSize:     identity.DefaultSaltSize,
		PeerCapacity: peertable.DefaultCapacity,
		Store: StoreConfig{
			ExpectedItems:  store.ExpectedItems,
			BitsPerElement: store.BitsPerElement,
			HashFunctions:  store.K,
		},
	}
}

// Validate checks the numeric settings. Name and ID are free form.
func (c Config) Validate() error {
	switch {
	case c.SaltSize <= 0:
		return ErrSaltSize
	case c.PeerCapacity <= 0:
		return ErrPeerCapacity
	case c.Store.ExpectedItems == 0:
		return ErrExpectedItems
	case c.Store.BitsPerElement == 0:
		return ErrBitsPerElement
	case c.Store.HashFunctions == 0:
		return ErrHashFunctions
	}
	if _, err := bloom.MBitsV1(c.Store.ExpectedItems, c.Store.BitsPerElement); err != nil {
		return fmt.Errorf("node: store sizing: %w", err)
	}
	return nil
}

// DecodeConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func DecodeConfig(encoded []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(encoded, &cfg); err != nil {
		return Config{}, fmt.Errorf("node: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig fetches and decodes a YAML config from any URL afs supports
// (file://, mem://, plain local paths, ...).
func LoadConfig(ctx context.Context, URL string) (Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return Config{}, fmt.Errorf("node: loading config %s: %w", URL, err)
	}
	return DecodeConfig(data)
}

// SaveConfig writes cfg as YAML to URL.
func SaveConfig(ctx context.Context, URL string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("node: encoding config: %w", err)
	}
	if err = afs.New().Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("node: saving config %s: %w", URL, err)
	}
	return nil
}
