package bloom

/*

# Bloom prefilter for overlay identifiers (2-way, in-place)

This package provides primitive building blocks for Bloom filters whose
elements are the fixed width big-endian encoding of a guid.GUID. A node uses
them to answer "definitely not here" for content keys and peer ids without
taking the lock on the authoritative maps.

It mirrors the style of the guid package:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## What Bloom filters are (and are not)

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

A filter is never authoritative. Callers confirm a "maybe" against the real
store.

## 2 parallel filters

The region holds exactly 2 filters sharing identical sizing, stored side by
side after a fixed header:

	+----------------------+  32B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  bitset bytes (filter 0, content keys)
	| filter0 bitset       |
	+----------------------+  bitset bytes (filter 1, peer ids)
	| filter1 bitset       |
	+----------------------+

## Indexing and bit numbering

Bit j of a bitset is bit (j & 7) of byte (j >> 3), ie LSB0. The k probe
positions come from double hashing over

	BLAKE2b-256( 0xB1 || filterIdx || elem[32] )

with h1 and h2 taken big-endian from the first 16 bytes of the digest.

## API versioning

Functions that depend on the serialized layout carry a V1 suffix so that an
incompatible layout can be introduced side by side later.

*/
