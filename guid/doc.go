package guid

/*

# Overlay identifiers

This package provides the identifier used to address both nodes and stored
items in the overlay. A GUID is a fixed-width unsigned integer drawn from a
single, totally ordered ID space.

It follows the same "functional primitives" style as the bloom package:

- a small, comparable value type
- explicit byte layouts
- word level arithmetic with no allocation
- a burden of knowledge on the caller where misuse is a programming error

## Layout

The nominal width is 160 bits (the size of the node id digest). Storage is
rounded up to whole 64 bit words and one extra word of headroom is added:

	Words = ceil(160 / 64) + 1 = 4
	Size  = Words * 8          = 32 bytes

Words are stored most-significant first:

	words[0]   bits 255..192
	words[1]   bits 191..128
	words[2]   bits 127..64
	words[3]   bits  63..0

Because of that ordering, comparing two GUIDs word by word from index 0 gives
the numeric order, and the struct can be compared with == and used as a map
key.

## Arithmetic

Add and Sub are saturating. A carry out of words[0] clamps the result to
Max, a borrow out of words[0] clamps it to Min. Nothing wraps.

The per word carry primitive comes from math/bits, which the compiler lowers
to add-with-carry instructions where the target has them. Building with the
purego tag selects a portable fallback built from plain overflow checks. The
two are required to agree for every input.

## Text

Canonical hex and binary forms skip leading zero words, render the first
non-zero word without padding and every following word zero padded to its
full digit width. Zero renders as "0".

ParseHex accepts an optional 0x or 0X prefix, is case insensitive and ignores
leading zeros. An empty input is rejected with ErrHexFormatEmpty. An input
consisting only of zeros (or only of the prefix) is zero.

## Importing bytes

FromBytesBE and FromBytesLE accept at most Size bytes. Passing more is a
caller bug and panics; it is not reported as an error.

*/
