package guid

import "slices"

const (
	// Bits is the nominal width of the identifier space.
	Bits = 160

	// WordBits is the width of a storage word.
	WordBits = 64

	// WordBytes is the number of bytes in a storage word.
	WordBytes = WordBits / 8

	// Words is ceil(Bits/WordBits) plus one word of headroom.
	Words = (Bits+WordBits-1)/WordBits + 1

	// Size is the byte capacity of a GUID.
	Size = Words * WordBytes

	wordMax = ^uint64(0)
)

// GUID is an immutable fixed-width unsigned integer. The zero value is Min.
type GUID struct {
	// most-significant word first
	words [Words]uint64
}

// Min returns the smallest GUID (all words zero).
func Min() GUID { return GUID{} }

// Max returns the largest GUID (all words at their maximum).
func Max() GUID {
	var g GUID
	for i := range g.words {
		g.words[i] = wordMax
	}
	return g
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. It is suitable for slices.SortFunc.
func Compare(a, b GUID) int {
	return slices.Compare(a.words[:], b.words[:])
}

// Cmp compares g with o, see Compare.
func (g GUID) Cmp(o GUID) int { return Compare(g, o) }

// Less reports whether g < o.
func (g GUID) Less(o GUID) bool { return Compare(g, o) < 0 }

// Equal reports whether g == o.
func (g GUID) Equal(o GUID) bool { return g == o }

// IsZero reports whether g is Min.
func (g GUID) IsZero() bool { return g == GUID{} }

// Uint64s returns a copy of the storage words, most-significant first.
func (g GUID) Uint64s() [Words]uint64 { return g.words }
