package guid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hexDigitsPerWord = WordBits / 4
	binDigitsPerWord = WordBits
)

// appendBase appends the canonical form of g in base. The first non-zero word
// is written as is, every following word is padded to width digits.
func (g GUID) appendBase(dst []byte, base, width int) []byte {
	i := 0
	for i < Words && g.words[i] == 0 {
		i++
	}
	if i == Words {
		return append(dst, '0')
	}

	dst = strconv.AppendUint(dst, g.words[i], base)

	var scratch [binDigitsPerWord]byte
	for _, w := range g.words[i+1:] {
		digits := strconv.AppendUint(scratch[:0], w, base)
		for n := len(digits); n < width; n++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	}
	return dst
}

// AppendHex appends the canonical lower case hex form of g to dst.
func (g GUID) AppendHex(dst []byte) []byte {
	return g.appendBase(dst, 16, hexDigitsPerWord)
}

// Hex returns the canonical lower case hex form, without a prefix.
func (g GUID) Hex() string {
	var buf [Size * 2]byte
	return string(g.AppendHex(buf[:0]))
}

// HexUpper returns the canonical upper case hex form, without a prefix.
func (g GUID) HexUpper() string {
	var buf [Size * 2]byte
	b := g.AppendHex(buf[:0])
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Binary returns the canonical base 2 form, without a prefix.
func (g GUID) Binary() string {
	var buf [Size * 8]byte
	return string(g.appendBase(buf[:0], 2, binDigitsPerWord))
}

// String returns the canonical lower case hex form.
func (g GUID) String() string { return g.Hex() }

// Format implements fmt.Formatter for the x, X, b, s, v and q verbs. The #
// flag adds a 0x, 0X or 0b prefix. Width is honoured with space padding, or
// zero padding when the 0 flag is set.
func (g GUID) Format(f fmt.State, verb rune) {
	var s, prefix string
	switch verb {
	case 'x', 's', 'v':
		s, prefix = g.Hex(), "0x"
	case 'X':
		s, prefix = g.HexUpper(), "0X"
	case 'b':
		s, prefix = g.Binary(), "0b"
	case 'q':
		s = strconv.Quote(g.Hex())
	default:
		fmt.Fprintf(f, "%%!%c(guid.GUID=%s)", verb, g.Hex())
		return
	}
	if !f.Flag('#') || verb == 'q' {
		prefix = ""
	}

	pad := 0
	if w, ok := f.Width(); ok {
		pad = w - len(prefix) - len(s)
	}
	switch {
	case pad <= 0:
		fmt.Fprint(f, prefix, s)
	case f.Flag('-'):
		fmt.Fprint(f, prefix, s, strings.Repeat(" ", pad))
	case f.Flag('0'):
		fmt.Fprint(f, prefix, strings.Repeat("0", pad), s)
	default:
		fmt.Fprint(f, strings.Repeat(" ", pad), prefix, s)
	}
}
