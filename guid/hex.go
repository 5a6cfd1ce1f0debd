package guid

import (
	"fmt"
	"strings"
)

// ParseHex parses a hex numeral into a GUID.
//
// An optional "0x" (any case) prefix and any leading zeros are ignored, and
// digits may be upper or lower case. Only the empty string is rejected as
// empty; "0", "0x0" and "0x" all yield Min. A numeral wider than Size bytes
// is rejected as invalid.
func ParseHex(s string) (GUID, error) {
	if len(s) == 0 {
		return GUID{}, ErrHexFormatEmpty
	}

	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	digits = strings.TrimLeft(strings.ToLower(digits), "0")

	n := len(digits)
	if n > 2*Size {
		return GUID{}, fmt.Errorf("%w: %d digits exceeds %d", ErrHexFormatInvalid, n, 2*Size)
	}

	b := make([]byte, n/2+n%2)
	i := 0
	if n%2 != 0 {
		v, ok := nibble(digits[0])
		if !ok {
			return GUID{}, invalidDigit(s, digits[0])
		}
		b[0] = v
		digits = digits[1:]
		i = 1
	}
	for ; len(digits) > 0; digits = digits[2:] {
		hi, ok := nibble(digits[0])
		if !ok {
			return GUID{}, invalidDigit(s, digits[0])
		}
		lo, ok := nibble(digits[1])
		if !ok {
			return GUID{}, invalidDigit(s, digits[1])
		}
		b[i] = hi<<4 | lo
		i++
	}
	return FromBytesBE(b), nil
}

// MustParseHex is ParseHex for literals known to be valid. It panics on error.
func MustParseHex(s string) GUID {
	g, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return g
}

// nibble expects lower case input.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func invalidDigit(s string, c byte) error {
	return fmt.Errorf("%w: %q in %q", ErrHexFormatInvalid, c, s)
}
