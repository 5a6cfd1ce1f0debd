//go:build !purego

package guid

import "math/bits"

// The math/bits carry chain is lowered to ADC/SBB (or the target's
// equivalent) by the compiler and falls back to generic code elsewhere.
var (
	addCarry  carryFunc = bits.Add64
	subBorrow carryFunc = bits.Sub64
)
