//go:build purego

package guid

var (
	addCarry  carryFunc = addCarrySoft
	subBorrow carryFunc = subBorrowSoft
)
