package guid

// carryFunc adds (or subtracts) x and y with a single bit carry (or borrow)
// in, returning the result word and the carry (or borrow) out. carry is
// always 0 or 1.
type carryFunc func(x, y, carry uint64) (uint64, uint64)

// addCarrySoft is the portable add-with-carry. It does the two additions
// separately and detects each overflow by comparison.
func addCarrySoft(x, y, carry uint64) (uint64, uint64) {
	s := x + y
	c1 := s < x
	r := s + carry
	c2 := r < s
	if c1 || c2 {
		return r, 1
	}
	return r, 0
}

// subBorrowSoft is the portable subtract-with-borrow.
func subBorrowSoft(x, y, borrow uint64) (uint64, uint64) {
	d := x - y
	b1 := y > x
	r := d - borrow
	b2 := borrow > d
	if b1 || b2 {
		return r, 1
	}
	return r, 0
}
