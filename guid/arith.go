package guid

// Add returns g + o, clamped to Max on overflow.
func (g GUID) Add(o GUID) GUID {
	var r GUID
	var carry uint64
	for i := Words - 1; i >= 0; i-- {
		r.words[i], carry = addCarry(g.words[i], o.words[i], carry)
	}
	if carry != 0 {
		return Max()
	}
	return r
}

// Sub returns g - o, clamped to Min on underflow.
func (g GUID) Sub(o GUID) GUID {
	var r GUID
	var borrow uint64
	for i := Words - 1; i >= 0; i-- {
		r.words[i], borrow = subBorrow(g.words[i], o.words[i], borrow)
	}
	if borrow != 0 {
		return Min()
	}
	return r
}
