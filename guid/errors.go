package guid

import "errors"

var (
	ErrHexFormatEmpty   = errors.New("guid: hex string is empty")
	ErrHexFormatInvalid = errors.New("guid: hex string is not a valid identifier")
)
