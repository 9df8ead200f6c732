package rule

import "errors"

var (
	ErrInvalidInstrument = errors.New("invalid instrument id")
	ErrNonPositiveQty    = errors.New("non-positive quantity")
	ErrNonPositivePrice  = errors.New("non-positive price")
)
