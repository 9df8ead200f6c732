package model

import "github.com/joripage/matching-sim/pkg/orderbook"

// SubmitRequest is the raw submission as it arrives at the venue, before
// any order exists. Validation rules run against this; an Order is only
// constructed once every rule has passed.
type SubmitRequest struct {
	Side         orderbook.Side
	InstrumentID int
	Qty          int64
	Price        float64
}
