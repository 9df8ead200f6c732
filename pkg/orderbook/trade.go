package orderbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade is one executed match between the top-of-book buy and sell.
type Trade struct {
	InstrumentID int
	BuyOrderID   string
	SellOrderID  string
	Qty          int64
	Price        float64
}

func (t Trade) String() string {
	return fmt.Sprintf("instrument=%d qty=%d price=%s",
		t.InstrumentID, t.Qty, decimal.NewFromFloat(t.Price).StringFixed(2))
}
