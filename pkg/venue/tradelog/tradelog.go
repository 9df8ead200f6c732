package tradelog

import "github.com/joripage/matching-sim/pkg/orderbook"

type TradeLog interface {
	Append(trades []orderbook.Trade)
	Recent(n int) []orderbook.Trade
	TotalTrades() int64
	TotalQty() int64
	InstrumentQty(instrumentID int) int64
}
