package orderbook

import "sync"

// orderBook pairs the buy and sell lists of one instrument. Each side has
// its own mutex: inserts and best-price queries touch a single side and take
// only that side's lock, so the two sides stay independent outside of
// matching.
type orderBook struct {
	instrumentID int

	buys  *sideList
	sells *sideList

	buyMu  sync.Mutex
	sellMu sync.Mutex

	callbacks []TradeCallback
}

func newOrderBook(instrumentID int) *orderBook {
	return &orderBook{
		instrumentID: instrumentID,
		buys:         newBuyList(),
		sells:        newSellList(),
	}
}

func (b *orderBook) registerTradeCallback(cb TradeCallback) {
	b.callbacks = append(b.callbacks, cb)
}

func (b *orderBook) insert(o *Order) {
	if o.Side == BUY {
		b.buyMu.Lock()
		b.buys.insert(o)
		b.buyMu.Unlock()
		return
	}
	b.sellMu.Lock()
	b.sells.insert(o)
	b.sellMu.Unlock()
}

func (b *orderBook) bestBuyPrice() (float64, bool) {
	b.buyMu.Lock()
	defer b.buyMu.Unlock()
	return b.buys.bestPrice()
}

func (b *orderBook) bestSellPrice() (float64, bool) {
	b.sellMu.Lock()
	defer b.sellMu.Unlock()
	return b.sells.bestPrice()
}

// matchOrders runs one full matching pass and returns the trades it
// produced, in execution order. Callbacks fire before the pass releases its
// locks, so concurrent passes on the same book deliver events in the order
// the trades were produced; a callback must not call back into the book.
//
// This is the only code path that holds both side locks, and it always
// acquires buy before sell. Keeping the compound acquisition in one place
// with a fixed order is what rules out deadlock against concurrent inserts
// and other matching passes.
func (b *orderBook) matchOrders() []Trade {
	b.buyMu.Lock()
	defer b.buyMu.Unlock()
	b.sellMu.Lock()
	defer b.sellMu.Unlock()

	var trades []Trade

	bi, si := 0, 0
	buys, sells := b.buys.orders, b.sells.orders

	for bi < len(buys) && si < len(sells) {
		buy, sell := buys[bi], sells[si]

		if !buy.Active {
			bi++
			continue
		}
		if !sell.Active {
			si++
			continue
		}

		// Lists are price-sorted, so an open spread at the cursors means
		// nothing further down can cross either.
		if buy.Price < sell.Price {
			break
		}

		qty := min(buy.Qty, sell.Qty)
		buy.Qty -= qty
		sell.Qty -= qty

		// Always the sell cursor's price, whichever side arrived last.
		trades = append(trades, Trade{
			InstrumentID: b.instrumentID,
			BuyOrderID:   buy.ID,
			SellOrderID:  sell.ID,
			Qty:          qty,
			Price:        sell.Price,
		})

		// qty is the min of the two remainings, so at least one side zeroes
		// out and at least one cursor advances every iteration.
		if buy.Qty == 0 {
			buy.Active = false
			bi++
		}
		if sell.Qty == 0 {
			sell.Active = false
			si++
		}
	}

	if len(trades) > 0 {
		for _, cb := range b.callbacks {
			cb(trades)
		}
	}

	return trades
}
