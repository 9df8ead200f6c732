package orderbook

// sideList is the ordered sequence of orders for one side of one book.
// Buy lists are sorted by price descending, sell lists ascending; orders at
// the same price keep arrival order (price-time priority). Filled orders are
// never removed, they stay in place with Active=false and readers skip them.
//
// sideList does no locking of its own; the owning orderBook holds the
// side's mutex around every call.
type sideList struct {
	orders []*Order

	// prefers reports whether an incoming order at price `incoming` must be
	// placed ahead of a resting order at price `resting`. Buy: strictly
	// higher price wins. Sell: strictly lower price wins. Equal prices never
	// prefer, which keeps FIFO among equal prices.
	prefers func(incoming, resting float64) bool
}

func newBuyList() *sideList {
	return &sideList{prefers: func(incoming, resting float64) bool { return incoming > resting }}
}

func newSellList() *sideList {
	return &sideList{prefers: func(incoming, resting float64) bool { return incoming < resting }}
}

// insert splices the order in before the first resting order it is strictly
// preferred over, i.e. after the run of orders at equal-or-better price.
// Linear in list length.
func (l *sideList) insert(o *Order) {
	for i, resting := range l.orders {
		if l.prefers(o.Price, resting.Price) {
			l.orders = append(l.orders, nil)
			copy(l.orders[i+1:], l.orders[i:])
			l.orders[i] = o
			return
		}
	}
	l.orders = append(l.orders, o)
}

// bestPrice scans from the head past deactivated orders and returns the
// price of the first active one. Cost grows with the dead prefix.
func (l *sideList) bestPrice() (float64, bool) {
	for _, o := range l.orders {
		if o.Active {
			return o.Price, true
		}
	}
	return 0, false
}
