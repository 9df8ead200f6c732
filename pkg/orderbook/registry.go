package orderbook

// TradeCallback receives the trades of one matching pass, in execution
// order.
type TradeCallback func([]Trade)

// Registry owns one orderBook per instrument id, built once at startup.
// Lookup is a slice index; the slice never changes after construction, so
// the Registry itself needs no synchronization and instruments share no
// state with each other.
//
// All methods taking an instrument id expect it in [0, Size()); the caller
// (the venue's ingestion path) validates ids before routing.
type Registry struct {
	books []*orderBook
}

func NewRegistry(numInstruments int) *Registry {
	books := make([]*orderBook, numInstruments)
	for i := range books {
		books[i] = newOrderBook(i)
	}
	return &Registry{books: books}
}

func (r *Registry) Size() int {
	return len(r.books)
}

// RegisterTradeCallback applies a trade observer to every book. Callbacks
// fire inside the matching pass, under the book's locks, which keeps
// delivery in production order; a callback must not call back into the
// registry. Register callbacks before any order flow starts.
func (r *Registry) RegisterTradeCallback(cb TradeCallback) {
	for _, b := range r.books {
		b.registerTradeCallback(cb)
	}
}

// Insert routes the order to its instrument's book on the order's own side.
// It does not trigger matching; the caller runs MatchInstrument after.
// Panics if the order's instrument id is out of range.
func (r *Registry) Insert(o *Order) {
	r.books[o.InstrumentID].insert(o)
}

// MatchInstrument runs one matching pass on the instrument's book; the
// registered callbacks receive any trades before the pass releases its
// locks. Panics if the instrument id is out of range.
func (r *Registry) MatchInstrument(instrumentID int) {
	r.books[instrumentID].matchOrders()
}

// MatchAll sweeps every book once, sequentially by instrument id. Used as
// the final pass after a submission batch has joined.
func (r *Registry) MatchAll() {
	for id := range r.books {
		r.MatchInstrument(id)
	}
}

func (r *Registry) BestBuyPrice(instrumentID int) (float64, bool) {
	return r.books[instrumentID].bestBuyPrice()
}

func (r *Registry) BestSellPrice(instrumentID int) (float64, bool) {
	return r.books[instrumentID].bestSellPrice()
}
