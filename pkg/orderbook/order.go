package orderbook

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is a resting limit order. Qty is the remaining quantity; it only
// decreases. Active flips to false exactly once, when Qty reaches 0.
// The matching pass is the only writer of Qty and Active.
type Order struct {
	ID           string
	Side         Side
	InstrumentID int
	Qty          int64
	Price        float64
	Active       bool
}

func NewOrder(id string, side Side, instrumentID int, qty int64, price float64) *Order {
	return &Order{
		ID:           id,
		Side:         side,
		InstrumentID: instrumentID,
		Qty:          qty,
		Price:        price,
		Active:       true,
	}
}
