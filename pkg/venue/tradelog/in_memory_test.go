package tradelog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/matching-sim/pkg/orderbook"
)

func trade(ins int, qty int64) orderbook.Trade {
	return orderbook.Trade{InstrumentID: ins, Qty: qty, Price: 100}
}

func TestTotals(t *testing.T) {
	s := NewInMemoryTradeLog(0)

	s.Append([]orderbook.Trade{trade(0, 10), trade(1, 4)})
	s.Append([]orderbook.Trade{trade(0, 6)})

	assert.EqualValues(t, 3, s.TotalTrades())
	assert.EqualValues(t, 20, s.TotalQty())
	assert.EqualValues(t, 16, s.InstrumentQty(0))
	assert.EqualValues(t, 4, s.InstrumentQty(1))
	assert.EqualValues(t, 0, s.InstrumentQty(2))
}

func TestRecentIsBounded(t *testing.T) {
	s := NewInMemoryTradeLog(3)

	for i := int64(1); i <= 5; i++ {
		s.Append([]orderbook.Trade{trade(0, i)})
	}

	got := s.Recent(10)
	require.Len(t, got, 3)
	// Oldest first, only the latest three survive.
	assert.EqualValues(t, 3, got[0].Qty)
	assert.EqualValues(t, 4, got[1].Qty)
	assert.EqualValues(t, 5, got[2].Qty)

	got = s.Recent(2)
	require.Len(t, got, 2)
	assert.EqualValues(t, 4, got[0].Qty)
	assert.EqualValues(t, 5, got[1].Qty)

	// Totals keep counting past the ring.
	assert.EqualValues(t, 5, s.TotalTrades())
	assert.EqualValues(t, 15, s.TotalQty())
}

func TestConcurrentAppends(t *testing.T) {
	s := NewInMemoryTradeLog(16)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Append([]orderbook.Trade{trade(0, 1)})
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 800, s.TotalTrades())
	assert.EqualValues(t, 800, s.TotalQty())
	assert.Len(t, s.Recent(100), 16)
}
