package tradelog

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/joripage/matching-sim/pkg/orderbook"
)

const defaultRecentCap = 1024

// InMemoryTradeLog keeps running totals plus a bounded ring of the most
// recent trades. The whole simulation is ephemeral, so nothing is ever
// written anywhere else.
type InMemoryTradeLog struct {
	mu sync.RWMutex

	recent    deque.Deque[orderbook.Trade]
	recentCap int

	totalTrades int64
	totalQty    int64
	byIns       map[int]int64
}

func NewInMemoryTradeLog(recentCap int) *InMemoryTradeLog {
	if recentCap <= 0 {
		recentCap = defaultRecentCap
	}
	return &InMemoryTradeLog{
		recentCap: recentCap,
		byIns:     make(map[int]int64),
	}
}

func (s *InMemoryTradeLog) Append(trades []orderbook.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range trades {
		s.totalTrades++
		s.totalQty += t.Qty
		s.byIns[t.InstrumentID] += t.Qty

		s.recent.PushBack(t)
		if s.recent.Len() > s.recentCap {
			s.recent.PopFront()
		}
	}
}

// Recent returns up to n of the latest trades, oldest first.
func (s *InMemoryTradeLog) Recent(n int) []orderbook.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > s.recent.Len() {
		n = s.recent.Len()
	}
	out := make([]orderbook.Trade, 0, n)
	for i := s.recent.Len() - n; i < s.recent.Len(); i++ {
		out = append(out, s.recent.At(i))
	}
	return out
}

func (s *InMemoryTradeLog) TotalTrades() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalTrades
}

func (s *InMemoryTradeLog) TotalQty() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalQty
}

func (s *InMemoryTradeLog) InstrumentQty(instrumentID int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byIns[instrumentID]
}
