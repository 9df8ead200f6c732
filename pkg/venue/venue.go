package venue

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joripage/matching-sim/pkg/orderbook"
	"github.com/joripage/matching-sim/pkg/venue/model"
	"github.com/joripage/matching-sim/pkg/venue/rule"
)

// Venue is the ingestion entry point: it validates a submission, routes it
// to the instrument's book and runs that book's matching pass before
// returning. Matching is synchronous in the submitting goroutine; there is
// no background matcher and no queue, so a submission's latency includes
// its own matching pass.
type Venue struct {
	registry *orderbook.Registry
	rules    []rule.Rule
	log      *zap.Logger
}

func NewVenue(registry *orderbook.Registry, rules []rule.Rule, log *zap.Logger) *Venue {
	if log == nil {
		log = zap.NewNop()
	}
	return &Venue{
		registry: registry,
		rules:    rules,
		log:      log,
	}
}

// Submit validates and books one order. On a rule rejection nothing is
// constructed and no book is touched; the error is also logged as the
// caller-visible diagnostic. Trades are observed through the registry's
// trade callbacks, not the return value.
func (v *Venue) Submit(ctx context.Context, side orderbook.Side, instrumentID int, qty int64, price float64) error {
	req := &model.SubmitRequest{
		Side:         side,
		InstrumentID: instrumentID,
		Qty:          qty,
		Price:        price,
	}

	for _, r := range v.rules {
		if err := r.Check(req); err != nil {
			v.log.Warn("submission rejected",
				zap.String("side", string(side)),
				zap.Int("instrument_id", instrumentID),
				zap.Int64("qty", qty),
				zap.Float64("price", price),
				zap.Error(err),
			)
			return err
		}
	}

	ord := orderbook.NewOrder(uuid.NewString(), side, instrumentID, qty, price)
	v.registry.Insert(ord)
	v.registry.MatchInstrument(instrumentID)

	return nil
}

// MatchAll is the end-of-batch sweep: one sequential matching pass over
// every instrument. Callers run it after all submitters have joined.
func (v *Venue) MatchAll() {
	v.registry.MatchAll()
}

func (v *Venue) BestBuyPrice(instrumentID int) (float64, bool) {
	return v.registry.BestBuyPrice(instrumentID)
}

func (v *Venue) BestSellPrice(instrumentID int) (float64, bool) {
	return v.registry.BestSellPrice(instrumentID)
}
