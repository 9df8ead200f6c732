package sim

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/joripage/matching-sim/pkg/orderbook"
	"github.com/joripage/matching-sim/pkg/venue/model"
)

// Generator produces uniformly random submissions for load runs. Each
// worker owns its own Generator so there is no shared rand source.
type Generator struct {
	rng            *rand.Rand
	numInstruments int
	cfg            *Config
}

func NewGenerator(seed int64, numInstruments int, cfg *Config) *Generator {
	return &Generator{
		rng:            rand.New(rand.NewSource(seed)),
		numInstruments: numInstruments,
		cfg:            cfg,
	}
}

func (g *Generator) Next() *model.SubmitRequest {
	side := orderbook.BUY
	if g.rng.Intn(2) == 0 {
		side = orderbook.SELL
	}

	price := g.cfg.MinPrice + g.rng.Float64()*(g.cfg.MaxPrice-g.cfg.MinPrice)
	price, _ = decimal.NewFromFloat(price).Round(2).Float64()

	return &model.SubmitRequest{
		Side:         side,
		InstrumentID: g.rng.Intn(g.numInstruments),
		Qty:          g.cfg.MinQty + g.rng.Int63n(g.cfg.MaxQty-g.cfg.MinQty+1),
		Price:        price,
	}
}
