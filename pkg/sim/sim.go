package sim

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/joripage/matching-sim/pkg/venue"
)

// Config bounds one simulated batch. The zero-ish defaults in Default()
// mirror a small interactive run: a handful of workers hammering random
// instruments, then one closing sweep.
type Config struct {
	Workers         int     `yaml:"workers"`
	OrdersPerWorker int     `yaml:"orders_per_worker"`
	MinQty          int64   `yaml:"min_qty"`
	MaxQty          int64   `yaml:"max_qty"`
	MinPrice        float64 `yaml:"min_price"`
	MaxPrice        float64 `yaml:"max_price"`
	SubmitDelayMs   int     `yaml:"submit_delay_ms"`
	Seed            int64   `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		Workers:         4,
		OrdersPerWorker: 250,
		MinQty:          1,
		MaxQty:          100,
		MinPrice:        10.0,
		MaxPrice:        1000.0,
		SubmitDelayMs:   1,
	}
}

// Run drives one batch: Workers goroutines each submit OrdersPerWorker
// random orders, every submission matching its own instrument inline. After
// all workers join, one sequential sweep over every book closes out any
// crossing the per-submission passes left behind.
func Run(ctx context.Context, v *venue.Venue, numInstruments int, cfg *Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	delay := time.Duration(cfg.SubmitDelayMs) * time.Millisecond

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		gen := NewGenerator(seed+int64(w), numInstruments, cfg)
		g.Go(func() error {
			for i := 0; i < cfg.OrdersPerWorker; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				req := gen.Next()
				if err := v.Submit(ctx, req.Side, req.InstrumentID, req.Qty, req.Price); err != nil {
					// The venue already logged the rejection; skip the
					// order and keep the batch going.
					log.Debug("submission skipped", zap.Error(err))
				}

				if delay > 0 {
					time.Sleep(delay)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Final sweep: busy instruments are only matched by their own
	// submitters during the batch, so every book gets one more pass here.
	v.MatchAll()

	log.Info("simulation complete",
		zap.Int("workers", cfg.Workers),
		zap.Int("orders", cfg.Workers*cfg.OrdersPerWorker),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
