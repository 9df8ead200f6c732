package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joripage/matching-sim/config"
	"github.com/joripage/matching-sim/pkg/logging"
	"github.com/joripage/matching-sim/pkg/orderbook"
	"github.com/joripage/matching-sim/pkg/sim"
	"github.com/joripage/matching-sim/pkg/venue"
	"github.com/joripage/matching-sim/pkg/venue/rule"
	"github.com/joripage/matching-sim/pkg/venue/tradelog"
)

func main() {
	configFile := flag.String("config", "", "path to config file (default: CONFIG_FILE env or built-in defaults)")
	verbose := flag.Bool("v", false, "log every trade")
	flag.Parse()

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := logging.Init(level)
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	registry := orderbook.NewRegistry(cfg.Venue.MaxInstruments)
	trades := tradelog.NewInMemoryTradeLog(cfg.Venue.RecentTrades)

	registry.RegisterTradeCallback(func(ts []orderbook.Trade) {
		trades.Append(ts)
		for _, t := range ts {
			log.Debug("TRADE", zap.Stringer("trade", t))
		}
	})

	rules := []rule.Rule{
		rule.NewInstrumentRange(registry.Size()),
	}
	if cfg.Venue.RejectNonPositive {
		rules = append(rules, rule.NewPositiveValues())
	}

	v := venue.NewVenue(registry, rules, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sim.Run(ctx, v, registry.Size(), cfg.Sim, log); err != nil {
		log.Error("simulation aborted", zap.Error(err))
		os.Exit(1)
	}

	log.Info("totals",
		zap.Int64("trades", trades.TotalTrades()),
		zap.Int64("qty", trades.TotalQty()),
	)
	for _, t := range trades.Recent(5) {
		log.Info("recent trade", zap.Stringer("trade", t))
	}
}
