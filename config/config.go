package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joripage/matching-sim/pkg/sim"
)

type VenueConfig struct {
	// MaxInstruments fixes the instrument id space [0, MaxInstruments);
	// one book per id is built at startup and the set never changes.
	MaxInstruments int `yaml:"max_instruments"`

	// RecentTrades bounds the in-memory trade log ring.
	RecentTrades int `yaml:"recent_trades"`

	// RejectNonPositive enables the qty/price > 0 rule at ingestion.
	RejectNonPositive bool `yaml:"reject_non_positive"`
}

type AppConfig struct {
	ServiceName string       `yaml:"service_name"`
	Venue       *VenueConfig `yaml:"venue"`
	Sim         *sim.Config  `yaml:"sim"`
}

func Default() *AppConfig {
	return &AppConfig{
		ServiceName: "matching-sim",
		Venue: &VenueConfig{
			MaxInstruments:    1024,
			RecentTrades:      1024,
			RejectNonPositive: true,
		},
		Sim: sim.Default(),
	}
}

// Load load config from file and environment variables. An empty path falls
// back to CONFIG_FILE, then to built-in defaults.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	if len(filePath) == 0 {
		sugar.Debug("No config file, using defaults")
		return Default(), nil
	}

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := Default()

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
