// Package config loads the application configuration from environment
// variables, prefixed with FACETCORE_.
package config

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every configuration variable.
const envPrefix = "facetcore"

// FeeTiers is the env representation of the volume tier schedule: a comma
// separated list of "maxValue:rateBps" pairs, ascending, with an empty
// maxValue marking the unbounded top tier.
//
// Example: "100000:9,10000000:7,:5"
type FeeTiers []feeledger.FeeTier

// Decode implements the envconfig.Decoder interface.
func (ft *FeeTiers) Decode(value string) error {
	var tiers []feeledger.FeeTier
	for _, entry := range strings.Split(value, ",") {
		bound, rate, found := strings.Cut(strings.TrimSpace(entry), ":")
		if !found {
			return fmt.Errorf("malformed fee tier %q", entry)
		}

		var maxValue *big.Int
		if bound != "" {
			var ok bool
			if maxValue, ok = new(big.Int).SetString(bound, 10); !ok {
				return fmt.Errorf("malformed fee tier bound %q", bound)
			}
		}

		rateBps, err := strconv.ParseUint(rate, 10, 32)
		if err != nil {
			return fmt.Errorf("malformed fee tier rate %q: %w", rate, err)
		}

		tiers = append(tiers, feeledger.FeeTier{
			MaxValue: maxValue,
			RateBps:  uint32(rateBps),
		})
	}

	*ft = tiers
	return nil
}

// Config is the full application configuration.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"facetcore"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`

	HostWalletEndpoint string `envconfig:"HOST_WALLET_ENDPOINT" validate:"required"`

	PlatformWallet   string   `envconfig:"PLATFORM_WALLET" validate:"required"`
	FeeTiers         FeeTiers `envconfig:"FEE_TIERS" default:"100000:9,10000000:7,:5"`
	ExecutorShareBps uint32   `envconfig:"EXECUTOR_SHARE_BPS" default:"1000"`
}

// TierSchedule assembles the feeledger schedule from the configured tiers
// and executor share.
func (c Config) TierSchedule() feeledger.TierSchedule {
	return feeledger.TierSchedule{
		Tiers:            c.FeeTiers,
		ExecutorShareBps: c.ExecutorShareBps,
	}
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	validator.Init()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
