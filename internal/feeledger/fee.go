package feeledger

import (
	"errors"
	"math/big"

	"github.com/google/uuid"
)

// bpsDenominator is the basis-point scale: 10000 bps = 100%.
const bpsDenominator = 10_000

// ErrInvalidValue is returned when a transaction value is nil or negative.
var ErrInvalidValue = errors.New("invalid transaction value")

// ErrInvalidTierSchedule is returned when the configured tier schedule is
// empty, unordered, or carries an out-of-range rate.
var ErrInvalidTierSchedule = errors.New("invalid tier schedule")

// FeeTier is one volume tier of the base fee schedule. Transactions whose
// value is less than or equal to MaxValue are charged RateBps; a nil
// MaxValue marks the unbounded top tier.
type FeeTier struct {
	MaxValue *big.Int // inclusive upper bound, nil for the top tier
	RateBps  uint32   // base fee rate in basis points
}

// TierSchedule is the configured fee schedule: volume tiers for the base
// rate plus the fixed executor share carved off the total fee.
type TierSchedule struct {
	Tiers            []FeeTier // ascending by MaxValue, last tier unbounded
	ExecutorShareBps uint32    // share of the total fee paid to the executor
}

// Validate checks structural invariants of the schedule: at least one tier,
// strictly ascending bounds, exactly one unbounded top tier, and all rates
// within the basis-point scale.
func (ts TierSchedule) Validate() error {
	if len(ts.Tiers) == 0 || ts.ExecutorShareBps > bpsDenominator {
		return ErrInvalidTierSchedule
	}

	var prev *big.Int
	for i, tier := range ts.Tiers {
		if tier.RateBps > bpsDenominator {
			return ErrInvalidTierSchedule
		}

		last := i == len(ts.Tiers)-1
		if last {
			if tier.MaxValue != nil {
				return ErrInvalidTierSchedule
			}
			continue
		}

		if tier.MaxValue == nil || (prev != nil && tier.MaxValue.Cmp(prev) <= 0) {
			return ErrInvalidTierSchedule
		}
		prev = tier.MaxValue
	}

	return nil
}

// rateFor returns the base fee rate for the given transaction value.
func (ts TierSchedule) rateFor(value *big.Int) uint32 {
	for _, tier := range ts.Tiers {
		if tier.MaxValue == nil || value.Cmp(tier.MaxValue) <= 0 {
			return tier.RateBps
		}
	}

	// Unreachable for a validated schedule; the top tier is unbounded.
	return ts.Tiers[len(ts.Tiers)-1].RateBps
}

// Split is the fee split record for one transaction. The three legs always
// sum to the total exactly: truncation remainders from basis-point division
// are folded into the platform leg, never dropped.
type Split struct {
	DistributionID    string   // unique id for this split (UUIDv7)
	ModuleID          string   // module whose operation moved the value
	Value             *big.Int // transaction value the fee was computed on
	RateBps           uint32   // base rate applied from the tier schedule
	DeveloperWallet   string   // registered developer wallet, empty when none
	DeveloperShareBps uint32   // registered developer share, zero when none

	TotalFee     *big.Int
	ExecutorFee  *big.Int
	DeveloperFee *big.Int
	PlatformFee  *big.Int
}

// bpsOf returns value * bps / 10000, truncated toward zero.
func bpsOf(value *big.Int, bps uint32) *big.Int {
	out := new(big.Int).Mul(value, big.NewInt(int64(bps)))
	return out.Quo(out, big.NewInt(bpsDenominator))
}

// computeSplit derives the full fee split for a transaction value under the
// given schedule and developer share. All divisions truncate toward zero;
// the platform leg absorbs every truncation remainder so that
// executor + developer + platform == total holds exactly.
func computeSplit(schedule TierSchedule, moduleID string, value *big.Int, developerWallet string, developerShareBps uint32) Split {
	rateBps := schedule.rateFor(value)

	totalFee := bpsOf(value, rateBps)
	executorFee := bpsOf(totalFee, schedule.ExecutorShareBps)

	remainder := new(big.Int).Sub(totalFee, executorFee)
	developerFee := bpsOf(remainder, developerShareBps)
	platformFee := new(big.Int).Sub(remainder, developerFee)

	return Split{
		DistributionID:    uuid.Must(uuid.NewV7()).String(),
		ModuleID:          moduleID,
		Value:             new(big.Int).Set(value),
		RateBps:           rateBps,
		DeveloperWallet:   developerWallet,
		DeveloperShareBps: developerShareBps,
		TotalFee:          totalFee,
		ExecutorFee:       executorFee,
		DeveloperFee:      developerFee,
		PlatformFee:       platformFee,
	}
}
