package rarity

import (
	"errors"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// Resolver samples a rarity tier from the bonus-adjusted weight
// distribution.
type Resolver interface {
	// ResolveTier returns one of the tiers 1..5 with probability
	// proportional to its adjusted weight. bonus must be >= 0.
	ResolveTier(bonus float64) (int, error)
}

// randSource abstracts the RNG so tests can seed it deterministically.
// It must return a float64 in [0, 1).
type randSource func() float64

type resolver struct {
	rnd randSource
}

// NewResolver creates a Resolver backed by the given random source.
func NewResolver(rnd func() float64) Resolver {
	return &resolver{rnd: rnd}
}

// baseWeights returns the base distribution indexed by tier (index 0
// unused).
func baseWeights() [domain.RarityMax + 1]float64 {
	return [domain.RarityMax + 1]float64{
		0,
		BaseWeightCommon,
		BaseWeightRare,
		BaseWeightEpic,
		BaseWeightLegendary,
		BaseWeightMythic,
	}
}

// AdjustedWeights applies the bonus skew to the base weights and clamps
// every tier at zero. A large enough bonus can drive the common tiers
// negative before clamping; sampling over a vector with negative mass
// is undefined, so the clamp is mandatory.
func AdjustedWeights(bonus float64) ([domain.RarityMax + 1]float64, error) {
	w := baseWeights()
	if bonus < 0 {
		return w, errors.New(ErrMsgNegativeBonus)
	}

	w[domain.RarityMythic] += bonus * BonusShareMythic
	w[domain.RarityLegendary] += bonus * BonusShareLegendary
	w[domain.RarityCommon] -= bonus * BonusShareCommon
	w[domain.RarityRare] -= bonus * BonusShareRare
	w[domain.RarityEpic] -= bonus * BonusShareEpic

	for tier := domain.RarityMin; tier <= domain.RarityMax; tier++ {
		if w[tier] < 0 {
			w[tier] = 0
		}
	}
	return w, nil
}

// ResolveTier draws a tier proportionally to the clamped adjusted
// weights using a cumulative-sum roll, so fractional weights like 0.5
// keep their exact share.
func (r *resolver) ResolveTier(bonus float64) (int, error) {
	weights, err := AdjustedWeights(bonus)
	if err != nil {
		return 0, err
	}

	var total float64
	for tier := domain.RarityMin; tier <= domain.RarityMax; tier++ {
		total += weights[tier]
	}
	if total <= 0 {
		// Unreachable for the fixed base weights, but guarded: the rare
		// tiers only ever gain weight.
		return 0, errors.New(ErrMsgDegenerateWeight)
	}

	roll := r.rnd() * total
	for tier := domain.RarityMin; tier <= domain.RarityMax; tier++ {
		roll -= weights[tier]
		if roll < 0 {
			return tier, nil
		}
	}
	// Floating-point edge: the roll landed exactly on the upper bound.
	return domain.RarityMax, nil
}
