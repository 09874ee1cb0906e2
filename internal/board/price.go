package board

import "math/rand"

const (
	// MinPrice and MaxPrice bound every cell price.
	MinPrice = 1
	MaxPrice = 4

	// Prices are drawn from a roll in [1, priceRollMax].
	// Thresholds give 84% / 5% / 5% / 6% for prices 1..4.
	priceRollMax  = 100
	priceOneBelow = 85
	priceTwoBelow = 90
	priceTriBelow = 95
)

// PriceCalculator draws per-cell prices.
type PriceCalculator interface {
	PickPrice() int
}

// StatisticPriceCalculator draws prices from the fixed rarity distribution.
type StatisticPriceCalculator struct {
	rng *rand.Rand
}

// NewPriceCalculator creates a price calculator using rng.
func NewPriceCalculator(rng *rand.Rand) *StatisticPriceCalculator {
	return &StatisticPriceCalculator{rng: rng}
}

// PickPrice draws one price. Each call is independent.
func (p *StatisticPriceCalculator) PickPrice() int {
	return priceForRoll(1 + p.rng.Intn(priceRollMax))
}

// priceForRoll maps a roll in [1, priceRollMax] to a price.
func priceForRoll(roll int) int {
	switch {
	case roll < priceOneBelow:
		return 1
	case roll < priceTwoBelow:
		return 2
	case roll < priceTriBelow:
		return 3
	default:
		return MaxPrice
	}
}
