package rules

import (
	"errors"
	"math/rand"
)

// DefaultChances is the standard chance table. Positive entries are debited
// from the player, negative entries are credited.
var DefaultChances = []int{
	500000,
	750000,
	200000,
	350000,
	1000000,
	-500000,
	-750000,
	-200000,
	-350000,
	-1000000,
}

// ChanceDeck draws uniformly, with replacement, from a fixed table of amounts.
type ChanceDeck struct {
	rng     *rand.Rand
	amounts []int
}

func NewChanceDeck(rng *rand.Rand, amounts []int) (*ChanceDeck, error) {
	if len(amounts) == 0 {
		return nil, errors.New("chance table is empty")
	}
	table := make([]int, len(amounts))
	copy(table, amounts)
	return &ChanceDeck{rng: rng, amounts: table}, nil
}

func (d *ChanceDeck) Draw() int {
	return d.amounts[d.rng.Intn(len(d.amounts))]
}
