package rules

import (
	"fmt"
	"math/rand"
)

// Dice draws a uniform integer in [Min, Max]. With the default 2..12 range every
// total is equally likely; it does not model the sum of two dice.
type Dice struct {
	rng *rand.Rand
	min int
	max int
}

func NewDice(rng *rand.Rand, min, max int) (*Dice, error) {
	if min < 1 || max < min {
		return nil, fmt.Errorf("invalid dice range [%d, %d]", min, max)
	}
	return &Dice{rng: rng, min: min, max: max}, nil
}

func (d *Dice) Roll() int {
	return d.min + d.rng.Intn(d.max-d.min+1)
}
