package improc

import (
	"fmt"
	"math/rand/v2"
)

// SaltAndPepper replaces each sample, with the given percentage chance,
// by the encoding's minimum or maximum (equally likely). A nil rng uses
// the global source.
func (m *Image[S]) SaltAndPepper(percentage int, rng *rand.Rand) *Image[S] {
	if percentage < 0 || percentage > 100 {
		panic(fmt.Sprintf("improc: noise percentage %d outside [0,100]", percentage))
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	var zero S
	for i := range m.data {
		if intN(100) < percentage {
			if intN(2) == 0 {
				m.data[i] = zero.Min()
			} else {
				m.data[i] = zero.Max()
			}
		}
	}
	return m
}
