package utils

import (
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
)

// RandomSource returns a seeding source that marks each cell alive with
// probability density. The same non-zero seed always yields the same
// board; seed 0 seeds from the clock.
func RandomSource(seed int64, density float64) model.SeedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return func(model.Position) bool {
		return rng.Float64() < density
	}
}
