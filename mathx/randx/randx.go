package randx

import (
	"fmt"
	"math/rand/v2"

	"github.com/sw965/omw/mathx/randx"
	"gonum.org/v1/gonum/stat/distuv"
)

// IntByPoisson draws a Poisson(lam) distributed integer clamped to
// [min, max].
//
// IntByPoissonは、平均lamのポアソン分布から整数を1つ引き、[min, max]に収めます。
func IntByPoisson(lam float64, min, max int, rng *rand.Rand) int {
	n := int(distuv.Poisson{Lambda: lam, Src: rng}.Rand())
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

// SignedUnit draws uniformly from {-1, 1}, or from {-1, 0, 1} when ties is
// true.
//
// SignedUnitは、{-1, 1}（tiesがtrueなら{-1, 0, 1}）から一様に1つ引きます。
func SignedUnit(ties bool, rng *rand.Rand) float32 {
	opts := []float32{-1.0, 1.0}
	if ties {
		opts = []float32{-1.0, 0.0, 1.0}
	}

	v, err := randx.Choice(opts, rng)
	if err != nil {
		panic(fmt.Sprintf("BUG: %v", err))
	}
	return v
}
