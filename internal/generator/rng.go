package generator

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream is the fixed second PCG word; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// RNG is the single random source of a generation run. Every sampler takes
// it explicitly; nothing in the package reads global random state.
type RNG struct {
	*rand.Rand
	src rand.Source
}

func NewRNG(seed uint64) *RNG {
	src := rand.NewPCG(seed, pcgStream)
	return &RNG{Rand: rand.New(src), src: src}
}

// Normal draws from N(mu, sigma).
func (g *RNG) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

// Gamma draws from a gamma distribution in shape/scale form.
func (g *RNG) Gamma(shape, scale float64) float64 {
	// distuv uses the rate parametrisation.
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: g.src}.Rand()
}

// Between returns a uniform int in [lo, hi].
func (g *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (g *RNG) Chance(p float64) bool {
	return g.Float64() < p
}

// DateBetween returns a uniform calendar day in [from, to].
func (g *RNG) DateBetween(from, to time.Time) time.Time {
	from, to = dateOnly(from), dateOnly(to)
	return addDays(from, g.Between(0, daysBetween(from, to)))
}

// Pick returns a uniform element of vals, or the zero value when empty.
func Pick[T any](g *RNG, vals []T) T {
	var zero T
	if len(vals) == 0 {
		return zero
	}
	return vals[g.IntN(len(vals))]
}
