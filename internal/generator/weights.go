package generator

import (
	"math"
	"sort"
)

// NormalizeWeights scales weights so they sum to 1. When the vector cannot
// describe a distribution over n candidates (length mismatch, a negative or
// non-finite entry, or a sum that is not positive and finite) it returns the
// uniform distribution and ok=false.
func NormalizeWeights(weights []float64, n int) (p []float64, ok bool) {
	if n <= 0 {
		return nil, false
	}
	if len(weights) != n {
		return uniform(n), false
	}
	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return uniform(n), false
		}
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return uniform(n), false
	}
	p = make([]float64, n)
	for i, w := range weights {
		p[i] = w / sum
	}
	return p, true
}

func uniform(n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	return p
}

// Categorical is a prepared weighted distribution over a fixed set of values.
type Categorical[T any] struct {
	values []T
	cum    []float64

	// Fallback is set when the weights were malformed and sampling degraded
	// to uniform.
	Fallback bool
}

func NewCategorical[T any](values []T, weights []float64) *Categorical[T] {
	p, ok := NormalizeWeights(weights, len(values))
	cum := make([]float64, len(p))
	var acc float64
	for i, w := range p {
		acc += w
		cum[i] = acc
	}
	return &Categorical[T]{values: values, cum: cum, Fallback: !ok}
}

// Draw samples one value. An empty distribution yields the zero value.
func (c *Categorical[T]) Draw(r *RNG) T {
	var zero T
	if len(c.values) == 0 {
		return zero
	}
	u := r.Float64()
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > u })
	if i >= len(c.values) {
		// rounding left the last cumulative weight just under 1
		i = len(c.values) - 1
	}
	return c.values[i]
}

func (c *Categorical[T]) Values() []T { return c.values }

// WeightedChoice draws one candidate according to weights, falling back to a
// uniform draw when the weights are malformed.
func WeightedChoice[T any](r *RNG, candidates []T, weights []float64) T {
	return NewCategorical(candidates, weights).Draw(r)
}
