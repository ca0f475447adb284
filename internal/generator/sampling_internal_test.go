package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeights(t *testing.T) {
	p, ok := NormalizeWeights([]float64{1, 3}, 2)
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, p, 1e-12)

	for name, w := range map[string][]float64{
		"short":    {1},
		"negative": {1, -1},
		"nan":      {1, math.NaN()},
		"inf":      {1, math.Inf(1)},
		"zero":     {0, 0},
	} {
		p, ok := NormalizeWeights(w, 2)
		assert.False(t, ok, name)
		assert.Equal(t, []float64{0.5, 0.5}, p, name)
	}

	p, ok = NormalizeWeights(nil, 0)
	assert.False(t, ok)
	assert.Empty(t, p)
}

func TestCategoricalFollowsWeights(t *testing.T) {
	r := NewRNG(1)
	c := NewCategorical([]string{"a", "b", "c"}, []float64{0.7, 0.2, 0.1})
	require.False(t, c.Fallback)

	const n = 50000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[c.Draw(r)]++
	}
	assert.InDelta(t, 0.7, float64(counts["a"])/n, 0.02)
	assert.InDelta(t, 0.2, float64(counts["b"])/n, 0.02)
	assert.InDelta(t, 0.1, float64(counts["c"])/n, 0.02)
}

func TestCategoricalFallbackIsUniform(t *testing.T) {
	r := NewRNG(2)
	c := NewCategorical([]int{1, 2, 3, 4}, []float64{0.5, 0.5})
	require.True(t, c.Fallback)

	const n = 40000
	counts := map[int]int{}
	for i := 0; i < n; i++ {
		counts[c.Draw(r)]++
	}
	for v := 1; v <= 4; v++ {
		assert.InDelta(t, 0.25, float64(counts[v])/n, 0.02, "value %d", v)
	}
}

func TestWeightedChoiceNeverPicksZeroWeight(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 5000; i++ {
		assert.NotEqual(t, "never", WeightedChoice(r, []string{"x", "never", "y"}, []float64{1, 0, 1}))
	}
	empty := NewCategorical[int](nil, nil)
	assert.Zero(t, empty.Draw(r))
}

func TestNightlyRateFloor(t *testing.T) {
	r := NewRNG(4)
	sat := time.Date(2024, time.December, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, NightlyRate(r, sat, 50), MinNightlyRate)
		assert.Greater(t, NightlyRate(r, sat, 900), 900.0)
	}
	assert.Equal(t, MinNightlyRate, NightlyRate(r, sat, math.NaN()))
}

func TestStayValue(t *testing.T) {
	r := NewRNG(5)
	in := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, StayValue(r, in, 0, 300))
	v := StayValue(r, in, 3, 300)
	// March Mon..Wed: factors ~0.98, 0.98, 1.00 with 3% noise
	assert.InDelta(t, 300*(0.98+0.98+1.00), v, 90)
}

func TestWeekdayFactors(t *testing.T) {
	assert.Equal(t, 1.12, weekdayFactor[time.Saturday])
	assert.Equal(t, 1.10, weekdayFactor[time.Sunday])
	assert.Equal(t, 0.98, weekdayFactor[time.Monday])
	assert.Equal(t, 1.20, seasonality[time.December])
}

func TestSampleStayDates(t *testing.T) {
	r := NewRNG(6)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	nights := NewCategorical(seq(1, 14), nightWeights)

	for i := 0; i < 5000; i++ {
		s := SampleStayDates(r, start, end, nights)
		require.Equal(t, s.CheckIn.AddDate(0, 0, s.Nights), s.CheckOut)
		require.False(t, s.CheckIn.Before(start))
		require.False(t, s.CheckOut.After(end))
		require.False(t, s.BookedOn.After(s.CheckIn))
		require.False(t, s.BookedOn.Before(start))
		require.LessOrEqual(t, daysBetween(s.BookedOn, s.CheckIn), maxLeadDays)
	}
}

func TestMonths(t *testing.T) {
	ms := months(time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, ms, 4)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), ms[0])
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), ms[3])
	assert.Equal(t, 29, endOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Day())
}

func TestSampleIndices(t *testing.T) {
	r := NewRNG(7)
	idx := sampleIndices(r, 100, 0.06)
	require.Len(t, idx, 6)
	for i := 1; i < len(idx); i++ {
		assert.Less(t, idx[i-1], idx[i])
	}
	assert.Nil(t, sampleIndices(r, 0, 0.5))
	assert.Nil(t, sampleIndices(r, 10, 0))
	assert.Len(t, sampleIndices(r, 10, 1), 10)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.68, round2(2.675))
	assert.Equal(t, -1.01, round2(-1.005))
	assert.Equal(t, 100.0, round2(99.999))
}

func TestCPF(t *testing.T) {
	// 529.982.247-25 is a well-known valid CPF
	assert.Equal(t, 2, cpfCheckDigit([]int{5, 2, 9, 9, 8, 2, 2, 4, 7}))
	assert.Equal(t, 5, cpfCheckDigit([]int{5, 2, 9, 9, 8, 2, 2, 4, 7, 2}))

	r := NewRNG(8)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, cpf(r))
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "hotelauroracambui", slug("Hotel Aurora Cambuí"))
	assert.Equal(t, "joaoconceicao", slug("João Conceição"))
	assert.Equal(t, "Lençol Casal", capitalize("lençol casal"))
}

func TestRNGHelpers(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 1000; i++ {
		v := r.Between(3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 4, r.Between(4, 4))
	assert.Equal(t, "", Pick[string](r, nil))

	a, b := NewRNG(10), NewRNG(10)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Normal(0, 1), b.Normal(0, 1))
		require.Equal(t, a.Gamma(2, 10), b.Gamma(2, 10))
	}
}
