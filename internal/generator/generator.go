package generator

import (
	"time"

	"github.com/rs/zerolog"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
)

// builder carries the state of one run through the pipeline stages.
type builder struct {
	cfg Config
	rng *RNG
	log zerolog.Logger
	ds  domain.Dataset

	roomsByHotel map[int][]domain.Room
	roomByID     map[int]domain.Room
}

// Generate runs the whole pipeline once. The same Config (seed included)
// always yields the same Dataset.
func Generate(cfg Config, logger zerolog.Logger) (domain.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Dataset{}, err
	}
	b := &builder{
		cfg:          cfg.normalized(),
		rng:          NewRNG(cfg.Seed),
		log:          logger,
		roomsByHotel: map[int][]domain.Room{},
		roomByID:     map[int]domain.Room{},
	}

	b.stage("dimensions", b.buildDimensions)
	b.stage("entities", b.buildEntities)
	b.stage("bookings", b.buildBookings)
	b.stage("derived", b.buildDerived)
	b.stage("operations", b.buildOperations)
	return b.ds, nil
}

func (b *builder) stage(name string, fn func()) {
	start := time.Now()
	fn()
	d := time.Since(start)
	observability.ObserveStage(name, d)
	b.log.Info().Str("stage", name).Dur("duration", d).Msg("stage complete")
}

// dist prepares a weighted distribution, warning when the weights had to be
// replaced by a uniform draw.
func dist[T any](b *builder, name string, values []T, weights []float64) *Categorical[T] {
	c := NewCategorical(values, weights)
	if c.Fallback {
		b.log.Warn().
			Str("distribution", name).
			Int("candidates", len(values)).
			Int("weights", len(weights)).
			Msg("malformed weights, sampling uniformly")
		observability.ObserveWeightFallback(name)
	}
	return c
}

// head mirrors slice truncation that tolerates n > len(w).
func head(w []float64, n int) []float64 {
	if n < len(w) {
		return w[:n]
	}
	return w
}

func seq(from, to int) []int {
	out := make([]int, 0, max(0, to-from+1))
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
