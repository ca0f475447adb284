package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
	"aurora_hotels/internal/export"
	"aurora_hotels/internal/generator"
)

type GenerateOptions struct {
	OutputDir string
	XLSX      bool
}

type GenerateResult struct {
	RunID    string
	Files    []export.File
	Workbook string
	// Drift lists tables whose contents differ from the previous run of the same configuration.
	Drift []string
}

// GenerationService runs one generation and publishes its outputs.
type GenerationService struct {
	manifests domain.ManifestStore // optional
	summary   io.Writer
	log       zerolog.Logger
	now       func() time.Time
}

func NewGenerationService(m domain.ManifestStore, summary io.Writer, logger zerolog.Logger) *GenerationService {
	return &GenerationService{manifests: m, summary: summary, log: logger, now: time.Now}
}

func (s *GenerationService) Run(ctx context.Context, cfg generator.Config, opts GenerateOptions) (GenerateResult, error) {
	res := GenerateResult{RunID: uuid.NewString()}
	logger := s.log.With().Str("run_id", res.RunID).Uint64("seed", cfg.Seed).Logger()

	ds, err := generator.Generate(cfg, logger)
	if err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}
	tables := export.Tables(ds)
	for _, t := range tables {
		observability.ObserveRows(t.Name, len(t.Rows))
	}

	if res.Files, err = export.WriteAll(opts.OutputDir, tables); err != nil {
		return res, err
	}
	if opts.XLSX {
		if res.Workbook, err = export.WriteWorkbook(opts.OutputDir, tables); err != nil {
			return res, err
		}
	}
	if err := export.WriteSummary(s.summary, opts.OutputDir, res.Files); err != nil {
		return res, fmt.Errorf("summary: %w", err)
	}

	if s.manifests != nil {
		m := domain.Manifest{
			RunID:       res.RunID,
			Seed:        cfg.Seed,
			Fingerprint: Fingerprint(cfg),
			GeneratedAt: s.now().UTC(),
			Tables:      export.Stats(res.Files),
		}
		res.Drift = s.checkManifest(ctx, logger, m)
	}
	logger.Info().Int("tables", len(res.Files)).Str("dir", opts.OutputDir).Msg("generation complete")
	return res, nil
}

// checkManifest compares m with the stored manifest of the same seed and stores m.
// The manifest store is advisory: its failures are logged, never returned.
func (s *GenerationService) checkManifest(ctx context.Context, logger zerolog.Logger, m domain.Manifest) []string {
	var drift []string
	prev, err := s.manifests.Get(ctx, m.Seed)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		logger.Warn().Err(err).Msg("manifest lookup failed")
	case prev.Fingerprint != m.Fingerprint:
		logger.Info().Str("previous_run", prev.RunID).Msg("configuration changed since previous run")
	default:
		drift = Diff(prev, m)
		if len(drift) == 0 {
			observability.ObserveManifest("match")
			logger.Info().Str("previous_run", prev.RunID).Msg("output identical to previous run")
		} else {
			observability.ObserveManifest("drift")
			logger.Warn().Str("previous_run", prev.RunID).Strs("tables", drift).Msg("output differs from previous run with the same configuration")
		}
	}
	if err := s.manifests.Put(ctx, m); err != nil {
		logger.Warn().Err(err).Msg("manifest store failed")
	}
	return drift
}

// Diff returns the sorted names of tables whose row count or checksum differ.
func Diff(a, b domain.Manifest) []string {
	var out []string
	for name, sb := range b.Tables {
		if sa, ok := a.Tables[name]; !ok || sa != sb {
			out = append(out, name)
		}
	}
	for name := range a.Tables {
		if _, ok := b.Tables[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Fingerprint identifies a configuration; runs with equal fingerprints must export equal bytes.
func Fingerprint(cfg generator.Config) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%+v", cfg)))
	return hex.EncodeToString(h[:8])
}
