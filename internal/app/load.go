package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"aurora_hotels/internal/domain"
	"aurora_hotels/internal/export"
)

// LoadService pushes a previously exported CSV directory into a database.
type LoadService struct {
	loader domain.TableLoader
	log    zerolog.Logger
}

func NewLoadService(l domain.TableLoader, logger zerolog.Logger) *LoadService {
	return &LoadService{loader: l, log: logger}
}

func (s *LoadService) Run(ctx context.Context, dir string) error {
	tables, err := export.ReadAll(dir)
	if err != nil {
		return err
	}
	rows := 0
	for _, t := range tables {
		rows += len(t.Rows)
	}
	s.log.Info().Str("dir", dir).Int("tables", len(tables)).Int("rows", rows).Msg("loading")
	if err := s.loader.LoadAll(ctx, tables); err != nil {
		return fmt.Errorf("load %s: %w", dir, err)
	}
	s.log.Info().Msg("load complete")
	return nil
}
