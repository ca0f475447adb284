package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
)

type Options struct {
	Workers       int     // tables loaded concurrently
	BatchSize     int     // rows per INSERT
	BatchesPerSec float64 // 0 = unthrottled
}

// Loader replaces the contents of MySQL tables with exported rows.
type Loader struct {
	db      *sql.DB
	opts    Options
	limiter *rate.Limiter
}

func New(db *sql.DB, opts Options) *Loader {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 500
	}
	lim := rate.NewLimiter(rate.Inf, 1)
	if opts.BatchesPerSec > 0 {
		lim = rate.NewLimiter(rate.Limit(opts.BatchesPerSec), 1)
	}
	return &Loader{db: db, opts: opts, limiter: lim}
}

// LoadAll loads every table, at most Workers at a time. The first failure cancels the rest.
func (l *Loader) LoadAll(ctx context.Context, tables []domain.Table) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Workers)
	for _, t := range tables {
		g.Go(func() error { return l.Load(ctx, t) })
	}
	return g.Wait()
}

// Load recreates one table's contents inside a single transaction.
func (l *Loader) Load(ctx context.Context, t domain.Table) error {
	start := time.Now()
	if _, err := l.db.ExecContext(ctx, createTableSQL(t.Name, t.Columns)); err != nil {
		return fmt.Errorf("create %s: %w", t.Name, err)
	}
	if _, err := l.db.ExecContext(ctx, truncateSQL(t.Name)); err != nil {
		return fmt.Errorf("truncate %s: %w", t.Name, err)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", t.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	size := batchRows(l.opts.BatchSize, len(t.Columns))
	for lo := 0; lo < len(t.Rows); lo += size {
		hi := min(lo+size, len(t.Rows))
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}
		args, err := bindArgs(t.Columns, t.Rows[lo:hi])
		if err != nil {
			return fmt.Errorf("%s rows %d..%d: %w", t.Name, lo+1, hi, err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL(t.Name, t.Columns, hi-lo), args...); err != nil {
			return fmt.Errorf("insert %s rows %d..%d: %w", t.Name, lo+1, hi, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", t.Name, err)
	}

	d := time.Since(start)
	observability.ObserveLoad(t.Name, len(t.Rows), d)
	log.Info().Str("table", t.Name).Int("rows", len(t.Rows)).Dur("duration", d).Msg("table loaded")
	return nil
}

// bindArgs flattens rows into INSERT arguments; integer columns are sent as integers,
// money and dates as their exact text.
func bindArgs(cols []domain.Column, rows [][]string) ([]any, error) {
	args := make([]any, 0, len(rows)*len(cols))
	for _, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row has %d cells, want %d", len(row), len(cols))
		}
		for i, v := range row {
			if cols[i].Kind == domain.KindInt {
				n, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("column %s: %w", cols[i].Name, err)
				}
				args = append(args, n)
				continue
			}
			args = append(args, v)
		}
	}
	return args, nil
}
