package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// ManifestStore keeps the fingerprint of previous runs so a rerun with the
// same seed can be checked for drift.
type ManifestStore interface {
	Get(ctx context.Context, seed uint64) (Manifest, error)
	Put(ctx context.Context, m Manifest) error
}

// TableLoader bulk-loads exported tables into a database.
type TableLoader interface {
	LoadAll(ctx context.Context, tables []Table) error
}

type Manifest struct {
	RunID       string                `json:"run_id"`
	Seed        uint64                `json:"seed"`
	Fingerprint string                `json:"fingerprint"`
	GeneratedAt time.Time             `json:"generated_at"`
	Tables      map[string]TableStats `json:"tables"`
}

type TableStats struct {
	Rows   int    `json:"rows"`
	SHA256 string `json:"sha256"`
}

// ColumnKind drives both value formatting and the DDL type of a column.
type ColumnKind int

const (
	KindInt ColumnKind = iota
	KindMoney
	KindText
	KindDate
)

type Column struct {
	Name string
	Kind ColumnKind
}

// Table is the serialisable form of one dataset table: already formatted
// cells in column order.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]string
}

func (t Table) Header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}
