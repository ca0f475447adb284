package export

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
)

// File describes one written table file.
type File struct {
	Table  string
	Path   string
	Rows   int
	SHA256 string
}

// WriteCSV writes one table (header first) and returns the hex SHA-256 of the bytes written.
func WriteCSV(w io.Writer, t domain.Table) (string, error) {
	h := sha256.New()
	cw := csv.NewWriter(io.MultiWriter(w, h))
	if err := cw.Write(t.Header()); err != nil {
		return "", fmt.Errorf("write header %s: %w", t.Name, err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return "", fmt.Errorf("write rows %s: %w", t.Name, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteAll writes every table to <dir>/<Name>.csv, creating dir if needed.
func WriteAll(dir string, tables []domain.Table) ([]File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	files := make([]File, 0, len(tables))
	for _, t := range tables {
		f, err := writeFile(dir, t)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func writeFile(dir string, t domain.Table) (File, error) {
	path := filepath.Join(dir, t.Name+".csv")
	out, err := os.Create(path)
	if err != nil {
		return File{}, fmt.Errorf("create %s: %w", path, err)
	}
	sum, err := WriteCSV(out, t)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	if err != nil {
		return File{}, err
	}
	observability.ObserveFile("csv")
	return File{Table: t.Name, Path: path, Rows: len(t.Rows), SHA256: sum}, nil
}

// Stats builds the manifest entries for a set of written files.
func Stats(files []File) map[string]domain.TableStats {
	out := make(map[string]domain.TableStats, len(files))
	for _, f := range files {
		out[f.Table] = domain.TableStats{Rows: f.Rows, SHA256: f.SHA256}
	}
	return out
}
