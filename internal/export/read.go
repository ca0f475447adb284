package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"aurora_hotels/internal/domain"
)

var ErrHeaderMismatch = errors.New("csv header does not match schema")

// ReadCSV reads <dir>/<name>.csv back into a table, checking the header against the schema.
func ReadCSV(dir, name string) (domain.Table, error) {
	columns, ok := Schema(name)
	if !ok {
		return domain.Table{}, fmt.Errorf("unknown table %q", name)
	}
	path := filepath.Join(dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	t := domain.Table{Name: name, Columns: columns}
	if len(records) == 0 || !slices.Equal(records[0], t.Header()) {
		return domain.Table{}, fmt.Errorf("%s: %w", path, ErrHeaderMismatch)
	}
	t.Rows = records[1:]
	return t, nil
}

// ReadAll reads every known table from dir, in export order.
func ReadAll(dir string) ([]domain.Table, error) {
	tables := make([]domain.Table, 0, len(TableNames))
	for _, name := range TableNames {
		t, err := ReadCSV(dir, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
