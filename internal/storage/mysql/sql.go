package mysql

import (
	"fmt"
	"strings"

	"aurora_hotels/internal/domain"
)

// maxPlaceholders is the server-side limit on bind parameters per statement.
const maxPlaceholders = 65535

// Tables whose first column does not identify a row.
var noPrimaryKey = map[string]bool{
	"ReservaServicos": true,
	"OcupacaoDiaria":  true,
}

func quote(ident string) string { return "`" + strings.ReplaceAll(ident, "`", "``") + "`" }

func columnType(k domain.ColumnKind) string {
	switch k {
	case domain.KindInt:
		return "BIGINT NOT NULL"
	case domain.KindMoney:
		return "DECIMAL(14,2) NOT NULL"
	case domain.KindDate:
		return "DATE NOT NULL"
	default:
		return "VARCHAR(512) NOT NULL"
	}
}

// createTableSQL derives the DDL of a table from its column kinds.
func createTableSQL(name string, cols []domain.Column) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quote(name))
	for i, c := range cols {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  %s %s", quote(c.Name), columnType(c.Kind))
	}
	if len(cols) > 0 && !noPrimaryKey[name] {
		fmt.Fprintf(&b, ",\n  PRIMARY KEY (%s)", quote(cols[0].Name))
	}
	b.WriteString("\n) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4")
	return b.String()
}

func truncateSQL(name string) string { return "TRUNCATE TABLE " + quote(name) }

// insertSQL builds one multi-row INSERT for rows rows of cols columns.
func insertSQL(name string, cols []domain.Column, rows int) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c.Name)
	}
	tuple := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	values := make([]string, rows)
	for i := range values {
		values[i] = tuple
	}
	return "INSERT INTO " + quote(name) + " (" + strings.Join(names, ", ") + ") VALUES " + strings.Join(values, ",")
}

// batchRows caps the batch size so a statement stays under the placeholder limit.
func batchRows(want, cols int) int {
	if cols == 0 {
		return max(want, 1)
	}
	limit := maxPlaceholders / cols
	if want <= 0 || want > limit {
		return limit
	}
	return want
}
