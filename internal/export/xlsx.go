package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
)

// WorkbookName is the file written by WriteWorkbook inside the output dir.
const WorkbookName = "Aurora.xlsx"

// WriteWorkbook writes all tables into one workbook, one sheet per table.
func WriteWorkbook(dir string, tables []domain.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err != nil {
		return "", fmt.Errorf("header style: %w", err)
	}
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return "", fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return "", fmt.Errorf("new sheet %s: %w", t.Name, err)
		}
		if err := writeSheet(f, t, header); err != nil {
			return "", err
		}
	}
	f.SetActiveSheet(0)

	path := filepath.Join(dir, WorkbookName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	observability.ObserveFile("xlsx")
	return path, nil
}

func writeSheet(f *excelize.File, t domain.Table, headerStyle int) error {
	sw, err := f.NewStreamWriter(t.Name)
	if err != nil {
		return fmt.Errorf("stream %s: %w", t.Name, err)
	}
	head := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		head[i] = c.Name
	}
	if err := sw.SetRow("A1", head, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("%s header: %w", t.Name, err)
	}
	for r, row := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := sw.SetRow(cell, typedRow(t.Columns, row)); err != nil {
			return fmt.Errorf("%s row %d: %w", t.Name, r+1, err)
		}
	}
	return sw.Flush()
}

// typedRow keeps numeric columns numeric in the sheet; anything unparsable stays text.
func typedRow(columns []domain.Column, row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
		if i >= len(columns) {
			continue
		}
		switch columns[i].Kind {
		case domain.KindInt:
			if n, err := strconv.Atoi(v); err == nil {
				out[i] = n
			}
		case domain.KindMoney:
			if x, err := strconv.ParseFloat(v, 64); err == nil {
				out[i] = x
			}
		}
	}
	return out
}
