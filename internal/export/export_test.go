package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"aurora_hotels/internal/domain"
	"aurora_hotels/internal/export"
	"aurora_hotels/internal/generator"
)

func smallConfig() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.HotelCount = 1
	cfg.RoomsPerHotel = 20
	cfg.Customers = 60
	cfg.Bookings = 100
	cfg.EmployeesPerHotel = 6
	cfg.ProductsPerHotel = 3
	cfg.Start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg.End = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	cfg.AsOf = cfg.End
	return cfg
}

func smallTables(t *testing.T) []domain.Table {
	t.Helper()
	ds, err := generator.Generate(smallConfig(), zerolog.Nop())
	require.NoError(t, err)
	return export.Tables(ds)
}

func TestTablesFollowSchema(t *testing.T) {
	tables := smallTables(t)
	require.Len(t, tables, len(export.TableNames))

	for i, tb := range tables {
		assert.Equal(t, export.TableNames[i], tb.Name)
		cols, ok := export.Schema(tb.Name)
		require.True(t, ok, tb.Name)
		assert.Equal(t, cols, tb.Columns)
		for _, row := range tb.Rows {
			require.Len(t, row, len(cols), "row width in %s", tb.Name)
		}
	}
}

func TestMoneyAndDateCells(t *testing.T) {
	money := regexp.MustCompile(`^-?\d+\.\d{2}$`)
	day := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	for _, tb := range smallTables(t) {
		for c, col := range tb.Columns {
			for _, row := range tb.Rows {
				switch col.Kind {
				case domain.KindMoney:
					require.Regexp(t, money, row[c], "%s.%s", tb.Name, col.Name)
				case domain.KindDate:
					require.Regexp(t, day, row[c], "%s.%s", tb.Name, col.Name)
				}
			}
		}
	}
}

func TestBookingYearMonthColumns(t *testing.T) {
	var bookings domain.Table
	for _, tb := range smallTables(t) {
		if tb.Name == export.TableBookings {
			bookings = tb
		}
	}
	require.NotEmpty(t, bookings.Rows)
	h := bookings.Header()
	idx := func(name string) int {
		for i, n := range h {
			if n == name {
				return i
			}
		}
		t.Fatalf("missing column %s", name)
		return -1
	}
	for _, row := range bookings.Rows {
		checkIn := row[idx("DataCheckIn")]
		assert.Equal(t, checkIn[:7], row[idx("CheckInAnoMes")])
		assert.Equal(t, checkIn[:4], row[idx("CheckInAno")])
		assert.Equal(t, strings.TrimPrefix(checkIn[5:7], "0"), row[idx("CheckInMes")])
	}
}

func TestWriteAllAndReadBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	tables := smallTables(t)

	files, err := export.WriteAll(dir, tables)
	require.NoError(t, err)
	require.Len(t, files, len(tables))

	for _, f := range files {
		_, err := os.Stat(f.Path)
		require.NoError(t, err)
		assert.Len(t, f.SHA256, 64)
	}

	back, err := export.ReadAll(dir)
	require.NoError(t, err)
	for i := range tables {
		assert.Equal(t, tables[i].Rows, orEmpty(back[i].Rows), tables[i].Name)
	}

	stats := export.Stats(files)
	assert.Equal(t, len(tables[6].Rows), stats[export.TableBookings].Rows)
}

func orEmpty(rows [][]string) [][]string {
	if rows == nil {
		return [][]string{}
	}
	return rows
}

func TestReadCSVRejectsForeignHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Hoteis.csv"), []byte("a,b\n1,2\n"), 0o644))

	_, err := export.ReadCSV(dir, export.TableHotels)
	require.ErrorIs(t, err, export.ErrHeaderMismatch)

	_, err = export.ReadCSV(dir, "Nope")
	require.Error(t, err)
}

func TestSameSeedSameBytes(t *testing.T) {
	a, err := export.WriteAll(t.TempDir(), smallTables(t))
	require.NoError(t, err)
	b, err := export.WriteAll(t.TempDir(), smallTables(t))
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].SHA256, b[i].SHA256, a[i].Table)
		ab, _ := os.ReadFile(a[i].Path)
		bb, _ := os.ReadFile(b[i].Path)
		assert.True(t, bytes.Equal(ab, bb), a[i].Table)
	}
}

func TestWriteCSVHeaderOnlyTable(t *testing.T) {
	cols, _ := export.Schema(export.TableComplaints)
	var buf bytes.Buffer
	sum, err := export.WriteCSV(&buf, domain.Table{Name: export.TableComplaints, Columns: cols})
	require.NoError(t, err)
	assert.Equal(t, "ReclamacaoID,ReservaID,HotelID,DataReclamacao,Motivo,Status\n", buf.String())
	assert.NotEmpty(t, sum)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	files := []export.File{
		{Table: export.TableHotels, Rows: 5},
		{Table: export.TableBookings, Rows: 60000},
	}
	require.NoError(t, export.WriteSummary(&buf, "data", files))

	out := buf.String()
	assert.Contains(t, out, "Arquivos gerados em data")
	assert.Regexp(t, `Hoteis\s+:\s+5\n`, out)
	assert.Regexp(t, `Reservas\s+:\s+60\.000\n`, out)
	assert.Regexp(t, `Total\s+:\s+60\.005\n`, out)
}

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	tables := smallTables(t)

	path, err := export.WriteWorkbook(dir, tables)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, export.TableNames, f.GetSheetList())
	rows, err := f.GetRows(export.TableHotels)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, tables[0].Header(), rows[0])
}
