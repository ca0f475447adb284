package mysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora_hotels/internal/domain"
)

var paymentCols = []domain.Column{
	{Name: "PagamentoID", Kind: domain.KindInt},
	{Name: "Valor", Kind: domain.KindMoney},
	{Name: "FormaPagamento", Kind: domain.KindText},
	{Name: "DataPagamento", Kind: domain.KindDate},
}

func TestCreateTableSQL(t *testing.T) {
	got := createTableSQL("Pagamentos", paymentCols)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS `Pagamentos` (\n"+
		"  `PagamentoID` BIGINT NOT NULL,\n"+
		"  `Valor` DECIMAL(14,2) NOT NULL,\n"+
		"  `FormaPagamento` VARCHAR(512) NOT NULL,\n"+
		"  `DataPagamento` DATE NOT NULL,\n"+
		"  PRIMARY KEY (`PagamentoID`)\n"+
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4", got)

	assert.NotContains(t, createTableSQL("OcupacaoDiaria", paymentCols), "PRIMARY KEY")
}

func TestInsertSQL(t *testing.T) {
	got := insertSQL("Pagamentos", paymentCols, 2)
	assert.Equal(t, "INSERT INTO `Pagamentos` (`PagamentoID`, `Valor`, `FormaPagamento`, `DataPagamento`) VALUES (?,?,?,?),(?,?,?,?)", got)
	assert.Equal(t, 8, strings.Count(got, "?"))
}

func TestBatchRows(t *testing.T) {
	assert.Equal(t, 500, batchRows(500, 16))
	assert.Equal(t, maxPlaceholders/16, batchRows(100000, 16))
	assert.Equal(t, maxPlaceholders/4, batchRows(0, 4))
	assert.Equal(t, 10, batchRows(10, 0))
}

func TestBindArgs(t *testing.T) {
	args, err := bindArgs(paymentCols, [][]string{
		{"1", "1234.50", "Pix", "2024-03-01"},
		{"2", "99.00", "Boleto", "2024-03-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "1234.50", "Pix", "2024-03-01", int64(2), "99.00", "Boleto", "2024-03-02"}, args)

	_, err = bindArgs(paymentCols, [][]string{{"x", "1.00", "Pix", "2024-03-01"}})
	require.Error(t, err)

	_, err = bindArgs(paymentCols, [][]string{{"1", "1.00"}})
	require.Error(t, err)
}

func TestQuoteEscapesBackticks(t *testing.T) {
	assert.Equal(t, "`a``b`", quote("a`b"))
}
