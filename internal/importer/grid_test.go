package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSVDelimiterDetection(t *testing.T) {
	grid, err := ParseCSV([]byte("a;b,c;d\nx;y;z"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b,c", "d"}, grid.Header)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, []string{"x", "y", "z"}, grid.Rows[0])
}

func TestParseCSVDelimiterTieFavorsComma(t *testing.T) {
	grid, err := ParseCSV([]byte("a,b;c\n1,2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b;c"}, grid.Header)
}

func TestParseCSVStripsBOM(t *testing.T) {
	grid, err := ParseCSV([]byte("\xEF\xBB\xBFname,amount\nfoo,1"))
	require.NoError(t, err)
	assert.Equal(t, "name", grid.Header[0])
}

func TestParseCSVQuotedFields(t *testing.T) {
	grid, err := ParseCSV([]byte("name,notes\n\"Acme, Inc.\",\"say \"\"hi\"\"\""))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Acme, Inc.", grid.Rows[0][0])
	assert.Equal(t, `say "hi"`, grid.Rows[0][1])
}

func TestParseCSVQuotedNewline(t *testing.T) {
	grid, err := ParseCSV([]byte("name,notes\n\"line one\nline two\",x"))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "line one\nline two", grid.Rows[0][0])
}

func TestParseCSVPadsAndTruncatesRows(t *testing.T) {
	grid, err := ParseCSV([]byte("a,b\n1\n\n2,3,4"))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, []string{"1", ""}, grid.Rows[0])
	assert.Equal(t, []string{"2", "3"}, grid.Rows[1])
}

func TestParseCSVEmptyHeader(t *testing.T) {
	_, err := ParseCSV([]byte("  ,  \nx,y"))
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = ParseCSV([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyHeader)
}

func TestEncodeCSVRowRoundTrip(t *testing.T) {
	fields := []string{"plain", "with,comma", `with "quote"`, "with\nnewline", "semi;colon"}
	line := EncodeCSVRow(fields)

	grid, err := ParseCSV([]byte("a,b,c,d,e\n" + line))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, fields, grid.Rows[0])
}

func TestParseXLSXBooleanCells(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "E-Fatura"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Durum"))
	require.NoError(t, f.SetCellBool("Sheet1", "A2", true))
	require.NoError(t, f.SetCellBool("Sheet1", "B2", false))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	grid, err := ParseXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, []string{"1", "0"}, grid.Rows[0])
}

func TestNormalizeSheetCellDates(t *testing.T) {
	assert.Equal(t, "2026-01-15", normalizeSheetCell("1-15-26"))
	assert.Equal(t, "2026-01-15", normalizeSheetCell("1/15/26"))
	// custom number formats pass through and surface later as invalid dates
	assert.Equal(t, "15.01.2026", normalizeSheetCell("15.01.2026"))
}
