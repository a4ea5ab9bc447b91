package importer

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSortRestoresFileOrder(t *testing.T) {
	r := NewReport("expenses")
	r.AddSuccess(9, "late", decimal.NewFromInt(1))
	r.AddSuccess(2, "early", decimal.NewFromInt(2))
	r.AddFailure(5, "mid", "boom")
	r.Sort()

	assert.Equal(t, 2, r.Successes[0].Row)
	assert.Equal(t, 9, r.Successes[1].Row)
	assert.Equal(t, 3, r.TotalRows())
}

func TestReportCSVRoundTrip(t *testing.T) {
	r := NewReport("invoices")
	r.AddSuccess(2, "INV-1", decimal.RequireFromString("1800"))
	r.AddSuccess(3, `Name, with "quotes"`, decimal.RequireFromString("12.5"))
	r.AddFailure(4, "Ghost Ltd", "customer not found: Ghost Ltd")
	r.Sort()

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf, "tr"))

	grid, err := ParseCSV(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"sonuc", "satir", "ad", "deger", "neden"}, grid.Header)
	require.Len(t, grid.Rows, r.TotalRows())

	assert.Equal(t, []string{"basarili", "2", "INV-1", "1800.00", ""}, grid.Rows[0])
	assert.Equal(t, `Name, with "quotes"`, grid.Rows[1][2])
	assert.Equal(t, "12.50", grid.Rows[1][3])
	assert.Equal(t, []string{"basarisiz", "4", "Ghost Ltd", "", "customer not found: Ghost Ltd"}, grid.Rows[2])
}

func TestReportCSVEnglishAndFallback(t *testing.T) {
	r := NewReport("accounts")
	r.AddSuccess(2, "Cash", decimal.NewFromInt(100))

	var en, unknown bytes.Buffer
	require.NoError(t, r.WriteCSV(&en, "en"))
	require.NoError(t, r.WriteCSV(&unknown, "de"))
	assert.Equal(t, en.String(), unknown.String())

	grid, err := ParseCSV(en.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"result", "row", "name", "value", "reason"}, grid.Header)
	assert.Equal(t, "success", grid.Rows[0][0])
}
