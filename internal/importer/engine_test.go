package importer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-web/internal/models"
)

type captureSink struct {
	chunks   [][]Record
	chunkErr map[int]error
	rowErrs  map[int][]error
}

func (s *captureSink) InsertChunk(ctx context.Context, records []Record) ([]error, error) {
	idx := len(s.chunks)
	s.chunks = append(s.chunks, records)
	if err, ok := s.chunkErr[idx]; ok {
		return nil, err
	}
	if errs, ok := s.rowErrs[idx]; ok {
		return errs, nil
	}
	return nil, nil
}

func (s *captureSink) records() []Record {
	var all []Record
	for _, c := range s.chunks {
		all = append(all, c...)
	}
	return all
}

func testEngine() *Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewEngine(log)
}

func mustGrid(t *testing.T, csv string) *RawGrid {
	t.Helper()
	grid, err := ParseCSV([]byte(csv))
	require.NoError(t, err)
	return grid
}

func TestEngineAccountsFlow(t *testing.T) {
	sink := &captureSink{}
	flow := NewAccountsFlow("t1", sink)
	grid := mustGrid(t, "Hesap Adı,Tip,Para Birimi,Açılış Bakiyesi\nAna Kasa,kasa,try,\"1.250,50\"")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.SuccessCount())
	assert.Equal(t, 0, report.FailureCount())
	assert.Equal(t, 2, report.Successes[0].Row)
	assert.Equal(t, "Ana Kasa", report.Successes[0].Name)
	assert.Equal(t, "1250.5", report.Successes[0].Value.String())

	recs := sink.records()
	require.Len(t, recs, 1)
	acc, ok := recs[0].Fields.(models.Account)
	require.True(t, ok)
	assert.Equal(t, "cash", acc.Type)
	assert.Equal(t, "TRY", acc.Currency)
	assert.True(t, acc.CurrentBalance.Equal(acc.OpeningBalance))
}

func TestEnginePartialFailureIsolation(t *testing.T) {
	sink := &captureSink{}
	flow := NewExpensesFlow("t1", NewEntityIndex("project"), sink)
	grid := mustGrid(t, "Açıklama,Tutar,Gider Tarihi\n"+
		"Kira,\"25.000,00\",2026-01-05\n"+
		"Bozuk,-50,2026-01-06\n"+
		"Elektrik,\"1.200,00\",2026-01-07")

	report := testEngine().Run(context.Background(), grid, flow)

	assert.Equal(t, 2, report.SuccessCount())
	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, 3, report.Failures[0].Row)
	assert.Equal(t, "invalid amount: -50", report.Failures[0].Reason)
	assert.Len(t, sink.records(), 2)
}

func TestEngineMissingRequiredFields(t *testing.T) {
	sink := &captureSink{}
	flow := NewExpensesFlow("t1", NewEntityIndex("project"), sink)
	grid := mustGrid(t, "Açıklama,Tutar,Gider Tarihi\nKira,,")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, "missing required field(s): amount, expense_date", report.Failures[0].Reason)
}

func TestEngineDerivedComputation(t *testing.T) {
	customers := NewEntityIndex("customer")
	customers.Add("Yılmaz Ticaret", "c1")
	sink := &captureSink{}
	flow := NewSalesInvoicesFlow("t1", "ABCD1234", customers, NewScopedEntityIndex("sub_branch"), sink)

	grid := mustGrid(t, "Cari,Düzenleme Tarihi,Vade Tarihi,Miktar,Birim Fiyat,KDV Oranı,Tutar\n"+
		"Yılmaz Ticaret,2026-01-15,2026-02-15,2,750,20,\n"+
		"Yılmaz Ticaret,2026-01-16,2026-02-16,,,,1800")

	report := testEngine().Run(context.Background(), grid, flow)
	require.Equal(t, 2, report.SuccessCount(), "failures: %v", report.Failures)

	recs := sink.records()
	require.Len(t, recs, 2)

	line, ok := recs[0].Fields.(models.InvoiceWithLine)
	require.True(t, ok)
	assert.Equal(t, "1500", line.Invoice.Subtotal.String())
	assert.Equal(t, "300", line.Invoice.TotalVAT.String())
	assert.Equal(t, "1800", line.Invoice.Amount.String())
	assert.Equal(t, "INV-ABCD1234-2", line.Invoice.InvoiceNumber)

	flat, ok := recs[1].Fields.(models.InvoiceWithLine)
	require.True(t, ok)
	assert.Equal(t, "1800", flat.Invoice.Subtotal.String())
	assert.Equal(t, "0", flat.Invoice.TotalVAT.String())
	assert.True(t, flat.Invoice.Amount.Equal(line.Invoice.Amount))
	assert.Equal(t, "1", flat.Line.Quantity.String())
	assert.Equal(t, "1800", flat.Line.UnitPrice.String())
}

func TestEngineInvoiceRequiresAmountOrLine(t *testing.T) {
	customers := NewEntityIndex("customer")
	customers.Add("Known", "c1")
	sink := &captureSink{}
	flow := NewSalesInvoicesFlow("t1", "XY", customers, NewScopedEntityIndex("sub_branch"), sink)

	grid := mustGrid(t, "Cari,Düzenleme Tarihi,Vade Tarihi,Tutar,Miktar,Birim Fiyat\n"+
		"Known,2026-01-15,2026-02-15,,,")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, "missing amount or quantity/unit price", report.Failures[0].Reason)
}

func TestEngineCustomersFlow(t *testing.T) {
	sink := &captureSink{}
	flow := NewCustomersFlow("t1", sink)

	grid := mustGrid(t, "Şirket Ünvanı,Yetkili,Cari Tipi,Vergi No,Banka IBAN,Ödeme Vadesi,Durum\n"+
		"Acme A.Ş.,Ali Veli,tedarikçi,1234567890,TR00 0000 0000 0000 0000 0000 00,30,pasif\n"+
		",Mehmet Kaya,,,,,\n"+
		"Kötü Vergi,,customer,123,,,\n"+
		"Kötü IBAN,,,,DE00 1234,,")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 2, report.SuccessCount(), "failures: %v", report.Failures)
	require.Equal(t, 2, report.FailureCount())
	assert.Equal(t, "invalid tax_number: 123", report.Failures[0].Reason)
	assert.Equal(t, "invalid bank_iban: DE00 1234", report.Failures[1].Reason)

	recs := sink.records()
	require.Len(t, recs, 2)

	vendor, ok := recs[0].Fields.(models.Customer)
	require.True(t, ok)
	assert.Equal(t, "vendor", vendor.AccountType)
	assert.Equal(t, "inactive", vendor.Status)
	assert.Equal(t, 30, vendor.PaymentTerms)
	require.NotNil(t, vendor.TaxIDType)
	assert.Equal(t, "vkn", *vendor.TaxIDType)
	require.NotNil(t, vendor.BankIBAN)
	assert.Equal(t, "TR000000000000000000000000", *vendor.BankIBAN)
	assert.NotEmpty(t, vendor.ID)

	// contact-only rows fill the company title from the contact name
	solo := recs[1].Fields.(models.Customer)
	assert.Equal(t, "Mehmet Kaya", solo.CompanyTitle)
	assert.Equal(t, "Mehmet Kaya", solo.Name)
	assert.Equal(t, "customer", solo.AccountType)
	assert.Equal(t, "active", solo.Status)
	assert.Equal(t, "Türkiye", solo.Country)
}

func TestEngineCustomersRequireAnyName(t *testing.T) {
	sink := &captureSink{}
	flow := NewCustomersFlow("t1", sink)
	grid := mustGrid(t, "Şirket Ünvanı,Yetkili,Vergi No\n,,1234567890")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, "missing company title or contact name", report.Failures[0].Reason)
}

func TestEngineEntityResolutionFailures(t *testing.T) {
	customers := NewEntityIndex("customer")
	customers.Add("Known", "c1")
	branches := NewScopedEntityIndex("sub_branch")
	branches.Add("c1", "Depo", "b1")
	sink := &captureSink{}
	flow := NewSalesInvoicesFlow("t1", "XY", customers, branches, sink)

	grid := mustGrid(t, "Cari,Alt Şube,Düzenleme Tarihi,Vade Tarihi,Tutar\n"+
		"Ghost,,2026-01-15,2026-02-15,100\n"+
		"Ghost,Depo,2026-01-15,2026-02-15,100\n"+
		"Known,Yok,2026-01-15,2026-02-15,100\n"+
		"Known,Depo,2026-01-15,2026-02-15,100")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 3, report.FailureCount())
	assert.Equal(t, "customer not found: Ghost", report.Failures[0].Reason)
	assert.Equal(t, "parent customer not found: Ghost", report.Failures[1].Reason)
	assert.Equal(t, "sub_branch not found: Yok", report.Failures[2].Reason)

	require.Equal(t, 1, report.SuccessCount())
	rec := sink.records()[0]
	inv := rec.Fields.(models.InvoiceWithLine)
	assert.Equal(t, "b1", inv.Invoice.CustomerID)
}

func TestEngineChunkFailureIsolation(t *testing.T) {
	sink := &captureSink{chunkErr: map[int]error{0: errors.New("db gone")}}
	flow := NewAccountsFlow("t1", sink)
	grid := mustGrid(t, "Name,Opening Balance\nA,1\nB,2\nC,3\nD,4")

	engine := testEngine()
	engine.ChunkSize = 2
	var progress [][2]int
	engine.OnProgress = func(done, total int) { progress = append(progress, [2]int{done, total}) }

	report := engine.Run(context.Background(), grid, flow)

	assert.Equal(t, 2, report.FailureCount())
	assert.Equal(t, 2, report.SuccessCount())
	assert.Equal(t, "db gone", report.Failures[0].Reason)
	assert.Equal(t, [][2]int{{2, 4}, {4, 4}}, progress)
	assert.Equal(t, []int{4, 5}, []int{report.Successes[0].Row, report.Successes[1].Row})
}

func TestEngineRowLevelSinkErrors(t *testing.T) {
	sink := &captureSink{rowErrs: map[int][]error{0: {nil, errors.New("duplicate invoice")}}}
	flow := NewAccountsFlow("t1", sink)
	grid := mustGrid(t, "Name,Opening Balance\nA,1\nB,2")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, 3, report.Failures[0].Row)
	assert.Equal(t, "duplicate invoice", report.Failures[0].Reason)
	assert.Equal(t, 1, report.SuccessCount())
}

func TestEngineCancellationBetweenChunks(t *testing.T) {
	sink := &captureSink{}
	flow := NewAccountsFlow("t1", sink)
	grid := mustGrid(t, "Name,Opening Balance\nA,1\nB,2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := testEngine().Run(ctx, grid, flow)

	assert.Equal(t, 0, report.SuccessCount())
	assert.Empty(t, sink.chunks)
}

func TestEngineTolerantAmountDefaults(t *testing.T) {
	sink := &captureSink{}
	flow := NewExpensesFlow("t1", NewEntityIndex("project"), sink)
	grid := mustGrid(t, "Açıklama,Tutar,Gider Tarihi,KDV Oranı\nKira,100,2026-01-05,notanumber")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.SuccessCount())
	exp := sink.records()[0].Fields.(models.Expense)
	assert.True(t, exp.TaxRate.Equal(decimal.NewFromInt(20)))
}

func TestEngineUnresolvableProjectFailsRow(t *testing.T) {
	projects := NewEntityIndex("project")
	projects.Add("PRJ-1", "p1")
	sink := &captureSink{}
	flow := NewExpensesFlow("t1", projects, sink)
	grid := mustGrid(t, "Açıklama,Tutar,Gider Tarihi,Proje Kodu\n"+
		"Kira,100,2026-01-05,PRJ-1\n"+
		"Su,50,2026-01-05,PRJ-9")

	report := testEngine().Run(context.Background(), grid, flow)

	require.Equal(t, 1, report.FailureCount())
	assert.Equal(t, "project not found: PRJ-9", report.Failures[0].Reason)
	exp := sink.records()[0].Fields.(models.Expense)
	require.NotNil(t, exp.ProjectID)
	assert.Equal(t, "p1", *exp.ProjectID)
}
