package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-web/internal/importer"
)

func TestInvoiceCodeSuffix(t *testing.T) {
	assert.Equal(t, "IMPA1B2C", invoiceCodeSuffix("imp-a1b2c3"))
	assert.Len(t, invoiceCodeSuffix("imp-a1b2c3d4e5"), 8)
	assert.Equal(t, "AB", invoiceCodeSuffix("ab"))
}

func TestSinksRejectUnexpectedRecordType(t *testing.T) {
	records := []importer.Record{{RowNumber: 2, Fields: "not a model"}}

	for name, sink := range map[string]importer.Sink{
		"accounts":          &accountSink{},
		"customers":         &customerSink{},
		"expenses":          &expenseSink{},
		"purchase_invoices": &purchaseInvoiceSink{},
		"invoices":          &invoiceSink{},
	} {
		_, err := sink.InsertChunk(context.Background(), records)
		require.Error(t, err, name)
	}
}
