package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-web/internal/models"
)

func sampleInvoice() *models.InvoiceWithLine {
	return &models.InvoiceWithLine{
		Invoice: models.Invoice{
			TenantID:      "t1",
			CustomerID:    "c1",
			InvoiceNumber: "INV-AB-2",
			Subtotal:      decimal.NewFromInt(1500),
			TotalVAT:      decimal.NewFromInt(300),
			Amount:        decimal.NewFromInt(1800),
			Status:        "draft",
			InvoiceType:   "sale",
			Currency:      "TRY",
			IssueDate:     "2026-01-15",
			DueDate:       "2026-02-15",
		},
		Line: models.InvoiceLineItem{
			TenantID:     "t1",
			ProductName:  "Danışmanlık",
			Quantity:     decimal.NewFromInt(2),
			UnitPrice:    decimal.NewFromInt(750),
			VATRate:      decimal.NewFromInt(20),
			LineTotal:    decimal.NewFromInt(1500),
			VATAmount:    decimal.NewFromInt(300),
			TotalWithVAT: decimal.NewFromInt(1800),
		},
	}
}

func TestInvoiceRepositoryInsertWithLine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO invoice_line_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := sampleInvoice()
	err := repo.InsertWithLine(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Invoice.ID)
	assert.Equal(t, 7, rec.Line.InvoiceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepositoryInsertWithLineRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO invoice_line_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.InsertWithLine(context.Background(), sampleInvoice())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
