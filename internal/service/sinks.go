package service

import (
	"context"
	"fmt"

	"fatura-web/internal/importer"
	"fatura-web/internal/models"
	"fatura-web/internal/repository"
)

// accountSink writes account chunks all-or-nothing through a single
// multi-row insert.
type accountSink struct {
	repo *repository.AccountRepository
}

func (s *accountSink) InsertChunk(ctx context.Context, records []importer.Record) ([]error, error) {
	accounts := make([]models.Account, 0, len(records))
	for _, rec := range records {
		acc, ok := rec.Fields.(models.Account)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", rec.Fields)
		}
		accounts = append(accounts, acc)
	}
	return nil, s.repo.BulkInsert(ctx, accounts)
}

type customerSink struct {
	repo *repository.CustomerRepository
}

func (s *customerSink) InsertChunk(ctx context.Context, records []importer.Record) ([]error, error) {
	customers := make([]models.Customer, 0, len(records))
	for _, rec := range records {
		cust, ok := rec.Fields.(models.Customer)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", rec.Fields)
		}
		customers = append(customers, cust)
	}
	return nil, s.repo.BulkInsert(ctx, customers)
}

type expenseSink struct {
	repo *repository.ExpenseRepository
}

func (s *expenseSink) InsertChunk(ctx context.Context, records []importer.Record) ([]error, error) {
	expenses := make([]models.Expense, 0, len(records))
	for _, rec := range records {
		exp, ok := rec.Fields.(models.Expense)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", rec.Fields)
		}
		expenses = append(expenses, exp)
	}
	return nil, s.repo.BulkInsert(ctx, expenses)
}

type purchaseInvoiceSink struct {
	repo *repository.PurchaseInvoiceRepository
}

func (s *purchaseInvoiceSink) InsertChunk(ctx context.Context, records []importer.Record) ([]error, error) {
	invoices := make([]models.PurchaseInvoice, 0, len(records))
	for _, rec := range records {
		inv, ok := rec.Fields.(models.PurchaseInvoice)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", rec.Fields)
		}
		invoices = append(invoices, inv)
	}
	return nil, s.repo.BulkInsert(ctx, invoices)
}

// invoiceSink persists each invoice with its line in its own transaction and
// reports failures per row, so one broken invoice never drags down its
// chunk.
type invoiceSink struct {
	repo *repository.InvoiceRepository
}

func (s *invoiceSink) InsertChunk(ctx context.Context, records []importer.Record) ([]error, error) {
	rowErrs := make([]error, len(records))
	for i, rec := range records {
		iv, ok := rec.Fields.(models.InvoiceWithLine)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", rec.Fields)
		}
		rowErrs[i] = s.repo.InsertWithLine(ctx, &iv)
	}
	return rowErrs, nil
}
