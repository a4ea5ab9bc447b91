package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"fatura-web/internal/importer"
	"fatura-web/internal/models"
	"fatura-web/internal/repository"
	"fatura-web/internal/utils"
)

// ImportKinds is the set of accepted :kind path values.
var ImportKinds = map[string]bool{
	"accounts":          true,
	"customers":         true,
	"expenses":          true,
	"purchase_invoices": true,
	"invoices":          true,
}

type ImportService struct {
	customerRepo *repository.CustomerRepository
	projectRepo  *repository.ProjectRepository
	accountRepo  *repository.AccountRepository
	expenseRepo  *repository.ExpenseRepository
	purchaseRepo *repository.PurchaseInvoiceRepository
	invoiceRepo  *repository.InvoiceRepository
	chunkSize    int
}

func NewImportService(
	customerRepo *repository.CustomerRepository,
	projectRepo *repository.ProjectRepository,
	accountRepo *repository.AccountRepository,
	expenseRepo *repository.ExpenseRepository,
	purchaseRepo *repository.PurchaseInvoiceRepository,
	invoiceRepo *repository.InvoiceRepository,
	chunkSize int,
) *ImportService {
	return &ImportService{
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
		accountRepo:  accountRepo,
		expenseRepo:  expenseRepo,
		purchaseRepo: purchaseRepo,
		invoiceRepo:  invoiceRepo,
		chunkSize:    chunkSize,
	}
}

// CountRows parses an uploaded file just far enough to report how many data
// rows it carries, for the session record created at upload time.
func (s *ImportService) CountRows(filename string, data []byte) (int, error) {
	grid, err := importer.ParseFile(data, filename)
	if err != nil {
		return 0, err
	}
	return len(grid.Rows), nil
}

// Run executes one import session end to end: decode the file, snapshot the
// entities the flow resolves against, then push every row through the
// engine. onProgress is forwarded to the engine when non-nil.
func (s *ImportService) Run(ctx context.Context, session *models.ImportSession, onProgress func(done, total int)) (*importer.Report, error) {
	data, err := os.ReadFile(session.FilePath)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	grid, err := importer.ParseFile(data, session.Filename)
	if err != nil {
		return nil, err
	}

	flow, err := s.buildFlow(session)
	if err != nil {
		return nil, err
	}

	engine := importer.NewEngine(utils.GetLogger())
	engine.ChunkSize = s.chunkSize
	engine.OnProgress = onProgress
	return engine.Run(ctx, grid, flow), nil
}

func (s *ImportService) buildFlow(session *models.ImportSession) (*importer.Flow, error) {
	tenantID := session.TenantID
	switch session.Kind {
	case "accounts":
		return importer.NewAccountsFlow(tenantID, &accountSink{repo: s.accountRepo}), nil

	case "customers":
		return importer.NewCustomersFlow(tenantID, &customerSink{repo: s.customerRepo}), nil

	case "expenses":
		projects, err := s.projectIndex(tenantID)
		if err != nil {
			return nil, err
		}
		return importer.NewExpensesFlow(tenantID, projects, &expenseSink{repo: s.expenseRepo}), nil

	case "purchase_invoices":
		suppliers, err := s.supplierIndex(tenantID)
		if err != nil {
			return nil, err
		}
		return importer.NewPurchaseInvoicesFlow(tenantID, suppliers, &purchaseInvoiceSink{repo: s.purchaseRepo}), nil

	case "invoices":
		customers, branches, err := s.customerIndexes(tenantID)
		if err != nil {
			return nil, err
		}
		suffix := invoiceCodeSuffix(session.SessionCode)
		return importer.NewSalesInvoicesFlow(tenantID, suffix, customers, branches, &invoiceSink{repo: s.invoiceRepo}), nil
	}
	return nil, fmt.Errorf("unknown import kind: %s", session.Kind)
}

// customerIndexes splits the tenant's counterparties into a main-account
// index and a per-parent sub-branch index. Main accounts resolve by company
// title, name or email; branches additionally by branch code.
func (s *ImportService) customerIndexes(tenantID string) (*importer.EntityIndex, *importer.ScopedEntityIndex, error) {
	customers, err := s.customerRepo.GetActiveByTenant(tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("load customers: %w", err)
	}

	mains := importer.NewEntityIndex("customer")
	branches := importer.NewScopedEntityIndex("sub_branch")
	for _, c := range customers {
		if c.IsSubBranch() {
			parentID := *c.ParentCustomerID
			branches.Add(parentID, c.CompanyTitle, c.ID)
			branches.Add(parentID, c.Name, c.ID)
			if c.BranchCode != nil {
				branches.Add(parentID, *c.BranchCode, c.ID)
			}
			continue
		}
		mains.Add(c.CompanyTitle, c.ID)
		mains.Add(c.Name, c.ID)
		if c.Email != nil {
			mains.Add(*c.Email, c.ID)
		}
	}

	if mains.Len() == 0 {
		utils.GetLogger().WithFields(logrus.Fields{"tenant_id": tenantID}).
			Warn("no customers to resolve against")
	}
	return mains, branches, nil
}

func (s *ImportService) supplierIndex(tenantID string) (*importer.EntityIndex, error) {
	vendors, err := s.customerRepo.GetVendorsByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}
	ix := importer.NewEntityIndex("supplier")
	for _, v := range vendors {
		ix.Add(v.CompanyTitle, v.ID)
		ix.Add(v.Name, v.ID)
		if v.Email != nil {
			ix.Add(*v.Email, v.ID)
		}
	}
	return ix, nil
}

func (s *ImportService) projectIndex(tenantID string) (*importer.EntityIndex, error) {
	projects, err := s.projectRepo.GetOpenByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	ix := importer.NewEntityIndex("project")
	for _, p := range projects {
		ix.Add(p.Code, p.ID)
		ix.Add(p.Name, p.ID)
	}
	return ix, nil
}

// invoiceCodeSuffix keeps generated invoice numbers short while staying
// unique per session.
func invoiceCodeSuffix(sessionCode string) string {
	code := strings.ReplaceAll(sessionCode, "-", "")
	if len(code) > 8 {
		code = code[:8]
	}
	return strings.ToUpper(code)
}
