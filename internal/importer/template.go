package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateSpec describes the downloadable starter file for one import kind.
// Header spellings are chosen from the alias table, so a template filled in
// and re-uploaded maps straight back onto the canonical schema.
type TemplateSpec struct {
	Kind      string
	HeadersTR []string
	HeadersEN []string
	ExampleTR []string
	ExampleEN []string
}

var templates = map[string]*TemplateSpec{
	"accounts": {
		Kind: "accounts",
		HeadersTR: []string{"Hesap Adı", "Tip", "Para Birimi", "Açılış Bakiyesi",
			"Hesap Numarası", "Banka Adı", "Kart Son Dört", "Kart Sahibi", "Notlar"},
		HeadersEN: []string{"Name", "Type", "Currency", "Opening Balance",
			"Account Number", "Bank Name", "Card Last Four", "Card Holder", "Notes"},
		ExampleTR: []string{"Ana Kasa", "kasa", "TRY", "12.500,00", "", "", "", "", "Merkez ofis"},
		ExampleEN: []string{"Main Cash", "cash", "TRY", "12,500.00", "", "", "", "", "Head office"},
	},
	"expenses": {
		Kind: "expenses",
		HeadersTR: []string{"Açıklama", "Tutar", "Gider Tarihi", "Kategori",
			"Ödeme Yöntemi", "Para Birimi", "KDV Oranı", "Proje Kodu", "Notlar"},
		HeadersEN: []string{"Description", "Amount", "Expense Date", "Category",
			"Payment Method", "Currency", "Tax Rate", "Project Code", "Notes"},
		ExampleTR: []string{"Ofis kirası", "25.000,00", "2026-01-05", "rent", "bank_transfer", "TRY", "20", "", ""},
		ExampleEN: []string{"Office rent", "25,000.00", "2026-01-05", "rent", "bank_transfer", "TRY", "20", "", ""},
	},
	"purchase_invoices": {
		Kind: "purchase_invoices",
		HeadersTR: []string{"Tedarikçi", "Fatura No", "Fatura Tarihi", "Vade Tarihi",
			"Toplam Tutar", "Fatura Tipi", "Durum"},
		HeadersEN: []string{"Supplier", "Invoice Number", "Invoice Date", "Due Date",
			"Total Amount", "Invoice Type", "Status"},
		ExampleTR: []string{"Demir Tedarik A.Ş.", "PF-2026-001", "2026-01-10", "2026-02-10", "48.600,00", "purchase", "pending"},
		ExampleEN: []string{"Demir Supply Co.", "PF-2026-001", "2026-01-10", "2026-02-10", "48,600.00", "purchase", "pending"},
	},
	"customers": {
		Kind: "customers",
		HeadersTR: []string{"Şirket Ünvanı", "Yetkili", "Cari Tipi", "Vergi Dairesi", "Vergi No",
			"E-posta", "Telefon", "İl", "Ödeme Vadesi", "Banka IBAN", "Notlar", "Durum"},
		HeadersEN: []string{"company_title", "name", "account_type", "tax_office", "tax_number",
			"email", "phone", "city", "payment_terms", "bank_iban", "notes", "status"},
		ExampleTR: []string{"Örnek Müşteri A.Ş.", "Ahmet Yılmaz", "müşteri", "Kadıköy VD", "1234567890",
			"info@ornek.com", "05321234567", "İstanbul", "30", "TR00 0000 0000 0000 0000 0000 00", "Örnek not", "aktif"},
		ExampleEN: []string{"Example Customer Inc.", "John Doe", "customer", "Downtown Tax Office", "1234567890",
			"info@example.com", "+905321234567", "Istanbul", "30", "TR00 0000 0000 0000 0000 0000 00", "Sample note", "active"},
	},
	"invoices": {
		Kind: "invoices",
		HeadersTR: []string{"Cari", "Alt Şube", "Düzenleme Tarihi", "Vade Tarihi", "Açıklama",
			"Tutar", "Miktar", "Birim Fiyat", "KDV Oranı", "Durum", "Fatura Tipi", "Para Birimi", "Notlar"},
		HeadersEN: []string{"Customer", "Sub Branch", "Issue Date", "Due Date", "Description",
			"Amount", "Quantity", "Unit Price", "Tax Rate", "Status", "Invoice Type", "Currency", "Notes"},
		ExampleTR: []string{"Yılmaz Ticaret", "", "2026-01-15", "2026-02-15", "Danışmanlık", "", "2", "750,00", "20", "sent", "sale", "TRY", ""},
		ExampleEN: []string{"Yilmaz Trading", "", "2026-01-15", "2026-02-15", "Consulting", "", "2", "750.00", "20", "sent", "sale", "TRY", ""},
	},
}

// TemplateFor returns the template for an import kind.
func TemplateFor(kind string) (*TemplateSpec, error) {
	t, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("unknown import kind: %s", kind)
	}
	return t, nil
}

func (t *TemplateSpec) rows(lang string) ([]string, []string) {
	if lang == "tr" {
		return t.HeadersTR, t.ExampleTR
	}
	return t.HeadersEN, t.ExampleEN
}

// CSV renders the template as UTF-8 CSV with a BOM so spreadsheet apps pick
// the right encoding for the Turkish headers.
func (t *TemplateSpec) CSV(lang string) []byte {
	headers, example := t.rows(lang)
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	buf.WriteString(EncodeCSVRow(headers) + "\n")
	buf.WriteString(EncodeCSVRow(example) + "\n")
	return buf.Bytes()
}

// XLSX renders the template as a single-sheet workbook with a styled header
// row and one example row.
func (t *TemplateSpec) XLSX(lang string) ([]byte, error) {
	headers, example := t.rows(lang)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Template"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	for i, header := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", col), header)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s1", col), fmt.Sprintf("%s1", col), headerStyle)
		f.SetColWidth(sheetName, col, col, 18)
	}
	for i, value := range example {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), value)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
