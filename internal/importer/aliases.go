package importer

import "sort"

// fieldAliases maps every canonical field key to the header spellings the
// import flows accept, both Turkish and English. Entries are stored in the
// folded form produced by NormalizeHeader, so accented variants collapse
// onto one entry.
var fieldAliases = map[string][]string{
	// finance accounts
	"name":             {"name", "hesap adi", "account name", "yetkili", "isim"},
	"type":             {"type", "tip", "hesap tipi", "account type"},
	"currency":         {"currency", "para birimi"},
	"opening_balance":  {"opening_balance", "opening balance", "acilis bakiyesi", "bakiye"},
	"account_number":   {"account_number", "account number", "hesap numarasi", "iban"},
	"bank_name":        {"bank_name", "bank name", "banka adi"},
	"card_last_four":   {"card_last_four", "card last four", "kart son dort"},
	"card_holder_name": {"card_holder_name", "card holder", "kart sahibi"},
	"notes":            {"notes", "notlar", "not"},

	// expenses
	"category":       {"category", "kategori"},
	"description":    {"description", "aciklama"},
	"amount":         {"amount", "tutar"},
	"expense_date":   {"expense_date", "expense date", "gider_tarihi", "gider tarihi"},
	"payment_method": {"payment_method", "payment method", "odeme_yontemi", "odeme yontemi"},
	"project_code":   {"project_code", "project code", "project", "proje_kodu", "proje kodu"},
	"tax_rate":       {"tax_rate", "tax rate", "kdv_orani", "kdv orani"},

	// incoming invoices
	"supplier":       {"supplier", "supplier_title_or_email", "tedarikci_unvan_veya_eposta", "tedarikci"},
	"invoice_number": {"invoice_number", "invoice number", "fatura_no", "fatura no"},
	"invoice_date":   {"invoice_date", "invoice date", "fatura_tarihi", "fatura tarihi"},
	"due_date":       {"due_date", "due date", "vade_tarihi", "vade tarihi"},
	"total_amount":   {"total_amount", "total amount", "toplam_tutar", "toplam tutar"},
	"invoice_type":   {"invoice_type", "invoice type", "fatura_tipi", "fatura tipi"},
	"status":         {"status", "durum"},

	// sales invoices
	"customer":   {"customer", "cari_unvan_veya_eposta", "cari", "musteri"},
	"sub_branch": {"sub_branch", "sub branch", "alt_sube", "alt sube"},
	"issue_date": {"issue_date", "issue date", "duzenleme_tarihi", "duzenleme tarihi"},
	"quantity":   {"quantity", "miktar", "adet"},
	"unit_price": {"unit_price", "unit price", "birim_fiyat", "birim fiyat"},

	// counterparties
	"company_title":       {"company_title", "company title", "sirket unvani", "unvan"},
	"account_type":        {"account_type", "cari tipi", "hesap turu"},
	"tax_office":          {"tax_office", "tax office", "vergi dairesi"},
	"tax_number":          {"tax_number", "tax number", "vergi no", "vkn", "tckn"},
	"email":               {"email", "e-posta", "eposta"},
	"phone":               {"phone", "telefon"},
	"address":             {"address", "adres"},
	"city":                {"city", "il", "sehir"},
	"district":            {"district", "ilce"},
	"postal_code":         {"postal_code", "postal code", "posta kodu"},
	"country":             {"country", "ulke"},
	"payment_terms":       {"payment_terms", "payment terms", "odeme vadesi"},
	"payment_terms_type":  {"payment_terms_type", "vade tipi"},
	"bank_account_holder": {"bank_account_holder", "account holder", "hesap sahibi"},
	"bank_account_number": {"bank_account_number", "bank account number", "banka hesap no", "hesap no"},
	"bank_iban":           {"bank_iban", "bank iban", "banka iban"},
	"bank_branch":         {"bank_branch", "bank branch", "banka sube", "banka subesi"},
	"bank_swift":          {"bank_swift", "swift"},
	"website":             {"website", "web", "web sitesi"},
	"industry":            {"industry", "sektor"},
	"e_invoice_enabled":   {"e_invoice_enabled", "e-fatura", "e fatura", "efatura"},
}

// aliasToField is the inverted lookup, built in sorted key order so a
// colliding alias always resolves to the same field on every run.
var aliasToField = func() map[string]string {
	keys := make([]string, 0, len(fieldAliases))
	for key := range fieldAliases {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := make(map[string]string)
	for _, key := range keys {
		for _, a := range fieldAliases[key] {
			if _, exists := m[a]; !exists {
				m[a] = key
			}
		}
	}
	return m
}()
