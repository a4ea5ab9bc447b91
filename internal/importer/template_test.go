package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var templateSchemas = map[string]Schema{
	"accounts":          accountsSchema,
	"customers":         customersSchema,
	"expenses":          expensesSchema,
	"purchase_invoices": purchaseInvoicesSchema,
	"invoices":          salesInvoicesSchema,
}

func schemaKeys(s Schema) map[string]bool {
	keys := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		keys[f.Key] = true
	}
	return keys
}

func TestTemplateHeadersResolveToSchemaKeys(t *testing.T) {
	for kind, schema := range templateSchemas {
		tmpl, err := TemplateFor(kind)
		require.NoError(t, err, kind)
		keys := schemaKeys(schema)

		for _, headers := range [][]string{tmpl.HeadersTR, tmpl.HeadersEN} {
			resolved := ResolveHeaders(headers)
			for i, key := range resolved {
				assert.True(t, keys[key], "%s: header %q resolved to %q", kind, headers[i], key)
			}
		}
	}
}

func TestTemplateCSVParsesBack(t *testing.T) {
	tmpl, err := TemplateFor("invoices")
	require.NoError(t, err)

	data := tmpl.CSV("tr")
	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))

	grid, err := ParseCSV(data)
	require.NoError(t, err)
	assert.Equal(t, len(tmpl.HeadersTR), len(grid.Header))
	require.Len(t, grid.Rows, 1)
}

func TestTemplateXLSXParsesBack(t *testing.T) {
	tmpl, err := TemplateFor("accounts")
	require.NoError(t, err)

	data, err := tmpl.XLSX("en")
	require.NoError(t, err)

	grid, err := ParseFile(data, "template.xlsx")
	require.NoError(t, err)
	assert.Equal(t, tmpl.HeadersEN, grid.Header)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Main Cash", grid.Rows[0][0])
}

func TestTemplateUnknownKind(t *testing.T) {
	_, err := TemplateFor("payroll")
	assert.Error(t, err)
}
