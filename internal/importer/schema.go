package importer

import (
	"github.com/shopspring/decimal"
)

// FieldKind selects how a raw cell is normalized.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldAmount
	FieldDate
	FieldEnum
	FieldEntity
)

// FieldSpec describes one canonical field of an import schema. Schemas are
// plain data; the engine interprets them, so the three import flows share
// one validation path.
type FieldSpec struct {
	Key      string
	Kind     FieldKind
	Required bool

	// Default applies to enums (fallback value) and amounts (value used
	// when the cell is empty).
	Default string

	// Allowed is the enum value set, already lowercased.
	Allowed []string

	// Positive marks amounts that must parse to a number > 0. A present
	// but unparseable or non-positive value fails the row; without
	// Positive, unparseable input normalizes to the default.
	Positive bool

	// Entity names the index an entity reference resolves against.
	// ScopedBy points at the schema key of the parent reference for
	// scoped lookups.
	Entity   string
	ScopedBy string
}

// Schema is the per-flow parameterization of the engine.
type Schema struct {
	Kind   string
	Fields []FieldSpec
}

func (s Schema) field(key string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Row is one data row addressed by canonical field key. The first column
// resolving to a key wins when headers collide.
type Row struct {
	Number int
	cells  []string
	cols   map[string]int
}

func NewRow(number int, keys []string, cells []string) Row {
	cols := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, exists := cols[k]; !exists {
			cols[k] = i
		}
	}
	return Row{Number: number, cells: cells, cols: cols}
}

// Get returns the trimmed cell for a canonical key, or "" when the column
// is absent.
func (r Row) Get(key string) string {
	if i, ok := r.cols[key]; ok && i < len(r.cells) {
		return r.cells[i]
	}
	return ""
}

// HasColumn reports whether the source file carried a column for the key at
// all, regardless of the cell value.
func (r Row) HasColumn(key string) bool {
	_, ok := r.cols[key]
	return ok
}

// TypedRow is the normalized, resolved form of one row, handed to the
// flow's finalizer for derived computation.
type TypedRow struct {
	Number   int
	values   map[string]string
	amounts  map[string]decimal.Decimal
	entities map[string]string
	present  map[string]bool
}

func newTypedRow(number int) *TypedRow {
	return &TypedRow{
		Number:   number,
		values:   make(map[string]string),
		amounts:  make(map[string]decimal.Decimal),
		entities: make(map[string]string),
		present:  make(map[string]bool),
	}
}

// String returns the normalized string, date or enum value for the key.
func (t *TypedRow) String(key string) string { return t.values[key] }

// Amount returns the parsed decimal for an amount field (zero when absent).
func (t *TypedRow) Amount(key string) decimal.Decimal {
	if d, ok := t.amounts[key]; ok {
		return d
	}
	return decimal.Zero
}

// Entity returns the resolved identifier for an entity reference field.
func (t *TypedRow) Entity(key string) string { return t.entities[key] }

// Present reports whether the source cell was non-empty.
func (t *TypedRow) Present(key string) bool { return t.present[key] }
