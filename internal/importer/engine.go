package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultChunkSize is how many valid records go into one store write.
const DefaultChunkSize = 50

// Record is one fully computed row ready for persistence, plus the values
// the report displays so it never recomputes anything.
type Record struct {
	RowNumber int
	Label     string
	Value     decimal.Decimal
	Fields    interface{}
}

// Sink persists one chunk of records.
//
// A non-nil err means the whole chunk failed for the same underlying
// reason. Alternatively a sink that can report per row returns rowErrs
// aligned with records (nil entries succeeded). The engine keeps going
// with the next chunk either way.
type Sink interface {
	InsertChunk(ctx context.Context, records []Record) (rowErrs []error, err error)
}

// Finalizer runs the flow-specific derived computation on a validated row
// and produces the persistable fields, the report label and the headline
// value.
type Finalizer func(row *TypedRow) (fields interface{}, label string, value decimal.Decimal, err error)

// Flow bundles everything one import kind needs: its schema, the entity
// indexes preloaded for this run, the derived-field computation and the
// persistence sink.
type Flow struct {
	Kind     string
	Schema   Schema
	Indexes  map[string]*EntityIndex
	Scoped   map[string]*ScopedEntityIndex
	Finalize Finalizer
	Sink     Sink
}

// Engine runs the row pipeline: validate and transform every row in file
// order, then persist the valid records in chunks.
type Engine struct {
	ChunkSize int
	Log       *logrus.Logger

	// OnProgress, when set, is called after each persisted chunk with the
	// number of rows attempted so far and the total row count.
	OnProgress func(done, total int)
}

func NewEngine(log *logrus.Logger) *Engine {
	return &Engine{ChunkSize: DefaultChunkSize, Log: log}
}

// Run processes a decoded grid through the flow and returns the report.
// Structural problems were already caught while building the grid; from
// here on every failure is row-scoped and lands in the report.
func (e *Engine) Run(ctx context.Context, grid *RawGrid, flow *Flow) *Report {
	chunkSize := e.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	keys := ResolveHeaders(grid.Header)
	report := NewReport(flow.Kind)

	var records []Record
	for i, cells := range grid.Rows {
		// header is row 1, so the first data row reports as row 2
		row := NewRow(i+2, keys, cells)
		rec, err := e.transformRow(row, flow)
		if err != nil {
			report.AddFailure(row.Number, firstCell(cells), err.Error())
			continue
		}
		records = append(records, rec)
	}

	total := len(records)
	for start := 0; start < total; start += chunkSize {
		if ctx.Err() != nil {
			if e.Log != nil {
				e.Log.WithFields(logrus.Fields{
					"kind":      flow.Kind,
					"persisted": start,
					"pending":   total - start,
				}).Warn("import canceled between chunks")
			}
			break
		}
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunk := records[start:end]

		rowErrs, err := flow.Sink.InsertChunk(ctx, chunk)
		switch {
		case err != nil:
			for _, rec := range chunk {
				report.AddFailure(rec.RowNumber, rec.Label, err.Error())
			}
			if e.Log != nil {
				e.Log.WithError(err).WithField("kind", flow.Kind).
					Warnf("chunk %d-%d failed", start+1, end)
			}
		default:
			for j, rec := range chunk {
				if rowErrs != nil && rowErrs[j] != nil {
					report.AddFailure(rec.RowNumber, rec.Label, rowErrs[j].Error())
				} else {
					report.AddSuccess(rec.RowNumber, rec.Label, rec.Value)
				}
			}
		}
		if e.OnProgress != nil {
			e.OnProgress(end, total)
		}
	}

	report.Sort()
	return report
}

// transformRow checks required fields first, then
// entity resolution, then numeric and enum normalization, then the flow's
// derived computation. The first stage to fail short-circuits the row.
func (e *Engine) transformRow(row Row, flow *Flow) (Record, error) {
	var missing []string
	for _, f := range flow.Schema.Fields {
		if f.Required && row.Get(f.Key) == "" {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return Record{}, fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}

	typed := newTypedRow(row.Number)
	for _, f := range flow.Schema.Fields {
		typed.present[f.Key] = row.Get(f.Key) != ""
	}

	// entity references resolve before numeric work so a bad reference is
	// never masked by a numeric error
	for _, f := range flow.Schema.Fields {
		if f.Kind != FieldEntity {
			continue
		}
		raw := row.Get(f.Key)
		if raw == "" {
			continue
		}
		if f.ScopedBy != "" {
			parentID := typed.Entity(f.ScopedBy)
			if parentID == "" {
				parent, _ := flow.Schema.field(f.ScopedBy)
				return Record{}, &ParentNotFoundError{Kind: parent.Entity, Label: row.Get(f.ScopedBy)}
			}
			id, ok := flow.Scoped[f.Entity].Resolve(parentID, raw)
			if !ok {
				return Record{}, &NotFoundError{Kind: f.Entity, Label: raw}
			}
			typed.entities[f.Key] = id
			continue
		}
		id, ok := flow.Indexes[f.Entity].Resolve(raw)
		if !ok {
			// when a scoped child reference rides on this field, the
			// failure is a parent-not-found, not a plain not-found
			if scopedChildPresent(row, flow.Schema, f.Key) {
				return Record{}, &ParentNotFoundError{Kind: f.Entity, Label: raw}
			}
			return Record{}, &NotFoundError{Kind: f.Entity, Label: raw}
		}
		typed.entities[f.Key] = id
	}

	for _, f := range flow.Schema.Fields {
		raw := row.Get(f.Key)
		switch f.Kind {
		case FieldAmount:
			d, err := e.normalizeAmount(raw, f)
			if err != nil {
				return Record{}, err
			}
			typed.amounts[f.Key] = d
			typed.values[f.Key] = raw
		case FieldDate:
			if raw == "" {
				continue
			}
			date, err := ParseDate(raw)
			if err != nil {
				return Record{}, err
			}
			typed.values[f.Key] = date
		case FieldEnum:
			typed.values[f.Key] = NormalizeEnum(raw, f.Allowed, f.Default)
		case FieldString:
			typed.values[f.Key] = raw
		}
	}

	fields, label, value, err := flow.Finalize(typed)
	if err != nil {
		return Record{}, err
	}
	return Record{RowNumber: row.Number, Label: label, Value: value, Fields: fields}, nil
}

// normalizeAmount implements the two-tier policy: fields marked Positive
// must parse to a number > 0 or the row fails naming the offending value;
// tolerant fields fall back to their default on empty or unparseable input.
func (e *Engine) normalizeAmount(raw string, f FieldSpec) (decimal.Decimal, error) {
	if raw == "" {
		return amountDefault(f), nil
	}
	d, err := ParseAmount(raw)
	if err != nil {
		if f.Positive {
			return decimal.Zero, fmt.Errorf("invalid %s: %s", f.Key, raw)
		}
		return amountDefault(f), nil
	}
	if f.Positive && d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("invalid %s: %s", f.Key, raw)
	}
	return d, nil
}

func amountDefault(f FieldSpec) decimal.Decimal {
	if f.Default == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(f.Default)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func scopedChildPresent(row Row, schema Schema, parentKey string) bool {
	for _, f := range schema.Fields {
		if f.ScopedBy == parentKey && row.Get(f.Key) != "" {
			return true
		}
	}
	return false
}

func firstCell(cells []string) string {
	if len(cells) > 0 {
		return cells[0]
	}
	return ""
}
