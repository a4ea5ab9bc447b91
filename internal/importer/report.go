package importer

import (
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// RowSuccess is one persisted row with the headline value the report shows.
type RowSuccess struct {
	Row   int             `json:"row"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// RowFailure is one rejected row with a human-readable reason.
type RowFailure struct {
	Row    int    `json:"row"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report aggregates the outcome of one import run. It is created fresh per
// invocation and returned to the caller; it is never persisted as such.
type Report struct {
	Kind      string       `json:"kind"`
	Successes []RowSuccess `json:"successes"`
	Failures  []RowFailure `json:"failures"`
}

func NewReport(kind string) *Report {
	return &Report{
		Kind:      kind,
		Successes: []RowSuccess{},
		Failures:  []RowFailure{},
	}
}

func (r *Report) AddSuccess(row int, name string, value decimal.Decimal) {
	r.Successes = append(r.Successes, RowSuccess{Row: row, Name: name, Value: value})
}

func (r *Report) AddFailure(row int, name, reason string) {
	r.Failures = append(r.Failures, RowFailure{Row: row, Name: name, Reason: reason})
}

func (r *Report) SuccessCount() int { return len(r.Successes) }
func (r *Report) FailureCount() int { return len(r.Failures) }
func (r *Report) TotalRows() int    { return len(r.Successes) + len(r.Failures) }

// Sort restores source-file order within both lists.
func (r *Report) Sort() {
	sort.SliceStable(r.Successes, func(i, j int) bool { return r.Successes[i].Row < r.Successes[j].Row })
	sort.SliceStable(r.Failures, func(i, j int) bool { return r.Failures[i].Row < r.Failures[j].Row })
}

var reportColumns = map[string][]string{
	"tr": {"sonuc", "satir", "ad", "deger", "neden"},
	"en": {"result", "row", "name", "value", "reason"},
}

var reportLabels = map[string][2]string{
	"tr": {"basarili", "basarisiz"},
	"en": {"success", "failed"},
}

// WriteCSV serializes the report with the same quoting convention the
// reader accepts, so an exported report can be re-parsed by ParseCSV.
func (r *Report) WriteCSV(w io.Writer, lang string) error {
	cols, ok := reportColumns[lang]
	if !ok {
		cols = reportColumns["en"]
		lang = "en"
	}
	labels := reportLabels[lang]

	lines := make([]string, 0, 1+r.TotalRows())
	lines = append(lines, EncodeCSVRow(cols))
	for _, s := range r.Successes {
		lines = append(lines, EncodeCSVRow([]string{
			labels[0], strconv.Itoa(s.Row), s.Name, s.Value.StringFixed(2), "",
		}))
	}
	for _, f := range r.Failures {
		lines = append(lines, EncodeCSVRow([]string{
			labels[1], strconv.Itoa(f.Row), f.Name, "", f.Reason,
		}))
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
