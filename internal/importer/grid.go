package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// RawGrid is the rectangular result of decoding a source file. Every row in
// Rows has exactly len(Header) cells.
type RawGrid struct {
	Header []string
	Rows   [][]string
}

// ErrEmptyHeader is returned when the first row yields no usable columns.
// It is a structural error: no grid is produced and no row is processed.
var ErrEmptyHeader = errors.New("header row is empty")

// ParseFile decodes CSV or XLSX bytes depending on the file extension.
func ParseFile(data []byte, filename string) (*RawGrid, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return ParseXLSX(bytes.NewReader(data))
	default:
		return ParseCSV(data)
	}
}

// ParseCSV decodes delimited text. The delimiter (comma or semicolon) is
// inferred from the first line: whichever splits into more fields wins, ties
// go to comma. Fields may be enclosed in double quotes; inside quotes the
// delimiter and newlines are literal and "" is an escaped quote.
func ParseCSV(data []byte) (*RawGrid, error) {
	text := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	firstLine = strings.TrimSuffix(firstLine, "\r")
	delim := detectDelimiter(firstLine)

	records := splitDelimited(text, delim)
	if len(records) == 0 {
		return nil, ErrEmptyHeader
	}
	return buildGrid(records[0], records[1:])
}

// ParseXLSX decodes the first sheet of a spreadsheet. Row 1 is the header.
func ParseXLSX(r io.Reader) (*RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyHeader
	}

	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = strings.TrimSpace(c)
	}
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = normalizeSheetCell(c)
		}
		data = append(data, cells)
	}
	return buildGrid(header, data)
}

// detectDelimiter compares the field count produced by comma-splitting vs
// semicolon-splitting; more fields wins, ties favor comma.
func detectDelimiter(firstLine string) byte {
	byComma := len(splitLine(firstLine, ','))
	bySemicolon := len(splitLine(firstLine, ';'))
	if bySemicolon > byComma {
		return ';'
	}
	return ','
}

// splitDelimited scans the whole input honoring quoted fields, so a newline
// inside quotes does not end the record.
func splitDelimited(text string, delim byte) [][]string {
	var records [][]string
	var fields []string
	var cur strings.Builder
	inQuotes := false

	endField := func() {
		fields = append(fields, strings.TrimSpace(cur.String()))
		cur.Reset()
	}
	endRecord := func() {
		endField()
		records = append(records, fields)
		fields = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			endField()
		case c == '\n' && !inQuotes:
			endRecord()
		case c == '\r' && !inQuotes:
			// consumed by the following \n, or a bare CR line ending
			if i+1 >= len(text) || text[i+1] != '\n' {
				endRecord()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 || len(fields) > 0 {
		endRecord()
	}
	return records
}

func splitLine(line string, delim byte) []string {
	recs := splitDelimited(line, delim)
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

// buildGrid applies the shared post-processing: validate the header, drop
// fully blank rows, pad or truncate every row to the header width.
func buildGrid(header []string, rows [][]string) (*RawGrid, error) {
	width := 0
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] != "" {
			width = i + 1
		}
	}
	if width == 0 {
		return nil, ErrEmptyHeader
	}
	header = header[:width]

	grid := &RawGrid{Header: header}
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}
		cells := make([]string, width)
		for i := 0; i < width && i < len(row); i++ {
			cells[i] = strings.TrimSpace(row[i])
		}
		grid.Rows = append(grid.Rows, cells)
	}
	return grid, nil
}

// normalizeSheetCell maps boolean cells to "1"/"0" and converts excelize's
// default date renderings (m-d-yy, with dashes or slashes) to the ISO form
// the normalizer accepts. Date cells carrying a custom number format pass
// through as rendered and fail later as invalid dates, which surfaces them
// in the report instead of silently guessing.
func normalizeSheetCell(cell string) string {
	s := strings.TrimSpace(cell)
	switch s {
	case "TRUE", "True", "true":
		return "1"
	case "FALSE", "False", "false":
		return "0"
	}
	if len(s) >= 6 && len(s) <= 8 {
		for _, layout := range []string{"1-2-06", "1/2/06"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return s
}

// EncodeCSVRow serializes one record with the same quoting convention the
// reader accepts, so exported reports stay importable.
func EncodeCSVRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		if strings.ContainsAny(f, ",;\"\n\r") {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		} else {
			quoted[i] = f
		}
	}
	return strings.Join(quoted, ",")
}
