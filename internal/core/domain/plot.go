package domain

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var ErrEmptySheet = errors.New("csv file is empty")

// PlotHeaders is the column order the bulk plot import expects.
var PlotHeaders = []string{
	"gid", "phase", "sector", "plot_no", "category", "street_no", "type", "subtype",
	"size", "st_code", "uid", "far", "zone", "block", "cat_area", "dimension",
	"base_price", "1yr_plan", "2yrs_plan", "2_5yrs_pla", "3yrs_plan", "l_sum_ep",
	"1yr_ep", "2yrs_ep", "2_5yrs_ep", "3yrs_ep", "tokenprice", "is_bidding", "dis_yt",
	"1yr_dis_yt", "2yr_dis_yt", "geom",
}

// MissingColumnsError lists required columns absent from an upload.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Columns, ", ")
}

// PlotSheet is a parsed plot import file.
type PlotSheet struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
	Skipped int                 `json:"skipped"`
}

// MissingHeaders returns the required columns not present in headers, in
// the required order.
func MissingHeaders(headers []string) []string {
	var missing []string
	for _, h := range PlotHeaders {
		if !slices.Contains(headers, h) {
			missing = append(missing, h)
		}
	}
	return missing
}

// ExtraHeaders returns the columns in headers that the import ignores.
func ExtraHeaders(headers []string) []string {
	var extra []string
	for _, h := range headers {
		if !slices.Contains(PlotHeaders, h) {
			extra = append(extra, h)
		}
	}
	return extra
}

// ParsePlotCSV reads an import file. Header names are trimmed and stripped
// of quotes; rows whose column count differs from the header row are
// skipped. A *MissingColumnsError is returned when required columns are
// absent.
func ParsePlotCSV(r io.Reader) (PlotSheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var headers []string
	for headers == nil {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return PlotSheet{}, ErrEmptySheet
		}
		if err != nil {
			return PlotSheet{}, fmt.Errorf("read header: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		headers = cleanFields(rec)
	}

	if missing := MissingHeaders(headers); len(missing) > 0 {
		return PlotSheet{Headers: headers}, &MissingColumnsError{Columns: missing}
	}

	sheet := PlotSheet{Headers: headers}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return PlotSheet{}, fmt.Errorf("read row %d: %w", len(sheet.Rows)+sheet.Skipped+2, err)
		}
		if blankRecord(rec) {
			continue
		}
		if len(rec) != len(headers) {
			sheet.Skipped++
			continue
		}
		values := cleanFields(rec)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			row[h] = values[i]
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// PlotTemplate renders the downloadable CSV template: the header row and a
// single example row.
func PlotTemplate() []byte {
	example := []string{
		"1", "Phase 1", "A", "101", "Residential", "5", "Plot", "Corner",
		"1 Kanal", "ST01", "UID001", "1.5", "Z1", "B1", "500", "50x90",
		"10000000", "10500000", "11000000", "11250000", "11500000", "9500000",
		"10000000", "10500000", "10750000", "11000000", "500000", "0", "0",
		"0", "0", "",
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(PlotHeaders)
	_ = w.Write(example)
	w.Flush()
	return buf.Bytes()
}

func cleanFields(rec []string) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = strings.TrimSpace(strings.ReplaceAll(v, `"`, ""))
	}
	return out
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
