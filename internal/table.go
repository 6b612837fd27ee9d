package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultDateColumn   = "date"
	DefaultAmountColumn = "total_sales"
	DefaultDateLayout   = "2006-01-02"
)

// fallbackLayouts are tried when a date does not match the configured layout
var fallbackLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

// Table is an in-memory tabular dataset: a header row and string cells
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnOptions selects the date and amount columns of a Table and how dates are written
type ColumnOptions struct {
	DateColumn   string
	AmountColumn string
	DateLayout   string
}

func (o ColumnOptions) withDefaults() ColumnOptions {
	if o.DateColumn == "" {
		o.DateColumn = DefaultDateColumn
	}
	if o.AmountColumn == "" {
		o.AmountColumn = DefaultAmountColumn
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	return o
}

// Sales converts the table into a sales series.
// Column names match case-insensitively. Any unparsable date or amount fails the whole table.
func (t Table) Sales(opts ColumnOptions) ([]Sale, error) {
	opts = opts.withDefaults()

	dateCol := t.columnIndex(opts.DateColumn)
	if dateCol < 0 {
		return nil, &DataError{Column: opts.DateColumn, Err: fmt.Errorf("column not found (have %v)", t.Columns)}
	}
	amountCol := t.columnIndex(opts.AmountColumn)
	if amountCol < 0 {
		return nil, &DataError{Column: opts.AmountColumn, Err: fmt.Errorf("column not found (have %v)", t.Columns)}
	}

	sales := make([]Sale, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) <= max(dateCol, amountCol) {
			return nil, &DataError{Row: i + 1, Err: fmt.Errorf("row has %d cells, need %d", len(row), max(dateCol, amountCol)+1)}
		}

		dateStr := strings.TrimSpace(row[dateCol])
		date, err := ParseDate(dateStr, opts.DateLayout)
		if err != nil {
			return nil, &DataError{Row: i + 1, Column: opts.DateColumn, Value: dateStr, Err: err}
		}

		amountStr := strings.TrimSpace(row[amountCol])
		amount, err := ParseAmount(amountStr)
		if err != nil {
			return nil, &DataError{Row: i + 1, Column: opts.AmountColumn, Value: amountStr, Err: err}
		}

		sales = append(sales, Sale{Date: date, Amount: amount})
	}

	return sales, nil
}

func (t Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return i
		}
	}
	return -1
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseDate parses s with layout, then with a few common timestamp layouts
func ParseDate(s, layout string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	d, err := time.Parse(layout, s)
	if err == nil {
		return d, nil
	}
	for _, l := range fallbackLayouts {
		if d, ferr := time.Parse(l, s); ferr == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// ParseAmount parses a numeric cell. A comma is accepted as the decimal separator
// when there is no dot, and spaces used as thousand separators are dropped.
func ParseAmount(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not a finite number", s)
	}
	return v, nil
}
