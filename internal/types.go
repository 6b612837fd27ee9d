package internal

import (
	"errors"
	"fmt"
	"time"
)

// Sale is one dated sales total from the input series
type Sale struct {
	Date   time.Time
	Amount float64
}

// Period is the calendar granularity compared across years
type Period string

const (
	PeriodQuarterly Period = "quarterly"
	PeriodMonthly   Period = "monthly"
	PeriodDaily     Period = "daily"
)

// Periods lists every supported period in display order
var Periods = []Period{PeriodQuarterly, PeriodMonthly, PeriodDaily}

// ParsePeriod accepts the period names used on the command line and in config files.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodQuarterly, "quarter", "q":
		return PeriodQuarterly, nil
	case PeriodMonthly, "month", "m":
		return PeriodMonthly, nil
	case PeriodDaily, "weekday", "day", "d":
		return PeriodDaily, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Label is the capitalized name used in figure titles ("Quarterly", "Monthly", "Daily")
func (p Period) Label() string {
	switch p {
	case PeriodQuarterly:
		return "Quarterly"
	case PeriodMonthly:
		return "Monthly"
	case PeriodDaily:
		return "Daily"
	}
	return string(p)
}

// Bucket is one (year, period) aggregation unit.
// Month is only set for daily buckets, where grouping is by (year, month, weekday).
type Bucket struct {
	Year   int
	Month  int
	Period int       // quarter 1-4, month 1-12, or weekday 0 (Monday) - 6 (Sunday)
	Date   time.Time // x-axis placement only
	Sum    float64
}

// YRange is the y-axis range shared by every panel of a figure
type YRange struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range (inclusive)
func (r YRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	// ErrData is returned for unparsable or missing date/amount fields
	ErrData = errors.New("invalid data")

	// ErrEmptyDataset is returned when there are no rows to aggregate
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrDegenerateRange is returned when bucket sums cannot produce a finite y-range
	ErrDegenerateRange = errors.New("degenerate y-range")

	// ErrUnknownPeriod is returned for a period other than quarterly, monthly or daily
	ErrUnknownPeriod = errors.New("unknown period")
)

// DataError describes a single bad field in the input.
// Row is 1-based and counts data rows only; Row 0 means the problem is not tied to a row.
type DataError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *DataError) Error() string {
	msg := ErrData.Error()
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(", column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(", value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Is(target error) bool {
	return target == ErrData
}
