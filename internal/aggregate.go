package internal

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type bucketKey struct {
	year, month, period int
}

// Aggregate groups sales by (year, period) and sums the amounts.
// Daily buckets are grouped by (year, month, weekday) and dated on the first of their month.
// Buckets are returned ordered by year, month and period.
func Aggregate(sales []Sale, period Period) ([]Bucket, error) {
	if len(sales) == 0 {
		return nil, ErrEmptyDataset
	}

	sums := make(map[bucketKey]decimal.Decimal)
	for i, s := range sales {
		if s.Date.IsZero() {
			return nil, &DataError{Row: i + 1, Column: "date", Err: fmt.Errorf("missing date")}
		}
		key, err := keyFor(s.Date, period)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(s.Amount) || math.IsInf(s.Amount, 0) {
			return nil, &DataError{Row: i + 1, Column: "amount", Value: fmt.Sprint(s.Amount), Err: fmt.Errorf("amount is not finite")}
		}
		sums[key] = sums[key].Add(decimal.NewFromFloat(s.Amount))
	}

	buckets := make([]Bucket, 0, len(sums))
	for key, sum := range sums {
		b := Bucket{
			Year:   key.year,
			Month:  key.month,
			Period: key.period,
			Sum:    sum.InexactFloat64(),
		}
		switch period {
		case PeriodDaily:
			b.Date = PlotDate(key.year, time.Month(key.month))
		case PeriodQuarterly:
			b.Date = PlotDate(key.year, time.Month(3*(key.period-1)+1))
		default:
			b.Date = PlotDate(key.year, time.Month(key.period))
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Period < b.Period
	})

	return buckets, nil
}

func keyFor(d time.Time, period Period) (bucketKey, error) {
	switch period {
	case PeriodQuarterly:
		return bucketKey{year: d.Year(), period: Quarter(d)}, nil
	case PeriodMonthly:
		return bucketKey{year: d.Year(), period: int(d.Month())}, nil
	case PeriodDaily:
		return bucketKey{year: d.Year(), month: int(d.Month()), period: Weekday(d)}, nil
	}
	return bucketKey{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
}

// Quarter returns the calendar quarter (1-4) of d
func Quarter(d time.Time) int {
	return (int(d.Month())-1)/3 + 1
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6
func Weekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// PlotDate is the date a bucket is placed at on a time x-axis: the first day of its month.
func PlotDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodValues returns the panel order for a period: quarters 1-4, months 1-12, or Monday-Sunday.
func PeriodValues(period Period) []int {
	var n, first int
	switch period {
	case PeriodQuarterly:
		n, first = 4, 1
	case PeriodMonthly:
		n, first = 12, 1
	case PeriodDaily:
		n, first = 7, 0
	}
	values := make([]int, n)
	for i := range values {
		values[i] = first + i
	}
	return values
}

// BucketsFor returns the buckets of one period value, ordered by plotting date
func BucketsFor(buckets []Bucket, value int) []Bucket {
	var result []Bucket
	for _, b := range buckets {
		if b.Period == value {
			result = append(result, b)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// Sums extracts the bucket sums in order
func Sums(buckets []Bucket) []float64 {
	sums := make([]float64, len(buckets))
	for i, b := range buckets {
		sums[i] = b.Sum
	}
	return sums
}
