package internal

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Point is one plotted value of a panel
type Point struct {
	Date time.Time
	Year int
	Sum  float64
}

// Panel is one period's sub-plot: its values over the years plus their mean
type Panel struct {
	Title  string
	Period int
	Points []Point
	Mean   float64 // only meaningful when Points is non-empty

	ShowYTickLabels bool
	ShowYTickMarks  bool
}

// Figure is a rendered seasonal comparison. The caller owns it; nothing keeps a reference.
type Figure struct {
	Title   string
	Period  Period
	Range   YRange
	Style   Style
	Buckets []Bucket
	Panels  []Panel
}

// Plot aggregates sales for a period and renders the figure with the given style
func Plot(sales []Sale, period Period, name string, style Style) (*Figure, error) {
	buckets, err := Aggregate(sales, period)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s sales: %w", period, err)
	}
	rng, err := SharedRange(buckets)
	if err != nil {
		return nil, fmt.Errorf("computing y-range: %w", err)
	}
	return Render(buckets, rng, period, name, style)
}

// QuarterlyPlot renders four panels, one per quarter, comparing each quarter across years.
func QuarterlyPlot(sales []Sale, name string) (*Figure, error) {
	return Plot(sales, PeriodQuarterly, name, DefaultStyle(PeriodQuarterly))
}

// MonthlyPlot renders twelve panels, one per calendar month.
func MonthlyPlot(sales []Sale, name string) (*Figure, error) {
	return Plot(sales, PeriodMonthly, name, DefaultStyle(PeriodMonthly))
}

// DailyPlot renders seven panels, Monday to Sunday, each plotting the per-month totals of that
// weekday over time.
func DailyPlot(sales []Sale, name string) (*Figure, error) {
	return Plot(sales, PeriodDaily, name, DefaultStyle(PeriodDaily))
}

// Render lays out one panel per period value, in the period's fixed order, all sharing rng.
// Only the first panel carries y tick labels.
func Render(buckets []Bucket, rng YRange, period Period, name string, style Style) (*Figure, error) {
	values := PeriodValues(period)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	if len(buckets) == 0 {
		return nil, ErrEmptyDataset
	}

	fig := &Figure{
		Title:   FigureTitle(period, name),
		Period:  period,
		Range:   rng,
		Style:   style,
		Buckets: append([]Bucket(nil), buckets...),
		Panels:  make([]Panel, 0, len(values)),
	}

	for i, v := range values {
		selected := BucketsFor(buckets, v)
		panel := Panel{
			Title:           PanelTitle(period, v),
			Period:          v,
			Points:          make([]Point, len(selected)),
			ShowYTickLabels: i == 0,
			// quarterly panels keep their tick marks, only the labels go
			ShowYTickMarks: i == 0 || period == PeriodQuarterly,
		}
		for j, b := range selected {
			panel.Points[j] = Point{Date: b.Date, Year: b.Year, Sum: b.Sum}
		}
		if len(selected) > 0 {
			panel.Mean = stat.Mean(Sums(selected), nil)
		}
		fig.Panels = append(fig.Panels, panel)
	}

	return fig, nil
}

// FigureTitle is "<Period> Sales over Time", suffixed with " for <name>" when a name is given
func FigureTitle(period Period, name string) string {
	title := period.Label() + " Sales over Time"
	if name != "" {
		title += " for " + name
	}
	return title
}

// PanelTitle returns "Q1 Sales", "M3 Sales" or the weekday name
func PanelTitle(period Period, value int) string {
	switch period {
	case PeriodQuarterly:
		return fmt.Sprintf("Q%d Sales", value)
	case PeriodMonthly:
		return fmt.Sprintf("M%d Sales", value)
	case PeriodDaily:
		if value >= 0 && value < len(weekdayNames) {
			return weekdayNames[value]
		}
	}
	return fmt.Sprint(value)
}
