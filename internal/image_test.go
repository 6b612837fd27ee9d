package internal

import (
	"image/color"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestFigure_Image(t *testing.T) {
	sales := dailySales("2022-01-01", "2024-12-31", seasonal)

	for _, period := range Periods {
		t.Run(string(period), func(t *testing.T) {
			style := DefaultStyle(period)
			fig, err := Plot(sales, period, "Test Store", style)
			if err != nil {
				t.Fatalf("Plot: %v", err)
			}
			img, err := fig.Image()
			if err != nil {
				t.Fatalf("Image: %v", err)
			}

			n := len(fig.Panels)
			b := img.Bounds()
			if b.Dx() != (style.Width/n)*n || b.Dy() != style.Height {
				t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), (style.Width/n)*n, style.Height)
			}

			// the sales line colour must show up somewhere in the first panel
			if !containsColor(img, style.LineColor, 0, style.Width/n, style.TitleHeight, style.Height) {
				t.Error("first panel has no sales line pixels")
			}
		})
	}
}

func TestFigure_ImageSingleYear(t *testing.T) {
	sales := []Sale{
		{Date: date("2024-02-05"), Amount: 120},
		{Date: date("2024-05-05"), Amount: 80},
	}
	fig, err := QuarterlyPlot(sales, "")
	if err != nil {
		t.Fatalf("QuarterlyPlot: %v", err)
	}
	// Q3 and Q4 are empty; Q1 and Q2 have a single point each
	if _, err := fig.Image(); err != nil {
		t.Errorf("Image: %v", err)
	}
}

func TestFigure_ImageSinglePoint(t *testing.T) {
	sales := []Sale{{Date: date("2024-01-01"), Amount: 5}}

	for _, period := range Periods {
		t.Run(string(period), func(t *testing.T) {
			style := DefaultStyle(period)
			fig, err := Plot(sales, period, "", style)
			if err != nil {
				t.Fatalf("Plot: %v", err)
			}
			img, err := fig.Image()
			if err != nil {
				t.Fatalf("Image: %v", err)
			}
			if img.Bounds().Dy() != style.Height {
				t.Errorf("image height = %d, want %d", img.Bounds().Dy(), style.Height)
			}
		})
	}
}

func TestFigure_ImageOneMonthDaily(t *testing.T) {
	fig, err := DailyPlot(dailySales("2024-03-01", "2024-03-31", seasonal), "")
	if err != nil {
		t.Fatalf("DailyPlot: %v", err)
	}
	for _, p := range fig.Panels {
		if len(p.Points) != 1 {
			t.Errorf("%s has %d points, want 1", p.Title, len(p.Points))
		}
	}
	if _, err := fig.Image(); err != nil {
		t.Errorf("Image: %v", err)
	}
}

func TestPanelChart_AxisLimits(t *testing.T) {
	figs := map[string]*Figure{}
	for _, period := range Periods {
		fig, err := Plot(dailySales("2022-01-01", "2024-12-31", seasonal), period, "", DefaultStyle(period))
		if err != nil {
			t.Fatalf("Plot(%s): %v", period, err)
		}
		figs[string(period)] = fig
	}

	// sums whose nice ticks fall well inside the data
	sums := []float64{3009, 5152, 8136, 2142}
	var buckets []Bucket
	for i, sum := range sums {
		buckets = append(buckets, Bucket{Year: 2020 + i, Period: 1, Date: PlotDate(2020+i, 1), Sum: sum})
	}
	rng, err := SharedRange(buckets)
	if err != nil {
		t.Fatalf("SharedRange: %v", err)
	}
	fig, err := Render(buckets, rng, PeriodQuarterly, "", DefaultStyle(PeriodQuarterly))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	figs["wide sums"] = fig

	for name, fig := range figs {
		ticks := yTicks(fig.Range, yTickCount)
		for _, p := range fig.Panels {
			if len(p.Points) == 0 {
				continue
			}
			ch := fig.panelChart(p, ticks, 200, 400)

			yt := ch.YAxis.Ticks
			if yt[0].Value != fig.Range.Min || yt[len(yt)-1].Value != fig.Range.Max {
				t.Errorf("%s %s: y ticks span [%v, %v], want [%v, %v]",
					name, p.Title, yt[0].Value, yt[len(yt)-1].Value, fig.Range.Min, fig.Range.Max)
			}
			for _, pt := range p.Points {
				if pt.Sum < yt[0].Value || pt.Sum > yt[len(yt)-1].Value {
					t.Errorf("%s %s: sum %v outside drawn y-limits", name, p.Title, pt.Sum)
				}
			}

			xt := ch.XAxis.Ticks
			if xt[0].Value != ch.XAxis.Range.GetMin() || xt[len(xt)-1].Value != ch.XAxis.Range.GetMax() {
				t.Errorf("%s %s: x ticks span [%v, %v], want [%v, %v]",
					name, p.Title, xt[0].Value, xt[len(xt)-1].Value, ch.XAxis.Range.GetMin(), ch.XAxis.Range.GetMax())
			}
		}
	}
}

func TestBoundedTicks(t *testing.T) {
	ticks := []chart.Tick{{Value: 0, Label: "0"}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"}, {Value: 15, Label: "15"}}

	got := boundedTicks(ticks, 2, 12)
	want := []chart.Tick{{Value: 2}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"}, {Value: 12}}
	if len(got) != len(want) {
		t.Fatalf("boundedTicks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boundedTicks[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// ticks already on the bounds keep their labels
	got = boundedTicks(ticks, 0, 15)
	if len(got) != 4 || got[0].Label != "0" || got[3].Label != "15" {
		t.Errorf("boundedTicks(0, 15) = %v", got)
	}

	// a single tick still yields a non-empty span
	got = boundedTicks([]chart.Tick{{Value: 2024, Label: "2024"}}, 2023.5, 2024.5)
	if len(got) != 3 || got[0].Value != 2023.5 || got[2].Value != 2024.5 {
		t.Errorf("boundedTicks single = %v", got)
	}
}

func TestFigure_ImageNoPanels(t *testing.T) {
	fig := &Figure{Title: "empty", Style: DefaultStyle(PeriodQuarterly)}
	if _, err := fig.Image(); err == nil {
		t.Error("expected error for figure without panels")
	}
}

func TestYTicks(t *testing.T) {
	rng := YRange{Min: 950, Max: 2_050_000}
	ticks := yTicks(rng, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected several ticks, got %v", ticks)
	}
	for i, tk := range ticks {
		if !rng.Contains(tk.Value) {
			t.Errorf("tick %v outside range %+v", tk.Value, rng)
		}
		if tk.Label != FormatDollars(tk.Value) {
			t.Errorf("tick label %q, want %q", tk.Label, FormatDollars(tk.Value))
		}
		if i > 0 && tk.Value <= ticks[i-1].Value {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}

	if ticks := yTicks(YRange{Min: 1, Max: 1}, 6); ticks != nil {
		t.Errorf("empty range should give no ticks, got %v", ticks)
	}
}

func TestXTicks_Years(t *testing.T) {
	ticks := xTicks(2019.8, 2024.2, PeriodQuarterly)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	want := []string{"2020", "2021", "2022", "2023", "2024"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels = %v, want %v", labels, want)
			break
		}
	}

	// monthly panels are narrow: at most three year ticks
	if ticks := xTicks(2010, 2024, PeriodMonthly); len(ticks) > 3 {
		t.Errorf("monthly ticks = %d, want <= 3", len(ticks))
	}
}

func containsColor(img interface {
	At(x, y int) color.Color
}, want color.Color, x0, x1, y0, y1 int) bool {
	wr, wg, wb, _ := want.RGBA()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if closeTo(r, wr) && closeTo(g, wg) && closeTo(b, wb) {
				return true
			}
		}
	}
	return false
}

func closeTo(a, b uint32) bool {
	const tolerance = 0x0800
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}
