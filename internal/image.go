package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	yTickCount     = 6
	maxYearTicks   = 6
	maxNarrowTicks = 3
)

// Image draws every panel with go-chart and composites them left to right under the figure title.
func (f *Figure) Image() (image.Image, error) {
	if len(f.Panels) == 0 {
		return nil, fmt.Errorf("figure %q has no panels", f.Title)
	}
	style := f.Style
	pw, ph := style.panelSize(len(f.Panels))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("figure %dx%d too small for %d panels", style.Width, style.Height, len(f.Panels))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, pw*len(f.Panels), style.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	drawCentered(canvas, image.Rect(0, 0, canvas.Bounds().Dx(), style.TitleHeight), f.Title, style.TextColor)

	ticks := yTicks(f.Range, yTickCount)
	for i, p := range f.Panels {
		var img image.Image
		if len(p.Points) == 0 {
			img = blankPanel(p.Title, pw, ph, style)
		} else {
			ch := f.panelChart(p, ticks, pw, ph)
			var buf bytes.Buffer
			if err := ch.Render(chart.PNG, &buf); err != nil {
				return nil, fmt.Errorf("rendering panel %q: %w", p.Title, err)
			}
			decoded, err := png.Decode(&buf)
			if err != nil {
				return nil, fmt.Errorf("decoding panel %q: %w", p.Title, err)
			}
			img = decoded
		}
		dst := image.Rect(i*pw, style.TitleHeight, (i+1)*pw, style.TitleHeight+ph)
		draw.Draw(canvas, dst, img, img.Bounds().Min, draw.Src)
	}

	return canvas, nil
}

// panelChart builds the go-chart definition for one non-empty panel
func (f *Figure) panelChart(p Panel, ticks []chart.Tick, width, height int) chart.Chart {
	style := f.Style

	yStyle := chart.Style{
		FontSize:    style.TickLabelSize,
		FontColor:   style.TextColor,
		StrokeColor: style.TextColor,
		StrokeWidth: 1,
	}
	if !p.ShowYTickMarks {
		yStyle.StrokeColor = drawing.ColorTransparent
	}
	ticks = boundedTicks(ticks, f.Range.Min, f.Range.Max)
	if !p.ShowYTickLabels {
		hidden := make([]chart.Tick, len(ticks))
		for i, t := range ticks {
			hidden[i] = chart.Tick{Value: t.Value}
		}
		ticks = hidden
	}

	lineStyle := chart.Style{
		StrokeColor: style.LineColor,
		StrokeWidth: style.LineWidth,
	}
	if len(p.Points) == 1 {
		lineStyle.DotColor = style.LineColor
		lineStyle.DotWidth = style.LineWidth + 1
	}

	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	var sales chart.Series
	if f.Period == PeriodDaily {
		times := make([]time.Time, len(p.Points))
		for i, pt := range p.Points {
			times[i] = pt.Date
			xs[i] = chart.TimeToFloat64(pt.Date)
			ys[i] = pt.Sum
		}
		sales = chart.TimeSeries{Name: p.Title, Style: lineStyle, XValues: times, YValues: ys}
	} else {
		for i, pt := range p.Points {
			xs[i] = float64(pt.Year)
			ys[i] = pt.Sum
		}
		sales = chart.ContinuousSeries{Name: p.Title, Style: lineStyle, XValues: xs, YValues: ys}
	}

	xMin, xMax := paddedSpan(xs, f.Period)
	mean := chart.ContinuousSeries{
		Name: "mean",
		Style: chart.Style{
			StrokeColor:     style.MeanColor,
			StrokeWidth:     style.MeanWidth,
			StrokeDashArray: style.MeanDash,
		},
		XValues: []float64{xMin, xMax},
		YValues: []float64{p.Mean, p.Mean},
	}

	return chart.Chart{
		Title: p.Title,
		TitleStyle: chart.Style{
			FontSize:  style.PanelTitleSize,
			FontColor: style.TextColor,
		},
		Width:  width,
		Height: height,
		DPI:    style.DPI,
		Background: chart.Style{
			FillColor: style.Background,
			Padding:   chart.Box{Top: 40, Left: 8, Right: 12, Bottom: 8},
		},
		Canvas: chart.Style{FillColor: style.Background},
		XAxis: chart.XAxis{
			Style: chart.Style{
				FontSize:    style.TickLabelSize,
				FontColor:   style.TextColor,
				StrokeColor: style.TextColor,
				StrokeWidth: 1,
			},
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: boundedTicks(xTicks(xMin, xMax, f.Period), xMin, xMax),
		},
		YAxis: chart.YAxis{
			Style:          yStyle,
			Range:          &chart.ContinuousRange{Min: f.Range.Min, Max: f.Range.Max},
			ValueFormatter: DollarTickFormatter,
			Ticks:          ticks,
			GridMajorStyle: chart.Style{
				StrokeColor: style.GridColor,
				StrokeWidth: 1,
			},
		},
		Series: []chart.Series{sales, mean},
	}
}

// paddedSpan returns the x-range of a panel with a 5% margin.
// A single point gets half a year (or half a month for daily panels) either side.
func paddedSpan(xs []float64, period Period) (float64, float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	span := hi - lo
	if span == 0 {
		half := 0.5
		if period == PeriodDaily {
			half = float64(15 * 24 * time.Hour)
		}
		return lo - half, hi + half
	}
	return lo - span*0.05, hi + span*0.05
}

// boundedTicks keeps the ticks inside [lo, hi] and pins unlabelled ticks on both ends.
// go-chart takes an axis range from the outermost ticks whenever ticks are given.
func boundedTicks(ticks []chart.Tick, lo, hi float64) []chart.Tick {
	out := []chart.Tick{{Value: lo}}
	for _, t := range ticks {
		switch {
		case t.Value == lo:
			out[0] = t
		case t.Value > lo && t.Value < hi:
			out = append(out, t)
		case t.Value == hi:
			out = append(out, t)
			return out
		}
	}
	return append(out, chart.Tick{Value: hi})
}

// xTicks places integer year ticks; daily panels get at most three ticks on January 1st.
func xTicks(lo, hi float64, period Period) []chart.Tick {
	if period == PeriodDaily {
		return dailyTicks(lo, hi)
	}
	first, last := int(math.Ceil(lo)), int(math.Floor(hi))
	maxTicks := maxYearTicks
	if period == PeriodMonthly {
		maxTicks = maxNarrowTicks
	}
	step := 1
	if n := last - first + 1; n > maxTicks {
		step = int(math.Ceil(float64(n) / float64(maxTicks)))
	}
	var ticks []chart.Tick
	for y := first; y <= last; y += step {
		ticks = append(ticks, chart.Tick{Value: float64(y), Label: fmt.Sprint(y)})
	}
	return ticks
}

func dailyTicks(lo, hi float64) []chart.Tick {
	from := chart.TimeFromFloat64(lo).UTC()
	to := chart.TimeFromFloat64(hi).UTC()

	var years []time.Time
	for y := from.Year(); y <= to.Year()+1; y++ {
		t := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !t.Before(from) && !t.After(to) {
			years = append(years, t)
		}
	}
	if len(years) == 0 {
		mid := chart.TimeFromFloat64((lo + hi) / 2).UTC()
		return []chart.Tick{{Value: (lo + hi) / 2, Label: mid.Format("2006")}}
	}

	step := 1
	if len(years) > maxNarrowTicks {
		step = int(math.Ceil(float64(len(years)) / float64(maxNarrowTicks)))
	}
	var ticks []chart.Tick
	for i := 0; i < len(years); i += step {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(years[i]), Label: years[i].Format("2006")})
	}
	return ticks
}

// yTicks spreads about n ticks over the shared range at 1/2/2.5/5 x 10^k steps,
// labelled with FormatDollars.
func yTicks(rng YRange, n int) []chart.Tick {
	span := rng.Max - rng.Min
	if span <= 0 || n < 2 {
		return nil
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		score := math.Abs(math.Floor(span/step) + 1 - float64(n))
		if score < bestScore {
			best, bestScore = step, score
		}
	}

	var ticks []chart.Tick
	for v := math.Ceil(rng.Min/best) * best; v <= rng.Max; v += best {
		ticks = append(ticks, chart.Tick{Value: v, Label: FormatDollars(v)})
	}
	return ticks
}

// blankPanel is drawn for a period without any buckets; go-chart refuses to render without series.
func blankPanel(title string, width, height int, style Style) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	drawCentered(img, image.Rect(0, 0, width, 40), title, style.TextColor)
	return img
}

// drawCentered writes text in the middle of box using the 7x13 bitmap face
func drawCentered(dst draw.Image, box image.Rectangle, text string, col drawing.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	w := d.MeasureString(text).Ceil()
	x := box.Min.X + (box.Dx()-w)/2
	if x < box.Min.X {
		x = box.Min.X
	}
	y := box.Min.Y + (box.Dy()+face.Metrics().Ascent.Ceil())/2
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(text)
}
