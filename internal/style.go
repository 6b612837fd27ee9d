package internal

import "github.com/wcharczuk/go-chart/v2/drawing"

// Style holds the drawing constants for one render call.
// Each call gets its own value, so concurrent renders never share theme state.
type Style struct {
	Width  int // whole figure, pixels
	Height int
	DPI    float64

	Background drawing.Color
	GridColor  drawing.Color
	TextColor  drawing.Color

	LineColor drawing.Color
	LineWidth float64

	MeanColor drawing.Color
	MeanWidth float64
	MeanDash  []float64

	TitleHeight    int // band above the panels reserved for the figure title
	PanelTitleSize float64
	TickLabelSize  float64
	AxisLabelSize  float64
}

// DefaultStyle returns the fixed look for a period: a light grey "fivethirtyeight"-like
// background, a 3px blue sales line and a 2px dashed mean line. Monthly and daily figures are
// wider and use smaller tick labels.
func DefaultStyle(period Period) Style {
	s := Style{
		Width:          1200,
		Height:         600,
		DPI:            100,
		Background:     drawing.ColorFromHex("f0f0f0"),
		GridColor:      drawing.ColorFromHex("cbcbcb"),
		TextColor:      drawing.ColorFromHex("3c3c3c"),
		LineColor:      drawing.ColorFromHex("3d5a89"),
		LineWidth:      3,
		MeanColor:      drawing.ColorFromHex("293241"),
		MeanWidth:      2,
		MeanDash:       []float64{6, 4},
		TitleHeight:    40,
		PanelTitleSize: 14,
		TickLabelSize:  10,
		AxisLabelSize:  10,
	}
	switch period {
	case PeriodMonthly:
		s.Width = 2000
		s.TickLabelSize = 8
		s.AxisLabelSize = 8
	case PeriodDaily:
		s.Width = 1500
		s.TickLabelSize = 8
		s.AxisLabelSize = 8
	}
	return s
}

// panelSize splits the figure width evenly across n panels
func (s Style) panelSize(n int) (width, height int) {
	if n <= 0 {
		n = 1
	}
	return s.Width / n, s.Height - s.TitleHeight
}
