package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Figures []JSONFigure `json:"figures"`
}

// JSONFigure summarizes one rendered figure
type JSONFigure struct {
	Period string      `json:"period"`
	Title  string      `json:"title"`
	Range  JSONRange   `json:"range"`
	Total  float64     `json:"total"`
	Panels []JSONPanel `json:"panels"`
}

type JSONRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type JSONPanel struct {
	Title  string      `json:"title"`
	Mean   *float64    `json:"mean,omitempty"`
	Points []JSONPoint `json:"points"`
}

type JSONPoint struct {
	Date string  `json:"date"`
	Year int     `json:"year"`
	Sum  float64 `json:"sum"`
}

// NewJSONOutput converts figures to their JSON summary
func NewJSONOutput(figs []*Figure) JSONOutput {
	out := JSONOutput{Figures: make([]JSONFigure, 0, len(figs))}
	for _, fig := range figs {
		jf := JSONFigure{
			Period: string(fig.Period),
			Title:  fig.Title,
			Range:  JSONRange{Min: fig.Range.Min, Max: fig.Range.Max},
			Panels: make([]JSONPanel, 0, len(fig.Panels)),
		}
		for _, p := range fig.Panels {
			jp := JSONPanel{Title: p.Title, Points: make([]JSONPoint, 0, len(p.Points))}
			if len(p.Points) > 0 {
				mean := p.Mean
				jp.Mean = &mean
			}
			for _, pt := range p.Points {
				jp.Points = append(jp.Points, JSONPoint{
					Date: pt.Date.Format("2006-01-02"),
					Year: pt.Year,
					Sum:  pt.Sum,
				})
				jf.Total += pt.Sum
			}
			jf.Panels = append(jf.Panels, jp)
		}
		out.Figures = append(out.Figures, jf)
	}
	return out
}

// PrintFiguresJSON outputs the figure summaries in JSON format
func PrintFiguresJSON(w io.Writer, figs []*Figure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONOutput(figs))
}

// PrintFigureTable outputs one row per panel: bucket count, total, mean and range of the sums
func PrintFigureTable(w io.Writer, fig *Figure, amounts AmountFormatter) {
	fmt.Fprintf(w, "%s\n", fig.Title)
	fmt.Fprintf(w, "Shared range: %s to %s\n\n", FormatDollars(fig.Range.Min), FormatDollars(fig.Range.Max))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Panel", "Buckets", "Total", "Mean", "Min", "Max"})

	var grandTotal float64
	var grandCount int
	for _, p := range fig.Panels {
		if len(p.Points) == 0 {
			dash := text.FgHiBlack.Sprint("-")
			t.AppendRow(table.Row{p.Title, 0, dash, dash, dash, dash})
			continue
		}
		total, lo, hi := 0.0, p.Points[0].Sum, p.Points[0].Sum
		for _, pt := range p.Points {
			total += pt.Sum
			lo = min(lo, pt.Sum)
			hi = max(hi, pt.Sum)
		}
		grandTotal += total
		grandCount += len(p.Points)
		t.AppendRow(table.Row{
			p.Title,
			len(p.Points),
			amounts.Format(total),
			amounts.Format(p.Mean),
			amounts.Format(lo),
			amounts.Format(hi),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), grandCount, text.Bold.Sprint(amounts.Format(grandTotal)), "", "", ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()
	fmt.Fprintln(w)
}
