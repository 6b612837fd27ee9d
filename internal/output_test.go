package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestPrintFiguresJSON(t *testing.T) {
	sales := []Sale{
		{Date: date("2023-01-10"), Amount: 100},
		{Date: date("2024-01-10"), Amount: 300},
		{Date: date("2024-07-04"), Amount: 50},
	}
	fig, err := QuarterlyPlot(sales, "Shop")
	if err != nil {
		t.Fatalf("QuarterlyPlot: %v", err)
	}

	var buf bytes.Buffer
	if err := PrintFiguresJSON(&buf, []*Figure{fig}); err != nil {
		t.Fatalf("PrintFiguresJSON: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Figures) != 1 {
		t.Fatalf("expected 1 figure, got %d", len(out.Figures))
	}
	f := out.Figures[0]
	if f.Period != "quarterly" || f.Title != "Quarterly Sales over Time for Shop" {
		t.Errorf("figure = %q / %q", f.Period, f.Title)
	}
	if f.Total != 450 {
		t.Errorf("Total = %v, want 450", f.Total)
	}
	if len(f.Panels) != 4 {
		t.Fatalf("expected 4 panels, got %d", len(f.Panels))
	}
	if f.Panels[0].Mean == nil || *f.Panels[0].Mean != 200 {
		t.Errorf("Q1 mean = %v, want 200", f.Panels[0].Mean)
	}
	if f.Panels[1].Mean != nil || len(f.Panels[1].Points) != 0 {
		t.Errorf("Q2 should be empty, got %+v", f.Panels[1])
	}
	if f.Panels[2].Points[0].Date != "2024-07-01" {
		t.Errorf("Q3 point date = %q, want 2024-07-01", f.Panels[2].Points[0].Date)
	}
}

func TestPrintFigureTable(t *testing.T) {
	sales := []Sale{
		{Date: date("2023-01-10"), Amount: 1000},
		{Date: date("2024-01-10"), Amount: 3000},
		{Date: date("2024-10-04"), Amount: 2500},
	}
	fig, err := QuarterlyPlot(sales, "")
	if err != nil {
		t.Fatalf("QuarterlyPlot: %v", err)
	}

	var buf bytes.Buffer
	PrintFigureTable(&buf, fig, NewAmountFormatter(language.AmericanEnglish))
	out := buf.String()

	for _, want := range []string{"Quarterly Sales over Time", "Shared range:", "Q1 Sales", "Q4 Sales", "$2,000", "$6,500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
