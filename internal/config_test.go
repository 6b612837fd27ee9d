package internal

import (
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", `
name: Acme Stores
date_column: day
amount_column: revenue
date_layout: "02/01/2006"
sheet: Sales
periods: [monthly, quarter]
locale: sv-SE
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Acme Stores" {
		t.Errorf("Name = %q", cfg.Name)
	}
	cols := cfg.ColumnOptions()
	if cols.DateColumn != "day" || cols.AmountColumn != "revenue" || cols.DateLayout != "02/01/2006" {
		t.Errorf("ColumnOptions = %+v", cols)
	}
	if cfg.SourceOptions().Sheet != "Sales" {
		t.Errorf("Sheet = %q", cfg.SourceOptions().Sheet)
	}
	periods := cfg.GetPeriods()
	if len(periods) != 2 || periods[0] != PeriodMonthly || periods[1] != PeriodQuarterly {
		t.Errorf("GetPeriods = %v", periods)
	}
	if cfg.GetLocale().String() != "sv-SE" {
		t.Errorf("GetLocale = %v", cfg.GetLocale())
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cols := cfg.ColumnOptions()
	if cols.DateColumn != DefaultDateColumn || cols.AmountColumn != DefaultAmountColumn || cols.DateLayout != DefaultDateLayout {
		t.Errorf("ColumnOptions = %+v, want defaults", cols)
	}
	if len(cfg.GetPeriods()) != 3 {
		t.Errorf("GetPeriods = %v, want all", cfg.GetPeriods())
	}
	if cfg.GetLocale() != language.AmericanEnglish {
		t.Errorf("GetLocale = %v, want en-US", cfg.GetLocale())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad period": "periods: [hourly]",
		"bad locale": "locale: \"not a locale!\"",
		"bad yaml":   "periods: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeFile(t, "config.yaml", content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{Name: "Shop", Periods: []string{"daily"}}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Name != "Shop" || len(loaded.GetPeriods()) != 1 || loaded.GetPeriods()[0] != PeriodDaily {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestConfig_NilSafe(t *testing.T) {
	var cfg *Config
	if cfg.ColumnOptions().AmountColumn != DefaultAmountColumn {
		t.Error("nil config should use default columns")
	}
	if len(cfg.GetPeriods()) != 3 {
		t.Error("nil config should render every period")
	}
	if cfg.GetLocale() != language.AmericanEnglish {
		t.Error("nil config should use en-US")
	}
}
