package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Name is the dataset name appended to figure titles ("... for <name>")
	Name string `yaml:"name,omitempty"`

	// Columns of the input table
	DateColumn   string `yaml:"date_column,omitempty"`
	AmountColumn string `yaml:"amount_column,omitempty"`

	// DateLayout is a Go reference-time layout, e.g. "2006-01-02" or "02/01/2006"
	DateLayout string `yaml:"date_layout,omitempty"`

	// Sheet selects the worksheet of xlsx inputs (first sheet when empty)
	Sheet string `yaml:"sheet,omitempty"`

	// Periods to render when none is given on the command line
	Periods []string `yaml:"periods,omitempty"`

	// Locale used for amounts in the summary table (BCP 47, e.g. "en-US", "sv-SE")
	Locale string `yaml:"locale,omitempty"`

	// compiled fields (not serialized)
	periods []Period     `yaml:"-"`
	locale  language.Tag `yaml:"-"`
}

// DefaultConfigPath returns the default config file path (~/.seasonal-plot/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seasonal-plot", "config.yaml")
}

// NewDefaultConfig returns the config used when no file exists
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.compile() // defaults always compile
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) compile() error {
	if c.DateLayout != "" {
		// a layout that cannot format and re-parse the reference date is useless
		ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
		if _, err := time.Parse(c.DateLayout, ref.Format(c.DateLayout)); err != nil {
			return fmt.Errorf("invalid date_layout %q: %w", c.DateLayout, err)
		}
	}

	c.periods = nil
	for _, p := range c.Periods {
		period, err := ParsePeriod(p)
		if err != nil {
			return fmt.Errorf("invalid period in config: %w", err)
		}
		c.periods = append(c.periods, period)
	}
	if len(c.periods) == 0 {
		c.periods = append(c.periods, Periods...)
	}

	c.locale = language.AmericanEnglish
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		c.locale = tag
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ColumnOptions returns the table column selection, falling back to the defaults
func (c *Config) ColumnOptions() ColumnOptions {
	if c == nil {
		return ColumnOptions{}.withDefaults()
	}
	return ColumnOptions{
		DateColumn:   c.DateColumn,
		AmountColumn: c.AmountColumn,
		DateLayout:   c.DateLayout,
	}.withDefaults()
}

// SourceOptions returns the parser options
func (c *Config) SourceOptions() SourceOptions {
	if c == nil {
		return SourceOptions{}
	}
	return SourceOptions{Sheet: c.Sheet}
}

// GetPeriods returns the configured periods, all of them by default
func (c *Config) GetPeriods() []Period {
	if c == nil || len(c.periods) == 0 {
		return append([]Period(nil), Periods...)
	}
	return append([]Period(nil), c.periods...)
}

// GetLocale returns the summary locale, en-US by default
func (c *Config) GetLocale() language.Tag {
	if c == nil || c.locale == language.Und {
		return language.AmericanEnglish
	}
	return c.locale
}
