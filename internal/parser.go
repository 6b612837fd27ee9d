package internal

import (
	"fmt"
	"sort"
	"strings"
)

// SourceOptions carries per-source knobs; Sheet only applies to xlsx workbooks.
type SourceOptions struct {
	Sheet string
}

// Parser reads a dataset file into a Table
type Parser interface {
	Parse(path string, opts SourceOptions) (Table, error)
}

// ParserFunc is a function that implements Parser
type ParserFunc func(path string, opts SourceOptions) (Table, error)

func (f ParserFunc) Parse(path string, opts SourceOptions) (Table, error) {
	return f(path, opts)
}

// parsers is the registry of available parsers
var parsers = map[string]Parser{}

// RegisterParser registers a parser with the given name
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser returns the parser for the given source type
func GetParser(source string) (Parser, error) {
	p, ok := parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return p, nil
}

// AvailableSources returns the registered source types, sorted
func AvailableSources() []string {
	var sources []string
	for name := range parsers {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	return sources
}

// IsKnownParser returns true if the name is a registered parser
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg splits an optional "<source>:" prefix off a file argument.
// Example: "xlsx:sales.xlsx" → ("xlsx", "sales.xlsx")
// Example: "C:\data\sales.csv" → ("", "C:\data\sales.csv")
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// SourceForPath guesses the source type from a file extension, defaulting to csv
func SourceForPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return "xlsx"
	case strings.HasSuffix(lower, ".json"):
		return "simple-json"
	}
	return "csv"
}
