package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// SimpleJSONFormat is a minimal JSON format for sales series
// Example:
//
//	{
//	  "rows": [
//	    {"date": "2024-01-15", "total_sales": 1250.50},
//	    {"date": "2024-01-16", "total_sales": 980}
//	  ]
//	}
//
// Any keys are allowed; they become the table columns.
type SimpleJSONFormat struct {
	Rows []map[string]any `json:"rows"`
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string, _ SourceOptions) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return Table{}, fmt.Errorf("parsing JSON: %w", err)
	}

	keys := make(map[string]bool)
	for _, row := range jsonData.Rows {
		for k := range row {
			keys[k] = true
		}
	}
	var columns []string
	for k := range keys {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	table := Table{Columns: columns, Rows: make([][]string, 0, len(jsonData.Rows))}
	for _, row := range jsonData.Rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = jsonCell(row[c])
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

func jsonCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
