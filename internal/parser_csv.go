package internal

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ParseCSV reads a comma separated file whose first record is the header
func ParseCSV(path string, _ SourceOptions) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("no header row in %s", path)
	}

	return Table{Columns: records[0], Rows: records[1:]}, nil
}

func init() {
	RegisterParser("csv", ParserFunc(ParseCSV))
}
