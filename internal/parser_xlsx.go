package internal

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads a sheet of an Excel workbook (the first one unless opts.Sheet is set).
// Leading rows are skipped until one contains a non-empty cell; that row is the header.
func ParseXLSX(path string, opts SourceOptions) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, fmt.Errorf("no sheets found in file")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	headerRow := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return Table{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	columns := make([]string, len(rows[headerRow]))
	for i, cell := range rows[headerRow] {
		columns[i] = strings.TrimSpace(cell)
	}

	return Table{Columns: columns, Rows: rows[headerRow+1:]}, nil
}

func init() {
	RegisterParser("xlsx", ParserFunc(ParseXLSX))
}
