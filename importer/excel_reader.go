package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader decodes the first sheet of a spreadsheet document. The sheet's
// own header row drives the header resolver, exactly like CSV.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open spreadsheet %s: %v", ErrInvalidFile, path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: spreadsheet has no sheets", ErrInvalidFile)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", ErrInvalidFile, sheetName)
	}

	fields := ResolveHeaders(rows[0])

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, rowToRecord(fields, row, i+2))
	}

	return records, nil
}
