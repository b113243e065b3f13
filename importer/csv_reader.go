package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader decodes comma-delimited text with double-quote escaping. The
// first row drives the header resolver.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", ErrInvalidFile, err)
	}
	fields := ResolveHeaders(headers)

	records := make([]Record, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row %d: %v", ErrInvalidFile, rowNumber+1, err)
		}

		rowNumber++
		records = append(records, rowToRecord(fields, row, rowNumber))
	}

	return records, nil
}
