package importer

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrInvalidFile marks content that matches no supported shape. It aborts
// the whole import; no partial merge ever happens.
var ErrInvalidFile = errors.New("invalid file")

const (
	FormatJSON  = "json"
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

type Reader interface {
	Read(path string) ([]Record, error)
}

// ReaderForFormat selects the decoder for a detected format. Anything
// unrecognized falls back to the JSON reader, whose array check is the
// catch-all "invalid file" path.
func ReaderForFormat(format string) Reader {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case FormatCSV:
		return &CSVReader{}
	case FormatExcel, "xlsx", "xlsm", "xls":
		return &ExcelReader{}
	default:
		return &JSONReader{}
	}
}

// DetectFormat infers the input format from the file extension first, then
// from MIME sniffing, and defaults to JSON.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "xlsx", "xlsm", "xls":
		return FormatExcel
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return FormatJSON
	}
	switch {
	case detected.Is("application/json"):
		return FormatJSON
	case detected.Is("text/csv"):
		return FormatCSV
	case detected.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
		detected.Is("application/vnd.ms-excel"):
		return FormatExcel
	default:
		return FormatJSON
	}
}
