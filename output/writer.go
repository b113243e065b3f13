package output

import (
	"path/filepath"
	"strings"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// DetectFormat infers the output format from a file extension, defaulting
// to CSV.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "xlsx", "xlsm", "xls":
		return FormatExcel
	default:
		return FormatCSV
	}
}
