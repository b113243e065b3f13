package importer

import (
	"path/filepath"
	"strings"

	"guestlist/guest"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	Guests         []guest.Guest
}

// Run parses every input file into canonical guests. When format is empty it
// is detected per file (extension, then MIME sniff, else JSON). The batch
// label for invite-less rows is the source file's base name.
func Run(paths []string, format string) (*Result, error) {
	result := &Result{Guests: make([]guest.Guest, 0, 128)}

	for _, path := range paths {
		sourceFormat := format
		if strings.TrimSpace(sourceFormat) == "" {
			sourceFormat = DetectFormat(path)
		}

		records, err := ReaderForFormat(sourceFormat).Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(records)

		label := batchLabel(path)
		for _, record := range records {
			result.Guests = append(result.Guests, MapRecord(record, label))
		}
	}

	return result, nil
}

func batchLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
