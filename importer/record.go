package importer

import "strings"

// Record is one parsed input row: canonical field → raw cell value. All
// three readers produce this shape before normalization.
type Record struct {
	RowNumber int
	Values    map[Field]string
}

// Get returns the trimmed value for a field, or "" when the source had no
// resolvable column for it.
func (r Record) Get(field Field) string {
	return strings.TrimSpace(r.Values[field])
}
