package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// JSONReader decodes an array of guest-shaped objects. It doubles as the
// fallback decoder for undetected file types, so any non-array content is
// reported as ErrInvalidFile.
type JSONReader struct{}

func (r *JSONReader) Read(path string) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json file %s: %w", path, err)
	}

	var root any
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	items, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: json root is not an array", ErrInvalidFile)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: json element %d is not an object", ErrInvalidFile, i)
		}

		values := make(map[Field]string, len(object))
		for key, raw := range object {
			field, ok := ResolveField(key)
			if !ok {
				continue
			}
			values[field] = stringifyJSONValue(raw)
		}
		records = append(records, Record{RowNumber: i + 1, Values: values})
	}

	return records, nil
}

func stringifyJSONValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", typed)
	}
}
