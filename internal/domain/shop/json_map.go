package shop

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap is an open string-keyed document stored in a JSON column.
// A nil map is stored as SQL NULL.
type JSONMap map[string]any

// Value implements driver.Valuer for GORM to write to JSONB
func (m JSONMap) Value() (driver.Value, error) {
	return jsonColumnValue(m)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (m *JSONMap) Scan(value any) error {
	raw, err := scanJSONColumn(value)
	if err != nil || raw == nil {
		*m = nil
		return err
	}
	out, err := decodeJSONObject(raw)
	if err != nil {
		return err
	}
	*m = JSONMap(out)
	return nil
}

func jsonColumnValue[M ~map[string]any](m M) (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// decodeJSONObject keeps numbers as json.Number so integers beyond 2^53
// are written back exactly as they were read.
func decodeJSONObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJSONColumn(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 || string(v) == "null" {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" || v == "null" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, errors.New("failed to scan JSON column: unsupported type")
	}
}
