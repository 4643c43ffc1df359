// domain/types/jsonb.go
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB maps a Postgres jsonb column onto a Go map.
type JSONB map[string]interface{}

// Value serializes the map for storage.
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan deserializes a jsonb column into the map.
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONB scan")
	}

	if len(data) == 0 {
		*j = JSONB{}
		return nil
	}
	return json.Unmarshal(data, j)
}

// StringArray maps a jsonb array of strings onto a Go slice.
type StringArray []string

// Value serializes the slice for storage.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan deserializes a jsonb array column into the slice.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringArray scan")
	}

	if len(data) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(data, a)
}
