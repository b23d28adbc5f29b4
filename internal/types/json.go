package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON unmarshals a JSON column into target.
func scanJSON(value any, target any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, target)
}

// valueJSON marshals v for storage in a text column.
func valueJSON(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// RawJSON is an arbitrary JSON document stored in a text column.
type RawJSON json.RawMessage

// MarshalJSON returns the raw document, or null if it is empty.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}

	return r, nil
}

// UnmarshalJSON stores a copy of data.
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

// Scan writes the value from the database.
func (r *RawJSON) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*r = nil
	case []byte:
		*r = append((*r)[0:0], v...)
	case string:
		*r = RawJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into RawJSON", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}

	return string(r), nil
}

// GormDataType defines the data type used by gorm for the type.
func (RawJSON) GormDataType() string {
	return "text"
}

// StringList is a list of strings stored as JSON.
type StringList []string

// Scan writes the value from the database.
func (s *StringList) Scan(value any) error {
	return scanJSON(value, s)
}

// Value returns the value for the SQL driver to write to the database.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return valueJSON([]string{})
	}

	return valueJSON([]string(s))
}

// GormDataType defines the data type used by gorm for the type.
func (StringList) GormDataType() string {
	return "text"
}
