// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a custom type for handling JSON arrays of strings in database
type StringSlice []string

// Value implements driver.Valuer interface for database storage
func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for database retrieval
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// GormDataType returns the data type for GORM
func (StringSlice) GormDataType() string {
	return "json"
}

// LineString is a GeoJSON LineString geometry stored as a JSON column.
// Coordinates are [longitude, latitude] pairs as returned by the routing
// provider. The value is kept structured in memory and only serialized at
// the database boundary so geometry never travels as raw text through the
// service layer.
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Value implements driver.Valuer interface for database storage
func (g LineString) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements sql.Scanner interface for database retrieval
func (g *LineString) Scan(value interface{}) error {
	if value == nil {
		*g = LineString{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("cannot scan %T into LineString", value)
	}
}

// GormDataType returns the data type for GORM
func (LineString) GormDataType() string {
	return "json"
}
