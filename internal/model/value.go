package model

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// jsonNull is the wire representation of a missing value.
var jsonNull = []byte("null")

// NullString is a string field value with an explicit presence flag.
// The zero value is missing. Presence is the only way to distinguish a
// missing value from an empty string.
type NullString struct {
	String string
	Valid  bool
}

// StringOf returns a present NullString holding s.
func StringOf(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Missing reports whether the value is absent.
func (v NullString) Missing() bool {
	return !v.Valid
}

func (v NullString) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return jsonNull, nil
	}
	return json.Marshal(v.String)
}

func (v *NullString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*v = NullString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return eris.Wrap(err, "model: unmarshal string value")
	}
	*v = StringOf(s)
	return nil
}

// NullFloat64 is a numeric field value with an explicit presence flag.
// The zero value is missing.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// FloatOf returns a present NullFloat64 holding f.
func FloatOf(f float64) NullFloat64 {
	return NullFloat64{Float64: f, Valid: true}
}

// Missing reports whether the value is absent.
func (v NullFloat64) Missing() bool {
	return !v.Valid
}

func (v NullFloat64) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return jsonNull, nil
	}
	return json.Marshal(v.Float64)
}

func (v *NullFloat64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*v = NullFloat64{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return eris.Wrap(err, "model: unmarshal numeric value")
	}
	*v = FloatOf(f)
	return nil
}
