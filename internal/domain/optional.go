package domain

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an absent JSON key from an explicit
// null, which plain *string cannot express:
//   - Present=false: key absent (keep stored value)
//   - Present=true, Value=nil: key was null (clear)
//   - Present=true, Value=&"...": key had a value
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// OptionalInt is the integer counterpart of OptionalString.
type OptionalInt struct {
	Present bool
	Value   *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	o.Value = &n
	return nil
}
