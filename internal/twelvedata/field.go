package twelvedata

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Field holds a value the API may send as a JSON string, a JSON number,
// or not at all. Twelve Data mixes these freely between plans and
// endpoints, so every numeric-ish response field goes through Field and
// all string-or-number coercion lives here.
type Field struct {
	raw string
	set bool
}

func (f *Field) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.raw = s
		f.set = true
		return nil
	}
	f.raw = string(b)
	f.set = true
	return nil
}

// IsSet reports whether the field was present and non-null.
func (f Field) IsSet() bool { return f.set }

// Raw returns the value exactly as it arrived, without the quotes for
// string values. Empty string when unset.
func (f Field) Raw() string { return f.raw }

// Or returns the raw value, or fallback when the field is unset.
func (f Field) Or(fallback string) string {
	if !f.set {
		return fallback
	}
	return f.raw
}

// Float coerces the value to a float64. The second return is false when
// the field is unset or not numeric.
func (f Field) Float() (float64, bool) {
	if !f.set {
		return 0, false
	}
	v, err := strconv.ParseFloat(f.raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
