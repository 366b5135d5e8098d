package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// WalkwayRef identifies a walkway from a user document. Depending on the code
// path that wrote it, the value is either the catalog numeric id (stored as a
// number or as a string) or the document storage key. Refs are never compared
// directly; they go through an id mapper built from the catalog first.
type WalkwayRef struct {
	value   string
	numeric bool
}

// NumericRef builds a ref holding a catalog numeric id.
func NumericRef(id int) WalkwayRef {
	return WalkwayRef{value: strconv.Itoa(id), numeric: true}
}

// KeyRef builds a ref holding a storage key.
func KeyRef(key string) WalkwayRef {
	return ParseRef(key)
}

// ParseRef tags a raw textual id. Integer-looking strings are tagged numeric.
func ParseRef(raw string) WalkwayRef {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return WalkwayRef{value: strconv.Itoa(n), numeric: true}
	}
	return WalkwayRef{value: raw}
}

// String returns the canonical textual form.
func (r WalkwayRef) String() string { return r.value }

// IsZero reports whether the ref carries no value.
func (r WalkwayRef) IsZero() bool { return r.value == "" }

// Int returns the numeric id held by the ref.
func (r WalkwayRef) Int() (int, bool) {
	if !r.numeric {
		return 0, false
	}
	n, err := strconv.Atoi(r.value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (r *WalkwayRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*r = WalkwayRef{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ParseRef(s)
		return nil
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("walkway ref %s: %w", string(b), ErrValidation)
	}
	if f == float64(int64(f)) {
		*r = WalkwayRef{value: strconv.FormatInt(int64(f), 10), numeric: true}
		return nil
	}
	*r = WalkwayRef{value: strconv.FormatFloat(f, 'f', -1, 64)}
	return nil
}

// MarshalJSON writes numeric refs as numbers and everything else as strings.
func (r WalkwayRef) MarshalJSON() ([]byte, error) {
	if r.numeric {
		return []byte(r.value), nil
	}
	return json.Marshal(r.value)
}
