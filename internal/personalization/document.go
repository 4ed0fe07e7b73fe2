package personalization

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Document is the per-user personalization payload: an open key/value map
// keyed by field_key. All mutation goes through the typed setters or
// BulkUpdate so the stored shapes stay normalized; nothing else may write
// to the map directly.
type Document map[string]any

// ListFields always hold ordered string lists. A scalar written to one of
// these keys is coerced to a singleton list.
var ListFields = map[string]bool{
	"goals":                true,
	"challenges":           true,
	"practice_preferences": true,
	"interests":            true,
	"reminder_times":       true,
}

// BoolFields hold boolean consent flags.
var BoolFields = map[string]bool{
	"data_consent":      true,
	"marketing_consent": true,
}

func (d Document) Get(key string) (any, bool) {
	v, ok := d[key]
	return v, ok
}

// Set stores value as-is. A nil value removes the key: absence, not null,
// represents "never answered".
func (d Document) Set(key string, value any) {
	if value == nil {
		delete(d, key)
		return
	}
	d[key] = value
}

// GetList returns the value at key as a string list. Absent keys yield an
// empty list; a scalar stored before the field was list-typed comes back as
// a singleton.
func (d Document) GetList(key string) []string {
	v, ok := d[key]
	if !ok || v == nil {
		return []string{}
	}
	return toStringList(v)
}

// SetList stores value as a list. nil stores an empty list (an explicit
// "chose nothing", distinct from an absent key), a scalar becomes a
// singleton.
func (d Document) SetList(key string, value any) {
	if value == nil {
		d[key] = []string{}
		return
	}
	d[key] = toStringList(value)
}

// GetBool returns false for absent or nil values, otherwise the truthy
// coercion of whatever is stored.
func (d Document) GetBool(key string) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return false
	}
	return truthy(v)
}

// SetBool removes the key on nil (unset), otherwise stores a real bool.
func (d Document) SetBool(key string, value any) {
	if value == nil {
		delete(d, key)
		return
	}
	d[key] = truthy(value)
}

// GetString returns the trimmed stored string, or "" with ok=false when the
// value is absent, not a string, or blank after trimming. A blank answer is
// treated as "not answered".
func (d Document) GetString(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, isStr := v.(string)
	if !isStr {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// SetString trims string input and removes the key when the result is
// empty. Non-string scalars are stored as-is; validation happens upstream.
func (d Document) SetString(key string, value any) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			delete(d, key)
			return
		}
		d[key] = s
		return
	}
	d.Set(key, value)
}

// BulkUpdate applies updates per reserved-set membership: list fields via
// SetList semantics (nil removes the key), bool fields via SetBool,
// everything else via Set. This is the single entry point used by profile
// saves.
func (d Document) BulkUpdate(updates map[string]any) {
	for key, value := range updates {
		switch {
		case ListFields[key]:
			if value == nil {
				delete(d, key)
			} else {
				d[key] = toStringList(value)
			}
		case BoolFields[key]:
			d.SetBool(key, value)
		default:
			d.Set(key, value)
		}
	}
}

func toStringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case map[string]bool:
		// set input: arbitrary-but-deterministic order
		out := make([]string, 0, len(t))
		for k := range t {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}

// Scan/Value make Document usable as a gorm JSON column.

func (d *Document) Scan(value any) error {
	if value == nil {
		*d = Document{}
		return nil
	}
	var raw []byte
	switch t := value.(type) {
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return fmt.Errorf("personalization: cannot scan %T into Document", value)
	}
	if len(raw) == 0 {
		*d = Document{}
		return nil
	}
	return json.Unmarshal(raw, d)
}

func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
