package params

import (
	"errors"
	"fmt"
	"math"
)

// Parameter and lib values arrive as untyped plist-style data: booleans,
// integers of various widths, floats, strings, lists and dictionaries.
// The helpers below compare and copy such values without caring which
// concrete numeric type a decoder happened to pick.

var errNotANumber = errors.New("value is not a number")

func asInt(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	}
	return 0, fmt.Errorf("%w: %v (%T)", errNotANumber, value, value)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// truthy interprets a value the way the Glyphs plist format does for
// boolean-ish parameters: booleans as themselves, numbers by non-zero,
// strings "1"/"true" as true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v == "1" || v == "true"
	}
	if f, ok := asFloat(value); ok {
		return f != 0
	}
	return true
}

// equalValues compares two plist-style values structurally, folding all
// numeric types together (50 equals 50.0) so that defaults written by
// one ecosystem match values parsed by the other.
func equalValues(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		fb, okb := asFloat(b)
		return okb && fa == fb
	}
	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		return ok && va == vb
	case bool:
		vb, ok := b.(bool)
		return ok && va == vb
	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !equalValues(va[i], vb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		vb, ok := b.(map[string]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for k, v := range va {
			w, present := vb[k]
			if !present || !equalValues(v, w) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	return a == b
}

// copyValue deep-copies lists and dictionaries. Defaults are copied, not
// shared by reference, so two objects never alias one mutable default.
func copyValue(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = copyValue(v[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, w := range v {
			out[k] = copyValue(w)
		}
		return out
	}
	return value
}

// absNumber keeps the numeric type of its input where possible.
func absNumber(value any) (any, error) {
	switch v := value.(type) {
	case float32:
		return float32(math.Abs(float64(v))), nil
	case float64:
		return math.Abs(v), nil
	}
	n, err := asInt(value)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return n, nil
}
