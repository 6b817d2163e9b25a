package wynncraft

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind names the JSON shape a field is expected to hold.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindNumber
	KindBool
	KindObject
	KindArray
	KindNumericString
	KindCoordinates
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindNumericString:
		return "numeric string"
	case KindCoordinates:
		return "coordinate array"
	default:
		return "unknown"
	}
}

type policy int

const (
	policyRequired policy = iota
	policyOptional
	policyDefaulted
)

type scalar interface {
	string | int | int64 | float64 | bool
}

var errWrongKind = errors.New("wrong kind")

// field describes how one key of an object is extracted: its expected kind, its
// required/optional/defaulted policy and where the converted value is stored.
type field struct {
	key      string
	kind     Kind
	policy   policy
	assign   func(raw any) error
	fallback func()
}

func required[T scalar](key string, dst *T) field {
	return field{
		key:    key,
		kind:   kindOf[T](),
		policy: policyRequired,
		assign: func(raw any) error {
			v, ok := convert[T](raw)
			if !ok {
				return errWrongKind
			}
			*dst = v
			return nil
		},
	}
}

// optional leaves dst nil when the key is missing or null.
func optional[T scalar](key string, dst **T) field {
	return field{
		key:    key,
		kind:   kindOf[T](),
		policy: policyOptional,
		assign: func(raw any) error {
			v, ok := convert[T](raw)
			if !ok {
				return errWrongKind
			}
			*dst = &v
			return nil
		},
	}
}

func defaulted[T scalar](key string, def T, dst *T) field {
	f := required(key, dst)
	f.policy = policyDefaulted
	f.fallback = func() { *dst = def }
	return f
}

// numericString reads a count the API transmits as a string. Missing means "0"; a JSON integer is
// accepted as is; a string that does not parse is an error, never a default.
func numericString(key string, dst *int) field {
	return field{
		key:    key,
		kind:   KindNumericString,
		policy: policyDefaulted,
		assign: func(raw any) error {
			if s, ok := raw.(string); ok {
				n, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				*dst = n
				return nil
			}
			n, ok := convert[int](raw)
			if !ok {
				return errWrongKind
			}
			*dst = n
			return nil
		},
		fallback: func() { *dst = 0 },
	}
}

func kindOf[T scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case float64:
		return KindNumber
	default:
		return KindInteger
	}
}

func convert[T scalar](raw any) (T, bool) {
	var zero T
	var out any
	switch any(zero).(type) {
	case string:
		s, ok := raw.(string)
		if !ok {
			return zero, false
		}
		out = s
	case bool:
		b, ok := raw.(bool)
		if !ok {
			return zero, false
		}
		out = b
	case int:
		n, ok := asInt64(raw)
		if !ok || n < math.MinInt || n > math.MaxInt {
			return zero, false
		}
		out = int(n)
	case int64:
		n, ok := asInt64(raw)
		if !ok {
			return zero, false
		}
		out = n
	case float64:
		f, ok := asFloat64(raw)
		if !ok {
			return zero, false
		}
		out = f
	}
	return out.(T), true
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func asFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// object is a JSON object together with its path from the document root.
type object struct {
	path   string
	values map[string]any
}

func asObject(raw any, path string) (object, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return object{}, &SchemaError{Field: path, Expected: KindObject}
	}
	return object{path: path, values: m}, nil
}

func (o object) fieldPath(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

// extract applies every field descriptor in order and stops at the first failure.
func (o object) extract(fields ...field) error {
	for _, f := range fields {
		raw, present := o.values[f.key]
		if !present || raw == nil {
			switch f.policy {
			case policyRequired:
				return &SchemaError{Field: o.fieldPath(f.key), Expected: f.kind}
			case policyDefaulted:
				f.fallback()
			}
			continue
		}
		if err := f.assign(raw); err != nil {
			sErr := &SchemaError{Field: o.fieldPath(f.key), Expected: f.kind}
			if !errors.Is(err, errWrongKind) {
				sErr.Err = err
			}
			return sErr
		}
	}
	return nil
}

func (o object) child(key string) (object, error) {
	raw, ok := o.values[key]
	if !ok || raw == nil {
		return object{}, &MissingNestedError{Field: o.fieldPath(key)}
	}
	return asObject(raw, o.fieldPath(key))
}

// optionalChild reports found=false for a missing or null key so callers keep the record absent.
func (o object) optionalChild(key string) (obj object, found bool, err error) {
	raw, ok := o.values[key]
	if !ok || raw == nil {
		return object{}, false, nil
	}
	obj, err = asObject(raw, o.fieldPath(key))
	if err != nil {
		return object{}, false, err
	}
	return obj, true, nil
}

func (o object) array(key string) (array, error) {
	raw, ok := o.values[key]
	if !ok || raw == nil {
		return array{}, &MissingNestedError{Field: o.fieldPath(key)}
	}
	return asArray(raw, o.fieldPath(key))
}

// defaultedArray treats a missing or null key as an empty list.
func (o object) defaultedArray(key string) (array, error) {
	raw, ok := o.values[key]
	if !ok || raw == nil {
		return array{path: o.fieldPath(key)}, nil
	}
	return asArray(raw, o.fieldPath(key))
}

func (o object) location(key string) (Location, error) {
	raw, ok := o.values[key]
	if !ok || raw == nil {
		return Location{}, &SchemaError{Field: o.fieldPath(key), Expected: KindCoordinates}
	}
	return parseLocation(raw, o.fieldPath(key))
}

// keys returns the object keys sorted so iteration order never depends on map order.
func (o object) keys() []string {
	keys := make([]string, 0, len(o.values))
	for k := range o.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// objects walks every value of o, in key order, requiring each to be an object.
func (o object) objects(fn func(key string, obj object) error) error {
	for _, key := range o.keys() {
		obj, err := asObject(o.values[key], o.fieldPath(key))
		if err != nil {
			return err
		}
		if err := fn(key, obj); err != nil {
			return err
		}
	}
	return nil
}

type array struct {
	path  string
	items []any
}

func asArray(raw any, path string) (array, error) {
	items, ok := raw.([]any)
	if !ok {
		return array{}, &SchemaError{Field: path, Expected: KindArray}
	}
	return array{path: path, items: items}, nil
}

func (a array) indexPath(i int) string {
	return fmt.Sprintf("%s[%d]", a.path, i)
}

// objects is fail-fast: the first element that is not an object, or that fn rejects, aborts the walk.
func (a array) objects(fn func(obj object) error) error {
	for i, raw := range a.items {
		obj, err := asObject(raw, a.indexPath(i))
		if err != nil {
			return err
		}
		if err := fn(obj); err != nil {
			return err
		}
	}
	return nil
}

func arrayOf[T scalar](a array) ([]T, error) {
	out := make([]T, 0, len(a.items))
	for i, raw := range a.items {
		v, ok := convert[T](raw)
		if !ok {
			return nil, &SchemaError{Field: a.indexPath(i), Expected: kindOf[T]()}
		}
		out = append(out, v)
	}
	return out, nil
}

// dictOf converts every value of o, keeping the key set exactly as received.
func dictOf[T scalar](o object) (map[string]T, error) {
	out := make(map[string]T, len(o.values))
	for _, key := range o.keys() {
		v, ok := convert[T](o.values[key])
		if !ok {
			return nil, &SchemaError{Field: o.fieldPath(key), Expected: kindOf[T]()}
		}
		out[key] = v
	}
	return out, nil
}

func dict[T scalar](o object, key string) (map[string]T, error) {
	obj, err := o.child(key)
	if err != nil {
		return nil, err
	}
	return dictOf[T](obj)
}

// optionalDict returns a nil map when the key is missing or null.
func optionalDict[T scalar](o object, key string) (map[string]T, error) {
	obj, found, err := o.optionalChild(key)
	if err != nil || !found {
		return nil, err
	}
	return dictOf[T](obj)
}

// defaultedDict returns an empty map when the key is missing or null.
func defaultedDict[T scalar](o object, key string) (map[string]T, error) {
	out, err := optionalDict[T](o, key)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]T{}
	}
	return out, nil
}
