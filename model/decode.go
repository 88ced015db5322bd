package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DecodeBody parses a response body into the generic tree the Decode
// functions consume. Numbers are kept as json.Number so large ids survive.
func DecodeBody(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, schemaError("payload", "", "expected object, got %s", kindOf(v))
	}
	return raw, nil
}

// MillisTime converts a ClickUp millisecond timestamp ("1567780450202") to a
// time. Unset or unparsable values give nil.
func MillisTime(ms *string) *time.Time {
	if ms == nil {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*ms), 10, 64)
	if err != nil {
		return nil
	}
	t := time.UnixMilli(n)
	return &t
}

// decoder reads declared fields out of one raw object. The first failure
// sticks; later reads become no-ops so a decode function can build its
// record in one literal and check Err once.
type decoder struct {
	resource string
	raw      map[string]any
	err      error
}

func newDecoder(resource string, raw map[string]any) *decoder {
	return &decoder{resource: resource, raw: raw}
}

func (d *decoder) Err() error {
	return d.err
}

// value returns the raw value under key; absent and null are both unset.
func (d *decoder) value(key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (d *decoder) required(key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.raw[key]
	if !ok {
		d.err = schemaError(d.resource, key, "missing required field")
		return nil, false
	}
	if v == nil {
		d.err = schemaError(d.resource, key, "required field is null")
		return nil, false
	}
	return v, true
}

func (d *decoder) mismatch(key, want string, got any) {
	d.err = schemaError(d.resource, key, "expected %s, got %s", want, kindOf(got))
}

func (d *decoder) String(key string) *string {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	s, ok := asString(v)
	if !ok {
		d.mismatch(key, "string", v)
		return nil
	}
	return &s
}

func (d *decoder) RequiredString(key string) string {
	v, ok := d.required(key)
	if !ok {
		return ""
	}
	s, ok := asString(v)
	if !ok {
		d.mismatch(key, "string", v)
	}
	return s
}

// StringOr is for fields whose schema default is a concrete value rather
// than unset.
func (d *decoder) StringOr(key, def string) string {
	if s := d.String(key); s != nil {
		return *s
	}
	return def
}

func (d *decoder) Int(key string) *int {
	v := d.Int64(key)
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func (d *decoder) RequiredInt(key string) int {
	return int(d.RequiredInt64(key))
}

func (d *decoder) Int64(key string) *int64 {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	n, ok := asInt64(v)
	if !ok {
		d.mismatch(key, "integer", v)
		return nil
	}
	return &n
}

func (d *decoder) RequiredInt64(key string) int64 {
	v, ok := d.required(key)
	if !ok {
		return 0
	}
	n, ok := asInt64(v)
	if !ok {
		d.mismatch(key, "integer", v)
	}
	return n
}

func (d *decoder) Float(key string) *float64 {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	f, ok := asFloat64(v)
	if !ok {
		d.mismatch(key, "number", v)
		return nil
	}
	return &f
}

func (d *decoder) Bool(key string) *bool {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		d.mismatch(key, "boolean", v)
		return nil
	}
	return &b
}

func (d *decoder) RequiredBool(key string) bool {
	v, ok := d.required(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.mismatch(key, "boolean", v)
	}
	return b
}

func (d *decoder) BoolOr(key string, def bool) bool {
	if b := d.Bool(key); b != nil {
		return *b
	}
	return def
}

// Any passes the value through untouched; ClickUp leaves some fields
// (custom field values, reactions) shapeless.
func (d *decoder) Any(key string) any {
	v, _ := d.value(key)
	return v
}

func (d *decoder) AnyList(key string) []any {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.mismatch(key, "list", v)
		return nil
	}
	return items
}

// object decodes an optional nested record.
func object[T any](d *decoder, key string, build func(map[string]any) (T, error)) *T {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	out, ok := nestedObject(d, key, v, build)
	if !ok {
		return nil
	}
	return &out
}

func requiredObject[T any](d *decoder, key string, build func(map[string]any) (T, error)) T {
	var zero T
	v, ok := d.required(key)
	if !ok {
		return zero
	}
	out, _ := nestedObject(d, key, v, build)
	return out
}

// objectOrDefault decodes a nested record whose absence means "all defaults",
// as with the space feature flags.
func objectOrDefault[T any](d *decoder, key string, build func(map[string]any) (T, error)) T {
	v, ok := d.value(key)
	if !ok {
		v = map[string]any{}
	}
	out, _ := nestedObject(d, key, v, build)
	return out
}

func nestedObject[T any](d *decoder, key string, v any, build func(map[string]any) (T, error)) (T, bool) {
	var zero T
	if d.err != nil {
		return zero, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.mismatch(key, "object", v)
		return zero, false
	}
	out, err := build(m)
	if err != nil {
		d.err = rebase(d.resource, key, err)
		return zero, false
	}
	return out, true
}

// list decodes an optional list of records. Null and absent are unset (nil);
// an empty JSON list gives an empty, non-nil slice.
func list[T any](d *decoder, key string, build func(map[string]any) (T, error)) []T {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	return nestedList(d, key, v, build)
}

func nestedList[T any](d *decoder, key string, v any, build func(map[string]any) (T, error)) []T {
	items, ok := v.([]any)
	if !ok {
		d.mismatch(key, "list", v)
		return nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", key, i)
		m, ok := item.(map[string]any)
		if !ok {
			d.mismatch(path, "object", item)
			return nil
		}
		rec, err := build(m)
		if err != nil {
			d.err = rebase(d.resource, path, err)
			return nil
		}
		out = append(out, rec)
	}
	return out
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return t.String(), true
		}
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'f', -1, 64), true
		}
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
	case float64:
		if t == math.Trunc(t) && t >= -(1<<63) && t < 1<<63 {
			return int64(t), true
		}
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case string:
		// ClickUp returns some counters and durations as numeric strings
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
	case float64:
		return t, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int32, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// unmarshalWith lets a record's UnmarshalJSON reuse its Decode function.
func unmarshalWith[T any](data []byte, dst *T, build func(map[string]any) (T, error)) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	raw, err := DecodeBody(data)
	if err != nil {
		return err
	}
	v, err := build(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
