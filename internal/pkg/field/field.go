// Package field provides JSON payload fields that never fail to decode.
//
// Request validation must report which field is wrong and why, in a fixed
// order, so a payload like {"price": "10"} has to reach the price guard
// instead of being rejected by the JSON decoder. Each field type records
// whether the key was supplied and whether its JSON type was the expected one.
package field

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

var null = []byte("null")

// String is a payload field expected to hold a JSON string.
type String struct {
	raw      string
	set      bool
	isString bool
}

// NewString returns a supplied String holding s.
func NewString(s string) String {
	return String{raw: s, set: true, isString: true}
}

// UnmarshalJSON records the raw value; it only fails on malformed input.
func (f *String) UnmarshalJSON(b []byte) error {
	*f = String{}
	if bytes.Equal(b, null) {
		return nil
	}
	f.set = true
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		f.raw = string(b)
		return nil
	}
	f.raw = s
	f.isString = true
	return nil
}

// MarshalJSON writes the value back, or null when absent.
func (f String) MarshalJSON() ([]byte, error) {
	if !f.set {
		return null, nil
	}
	if !f.isString {
		return []byte(f.raw), nil
	}
	return json.Marshal(f.raw)
}

// IsSet reports whether the key was supplied with a non-null value.
func (f String) IsSet() bool {
	return f.set
}

// IsPresent reports whether the field holds a non-empty JSON string.
func (f String) IsPresent() bool {
	return f.isString && f.raw != ""
}

// IsEmpty reports whether the field is absent or holds an empty JSON value:
// null, "", false or a zero number.
func (f String) IsEmpty() bool {
	if !f.set || f.raw == "" {
		return true
	}
	if f.isString {
		return false
	}
	if f.raw == "false" {
		return true
	}
	n, err := strconv.ParseFloat(f.raw, 64)
	return err == nil && n == 0
}

// Value returns the string, or "" when the field is absent or not a string.
func (f String) Value() string {
	if !f.isString {
		return ""
	}
	return f.raw
}

// Raw returns the string or, for other JSON types, the literal text.
func (f String) Raw() string {
	return f.raw
}

// Number is a payload field expected to hold a JSON number.
//
// Integer literals are kept exactly, so values above 2^53 do not lose
// precision. A number only counts as an integer when it fits in an int;
// larger values such as 1e20 are treated like fractions.
type Number struct {
	value     float64
	integer   int64
	raw       string
	set       bool
	isNumber  bool
	isInteger bool
}

// NewNumber returns a supplied Number holding v.
func NewNumber(v float64) Number {
	f := Number{set: true}
	f.setFloat(v)
	return f
}

// UnmarshalJSON records the raw value; it only fails on malformed input.
func (f *Number) UnmarshalJSON(b []byte) error {
	*f = Number{}
	if bytes.Equal(b, null) {
		return nil
	}
	f.set = true
	f.raw = string(b)
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	if i, err := strconv.ParseInt(f.raw, 10, 64); err == nil && i >= math.MinInt && i <= math.MaxInt {
		f.value = v
		f.integer = i
		f.isNumber = true
		f.isInteger = true
		return nil
	}
	f.setFloat(v)
	return nil
}

// setFloat stores v, marking it as an integer when it is integral and in int range.
func (f *Number) setFloat(v float64) {
	f.value = v
	f.isNumber = true
	// float64(math.MaxInt64) rounds up to 2^63, hence the strict upper bound.
	if v == math.Trunc(v) && v >= math.MinInt && v < math.MaxInt {
		f.integer = int64(v)
		f.isInteger = true
	}
}

// MarshalJSON writes the value back, or null when absent.
func (f Number) MarshalJSON() ([]byte, error) {
	if !f.set {
		return null, nil
	}
	if !f.isNumber {
		return []byte(f.raw), nil
	}
	if f.isInteger {
		return json.Marshal(f.integer)
	}
	return json.Marshal(f.value)
}

// IsSet reports whether the key was supplied with a non-null value.
func (f Number) IsSet() bool {
	return f.set
}

// IsInteger reports whether the field is a JSON number without a fractional
// part that fits in an int.
func (f Number) IsInteger() bool {
	return f.isInteger
}

// IsPositiveInteger reports whether the field is an integer greater than 0.
func (f Number) IsPositiveInteger() bool {
	return f.isInteger && f.integer > 0
}

// Int returns the integer value; 0 when the field is not an integer.
func (f Number) Int() int {
	if !f.isInteger {
		return 0
	}
	return int(f.integer)
}

// Array is a payload field expected to hold a JSON array of T.
// Elements that do not decode into T are kept as zero values so that
// element guards can still report them by index.
type Array[T any] struct {
	items   []T
	set     bool
	isArray bool
}

// NewArray returns a supplied Array holding items.
func NewArray[T any](items ...T) Array[T] {
	return Array[T]{items: items, set: true, isArray: true}
}

// UnmarshalJSON records the elements; it only fails on malformed input.
func (f *Array[T]) UnmarshalJSON(b []byte) error {
	*f = Array[T]{}
	if bytes.Equal(b, null) {
		return nil
	}
	f.set = true
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil
	}
	f.isArray = true
	f.items = make([]T, len(raws))
	for i, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err == nil {
			f.items[i] = item
		}
	}
	return nil
}

// MarshalJSON writes the elements back, or null when absent or not an array.
func (f Array[T]) MarshalJSON() ([]byte, error) {
	if !f.isArray {
		return null, nil
	}
	if f.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.items)
}

// IsSet reports whether the key was supplied with a non-null value.
func (f Array[T]) IsSet() bool {
	return f.set
}

// IsArray reports whether the field holds a JSON array.
func (f Array[T]) IsArray() bool {
	return f.isArray
}

// Len returns the number of elements; 0 when not an array.
func (f Array[T]) Len() int {
	return len(f.items)
}

// Items returns the elements in submitted order.
func (f Array[T]) Items() []T {
	return f.items
}
