// Package objutil provides helpers for generic map[string]any objects as
// produced by JSON and YAML decoding, such as deep copies, recursive merges
// and dotted-path lookups.
package objutil

import (
	"errors"
	"reflect"

	"github.com/mohae/deepcopy"
)

// ErrCannotMergeArrays is returned when either merge operand is a slice or array.
var ErrCannotMergeArrays = errors.New("cannot merge arrays")

type mergeOptions struct {
	ignoreNewKeys bool
}

// MergeOption configures Merge and MergeAny.
type MergeOption func(*mergeOptions)

// WithIgnoreNewKeys drops keys that exist only in the second object, at every
// level of nesting. Existing keys are still overwritten.
func WithIgnoreNewKeys() MergeOption {
	return func(o *mergeOptions) {
		o.ignoreNewKeys = true
	}
}

// DeepCopy returns a deep copy of v.
func DeepCopy(v any) any {
	return deepcopy.Copy(v)
}

// Merge recursively merges b into a and returns a new object. Values from b
// win; nested objects present on both sides are merged. The result shares no
// references with either input.
func Merge(a, b map[string]any, opts ...MergeOption) map[string]any {
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return merge(a, b, o)
}

// MergeAny merges two arbitrary values. If either side is not an object the
// other side is copied. Slices and arrays are rejected.
func MergeAny(a, b any, opts ...MergeOption) (any, error) {
	if isList(a) || isList(b) {
		return nil, ErrCannotMergeArrays
	}

	objA, okA := a.(map[string]any)
	objB, okB := b.(map[string]any)
	switch {
	case !okA || objA == nil:
		return DeepCopy(b), nil
	case !okB || objB == nil:
		return DeepCopy(a), nil
	}
	return Merge(objA, objB, opts...), nil
}

func merge(a, b map[string]any, o mergeOptions) map[string]any {
	result := make(map[string]any, len(a)+len(b))

	for key, valA := range a {
		valB, inB := b[key]
		if !inB {
			result[key] = DeepCopy(valA)
			continue
		}

		nestedA, okA := valA.(map[string]any)
		nestedB, okB := valB.(map[string]any)
		if okA && okB && nestedA != nil && nestedB != nil {
			result[key] = merge(nestedA, nestedB, o)
			continue
		}
		result[key] = DeepCopy(valB)
	}

	if o.ignoreNewKeys {
		return result
	}

	for key, valB := range b {
		if _, inA := a[key]; inA {
			continue
		}
		result[key] = DeepCopy(valB)
	}
	return result
}

// MakeArray wraps v in a slice. Slices are returned as []any, nil becomes an
// empty slice and any other value becomes a one-element slice.
func MakeArray(v any) []any {
	if v == nil {
		return []any{}
	}
	if list, ok := v.([]any); ok {
		return list
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
