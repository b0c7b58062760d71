package objutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNilObject is returned by Get when the object is nil.
	ErrNilObject = errors.New("object is nil")
	// ErrEmptyPath is returned by Get when the path is empty.
	ErrEmptyPath = errors.New("path is empty")
)

// Get returns the value at a dotted path such as "a.b.c". Numeric segments
// index into slices. A path that does not resolve returns (nil, nil).
func Get(obj map[string]any, path string) (any, error) {
	if obj == nil {
		return nil, fmt.Errorf("cannot get %q: %w", path, ErrNilObject)
	}
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	var current any = obj
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, nil
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, nil
			}
			current = node[index]
		default:
			return nil, nil
		}
	}
	return current, nil
}

// GetOrSet returns m[key], storing def first when the key is absent.
// m must not be nil.
func GetOrSet[K comparable, V any](m map[K]V, key K, def V) V {
	if value, ok := m[key]; ok {
		return value
	}
	m[key] = def
	return def
}

// GetOrSetFunc returns m[key], storing the result of factory first when the
// key is absent. factory is not called for keys that are present.
// m must not be nil.
func GetOrSetFunc[K comparable, V any](m map[K]V, key K, factory func() V) V {
	if value, ok := m[key]; ok {
		return value
	}
	value := factory()
	m[key] = value
	return value
}
