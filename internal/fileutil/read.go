package fileutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type readOptions struct {
	onMissing func(path string) (string, error)
}

// ReadOption configures ReadFile.
type ReadOption func(*readOptions)

// WithMissingFile calls fn instead of failing when the file does not exist.
// fn receives the resolved path and its result is returned by ReadFile.
func WithMissingFile(fn func(path string) (string, error)) ReadOption {
	return func(o *readOptions) { o.onMissing = fn }
}

// ReadFile returns the contents of path as a string.
func ReadFile(path string, opts ...ReadOption) (string, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && o.onMissing != nil {
			return o.onMissing(path)
		}
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return string(data), nil
}

// ReadJSON decodes the JSON file at path into out.
func ReadJSON(path string, out any) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to parse JSON file %q: %w", path, err)
	}
	return nil
}

// ReadYAML decodes the YAML file at path into out.
func ReadYAML(path string, out any) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to parse YAML file %q: %w", path, err)
	}
	return nil
}

// ReadObject decodes a JSON or YAML file, chosen by extension, into a
// generic object. An empty YAML document yields an empty object.
func ReadObject(path string) (map[string]any, error) {
	obj := make(map[string]any)

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = ReadJSON(path, &obj)
	case ".yaml", ".yml":
		err = ReadYAML(path, &obj)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (expected .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, err
	}
	if obj == nil {
		obj = make(map[string]any)
	}
	return obj, nil
}
